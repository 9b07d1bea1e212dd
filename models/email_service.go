package models

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(host string, port int, user, pass, from string) (*EmailService, error) {
	if host == "" || user == "" || pass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(host, port, user, pass)

	return &EmailService{dialer: dialer, from: from}, nil
}

// SendReceipt mails the checkout confirmation to the buyer. Failures are the
// caller's to log; checkout never depends on delivery.
func (s *EmailService) SendReceipt(receipt *Receipt) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", receipt.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your Vibe Shop receipt %s", receipt.ID))

	var rows strings.Builder
	for _, it := range receipt.Items {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:4px 12px;">#%d</td><td style="padding:4px 12px;">%d</td></tr>`,
			it.ProductID, it.Qty,
		))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Thanks for your order, %s!</h2>
        <p>Order <strong>%s</strong> placed at %s.</p>
        <table style="border-collapse: collapse;">
            <tr><th style="padding:4px 12px; text-align:left;">Product</th><th style="padding:4px 12px; text-align:left;">Qty</th></tr>
            %s
        </table>
        <p style="font-size: 18px;">Total: <strong>%.2f</strong></p>
        <div style="margin-top: 30px; color: #666; font-size: 12px;">
            <p>This is an automated email from a mock storefront. No payment was taken.</p>
        </div>
    </div>
</body>
</html>`,
		receipt.Name, receipt.ID, receipt.Timestamp.Format("2006-01-02 15:04 MST"), rows.String(), receipt.Total)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
