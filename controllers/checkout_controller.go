package controllers

import (
	"vibe-shop/models"
	"vibe-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutSvc *services.CheckoutService
}

func NewCheckoutController(checkoutSvc *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutSvc: checkoutSvc}
}

// @Summary Checkout
// @Description Re-price the submitted cart lines at current catalog prices, return a receipt and clear the cart. Client-supplied prices are ignored.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Cart lines and buyer details"
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Error: "cartItems, name, email required"})
		return
	}

	receipt, err := ctrl.checkoutSvc.Checkout(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.CheckoutResponse{Receipt: *receipt})
}
