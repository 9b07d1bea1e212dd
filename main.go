package main

import (
	"context"
	"log"

	"vibe-shop/config"
	"vibe-shop/controllers"
	_ "vibe-shop/docs"
	"vibe-shop/middleware"
	"vibe-shop/models"
	"vibe-shop/repositories"
	"vibe-shop/routes"
	"vibe-shop/services"

	"github.com/gin-gonic/gin"
)

// @title Vibe Shop API
// @version 1.0
// @description Mock storefront: catalog listing, shared server-side cart and mock checkout.
// @BasePath /
func main() {
	cfg := config.LoadConfig()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	pool, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer pool.Close()

	redisClient := config.ConnectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	catalogRepo := repositories.NewCatalogRepository(pool)
	cartRepo := repositories.NewCartRepository(pool)

	if err := catalogRepo.EnsureSeeded(context.Background()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// The mailer is optional; without SMTP config checkout simply skips the
	// receipt email.
	var mailer services.ReceiptMailer
	if emailSvc, err := models.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom); err == nil {
		mailer = emailSvc
	} else {
		log.Println("Receipt emails disabled:", err)
	}

	catalogSvc := services.NewCatalogService(catalogRepo, redisClient)
	cartSvc := services.NewCartService(cartRepo, catalogRepo)
	checkoutSvc := services.NewCheckoutService(cartRepo, catalogRepo, mailer)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, routes.Controllers{
		Product:  controllers.NewProductController(catalogSvc),
		Cart:     controllers.NewCartController(cartSvc),
		Checkout: controllers.NewCheckoutController(checkoutSvc),
	}, cfg.ImagesDir)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
