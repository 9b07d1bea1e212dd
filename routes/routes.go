package routes

import (
	"log"
	"os"
	"time"

	"vibe-shop/controllers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Product  *controllers.ProductController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
}

func SetupRoutes(router *gin.Engine, ctrls Controllers, imagesDir string) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"name": "Vibe Shop Mock API", "products": "/products"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "ts": time.Now().UnixMilli()})
	})

	router.GET("/products", ctrls.Product.GetProducts)

	router.GET("/cart", ctrls.Cart.GetCart)
	router.POST("/cart", ctrls.Cart.AddToCart)
	router.PATCH("/cart/:id", ctrls.Cart.UpdateQuantity)
	router.DELETE("/cart/:id", ctrls.Cart.RemoveLine)

	router.POST("/checkout", ctrls.Checkout.Checkout)

	if _, err := os.Stat(imagesDir); err == nil {
		router.Static("/images", imagesDir)
	} else {
		log.Printf("Images dir not found: %s. Requests to /images will 404.", imagesDir)
	}
}
