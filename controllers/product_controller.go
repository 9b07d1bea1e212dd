package controllers

import (
	"vibe-shop/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalogSvc *services.CatalogService
}

func NewProductController(catalogSvc *services.CatalogService) *ProductController {
	return &ProductController{catalogSvc: catalogSvc}
}

// @Summary List products
// @Description Get the full catalog ordered by id. Search and filtering are a client-side concern.
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	products, err := ctrl.catalogSvc.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, products)
}
