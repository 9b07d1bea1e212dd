package controllers

import (
	"strconv"

	"vibe-shop/models"
	"vibe-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartSvc *services.CartService
}

func NewCartController(cartSvc *services.CartService) *CartController {
	return &CartController{cartSvc: cartSvc}
}

// @Summary Get cart
// @Description List cart lines priced at current catalog prices, with per-line subtotals and the rounded total.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Cart
// @Failure 500 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartSvc.ListCart(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, cart)
}

// @Summary Add to cart
// @Description Add a product to the cart. Adding a product already in the cart increases its quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.AddToCartResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Error: "productId and qty>0 required"})
		return
	}

	result, err := ctrl.cartSvc.AddToCart(c.Request.Context(), req.ProductID, req.Qty)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "added"
	if result.Merged {
		message = "updated"
	}
	c.JSON(200, models.AddToCartResponse{Message: message, CartID: result.CartID, Qty: result.Qty})
}

// @Summary Update cart line quantity
// @Description Replace the quantity of a cart line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Cart line ID"
// @Param request body models.UpdateQtyRequest true "New quantity"
// @Success 200 {object} models.UpdateQtyResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cart/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(404, models.ErrorResponse{Error: "not found"})
		return
	}

	var req models.UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Error: "qty>0 required"})
		return
	}

	if err := ctrl.cartSvc.SetQuantity(c.Request.Context(), id, req.Qty); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.UpdateQtyResponse{Message: "updated", ID: id, Qty: req.Qty})
}

// @Summary Remove cart line
// @Description Delete a cart line. Removing a line that does not exist is a 404, not a silent success.
// @Tags Cart
// @Produce json
// @Param id path int true "Cart line ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cart/{id} [delete]
func (ctrl *CartController) RemoveLine(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(404, models.ErrorResponse{Error: "not found"})
		return
	}

	if err := ctrl.cartSvc.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, models.MessageResponse{Message: "removed"})
}
