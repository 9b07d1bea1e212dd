package controllers

import (
	"errors"
	"log"

	"vibe-shop/models"
	"vibe-shop/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy to HTTP. Storage detail is
// logged server-side; clients get a generic message on 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(400, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(404, models.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("storage error: %v", err)
		c.JSON(500, models.ErrorResponse{Error: "internal server error"})
	}
}
