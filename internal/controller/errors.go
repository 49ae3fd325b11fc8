package controller

import (
	"errors"
	"net/http"

	"luxe-store-api/internal/repository"
	"luxe-store-api/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError mapea los errores de negocio a códigos HTTP.
// Configuración faltante es 500 (problema del operador, no del cliente);
// los conflictos de stock son 409 y el cliente puede reintentar todo
// el checkout desde cero.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOrder),
		errors.Is(err, service.ErrInvalidProduct),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidCursor),
		errors.Is(err, service.ErrInvalidShippingPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrVariantNotFound),
		errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrStockConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrShippingNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
