package controller

import (
	"net/http"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ShippingController struct {
	Service *service.ShippingService
}

func NewShippingController(s *service.ShippingService) *ShippingController {
	return &ShippingController{Service: s}
}

// GET /shipping-price — público (el storefront lo muestra en el carrito)
func (ctl *ShippingController) Get(c *gin.Context) {
	price, err := ctl.Service.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

// PUT /admin/shipping-price — solo afecta órdenes futuras
func (ctl *ShippingController) Set(c *gin.Context) {
	var req dto.ShippingPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Service.Set(c.Request.Context(), *req.Price); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shipping price updated"})
}
