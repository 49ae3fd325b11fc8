package controller

import (
	"net/http"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Checkout *service.CheckoutService
	Orders   *service.OrderService
}

func NewOrderController(checkout *service.CheckoutService, orders *service.OrderService) *OrderController {
	return &OrderController{Checkout: checkout, Orders: orders}
}

// POST /orders — No requiere sesión
func (ctl *OrderController) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := ctl.Checkout.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /orders/track/:token — el token es la credencial
func (ctl *OrderController) Track(c *gin.Context) {
	order, err := ctl.Orders.TrackByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /admin/orders?cursor=... — admin only
func (ctl *OrderController) List(c *gin.Context) {
	page, err := ctl.Orders.List(c.Request.Context(), c.Query("cursor"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /admin/orders/:orderId
func (ctl *OrderController) Get(c *gin.Context) {
	order, err := ctl.Orders.GetByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PATCH /admin/orders/:orderId/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// PATCH /admin/orders/:orderId/payment
func (ctl *OrderController) UpdatePaymentStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Orders.UpdatePaymentStatus(c.Request.Context(), c.Param("orderId"), req.PaymentStatus); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment status updated"})
}

// PATCH /admin/orders/:orderId/tracking
func (ctl *OrderController) UpdateTracking(c *gin.Context) {
	var req dto.UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Orders.UpdateTrackingNumber(c.Request.Context(), c.Param("orderId"), req.TrackingNumber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tracking number updated"})
}

// DELETE /admin/orders/:orderId — no devuelve stock (comportamiento original)
func (ctl *OrderController) Delete(c *gin.Context) {
	if err := ctl.Orders.Delete(c.Request.Context(), c.Param("orderId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
