// dto.go
package dto

import "time"

// PlaceOrderRequest es el carrito que manda el cliente.
// OJO: no lleva precios. El precio siempre se resuelve del catálogo
// en el servidor para evitar manipulación.
type PlaceOrderRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`

	Items []CartLine `json:"items" binding:"required,min=1,dive"`
}

type CartLine struct {
	ProductID string `json:"productId" binding:"required"`
	VariantID string `json:"variantId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
}

type ShippingPriceRequest struct {
	Price *float64 `json:"price" binding:"required,gte=0"`
}

type VariantRequest struct {
	// ID presente -> se conserva el variante; vacío -> variante nuevo
	ID            string   `json:"id"`
	Name          string   `json:"name" binding:"required"`
	Image         string   `json:"image"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	PreviousPrice *float64 `json:"previousPrice" binding:"omitempty,gte=0"`
	Stock         int      `json:"stock" binding:"gte=0"`
}

type ProductRequest struct {
	Name         string           `json:"name" binding:"required"`
	Description  string           `json:"description"`
	GeneralPrice float64          `json:"generalPrice" binding:"gte=0"`
	Variants     []VariantRequest `json:"variants" binding:"required,min=1,dive"`
}

type HomeRequest struct {
	HeroImage string `json:"heroImage"`
	Title     string `json:"title" binding:"required"`
	Subtitle  string `json:"subtitle"`
}

type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type OurStoryRequest struct {
	Image string `json:"image"`
	Body  string `json:"body" binding:"required"`
}

type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Página de listados keyset. NextCursor es el createdAt del último
// item devuelto (RFC3339), o null si no hay más.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor"`
	HasMore    bool    `json:"hasMore"`
}

// PublicOrderResponse son los campos visibles con solo el token de tracking.
// El token es la credencial: no se exponen campos internos.
type PublicOrderResponse struct {
	Status         string      `json:"status"`
	PaymentStatus  string      `json:"paymentStatus"`
	TrackingNumber string      `json:"trackingNumber"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Items          []OrderLine `json:"items"`
	ShippingPrice  float64     `json:"shippingPrice"`
	TotalPrice     float64     `json:"totalPrice"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type OrderLine struct {
	ProductName string  `json:"productName"`
	VariantName string  `json:"variantName"`
	Image       string  `json:"image"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}
