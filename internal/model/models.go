// models.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados de pago permitidos
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// Estados de orden permitidos
const (
	OrderProcessing = "Processing"
	OrderConfirmed  = "Confirmed"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

type Order struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Token único no adivinable para el tracking público (no es el _id)
	TrackingToken string `bson:"tracking_token" json:"trackingToken"`

	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`

	Items []OrderItem `bson:"items" json:"items"`

	ShippingPrice float64 `bson:"shipping_price" json:"shippingPrice"`
	TotalPrice    float64 `bson:"total_price" json:"totalPrice"`

	PaymentStatus  string `bson:"payment_status" json:"paymentStatus"`
	Status         string `bson:"status" json:"status"`
	TrackingNumber string `bson:"tracking_number" json:"trackingNumber"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// OrderItem guarda un snapshot del variante al momento de la compra.
// Nunca se vuelve a calcular contra el catálogo vivo: si el producto
// cambia después, la orden histórica queda intacta.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	VariantID primitive.ObjectID `bson:"variant_id" json:"variantId"`

	ProductName string  `bson:"product_name" json:"productName"`
	VariantName string  `bson:"variant_name" json:"variantName"`
	Image       string  `bson:"image" json:"image"`
	UnitPrice   float64 `bson:"unit_price" json:"unitPrice"`

	Quantity  int     `bson:"quantity" json:"quantity"`
	LineTotal float64 `bson:"line_total" json:"lineTotal"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`

	// Precio general: fallback cuando el variante no tiene precio propio
	GeneralPrice float64 `bson:"general_price" json:"generalPrice"`

	Variants []Variant `bson:"variants" json:"variants"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type Variant struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image" json:"image"`

	// Precio propio; nil -> se usa el GeneralPrice del producto
	Price *float64 `bson:"price,omitempty" json:"price,omitempty"`

	// Precio anterior, solo para mostrar descuento
	PreviousPrice *float64 `bson:"previous_price,omitempty" json:"previousPrice,omitempty"`

	// Orden de aparición en la galería, secuencial dentro del producto
	DisplayOrder int `bson:"display_order" json:"displayOrder"`

	Stock int `bson:"stock" json:"stock"`
}

// EffectivePrice resuelve el precio del variante con fallback al precio general.
func (v *Variant) EffectivePrice(p *Product) float64 {
	if v.Price != nil {
		return *v.Price
	}
	return p.GeneralPrice
}

// ShippingPrice es un documento singleton de configuración.
type ShippingPrice struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Price     float64            `bson:"price" json:"price"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Home es el contenido singleton de la página principal.
type Home struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HeroImage string             `bson:"hero_image" json:"heroImage"`
	Title     string             `bson:"title" json:"title"`
	Subtitle  string             `bson:"subtitle" json:"subtitle"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type FAQ struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question  string             `bson:"question" json:"question"`
	Answer    string             `bson:"answer" json:"answer"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OurStory es el contenido singleton de "nuestra historia".
type OurStory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Image     string             `bson:"image" json:"image"`
	Body      string             `bson:"body" json:"body"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
