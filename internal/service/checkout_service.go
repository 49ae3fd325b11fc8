package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/model"
	"luxe-store-api/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaces que debe implementar repository
type CatalogStore interface {
	FindProductWithVariant(ctx context.Context, productID, variantID primitive.ObjectID) (*model.Product, *model.Variant, error)
	DecrementStock(ctx context.Context, productID, variantID primitive.ObjectID, qty int) (int64, error)
}

type ShippingStore interface {
	Get(ctx context.Context) (*model.ShippingPrice, error)
}

type OrderStore interface {
	Insert(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	FindByTrackingToken(ctx context.Context, token string) (*model.Order, error)
	FindPage(ctx context.Context, before *time.Time, limit int) ([]*model.Order, error)
	UpdateField(ctx context.Context, id primitive.ObjectID, field string, value string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TxRunner ejecuta fn como unidad atómica: o queda todo, o nada.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier avisa que se creó una orden (mail de confirmación vía Rabbit).
// Es best-effort: su falla jamás afecta el resultado del checkout.
type Notifier interface {
	OrderPlaced(o *model.Order)
}

// Errores de negocio exportados (los usa el controller)
var (
	ErrInvalidOrder          = errors.New("datos de orden inválidos")
	ErrShippingNotConfigured = errors.New("el precio de envío no está configurado")
	ErrProductNotFound       = errors.New("producto no encontrado")
	ErrVariantNotFound       = errors.New("variante no encontrada")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrStockConflict         = errors.New("conflicto de stock, reintente la compra")
)

type CheckoutService struct {
	catalog  CatalogStore
	shipping ShippingStore
	orders   OrderStore
	tx       TxRunner
	notifier Notifier
}

func NewCheckoutService(catalog CatalogStore, shipping ShippingStore, orders OrderStore, tx TxRunner, notifier Notifier) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		shipping: shipping,
		orders:   orders,
		tx:       tx,
		notifier: notifier,
	}
}

// parsedLine es una línea del carrito ya validada, con ids parseados.
type parsedLine struct {
	productID primitive.ObjectID
	variantID primitive.ObjectID
	quantity  int
}

// PlaceOrder es el motor de creación de órdenes. Dentro de UNA transacción:
// lee el precio de envío, y por cada línea del carrito relee el variante,
// descuenta stock con escritura condicional y arma el snapshot de precio.
// Cualquier falla aborta todo: ningún decremento parcial sobrevive y no
// se crea la orden. El precio que pudiera mandar el cliente se ignora
// siempre: la única fuente es el catálogo vivo en este instante.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*model.Order, error) {
	lines, err := validateCart(req)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		TrackingToken: newTrackingToken(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentStatus: model.PaymentPending,
		Status:        model.OrderProcessing,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// 1. Precio de envío: si falta es un error de configuración
		// del operador, no del cliente.
		shipping, err := s.shipping.Get(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrShippingNotConfigured
			}
			return err
		}

		total := 0.0
		order.Items = order.Items[:0]

		// 2. Cada línea, en el orden que las mandó el cliente
		for i, line := range lines {
			p, v, err := s.catalog.FindProductWithVariant(ctx, line.productID, line.variantID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					if p == nil {
						return fmt.Errorf("%w (línea %d: %s)", ErrProductNotFound, i+1, line.productID.Hex())
					}
					return fmt.Errorf("%w (línea %d: %s / %s)", ErrVariantNotFound, i+1, p.Name, line.variantID.Hex())
				}
				return err
			}

			if v.Stock < line.quantity {
				return fmt.Errorf("%w: %s / %s", ErrInsufficientStock, p.Name, v.Name)
			}

			// Escritura condicional: si entre la lectura de arriba y
			// este write otra compra se llevó el stock, modifica 0
			// documentos y abortamos con conflicto.
			modified, err := s.catalog.DecrementStock(ctx, line.productID, line.variantID, line.quantity)
			if err != nil {
				return err
			}
			if modified == 0 {
				return fmt.Errorf("%w: %s / %s", ErrStockConflict, p.Name, v.Name)
			}

			// Snapshot del variante al momento de la compra
			unit := v.EffectivePrice(p)
			item := model.OrderItem{
				ProductID:   p.ID,
				VariantID:   v.ID,
				ProductName: p.Name,
				VariantName: v.Name,
				Image:       v.Image,
				UnitPrice:   unit,
				Quantity:    line.quantity,
				LineTotal:   unit * float64(line.quantity),
			}
			order.Items = append(order.Items, item)
			total += item.LineTotal
		}

		// 3. Total final = líneas + envío
		order.ShippingPrice = shipping.Price
		order.TotalPrice = total + shipping.Price

		// 4. Persistir la orden dentro de la misma transacción
		return s.orders.Insert(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	// 5. Confirmación fuera de la transacción: si falla, ya quedó la orden.
	if s.notifier != nil {
		s.notifier.OrderPlaced(order)
	}

	return order, nil
}

func validateCart(req dto.PlaceOrderRequest) ([]parsedLine, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: faltan datos del cliente", ErrInvalidOrder)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: el carrito está vacío", ErrInvalidOrder)
	}

	lines := make([]parsedLine, 0, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad inválida en línea %d", ErrInvalidOrder, i+1)
		}
		pid, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: id de producto inválido en línea %d", ErrInvalidOrder, i+1)
		}
		vid, err := primitive.ObjectIDFromHex(item.VariantID)
		if err != nil {
			return nil, fmt.Errorf("%w: id de variante inválido en línea %d", ErrInvalidOrder, i+1)
		}
		lines = append(lines, parsedLine{productID: pid, variantID: vid, quantity: item.Quantity})
	}
	return lines, nil
}

// Token largo y no adivinable: es la credencial del tracking público,
// se trata como secreto (no va a logs).
func newTrackingToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
