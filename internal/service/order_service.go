package service

import (
	"context"
	"errors"
	"time"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tamaño de página fijo para los listados keyset
const PageSize = 20

var (
	ErrInvalidID     = errors.New("id inválido")
	ErrInvalidStatus = errors.New("estado inválido")
	ErrInvalidCursor = errors.New("cursor inválido")
)

// Estados válidos (por nombre). No hay catálogo en BD.
var validPaymentStatuses = map[string]bool{
	model.PaymentPending: true,
	model.PaymentPaid:    true,
	model.PaymentFailed:  true,
}

var validOrderStatuses = map[string]bool{
	model.OrderProcessing: true,
	model.OrderConfirmed:  true,
	model.OrderShipped:    true,
	model.OrderDelivered:  true,
	model.OrderCancelled:  true,
}

type OrderService struct {
	repo OrderStore
}

func NewOrderService(r OrderStore) *OrderService {
	return &OrderService{repo: r}
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, oid)
}

// TrackByToken es la consulta pública: el token ES la credencial,
// no pide sesión. Devuelve solo los campos seguros.
func (s *OrderService) TrackByToken(ctx context.Context, token string) (*dto.PublicOrderResponse, error) {
	o, err := s.repo.FindByTrackingToken(ctx, token)
	if err != nil {
		return nil, err
	}

	items := make([]dto.OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderLine{
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			Image:       it.Image,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal,
		})
	}

	return &dto.PublicOrderResponse{
		Status:         o.Status,
		PaymentStatus:  o.PaymentStatus,
		TrackingNumber: o.TrackingNumber,
		Name:           o.Name,
		Address:        o.Address,
		Items:          items,
		ShippingPrice:  o.ShippingPrice,
		TotalPrice:     o.TotalPrice,
		CreatedAt:      o.CreatedAt,
	}, nil
}

// List devuelve una página de órdenes, de la más nueva a la más vieja.
// El cursor es el createdAt del último item visto (RFC3339).
func (s *OrderService) List(ctx context.Context, cursor string) (*dto.Page[*model.Order], error) {
	before, err := parseCursor(cursor)
	if err != nil {
		return nil, err
	}

	// Pedimos uno de más para saber barato si hay otra página
	orders, err := s.repo.FindPage(ctx, before, PageSize+1)
	if err != nil {
		return nil, err
	}

	page := &dto.Page[*model.Order]{Items: orders}
	if len(orders) > PageSize {
		page.Items = orders[:PageSize]
		page.HasMore = true
	}
	if page.HasMore {
		next := page.Items[len(page.Items)-1].CreatedAt.Format(time.RFC3339Nano)
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []*model.Order{}
	}
	return page, nil
}

// UpdatePaymentStatus es idempotente: mismo valor -> éxito sin escribir.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	return s.updateField(ctx, id, "payment_status", status, validPaymentStatuses, func(o *model.Order) string {
		return o.PaymentStatus
	})
}

// UpdateStatus es idempotente: mismo valor -> éxito sin escribir.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.updateField(ctx, id, "status", status, validOrderStatuses, func(o *model.Order) string {
		return o.Status
	})
}

// UpdateTrackingNumber setea el número de seguimiento (texto libre).
func (s *OrderService) UpdateTrackingNumber(ctx context.Context, id, tracking string) error {
	return s.updateField(ctx, id, "tracking_number", tracking, nil, func(o *model.Order) string {
		return o.TrackingNumber
	})
}

func (s *OrderService) updateField(ctx context.Context, id, field, value string, valid map[string]bool, current func(*model.Order) string) error {
	ord, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Si el valor nuevo es el mismo que ya está, no hacemos nada
	if current(ord) == value {
		return nil
	}
	if valid != nil && !valid[value] {
		return ErrInvalidStatus
	}

	return s.repo.UpdateField(ctx, ord.ID, field, value)
}

// Delete borra la orden. A propósito NO devuelve stock al variante:
// se conserva el comportamiento original del sistema.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, oid)
}

func parseCursor(cursor string) (*time.Time, error) {
	if cursor == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &t, nil
}
