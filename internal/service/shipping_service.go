package service

import (
	"context"
	"errors"

	"luxe-store-api/internal/model"
)

var ErrInvalidShippingPrice = errors.New("el precio de envío no puede ser negativo")

// Interfaz que debe implementar repository
type ShippingConfigStore interface {
	Get(ctx context.Context) (*model.ShippingPrice, error)
	Set(ctx context.Context, price float64) error
}

type ShippingService struct {
	repo ShippingConfigStore
}

func NewShippingService(r ShippingConfigStore) *ShippingService {
	return &ShippingService{repo: r}
}

func (s *ShippingService) Get(ctx context.Context) (*model.ShippingPrice, error) {
	return s.repo.Get(ctx)
}

// Set solo afecta órdenes futuras: las ya creadas conservan el precio
// copiado en su momento.
func (s *ShippingService) Set(ctx context.Context, price float64) error {
	if price < 0 {
		return ErrInvalidShippingPrice
	}
	return s.repo.Set(ctx, price)
}
