package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidProduct = errors.New("datos de producto inválidos")

// Interfaz que debe implementar repository
type ProductStore interface {
	Insert(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	FindAll(ctx context.Context) ([]*model.Product, error)
}

// ImageHost es el colaborador externo de hosting de imágenes.
// Delete es best-effort: devuelve false y se sigue.
type ImageHost interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
	Delete(ctx context.Context, url string) bool
}

type CatalogService struct {
	repo   ProductStore
	images ImageHost
}

func NewCatalogService(r ProductStore, images ImageHost) *CatalogService {
	return &CatalogService{repo: r, images: images}
}

func (s *CatalogService) List(ctx context.Context) ([]*model.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *CatalogService) Create(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	variants, err := buildVariants(req.Variants)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:         req.Name,
		Description:  req.Description,
		GeneralPrice: req.GeneralPrice,
		Variants:     variants,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update reemplaza el producto completo. Las imágenes de variantes que
// dejaron de usarse se borran del hosting (best-effort).
func (s *CatalogService) Update(ctx context.Context, id string, req dto.ProductRequest) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	variants, err := buildVariants(req.Variants)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		ID:           oid,
		Name:         req.Name,
		Description:  req.Description,
		GeneralPrice: req.GeneralPrice,
		Variants:     variants,
		CreatedAt:    existing.CreatedAt,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.cleanupImages(ctx, existing.Variants, variants)
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, oid); err != nil {
		return err
	}

	s.cleanupImages(ctx, existing.Variants, nil)
	return nil
}

// buildVariants valida y normaliza: siempre al menos un variante,
// stock nunca negativo, y display_order secuencial según el orden
// en que llegaron.
func buildVariants(reqs []dto.VariantRequest) ([]model.Variant, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: el producto necesita al menos un variante", ErrInvalidProduct)
	}

	variants := make([]model.Variant, 0, len(reqs))
	for i, vr := range reqs {
		if vr.Stock < 0 {
			return nil, fmt.Errorf("%w: stock negativo en variante %d", ErrInvalidProduct, i+1)
		}

		id := primitive.NewObjectID()
		if vr.ID != "" {
			parsed, err := primitive.ObjectIDFromHex(vr.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: id de variante inválido", ErrInvalidProduct)
			}
			id = parsed
		}

		variants = append(variants, model.Variant{
			ID:            id,
			Name:          vr.Name,
			Image:         vr.Image,
			Price:         vr.Price,
			PreviousPrice: vr.PreviousPrice,
			DisplayOrder:  i,
			Stock:         vr.Stock,
		})
	}
	return variants, nil
}

// cleanupImages borra del hosting las imágenes que quedaron huérfanas.
func (s *CatalogService) cleanupImages(ctx context.Context, old, current []model.Variant) {
	if s.images == nil {
		return
	}

	inUse := make(map[string]bool, len(current))
	for _, v := range current {
		inUse[v.Image] = true
	}
	for _, v := range old {
		if v.Image != "" && !inUse[v.Image] {
			s.images.Delete(ctx, v.Image)
		}
	}
}
