package service

import (
	"context"
	"time"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar repository
type MessageStore interface {
	Insert(ctx context.Context, m *model.ContactMessage) error
	FindPage(ctx context.Context, before *time.Time, limit int) ([]*model.ContactMessage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MessageService struct {
	repo MessageStore
}

func NewMessageService(r MessageStore) *MessageService {
	return &MessageService{repo: r}
}

func (s *MessageService) Create(ctx context.Context, req dto.ContactMessageRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List: mismo contrato keyset que el listado de órdenes.
func (s *MessageService) List(ctx context.Context, cursor string) (*dto.Page[*model.ContactMessage], error) {
	before, err := parseCursor(cursor)
	if err != nil {
		return nil, err
	}

	msgs, err := s.repo.FindPage(ctx, before, PageSize+1)
	if err != nil {
		return nil, err
	}

	page := &dto.Page[*model.ContactMessage]{Items: msgs}
	if len(msgs) > PageSize {
		page.Items = msgs[:PageSize]
		page.HasMore = true

		next := page.Items[len(page.Items)-1].CreatedAt.Format(time.RFC3339Nano)
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []*model.ContactMessage{}
	}
	return page, nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, oid)
}
