package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/model"
	"luxe-store-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMessages struct {
	mu    sync.Mutex
	msgs  []*model.ContactMessage
	clock time.Time
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeMessages) Insert(ctx context.Context, m *model.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.ID = primitive.NewObjectID()
	f.clock = f.clock.Add(time.Millisecond)
	m.CreatedAt = f.clock
	cp := *m
	f.msgs = append(f.msgs, &cp)
	return nil
}

func (f *fakeMessages) FindPage(ctx context.Context, before *time.Time, limit int) ([]*model.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.ContactMessage
	// los fakes insertan en orden cronológico: recorrer al revés da
	// la más nueva primero
	for i := len(f.msgs) - 1; i >= 0; i-- {
		m := f.msgs[i]
		if before == nil || m.CreatedAt.Before(*before) {
			cp := *m
			out = append(out, &cp)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMessages) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.msgs {
		if m.ID == id {
			f.msgs = append(f.msgs[:i], f.msgs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func TestCreateMessage(t *testing.T) {
	repo := newFakeMessages()
	svc := NewMessageService(repo)

	msg, err := svc.Create(context.Background(), dto.ContactMessageRequest{
		Name:    "Eva",
		Email:   "eva@example.com",
		Message: "¿Hacen envíos al interior?",
	})

	require.NoError(t, err)
	assert.False(t, msg.ID.IsZero())
	assert.False(t, msg.CreatedAt.IsZero())
}

// El listado de mensajes usa el mismo contrato keyset que las órdenes.
func TestListMessages_Pagination(t *testing.T) {
	repo := newFakeMessages()
	svc := NewMessageService(repo)

	const total = 23
	for i := 0; i < total; i++ {
		_, err := svc.Create(context.Background(), dto.ContactMessageRequest{
			Name:    fmt.Sprintf("Cliente %d", i),
			Email:   "c@example.com",
			Message: "hola",
		})
		require.NoError(t, err)
	}

	page1, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, page1.Items, 20)
	assert.True(t, page1.HasMore)
	require.NotNil(t, page1.NextCursor)

	page2, err := svc.List(context.Background(), *page1.NextCursor)
	require.NoError(t, err)
	assert.Len(t, page2.Items, 3)
	assert.False(t, page2.HasMore)
	assert.Nil(t, page2.NextCursor)

	// sin duplicados entre páginas
	seen := make(map[string]bool)
	for _, m := range append(page1.Items, page2.Items...) {
		assert.False(t, seen[m.ID.Hex()])
		seen[m.ID.Hex()] = true
	}
	assert.Len(t, seen, total)
}

func TestDeleteMessage(t *testing.T) {
	repo := newFakeMessages()
	svc := NewMessageService(repo)

	msg, err := svc.Create(context.Background(), dto.ContactMessageRequest{
		Name: "Eva", Email: "eva@example.com", Message: "hola",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), msg.ID.Hex()))
	require.ErrorIs(t, svc.Delete(context.Background(), msg.ID.Hex()), repository.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), "nope"), ErrInvalidID)
}
