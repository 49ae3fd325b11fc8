package service

import (
	"context"
	"io"
	"sync"
	"time"

	"luxe-store-api/internal/model"
	"luxe-store-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fakes en memoria de los stores de Mongo. Replican el contrato que
// importa: el decremento condicional modifica 0 documentos si el stock
// ya no alcanza, y la "transacción" restaura todo si fn falla.

type fakeCatalog struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]*model.Product
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: make(map[primitive.ObjectID]*model.Product)}
}

func copyProduct(p *model.Product) *model.Product {
	cp := *p
	cp.Variants = append([]model.Variant(nil), p.Variants...)
	return &cp
}

func (f *fakeCatalog) add(p *model.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products[p.ID] = copyProduct(p)
}

func (f *fakeCatalog) stockOf(productID, variantID primitive.ObjectID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.products[productID].Variants {
		if v.ID == variantID {
			return v.Stock
		}
	}
	return -1
}

func (f *fakeCatalog) FindProductWithVariant(ctx context.Context, productID, variantID primitive.ObjectID) (*model.Product, *model.Variant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[productID]
	if !ok {
		return nil, nil, repository.ErrNotFound
	}
	cp := copyProduct(p)
	for i := range cp.Variants {
		if cp.Variants[i].ID == variantID {
			return cp, &cp.Variants[i], nil
		}
	}
	return cp, nil, repository.ErrNotFound
}

func (f *fakeCatalog) DecrementStock(ctx context.Context, productID, variantID primitive.ObjectID, qty int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[productID]
	if !ok {
		return 0, nil
	}
	for i := range p.Variants {
		if p.Variants[i].ID == variantID && p.Variants[i].Stock >= qty {
			p.Variants[i].Stock -= qty
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCatalog) Insert(ctx context.Context, p *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.products[p.ID] = copyProduct(p)
	return nil
}

func (f *fakeCatalog) Update(ctx context.Context, p *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	f.products[p.ID] = copyProduct(p)
	return nil
}

func (f *fakeCatalog) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeCatalog) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyProduct(p), nil
}

func (f *fakeCatalog) FindAll(ctx context.Context) ([]*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, copyProduct(p))
	}
	return out, nil
}

func (f *fakeCatalog) snapshot() map[primitive.ObjectID]*model.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := make(map[primitive.ObjectID]*model.Product, len(f.products))
	for id, p := range f.products {
		snap[id] = copyProduct(p)
	}
	return snap
}

func (f *fakeCatalog) restore(snap map[primitive.ObjectID]*model.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = snap
}

type fakeOrders struct {
	mu     sync.Mutex
	orders []*model.Order
	writes int
	clock  time.Time
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func copyOrder(o *model.Order) *model.Order {
	cp := *o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	return &cp
}

func (f *fakeOrders) Insert(ctx context.Context, o *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = primitive.NewObjectID()
	// created_at estrictamente creciente para el keyset
	f.clock = f.clock.Add(time.Millisecond)
	o.CreatedAt = f.clock
	o.UpdatedAt = f.clock
	f.orders = append(f.orders, copyOrder(o))
	return nil
}

func (f *fakeOrders) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			return copyOrder(o), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrders) FindByTrackingToken(ctx context.Context, token string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.TrackingToken == token {
			return copyOrder(o), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrders) FindPage(ctx context.Context, before *time.Time, limit int) ([]*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.Order
	for _, o := range f.orders {
		if before == nil || o.CreatedAt.Before(*before) {
			out = append(out, copyOrder(o))
		}
	}
	// más nueva primero
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeOrders) UpdateField(ctx context.Context, id primitive.ObjectID, field string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID != id {
			continue
		}
		switch field {
		case "status":
			o.Status = value
		case "payment_status":
			o.PaymentStatus = value
		case "tracking_number":
			o.TrackingNumber = value
		}
		o.UpdatedAt = time.Now().UTC()
		f.writes++
		return nil
	}
	return repository.ErrNotFound
}

func (f *fakeOrders) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeOrders) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

func (f *fakeOrders) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *fakeOrders) snapshot() []*model.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := make([]*model.Order, 0, len(f.orders))
	for _, o := range f.orders {
		snap = append(snap, copyOrder(o))
	}
	return snap
}

func (f *fakeOrders) restore(snap []*model.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = snap
}

type fakeShipping struct {
	mu    sync.Mutex
	price *float64
}

func (f *fakeShipping) Get(ctx context.Context) (*model.ShippingPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.price == nil {
		return nil, repository.ErrNotFound
	}
	return &model.ShippingPrice{Price: *f.price}, nil
}

func (f *fakeShipping) Set(ctx context.Context, price float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.price = &price
	return nil
}

// fakeTx serializa las transacciones y restaura los stores si fn falla,
// igual que el rollback de la transacción real de Mongo.
type fakeTx struct {
	mu      sync.Mutex
	catalog *fakeCatalog
	orders  *fakeOrders
}

func (t *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	catSnap := t.catalog.snapshot()
	ordSnap := t.orders.snapshot()

	if err := fn(ctx); err != nil {
		t.catalog.restore(catSnap)
		t.orders.restore(ordSnap)
		return err
	}
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	placed []*model.Order
}

func (f *fakeNotifier) OrderPlaced(o *model.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placed = append(f.placed, o)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.placed)
}

type fakeImages struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeImages) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	return "https://img.example/" + filename, nil
}

func (f *fakeImages) Delete(ctx context.Context, url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return true
}
