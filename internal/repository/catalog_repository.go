package repository

import (
	"context"
	"errors"
	"time"

	"luxe-store-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("documento no encontrado")

// Mongo implementation
type MongoCatalogRepository struct {
	col *mongo.Collection
}

func NewMongoCatalogRepository(db *mongo.Database) *MongoCatalogRepository {
	return &MongoCatalogRepository{col: db.Collection("products")}
}

func (m *MongoCatalogRepository) Insert(ctx context.Context, p *model.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *MongoCatalogRepository) Update(ctx context.Context, p *model.Product) error {
	p.UpdatedAt = time.Now().UTC()

	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoCatalogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoCatalogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var res model.Product
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoCatalogRepository) FindAll(ctx context.Context) ([]*model.Product, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Product
	for cur.Next(ctx) {
		var v model.Product
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}

// FindProductWithVariant trae el producto y ubica el variante por id.
func (m *MongoCatalogRepository) FindProductWithVariant(ctx context.Context, productID, variantID primitive.ObjectID) (*model.Product, *model.Variant, error) {
	p, err := m.FindByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return p, &p.Variants[i], nil
		}
	}
	return p, nil, ErrNotFound
}

// DecrementStock descuenta stock SOLO si al momento del write todavía
// alcanza (stock >= qty). Si otra compra concurrente ganó la carrera,
// el filtro no matchea y devuelve 0 modificados: el caller lo trata
// como conflicto de stock. Esta escritura condicional es la primitiva
// que garantiza que nunca se vende de más; no hay locks.
func (m *MongoCatalogRepository) DecrementStock(ctx context.Context, productID, variantID primitive.ObjectID, qty int) (int64, error) {
	filter := bson.M{
		"_id": productID,
		"variants": bson.M{
			"$elemMatch": bson.M{
				"_id":   variantID,
				"stock": bson.M{"$gte": qty},
			},
		},
	}
	update := bson.M{
		"$inc": bson.M{"variants.$.stock": -qty},
	}

	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
