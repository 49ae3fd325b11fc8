package repository

import (
	"context"
	"time"

	"luxe-store-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShippingRepository maneja el documento singleton de precio de envío.
type MongoShippingRepository struct {
	col *mongo.Collection
}

func NewMongoShippingRepository(db *mongo.Database) *MongoShippingRepository {
	return &MongoShippingRepository{col: db.Collection("shipping_price")}
}

func (m *MongoShippingRepository) Get(ctx context.Context) (*model.ShippingPrice, error) {
	var res model.ShippingPrice
	err := m.col.FindOne(ctx, bson.M{}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// Set hace upsert: siempre hay a lo sumo un documento.
func (m *MongoShippingRepository) Set(ctx context.Context, price float64) error {
	update := bson.M{
		"$set": bson.M{
			"price":      price,
			"updated_at": time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, bson.M{}, update, opts)
	return err
}
