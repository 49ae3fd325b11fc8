package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTxRunner envuelve una unidad de trabajo en una transacción de Mongo.
// El checkout lo usa para que los decrementos de stock + el insert de la
// orden se vean como un solo efecto: si algo falla, nada queda escrito.
type MongoTxRunner struct {
	client *mongo.Client
}

func NewMongoTxRunner(client *mongo.Client) *MongoTxRunner {
	return &MongoTxRunner{client: client}
}

func (r *MongoTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
