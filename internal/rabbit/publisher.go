// publisher.go
package rabbit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"luxe-store-api/internal/model"

	"github.com/rabbitmq/amqp091-go"
)

const orderPlacedExchange = "order_placed"

// Publisher emite el evento de orden creada al exchange fanout.
// Lo consume el servicio de mails para mandar la confirmación con
// el link de tracking. Es fire-and-forget: si Rabbit está caído,
// la orden ya quedó creada igual.
type Publisher struct {
	ch *amqp091.Channel
}

func NewPublisher(ch *amqp091.Channel) (*Publisher, error) {
	// Declarar el exchange fanout
	err := ch.ExchangeDeclare(
		orderPlacedExchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{ch: ch}, nil
}

type orderPlacedMessage struct {
	OrderID       string  `json:"orderId"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	TrackingToken string  `json:"trackingToken"`
	TotalPrice    float64 `json:"totalPrice"`
}

func (p *Publisher) OrderPlaced(o *model.Order) {
	msg := orderPlacedMessage{
		OrderID:       o.ID.Hex(),
		Name:          o.Name,
		Email:         o.Email,
		TrackingToken: o.TrackingToken,
		TotalPrice:    o.TotalPrice,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		log.Println("❌ Error serializando evento order_placed:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(
		ctx,
		orderPlacedExchange,
		"", // fanout ignora routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		// Solo log: la confirmación nunca voltea una orden ya creada
		log.Println("❌ Error publicando order_placed:", err)
		return
	}

	log.Println("✔ Evento order_placed publicado para orden:", o.ID.Hex())
}
