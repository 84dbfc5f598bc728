package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"meal-admin/internal/models"
)

// OrderEvent is the payload published for every order the scheduler creates.
// Downstream consumers (kitchen planning, notifications) key on customer.
type OrderEvent struct {
	OrderID      string    `json:"order_id"`
	OrderNumber  int64     `json:"order_number"`
	CustomerID   string    `json:"customer_id"`
	DeliveryDate time.Time `json:"delivery_date"`
	DeliveryTime time.Time `json:"delivery_time"`
	Calories     int       `json:"calories"`
	IsAutoOrder  bool      `json:"is_auto_order"`
	PublishedAt  time.Time `json:"published_at"`
}

type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher connects to the given comma-separated broker list.
func NewPublisher(brokers string, topic string) (*Publisher, error) {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(splitBrokers(brokers)...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w}, nil
}

func splitBrokers(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (p *Publisher) OrderCreated(ctx context.Context, o models.Order) error {
	payload, err := json.Marshal(OrderEvent{
		OrderID:      o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerID:   o.CustomerID,
		DeliveryDate: o.CreatedAt,
		DeliveryTime: o.DeliveryTime,
		Calories:     o.Calories,
		IsAutoOrder:  o.IsAutoOrder,
		PublishedAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.CustomerID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
