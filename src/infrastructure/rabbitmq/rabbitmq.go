package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Publisher is a thin producer on a topic exchange. The kitchen display binds
// its own queues; this side only declares the exchange and publishes.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(host, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(host)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

// Publish sends a persistent JSON message with the given routing key.
func (p *Publisher) Publish(topic string, body []byte) error {
	if topic == "" {
		return fmt.Errorf("topic cannot be empty")
	}
	if body == nil {
		return fmt.Errorf("message body cannot be nil")
	}
	if p.conn.IsClosed() {
		return fmt.Errorf("connection to RabbitMQ is closed")
	}

	err := p.channel.Publish(
		p.exchange,
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message to topic '%s': %w", topic, err)
	}
	return nil
}

func (p *Publisher) IsHealthy() bool {
	return !p.conn.IsClosed() && p.channel != nil
}

func (p *Publisher) Close() {
	p.channel.Close()
	p.conn.Close()
}
