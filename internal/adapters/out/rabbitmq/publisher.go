package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "chapatis.orders.confirmed"
	publishTimeout  = 5 * time.Second
	contentTypeJSON = "application/json"
	sourceHeader    = "x-source"
	sourceName      = "chapatis"
)

var ErrPublisherClosed = errors.New("order publisher is closed")

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// OrderConfirmedPublisher implements ports.OrderNotifier over a durable
// fanout exchange. Publishing is serialized: an amqp channel is not safe
// for concurrent use.
type OrderConfirmedPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
	closed   bool
}

// Dial connects to url, opens a channel and declares the exchange.
func Dial(url, exchange string) (*OrderConfirmedPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	p, err := NewOrderConfirmedPublisher(ch, exchange)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn

	return p, nil
}

// NewOrderConfirmedPublisher declares exchange on ch. An empty exchange
// name selects DefaultExchange.
func NewOrderConfirmedPublisher(ch Channel, exchange string) (*OrderConfirmedPublisher, error) {
	if ch == nil {
		return nil, errors.New("rabbitmq channel is nil")
	}
	if exchange == "" {
		exchange = DefaultExchange
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &OrderConfirmedPublisher{ch: ch, exchange: exchange}, nil
}

func (p *OrderConfirmedPublisher) Exchange() string {
	return p.exchange
}

// OrderConfirmed publishes a persistent OrderConfirmedEvent.
func (p *OrderConfirmedPublisher) OrderConfirmed(ctx context.Context, sessionID kernel.UUID, o *order.Order) error {
	if o == nil {
		return errors.New("order is nil")
	}

	body, err := json.Marshal(NewOrderConfirmedEvent(sessionID, o))
	if err != nil {
		return fmt.Errorf("marshal order confirmed event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   contentTypeJSON,
		MessageId:     o.ID().String(),
		CorrelationId: sessionID.String(),
		Timestamp:     o.PlacedAt().UTC(),
		Headers:       amqp.Table{sourceHeader: sourceName},
		Body:          body,
	})
	if err != nil {
		return fmt.Errorf("publish order %s: %w", o.ID(), err)
	}

	return nil
}

// Close closes the channel and, when dialed, the connection. It is safe to
// call more than once.
func (p *OrderConfirmedPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
