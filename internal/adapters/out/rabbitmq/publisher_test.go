package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type declaredExchange struct {
	name    string
	kind    string
	durable bool
}

type publishedMessage struct {
	exchange string
	key      string
	msg      amqp.Publishing
	deadline bool
}

type fakeChannel struct {
	declared   []declaredExchange
	published  []publishedMessage
	declareErr error
	publishErr error
	closeCalls int
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, declaredExchange{name: name, kind: kind, durable: durable})
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	_, _ bool,
	msg amqp.Publishing,
) error {
	_, hasDeadline := ctx.Deadline()
	f.published = append(f.published, publishedMessage{exchange: exchange, key: key, msg: msg, deadline: hasDeadline})
	return f.publishErr
}

func (f *fakeChannel) Close() error {
	f.closeCalls++
	return nil
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()

	catalog := order.DefaultCatalog()
	quantity, err := order.NewQuantity(10, catalog.Limits())
	require.NoError(t, err)
	placedAt := time.Date(2026, time.October, 19, 12, 30, 0, 0, time.UTC)

	o, err := order.NewOrder(
		order.NewID(placedAt),
		time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC),
		quantity,
		catalog,
		order.NewCustomer("Amina", "amina@example.com", "07700 900123", "1 Mill Lane"),
		placedAt,
	)
	require.NoError(t, err)
	return o
}

func Test_NewOrderConfirmedPublisherDeclaresFanoutExchange(t *testing.T) {
	ch := &fakeChannel{}

	p, err := NewOrderConfirmedPublisher(ch, "")

	require.NoError(t, err)
	assert.Equal(t, DefaultExchange, p.Exchange())
	require.Len(t, ch.declared, 1)
	assert.Equal(t, declaredExchange{name: DefaultExchange, kind: "fanout", durable: true}, ch.declared[0])
}

func Test_NewOrderConfirmedPublisherDeclareFailure(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}

	_, err := NewOrderConfirmedPublisher(ch, "orders")

	require.ErrorContains(t, err, "declare exchange orders")
}

func Test_NewOrderConfirmedPublisherNilChannel(t *testing.T) {
	_, err := NewOrderConfirmedPublisher(nil, "orders")

	require.Error(t, err)
}

func Test_OrderConfirmedPublishesPersistentJSON(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewOrderConfirmedPublisher(ch, "orders")
	require.NoError(t, err)
	sessionID := kernel.NewUUID()
	o := placedOrder(t)

	err = p.OrderConfirmed(t.Context(), sessionID, o)

	require.NoError(t, err)
	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "orders", got.exchange)
	assert.Empty(t, got.key)
	assert.True(t, got.deadline)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, o.ID().String(), got.msg.MessageId)
	assert.Equal(t, sessionID.String(), got.msg.CorrelationId)
	assert.Equal(t, "chapatis", got.msg.Headers["x-source"])

	var event OrderConfirmedEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &event))
	assert.Equal(t, sessionID.String(), event.SessionID)
	assert.Equal(t, "2026-10-21", event.DeliveryDate)
	assert.Equal(t, 10, event.Boxes)
	assert.Equal(t, 100, event.Chapatis)
	assert.Equal(t, int64(4500), event.TotalPence)
	assert.Equal(t, "£45.00", event.TotalPrice)
	assert.Equal(t, "amina@example.com", event.Customer.Email)
}

func Test_OrderConfirmedWrapsPublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: amqp.ErrClosed}
	p, err := NewOrderConfirmedPublisher(ch, "orders")
	require.NoError(t, err)

	err = p.OrderConfirmed(t.Context(), kernel.NewUUID(), placedOrder(t))

	require.ErrorIs(t, err, amqp.ErrClosed)
}

func Test_OrderConfirmedNilOrder(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewOrderConfirmedPublisher(ch, "orders")
	require.NoError(t, err)

	err = p.OrderConfirmed(t.Context(), kernel.NewUUID(), nil)

	require.Error(t, err)
	assert.Empty(t, ch.published)
}

func Test_CloseIsIdempotent(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewOrderConfirmedPublisher(ch, "orders")
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	assert.Equal(t, 1, ch.closeCalls)
	err = p.OrderConfirmed(t.Context(), kernel.NewUUID(), placedOrder(t))
	require.ErrorIs(t, err, ErrPublisherClosed)
}
