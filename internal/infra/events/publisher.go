// Package events delivers booking events to RabbitMQ after a transaction commits.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"movie-booking/internal/domain/booking"
	"movie-booking/internal/pkg/clock"
	"movie-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrPublisherClosed   = errs.New("event publisher closed")
	ErrBrokerUnavailable = errs.New("amqp broker unavailable")
)

const (
	dialTimeout    = 2 * time.Second
	heartbeat      = 10 * time.Second
	minDialBackoff = time.Second
	maxDialBackoff = time.Minute
)

// AMQPPublisher publishes to a durable topic exchange using the event type as routing key.
// The connection is dialed lazily and re-dialed after the broker drops it. After a failed
// dial, publishes fail fast until the backoff window has passed.
type AMQPPublisher struct {
	url      string
	exchange string
	dial     func(url string) (*amqp.Connection, error)
	clock    clock.Clock

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	closed   bool
	backoff  time.Duration
	nextDial time.Time
}

func NewAMQPPublisher(url, exchange string) *AMQPPublisher {
	return &AMQPPublisher{
		url:      url,
		exchange: exchange,
		dial:     dialBroker,
		clock:    clock.NewSystem(),
	}
}

func dialBroker(url string) (*amqp.Connection, error) {
	return amqp.DialConfig(url, amqp.Config{
		Dial:      amqp.DefaultDial(dialTimeout),
		Heartbeat: heartbeat,
		Locale:    "en_US",
	})
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev booking.Event) error {
	msg, err := encode(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if err := p.ensureChannel(); err != nil {
		return err
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, string(ev.Type), false, false, msg); err != nil {
		p.reset()
		return errs.Wrap(err, "amqp publish failed")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.reset()
	return nil
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.reset()

	now := p.clock.Now()
	if now.Before(p.nextDial) {
		return ErrBrokerUnavailable
	}

	conn, err := p.dial(p.url)
	if err != nil {
		p.deferRedial(now)
		return errs.Wrap(err, "amqp dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "amqp channel open failed")
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "amqp exchange declare failed")
	}

	p.conn, p.ch = conn, ch
	p.backoff, p.nextDial = 0, time.Time{}
	return nil
}

// deferRedial doubles the wait between dial attempts, capped at maxDialBackoff.
func (p *AMQPPublisher) deferRedial(now time.Time) {
	switch {
	case p.backoff == 0:
		p.backoff = minDialBackoff
	case p.backoff < maxDialBackoff:
		p.backoff = min(2*p.backoff, maxDialBackoff)
	}
	p.nextDial = now.Add(p.backoff)
	slog.Warn("amqp broker unreachable, backing off", "retry_in", p.backoff.String())
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func encode(ev booking.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, errs.Wrap(err, "marshal booking event")
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(ev.Type),
		Timestamp:    ev.OccurredAt,
		Body:         body,
	}, nil
}

// NopPublisher drops events; used when AMQP_URL is unset.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, ev booking.Event) error {
	slog.Debug("booking event dropped, no broker configured",
		"type", string(ev.Type),
		"booking_id", ev.BookingID)
	return nil
}
