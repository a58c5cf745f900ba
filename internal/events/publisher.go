// Package events publishes payment settlement notifications to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"

	"leagueportal/internal/model"
)

// RoutingKeySettled is the routing key of settlement events.
const RoutingKeySettled = "payment.settled"

// SettlementEvent describes a payment that reached a terminal status.
type SettlementEvent struct {
	ClientTxnID   string              `json:"clientTxnId"`
	PaymentID     uuid.UUID           `json:"paymentId"`
	PlayerID      uuid.UUID           `json:"playerId"`
	UserID        uuid.UUID           `json:"userId"`
	Status        model.PaymentStatus `json:"status"`
	Amount        decimal.Decimal     `json:"amount"`
	TransactionID string              `json:"transactionId"`
	SettledAt     time.Time           `json:"settledAt"`
}

// Publisher emits settlement events.
type Publisher interface {
	PublishSettlement(ctx context.Context, evt SettlementEvent) error
	Close() error
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) PublishSettlement(context.Context, SettlementEvent) error { return nil }
func (nopPublisher) Close() error                                           { return nil }

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes JSON events to a durable topic exchange.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	log      *slog.Logger
}

// NewAMQPPublisher dials url and declares exchange.
func NewAMQPPublisher(url, exchange string, log *slog.Logger) (*AMQPPublisher, error) {
	const op = "events.NewAMQPPublisher"

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%s: dial: %w", op, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: open channel: %w", op, err)
	}

	p, err := newPublisher(ch, exchange, log)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string, log *slog.Logger) (*AMQPPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return &AMQPPublisher{
		ch:       ch,
		exchange: exchange,
		log:      log.With(slog.String("component", "events")),
	}, nil
}

// PublishSettlement sends evt with persistent delivery.
func (p *AMQPPublisher) PublishSettlement(ctx context.Context, evt SettlementEvent) error {
	const op = "events.AMQPPublisher.PublishSettlement"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish(p.exchange, RoutingKeySettled, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.ClientTxnID,
		Timestamp:    evt.SettledAt,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.log.Debug("settlement published",
		slog.String("op", op),
		slog.String("client_txn_id", evt.ClientTxnID),
		slog.String("status", string(evt.Status)),
	)
	return nil
}

// Close closes the channel and connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
