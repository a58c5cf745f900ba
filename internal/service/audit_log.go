package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"leagueportal/internal/logger"
	"leagueportal/internal/model"
	"leagueportal/internal/repository"
)

const (
	auditBatchSize     = 10
	auditFlushInterval = time.Second
	auditQueueSize     = 100
)

// AuditLog records payment events off the request path. Events are batched
// and written every auditBatchSize events or auditFlushInterval.
type AuditLog struct {
	repo   repository.PaymentEventRepository
	log    *slog.Logger
	events chan model.PaymentEvent

	closeOnce sync.Once
	done      chan struct{}
}

// NewAuditLog starts the background writer.
func NewAuditLog(repo repository.PaymentEventRepository, log *slog.Logger) *AuditLog {
	a := &AuditLog{
		repo:   repo,
		log:    log.With(slog.String("component", "audit_log")),
		events: make(chan model.PaymentEvent, auditQueueSize),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

// Record enqueues evt. When the queue is full the event is dropped and logged.
func (a *AuditLog) Record(evt model.PaymentEvent) {
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = time.Now()
	}
	select {
	case a.events <- evt:
	default:
		a.log.Warn("audit queue full, dropping event",
			slog.String("client_txn_id", evt.ClientTxnID),
			slog.String("source", string(evt.Source)),
		)
	}
}

// Close flushes queued events and stops the writer. Record must not be
// called after Close.
func (a *AuditLog) Close() {
	a.closeOnce.Do(func() {
		close(a.events)
		<-a.done
	})
}

func (a *AuditLog) run() {
	defer close(a.done)

	batch := make([]model.PaymentEvent, 0, auditBatchSize)
	ticker := time.NewTicker(auditFlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := a.repo.CreateBatch(context.Background(), batch); err != nil {
			a.log.Error("failed to write payment events", slog.Int("count", len(batch)), logger.Err(err))
		}
		batch = make([]model.PaymentEvent, 0, auditBatchSize)
	}

	for {
		select {
		case evt, ok := <-a.events:
			if !ok {
				flush()
				return
			}
			batch = append(batch, evt)
			if len(batch) >= auditBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
