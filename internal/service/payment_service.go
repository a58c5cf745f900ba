package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"leagueportal/internal/cache"
	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/events"
	"leagueportal/internal/gateway"
	"leagueportal/internal/logger"
	"leagueportal/internal/metrics"
	"leagueportal/internal/model"
	"leagueportal/internal/repository"
)

// udf3 marker sent with every registration order.
const orderPurpose = "player_registration"

// Redirect indicator values carried in the dashboard query string.
const (
	RedirectSuccess = "success"
	RedirectFailed  = "failed"
	RedirectPending = "pending"
	RedirectError   = "error"
)

// OrderGateway is the part of the gateway client used by payments.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req gateway.CreateOrderRequest) (*gateway.Order, error)
	CheckStatus(ctx context.Context, clientTxnID string, txnDate time.Time) (*gateway.OrderStatus, error)
}

// PaymentSettings holds the fee and the fields sent with every order.
type PaymentSettings struct {
	Fee         decimal.Decimal
	ProductInfo string
	EmailDomain string
}

// CreatedOrder is returned to the browser to start checkout.
type CreatedOrder struct {
	OrderID     string `json:"orderId"`
	PaymentURL  string `json:"paymentUrl"`
	ClientTxnID string `json:"clientTxnId"`
}

// WebhookNotification is the gateway's form-encoded status callback.
type WebhookNotification struct {
	ClientTxnID string
	Status      string
	UPITxnID    string
	Remark      string
	UDF1        string
	UDF2        string
	UDF3        string
}

// WebhookResult describes what a delivery did.
type WebhookResult struct {
	Applied bool
	Status  model.PaymentStatus
	Message string
}

// RedirectOutcome is the status indicator shown on the dashboard.
type RedirectOutcome struct {
	Payment string
	Message string
}

// PaymentService runs the order, webhook and redirect flows.
type PaymentService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, baseURL string) (*CreatedOrder, error)
	HandleWebhook(ctx context.Context, n WebhookNotification) (*WebhookResult, error)
	ResolveRedirect(ctx context.Context, clientTxnID string) RedirectOutcome
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error)
}

type paymentService struct {
	users      repository.UserRepository
	players    repository.PlayerRepository
	payments   repository.PaymentRepository
	transactor repository.Transactor
	gateway    OrderGateway
	publisher  events.Publisher
	cache      *cache.Client
	audit      *AuditLog
	settings   PaymentSettings
	log        *slog.Logger
	now        func() time.Time
}

// PaymentDeps groups the collaborators of NewPaymentService.
type PaymentDeps struct {
	Users      repository.UserRepository
	Players    repository.PlayerRepository
	Payments   repository.PaymentRepository
	Transactor repository.Transactor
	Gateway    OrderGateway
	Publisher  events.Publisher
	Cache      *cache.Client
	Audit      *AuditLog
}

// NewPaymentService creates a new payment service.
func NewPaymentService(deps PaymentDeps, settings PaymentSettings, log *slog.Logger) PaymentService {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &paymentService{
		users:      deps.Users,
		players:    deps.Players,
		payments:   deps.Payments,
		transactor: deps.Transactor,
		gateway:    deps.Gateway,
		publisher:  publisher,
		cache:      deps.Cache,
		audit:      deps.Audit,
		settings:   settings,
		log:        log,
		now:        time.Now,
	}
}

// CreateOrder opens a gateway order for the user's unpaid player and records
// a pending payment. Nothing is persisted when the gateway call fails.
func (s *paymentService) CreateOrder(ctx context.Context, userID uuid.UUID, baseURL string) (*CreatedOrder, error) {
	const op = "service.paymentService.CreateOrder"
	log := s.log.With(slog.String("op", op), slog.String("user_id", userID.String()))

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: find user: %w", op, err)
	}

	player, err := s.players.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotRegistered
		}
		return nil, fmt.Errorf("%s: find player: %w", op, err)
	}
	if player.IsPaid() {
		return nil, apperrors.ErrAlreadyPaid
	}

	now := s.now()
	clientTxnID, err := NewClientTxnID(now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	customerEmail := user.Phone + "@" + s.settings.EmailDomain

	order, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
		ClientTxnID:    clientTxnID,
		Amount:         s.settings.Fee.String(),
		ProductInfo:    s.settings.ProductInfo,
		CustomerName:   player.PlayerName,
		CustomerEmail:  customerEmail,
		CustomerMobile: player.ContactNumber,
		RedirectURL:    strings.TrimRight(baseURL, "/") + "/api/payments/redirect?client_txn_id=" + clientTxnID,
		UDF1:           player.ID.String(),
		UDF2:           user.ID.String(),
		UDF3:           orderPurpose,
	})
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("gateway_error").Inc()
		log.Error("gateway order failed", slog.String("client_txn_id", clientTxnID), logger.Err(err))
		return nil, err
	}

	payment := &model.Payment{
		ID:             uuid.New(),
		PlayerID:       player.ID,
		UserID:         user.ID,
		PlayerName:     player.PlayerName,
		Amount:         s.settings.Fee,
		Date:           now,
		Status:         model.PaymentStatusPending,
		OrderID:        order.OrderID,
		ClientTxnID:    clientTxnID,
		PaymentURL:     order.PaymentURL,
		CustomerEmail:  customerEmail,
		CustomerMobile: player.ContactNumber,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		metrics.OrdersTotal.WithLabelValues("store_error").Inc()
		return nil, fmt.Errorf("%s: create payment: %w", op, err)
	}

	metrics.OrdersTotal.WithLabelValues("created").Inc()
	log.Info("payment order created",
		slog.String("client_txn_id", clientTxnID),
		slog.String("order_id", order.OrderID),
	)
	return &CreatedOrder{
		OrderID:     order.OrderID,
		PaymentURL:  order.PaymentURL,
		ClientTxnID: clientTxnID,
	}, nil
}

// HandleWebhook settles the payment named by the notification. Payment and
// player are updated in one transaction; a transition the state machine
// rejects is acknowledged without change.
func (s *paymentService) HandleWebhook(ctx context.Context, n WebhookNotification) (*WebhookResult, error) {
	const op = "service.paymentService.HandleWebhook"
	log := s.log.With(slog.String("op", op), slog.String("client_txn_id", n.ClientTxnID))

	if strings.TrimSpace(n.ClientTxnID) == "" {
		metrics.WebhookDeliveries.WithLabelValues("malformed").Inc()
		return nil, apperrors.ErrMalformedWebhook
	}

	target := model.PaymentStatusFailed
	if n.Status == gateway.StatusSuccess {
		target = model.PaymentStatusCompleted
	}

	var (
		result  WebhookResult
		settled *model.Payment
	)
	err := s.transactor.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		payment, err := repos.Payments.FindByClientTxnIDForUpdate(ctx, n.ClientTxnID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUnknownTransaction
			}
			return fmt.Errorf("find payment: %w", err)
		}

		if !payment.Status.CanTransition(target) {
			log.Warn("ignoring status regression",
				slog.String("from", string(payment.Status)),
				slog.String("to", string(target)),
			)
			result = WebhookResult{Applied: false, Status: payment.Status, Message: "Payment already settled"}
			return nil
		}

		txnID := payment.ResolveTransactionID(n.UPITxnID)
		if payment.Status == target {
			// Re-delivery: the payment row is not rewritten, so the player
			// keeps the id already recorded on it.
			if payment.TransactionID != "" {
				txnID = payment.TransactionID
			}
		} else {
			if err := repos.Payments.Settle(ctx, repository.Settlement{
				PaymentID:     payment.ID,
				From:          payment.Status,
				To:            target,
				UPITxnID:      n.UPITxnID,
				TransactionID: txnID,
			}); err != nil {
				return fmt.Errorf("settle payment: %w", err)
			}
			payment.Status = target
			payment.TransactionID = txnID
			if n.UPITxnID != "" {
				payment.UPITxnID = n.UPITxnID
			}
		}

		if target == model.PaymentStatusCompleted {
			if err := s.markPlayerPaid(ctx, repos.Players, n.UDF1, txnID, log); err != nil {
				return err
			}
		}

		settled = payment
		result = WebhookResult{Applied: true, Status: target, Message: "Webhook processed successfully"}
		return nil
	})

	s.recordEvent(model.PaymentEvent{
		ClientTxnID:   n.ClientTxnID,
		Source:        model.PaymentEventWebhook,
		GatewayStatus: n.Status,
		Outcome:       webhookOutcome(result, err),
		UPITxnID:      n.UPITxnID,
		Remark:        n.Remark,
	})

	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownTransaction) {
			metrics.WebhookDeliveries.WithLabelValues("unknown").Inc()
			log.Warn("webhook for unknown transaction")
			return nil, err
		}
		metrics.WebhookDeliveries.WithLabelValues("error").Inc()
		log.Error("webhook processing failed", logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !result.Applied {
		metrics.WebhookDeliveries.WithLabelValues("ignored").Inc()
		return &result, nil
	}

	metrics.WebhookDeliveries.WithLabelValues(string(result.Status)).Inc()
	s.afterSettlement(ctx, settled, log)
	log.Info("payment settled", slog.String("status", string(result.Status)))
	return &result, nil
}

// markPlayerPaid records the fee on the player named by udf1. A missing or
// unparsable player id is logged and skipped.
func (s *paymentService) markPlayerPaid(ctx context.Context, players repository.PlayerRepository, udf1, txnID string, log *slog.Logger) error {
	playerID, err := uuid.Parse(strings.TrimSpace(udf1))
	if err != nil {
		log.Warn("webhook without usable player id", slog.String("udf1", udf1))
		return nil
	}
	if _, err := players.FindByID(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("player for payment not found", slog.String("player_id", playerID.String()))
			return nil
		}
		return fmt.Errorf("find player: %w", err)
	}
	if err := players.MarkPaid(ctx, playerID, s.now(), txnID); err != nil {
		return fmt.Errorf("mark player paid: %w", err)
	}
	return nil
}

func (s *paymentService) afterSettlement(ctx context.Context, payment *model.Payment, log *slog.Logger) {
	if err := s.cache.Delete(ctx, adminStatsCacheKey); err != nil {
		log.Warn("failed to invalidate admin stats", logger.Err(err))
	}

	err := s.publisher.PublishSettlement(ctx, events.SettlementEvent{
		ClientTxnID:   payment.ClientTxnID,
		PaymentID:     payment.ID,
		PlayerID:      payment.PlayerID,
		UserID:        payment.UserID,
		Status:        payment.Status,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
		SettledAt:     s.now(),
	})
	if err != nil {
		log.Warn("failed to publish settlement", logger.Err(err))
	}
}

// ResolveRedirect maps the live gateway status to a dashboard indicator.
// It never writes: settlement belongs to the webhook.
func (s *paymentService) ResolveRedirect(ctx context.Context, clientTxnID string) RedirectOutcome {
	const op = "service.paymentService.ResolveRedirect"
	log := s.log.With(slog.String("op", op), slog.String("client_txn_id", clientTxnID))

	outcome, gatewayStatus := s.resolveRedirect(ctx, clientTxnID, log)
	metrics.RedirectOutcomes.WithLabelValues(outcome.Payment).Inc()

	if clientTxnID != "" {
		s.recordEvent(model.PaymentEvent{
			ClientTxnID:   clientTxnID,
			Source:        model.PaymentEventRedirect,
			GatewayStatus: gatewayStatus,
			Outcome:       outcome.Payment,
			Remark:        outcome.Message,
		})
	}
	return outcome
}

func (s *paymentService) resolveRedirect(ctx context.Context, clientTxnID string, log *slog.Logger) (RedirectOutcome, string) {
	if strings.TrimSpace(clientTxnID) == "" {
		return RedirectOutcome{Payment: RedirectError, Message: "Missing transaction id"}, ""
	}

	payment, err := s.payments.FindByClientTxnID(ctx, clientTxnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RedirectOutcome{Payment: RedirectError, Message: "Transaction not found"}, ""
		}
		log.Error("failed to load payment", logger.Err(err))
		return RedirectOutcome{Payment: RedirectError, Message: "An error occurred while processing payment"}, ""
	}

	if payment.Status == model.PaymentStatusCompleted {
		return RedirectOutcome{Payment: RedirectSuccess, Message: "Payment successful"}, ""
	}

	status, err := s.gateway.CheckStatus(ctx, clientTxnID, payment.Date)
	if err != nil {
		if gateway.IsRejection(err) {
			msg := "Payment status unknown"
			var de *apperrors.Error
			if errors.As(err, &de) && de != apperrors.ErrGatewayRejected {
				msg = de.Error()
			}
			log.Info("gateway rejected status check", slog.String("msg", msg))
			return RedirectOutcome{Payment: RedirectPending, Message: msg}, ""
		}
		log.Warn("status check failed", logger.Err(err))
		return RedirectOutcome{Payment: RedirectPending, Message: "Unable to verify payment status. Please check your dashboard."}, ""
	}

	switch status.Status {
	case gateway.StatusSuccess:
		return RedirectOutcome{Payment: RedirectSuccess, Message: "Payment successful"}, status.Status
	case gateway.StatusFailure:
		return RedirectOutcome{Payment: RedirectFailed, Message: "Payment failed"}, status.Status
	default:
		msg := status.Remark
		if msg == "" {
			msg = "Payment is being processed"
		}
		return RedirectOutcome{Payment: RedirectPending, Message: msg}, status.Status
	}
}

func (s *paymentService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	payments, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) recordEvent(evt model.PaymentEvent) {
	if s.audit == nil {
		return
	}
	s.audit.Record(evt)
}

func webhookOutcome(r WebhookResult, err error) string {
	switch {
	case errors.Is(err, apperrors.ErrUnknownTransaction):
		return "unknown"
	case err != nil:
		return "error"
	case !r.Applied:
		return "ignored"
	default:
		return string(r.Status)
	}
}
