// Package gateway is the client of the UPI payment gateway.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"leagueportal/internal/config"
	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/logger"
	"leagueportal/internal/metrics"
)

const (
	createOrderPath = "/api/create_order"
	checkStatusPath = "/api/check_order_status"
)

// Client calls the gateway's order endpoints.
type Client struct {
	http *resty.Client
	key  string
	log  *slog.Logger
}

// NewClient builds a client from gateway configuration.
func NewClient(cfg config.Gateway, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http: httpClient,
		key:  cfg.Key,
		log:  log.With(slog.String("component", "gateway")),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.key != ""
}

// CreateOrder registers an order and returns its checkout URL.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	const op = "gateway.Client.CreateOrder"
	log := c.log.With(slog.String("op", op), slog.String("client_txn_id", req.ClientTxnID))

	if !c.Configured() {
		return nil, apperrors.ErrGatewayNotConfigured
	}

	payload := createOrderPayload{
		Key:            c.key,
		ClientTxnID:    req.ClientTxnID,
		Amount:         req.Amount,
		ProductInfo:    req.ProductInfo,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerMobile: req.CustomerMobile,
		RedirectURL:    req.RedirectURL,
		UDF1:           req.UDF1,
		UDF2:           req.UDF2,
		UDF3:           req.UDF3,
	}

	env, err := c.post(ctx, "create_order", createOrderPath, payload)
	if err != nil {
		log.Error("create order failed", logger.Err(err))
		return nil, err
	}

	var data orderData
	if err := json.Unmarshal(env.Data, &data); err != nil || data.PaymentURL == "" {
		log.Error("create order returned unusable data", slog.String("data", string(env.Data)))
		return nil, apperrors.ErrGatewayRejected.WithMessage(env.Msg)
	}

	log.Info("order created", slog.String("order_id", data.OrderID.String()))
	return &Order{OrderID: data.OrderID.String(), PaymentURL: data.PaymentURL}, nil
}

// CheckStatus fetches the live status of the order created on txnDate.
func (c *Client) CheckStatus(ctx context.Context, clientTxnID string, txnDate time.Time) (*OrderStatus, error) {
	const op = "gateway.Client.CheckStatus"
	log := c.log.With(slog.String("op", op), slog.String("client_txn_id", clientTxnID))

	if !c.Configured() {
		return nil, apperrors.ErrGatewayNotConfigured
	}

	env, err := c.post(ctx, "check_order_status", checkStatusPath, checkStatusPayload{
		Key:         c.key,
		ClientTxnID: clientTxnID,
		TxnDate:     FormatTxnDate(txnDate),
	})
	if err != nil {
		log.Warn("status check failed", logger.Err(err))
		return nil, err
	}

	var data statusData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, apperrors.ErrGatewayRejected.WithMessage(env.Msg)
	}
	return &OrderStatus{Status: data.Status, Remark: data.Remark, UPITxnID: data.UPITxnID}, nil
}

// post sends body and returns the envelope of an accepted response.
// Transport failures, 5xx and undecodable bodies are ErrGatewayUnavailable;
// a decoded envelope without status or data is ErrGatewayRejected.
func (c *Client) post(ctx context.Context, operation, path string, body interface{}) (*envelope, error) {
	start := time.Now()
	result := "ok"
	defer func() {
		metrics.GatewayDuration.WithLabelValues(operation, result).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		result = "transport_error"
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGatewayUnavailable, err)
	}
	if resp.StatusCode() >= 500 {
		result = "server_error"
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrGatewayUnavailable, resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		result = "bad_response"
		return nil, fmt.Errorf("%w: decode response: %v", apperrors.ErrGatewayUnavailable, err)
	}
	if !env.Status || !env.hasData() {
		result = "rejected"
		return nil, apperrors.ErrGatewayRejected.WithMessage(env.Msg)
	}
	return &env, nil
}

// IsRejection reports whether err is a gateway rejection rather than an outage.
func IsRejection(err error) bool {
	return errors.Is(err, apperrors.ErrGatewayRejected)
}
