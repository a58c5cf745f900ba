package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/gateway"
	"leagueportal/internal/model"
	"leagueportal/internal/service"
)

// maxWebhookBody caps the notification payload read into memory.
const maxWebhookBody = 64 << 10

// PaymentHandler handles the payment order, webhook and redirect endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
	publicBaseURL  string
	webhookSecret  string
}

// NewPaymentHandler creates a new payment handler. An empty webhookSecret
// disables signature verification.
func NewPaymentHandler(paymentService service.PaymentService, publicBaseURL, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		publicBaseURL:  publicBaseURL,
		webhookSecret:  webhookSecret,
	}
}

// CreateOrderResponse wraps a created gateway order.
type CreateOrderResponse struct {
	Success bool                  `json:"success"`
	Payment *service.CreatedOrder `json:"payment"`
}

// PaymentsResponse wraps a payment listing.
type PaymentsResponse struct {
	Success  bool            `json:"success"`
	Payments []model.Payment `json:"payments"`
}

// CreateOrder godoc
// @Summary Start paying the registration fee
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CreateOrderResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}

	order, err := h.paymentService.CreateOrder(c.Request().Context(), userID, requestOrigin(c, h.publicBaseURL))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, CreateOrderResponse{Success: true, Payment: order})
}

// Webhook godoc
// @Summary Gateway payment status notification
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param client_txn_id formData string true "Client transaction id"
// @Param status formData string true "Gateway status"
// @Param upi_txn_id formData string false "UPI transaction id"
// @Param udf1 formData string false "Player id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c echo.Context) error {
	req := c.Request()
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), req.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, apperrors.ErrorResponse{
				Error: "Webhook payload too large",
				Code:  "PAYLOAD_TOO_LARGE",
			})
		}
		return badRequest("unreadable body")
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	if h.webhookSecret != "" && !gateway.VerifySignature(h.webhookSecret, body, req.Header.Get(gateway.SignatureHeader)) {
		return respondError(apperrors.ErrInvalidSignature)
	}

	res, err := h.paymentService.HandleWebhook(req.Context(), service.WebhookNotification{
		ClientTxnID: c.FormValue("client_txn_id"),
		Status:      c.FormValue("status"),
		UPITxnID:    c.FormValue("upi_txn_id"),
		Remark:      c.FormValue("remark"),
		UDF1:        c.FormValue("udf1"),
		UDF2:        c.FormValue("udf2"),
		UDF3:        c.FormValue("udf3"),
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: res.Message})
}

// Redirect godoc
// @Summary Return target of the gateway checkout
// @Description Always redirects to the dashboard with a payment status indicator. Never changes state.
// @Tags payments
// @Param client_txn_id query string true "Client transaction id"
// @Success 302
// @Router /payments/redirect [get]
func (h *PaymentHandler) Redirect(c echo.Context) error {
	outcome := h.paymentService.ResolveRedirect(c.Request().Context(), c.QueryParam("client_txn_id"))

	q := url.Values{}
	q.Set("payment", outcome.Payment)
	if outcome.Message != "" {
		q.Set("message", outcome.Message)
	}
	return c.Redirect(http.StatusFound, requestOrigin(c, h.publicBaseURL)+"/dashboard?"+q.Encode())
}

// MyPayments godoc
// @Summary The caller's payment attempts
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PaymentsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /payments/me [get]
func (h *PaymentHandler) MyPayments(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	payments, err := h.paymentService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return c.JSON(http.StatusOK, PaymentsResponse{Success: true, Payments: payments})
}
