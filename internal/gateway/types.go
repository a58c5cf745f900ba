package gateway

import (
	"encoding/json"
	"time"
)

// Gateway order status values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// CreateOrderRequest carries the customer and pass-through fields of an order.
// UDF1..3 are echoed back verbatim by the webhook.
type CreateOrderRequest struct {
	ClientTxnID    string
	Amount         string
	ProductInfo    string
	CustomerName   string
	CustomerEmail  string
	CustomerMobile string
	RedirectURL    string
	UDF1           string
	UDF2           string
	UDF3           string
}

// Order is an accepted gateway order.
type Order struct {
	OrderID    string
	PaymentURL string
}

// OrderStatus is the live status of an order.
type OrderStatus struct {
	Status   string
	Remark   string
	UPITxnID string
}

type createOrderPayload struct {
	Key            string `json:"key"`
	ClientTxnID    string `json:"client_txn_id"`
	Amount         string `json:"amount"`
	ProductInfo    string `json:"p_info"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerMobile string `json:"customer_mobile"`
	RedirectURL    string `json:"redirect_url"`
	UDF1           string `json:"udf1"`
	UDF2           string `json:"udf2"`
	UDF3           string `json:"udf3"`
}

type checkStatusPayload struct {
	Key         string `json:"key"`
	ClientTxnID string `json:"client_txn_id"`
	TxnDate     string `json:"txn_date"`
}

type envelope struct {
	Status bool            `json:"status"`
	Msg    string          `json:"msg"`
	Data   json.RawMessage `json:"data"`
}

func (e envelope) hasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

type orderData struct {
	OrderID    json.Number `json:"order_id"`
	PaymentURL string      `json:"payment_url"`
}

type statusData struct {
	Status   string `json:"status"`
	Remark   string `json:"remark"`
	UPITxnID string `json:"upi_txn_id"`
}

// txnDateLayout is the gateway's DD-MM-YYYY date format.
const txnDateLayout = "02-01-2006"

// FormatTxnDate renders t the way check_order_status expects.
func FormatTxnDate(t time.Time) string {
	return t.Format(txnDateLayout)
}
