package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from PaymentStatus
		to   PaymentStatus
		want bool
	}{
		{PaymentStatusPending, PaymentStatusCompleted, true},
		{PaymentStatusPending, PaymentStatusFailed, true},
		{PaymentStatusFailed, PaymentStatusCompleted, true},
		{PaymentStatusFailed, PaymentStatusFailed, true},
		{PaymentStatusCompleted, PaymentStatusCompleted, true},
		{PaymentStatusCompleted, PaymentStatusFailed, false},
		{PaymentStatusPending, PaymentStatusPending, false},
		{PaymentStatusCompleted, PaymentStatusPending, false},
		{PaymentStatus("refunded"), PaymentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestPayment_ResolveTransactionID(t *testing.T) {
	p := &Payment{ClientTxnID: "LPL1"}
	assert.Equal(t, "LPL1", p.ResolveTransactionID(""))

	p.TransactionID = "T-1"
	assert.Equal(t, "T-1", p.ResolveTransactionID(""))
	assert.Equal(t, "UPI-9", p.ResolveTransactionID("UPI-9"))
}
