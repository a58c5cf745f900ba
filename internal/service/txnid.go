package service

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"time"
)

const (
	txnIDPrefix   = "LPL"
	txnIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	txnIDSuffix   = 7
)

// NewClientTxnID returns "LPL" + unix millis + 7 random uppercase base36 chars.
func NewClientTxnID(now time.Time) (string, error) {
	buf := make([]byte, txnIDSuffix)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate client txn id: %w", err)
	}
	for i, b := range buf {
		buf[i] = txnIDAlphabet[int(b)%len(txnIDAlphabet)]
	}
	return txnIDPrefix + strconv.FormatInt(now.UnixMilli(), 10) + string(buf), nil
}
