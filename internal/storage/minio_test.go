package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "connection reset", err: fmt.Errorf("put: %w", syscall.ECONNRESET), want: true},
		{name: "connection refused", err: fmt.Errorf("put: %w", syscall.ECONNREFUSED), want: true},
		{name: "timed out", err: syscall.ETIMEDOUT, want: true},
		{name: "net timeout", err: fmt.Errorf("put: %w", timeoutErr{}), want: true},
		{name: "server error", err: fmt.Errorf("put: %w", minio.ErrorResponse{StatusCode: http.StatusServiceUnavailable, Code: "SlowDown"}), want: true},
		{name: "access denied", err: minio.ErrorResponse{StatusCode: http.StatusForbidden, Code: "AccessDenied"}, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "plain", err: errors.New("bad key"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/league/a/b.jpg", ObjectURL("https://cdn.example/league/", "/a/b.jpg"))
	assert.Equal(t, "http://localhost:9000/league/x.png", ObjectURL("http://localhost:9000/league", "x.png"))
}
