package errors

import (
	"fmt"
	"net/http"
	"testing"

	"walkroute/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors_SurviveWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		httpCode int
		code     string
	}{
		{
			name:     "provider",
			err:      NewProviderError("isochrone", http.StatusUnauthorized, `{"message":"Not Authorized"}`, nil),
			httpCode: http.StatusBadGateway,
			code:     "PROVIDER_ERROR",
		},
		{
			name:     "decode",
			err:      NewDecodeError("isochrone", "no features", nil),
			httpCode: http.StatusBadGateway,
			code:     "DECODE_ERROR",
		},
		{
			name:     "storage",
			err:      NewStorageError("save", fmt.Errorf("read-only bucket")),
			httpCode: http.StatusInternalServerError,
			code:     "STORAGE_ERROR",
		},
		{
			name:     "invalid duration",
			err:      ErrInvalidDuration,
			httpCode: http.StatusBadRequest,
			code:     "INVALID_DURATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := errors.Wrap(errors.Wrap(tt.err, "inner"), "outer")

			var appErr AppError
			require.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, tt.httpCode, appErr.HTTPCode())
			assert.Equal(t, tt.code, appErr.ErrorCode())
		})
	}
}

func TestProviderError_Message(t *testing.T) {
	withStatus := NewProviderError("directions", http.StatusTooManyRequests, "", nil)
	assert.Equal(t, "directions request returned status 429", withStatus.Error())

	transport := NewProviderError("directions", 0, "", fmt.Errorf("connection refused"))
	assert.Contains(t, transport.Error(), "connection refused")
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorageError("save", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "cache save failed")
	assert.Equal(t, "cache load failed", NewStorageError("load", nil).Error())
}
