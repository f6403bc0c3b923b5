package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := New(CodeBadRequest, "Please enter a valid email address.")
	assert.True(t, Is(err, CodeBadRequest))
	assert.False(t, Is(err, CodeInternal))
	assert.False(t, Is(errors.New("plain"), CodeBadRequest))

	wrapped := fmt.Errorf("submit: %w", err)
	assert.True(t, Is(wrapped, CodeBadRequest))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Wrap(CodeInternal, "Something went wrong. Please try again.", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusTooManyRequests, ToHTTPStatus(CodeRateLimited))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("unmapped")))
}
