package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.True(t, isRetryableError(&genai.APIError{Code: 429}))
	assert.True(t, isRetryableError(&genai.APIError{Code: 503}))
	assert.False(t, isRetryableError(&genai.APIError{Code: 400}))
	assert.False(t, isRetryableError(errors.New("context deadline exceeded")))
	assert.True(t, isRetryableError(errors.New("read: connection reset by peer")))
}

func TestCircuitBreaker(t *testing.T) {
	s := &GeminiService{circuitBreakerMax: 2}

	s.recordResult(false)
	_, open := s.GetCircuitBreakerStatus()
	assert.False(t, open)

	s.recordResult(false)
	errs, open := s.GetCircuitBreakerStatus()
	assert.True(t, open)
	assert.Equal(t, 2, errs)

	s.ResetCircuitBreaker()
	_, open = s.GetCircuitBreakerStatus()
	assert.False(t, open)
}

func TestCalculateBackoffIsCapped(t *testing.T) {
	s := &GeminiService{BaseDelay: time.Second, MaxDelay: 4 * time.Second}
	assert.Less(t, s.calculateBackoff(1), 2*time.Second)
	assert.LessOrEqual(t, s.calculateBackoff(10), 5*time.Second)
}
