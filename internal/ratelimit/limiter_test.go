package ratelimit

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"spc-gateway/pkg/requestcontext"
	"spc-gateway/pkg/testutil"
)

func TestLimiterAllowsUpToLimit(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("client-a").Allowed)
	}
	got := l.Allow("client-a")
	assert.False(t, got.Allowed)
	assert.Zero(t, got.Remaining)
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := New(1, time.Minute)

	assert.True(t, l.Allow("client-a").Allowed)
	assert.True(t, l.Allow("client-b").Allowed)
	assert.False(t, l.Allow("client-a").Allowed)
}

func TestLimiterWindowSlides(t *testing.T) {
	l := New(1, 30*time.Millisecond)

	assert.True(t, l.Allow("client-a").Allowed)
	assert.False(t, l.Allow("client-a").Allowed)

	assert.Eventually(t, func() bool {
		return l.Allow("client-a").Allowed
	}, time.Second, 10*time.Millisecond)
}

func TestMiddleware(t *testing.T) {
	l := New(1, time.Minute)
	handler := Middleware(l, slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/context", nil)
	req = req.WithContext(requestcontext.WithClientID(req.Context(), "client-a"))

	first := testutil.DoRequest(handler, req)
	testutil.AssertStatus(t, first, http.StatusOK)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := testutil.DoRequest(handler, req)
	testutil.AssertStatusAndError(t, second, http.StatusTooManyRequests, "rate_limited")
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}
