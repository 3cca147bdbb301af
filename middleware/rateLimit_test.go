package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time { return f.current }

func (f *fakeClock) advance(d time.Duration) { f.current = f.current.Add(d) }

func newTestStore(clock *fakeClock) *RateLimiterStore {
	return newRateLimiterStore(map[string]RouteLimit{
		"/auth/login": {Limit: 5, Window: time.Minute},
	}, clock.now)
}

func TestCheckCountsDownAndDenies(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	for want := 4; want >= 0; want-- {
		result := store.Check("10.0.0.1", "/auth/login")
		require.True(t, result.Allowed)
		assert.Equal(t, want, result.Remaining)
	}

	result := store.Check("10.0.0.1", "/auth/login")
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
	assert.LessOrEqual(t, result.ResetIn, time.Minute)
	assert.Greater(t, result.ResetIn, time.Duration(0))
}

func TestWindowResetsAfterExpiry(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	for i := 0; i < 6; i++ {
		store.Check("10.0.0.1", "/auth/login")
	}
	clock.advance(time.Minute)

	result := store.Check("10.0.0.1", "/auth/login")
	require.True(t, result.Allowed)
	assert.Equal(t, 4, result.Remaining)
	assert.Equal(t, time.Minute, result.ResetIn)
}

func TestResetInShrinksWithinWindow(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	store.Check("10.0.0.1", "/auth/login")
	clock.advance(20 * time.Second)

	result := store.Check("10.0.0.1", "/auth/login")
	require.True(t, result.Allowed)
	assert.Equal(t, 40*time.Second, result.ResetIn)
}

func TestUnknownRouteUsesDefaultPolicy(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	result := store.Check("10.0.0.1", "/catalog/modules")
	require.True(t, result.Allowed)
	assert.Equal(t, 99, result.Remaining)
	assert.Equal(t, time.Minute, result.ResetIn)
}

func TestKeysAreIndependentPerClientAndRoute(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	for i := 0; i < 5; i++ {
		store.Check("10.0.0.1", "/auth/login")
	}
	assert.False(t, store.Check("10.0.0.1", "/auth/login").Allowed)

	// A different client and a different route are untouched.
	assert.True(t, store.Check("10.0.0.2", "/auth/login").Allowed)
	assert.True(t, store.Check("10.0.0.1", "/other").Allowed)
}

func TestSweepEvictsStaleRecords(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	store.Check("10.0.0.1", "/auth/login")
	store.Check("10.0.0.2", "/auth/login")
	require.Equal(t, 2, store.recordCount())

	clock.advance(4 * time.Minute)
	store.Check("10.0.0.2", "/auth/login") // refreshes this key's window
	store.sweep()
	assert.Equal(t, 2, store.recordCount())

	clock.advance(2 * time.Minute)
	store.sweep()
	// 10.0.0.1 is past the 5 minute staleness threshold, 10.0.0.2 is not.
	assert.Equal(t, 1, store.recordCount())
}

func TestHandlerDeniesWithRetryAfter(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	app := fiber.New()
	app.Post("/auth/login", store.Handler("/auth/login"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	login := func() *http.Response {
		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, fiber.StatusOK, login().StatusCode)
	}

	clock.advance(20 * time.Second)

	resp := login()
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "40", resp.Header.Get("Retry-After"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retryAfter"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Too many requests", payload.Error)
	assert.Equal(t, 40, payload.RetryAfter)
}

func TestHandlerRetryAfterNeverZero(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	app := fiber.New()
	app.Post("/auth/login", store.Handler("/auth/login"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 5; i++ {
		store.Check("10.0.0.1", "/auth/login")
	}
	// 500ms left in the window rounds up, never down to 0.
	clock.advance(59*time.Second + 500*time.Millisecond)

	req := httptest.NewRequest("POST", "/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
}

func TestStopIsIdempotent(t *testing.T) {
	store := NewRateLimiterStore()
	store.StartSweep()
	store.Stop()
	store.Stop()
}
