package middleware

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RouteLimit is the fixed-window policy for one route key.
type RouteLimit struct {
	Limit  int
	Window time.Duration
}

// RateLimitResult is the outcome of a single Check call.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

type rateLimitRecord struct {
	count       int
	windowStart time.Time
}

const (
	sweepInterval  = time.Minute
	recordMaxAge   = 5 * time.Minute
	defaultLimit   = 100
	defaultWindow  = time.Minute
	unknownClient  = "unknown"
	rateLimitError = "Too many requests"
)

// defaultRouteLimits are the policies for the portal's mutation endpoints.
// Any route not listed here falls back to 100 requests per minute.
var defaultRouteLimits = map[string]RouteLimit{
	"/quiz/submit":          {Limit: 10, Window: time.Minute},
	"/comments":             {Limit: 20, Window: time.Minute},
	"/certificate/generate": {Limit: 5, Window: time.Minute},
	"/notifications/send":   {Limit: 5, Window: time.Minute},
	"/auth/login":           {Limit: 5, Window: time.Minute},
}

// RateLimiterStore counts requests per (client, route) in fixed windows.
// State is process-local: running more than one instance multiplies the
// effective limits. The mutex keeps the check-and-increment atomic under
// fiber's goroutine-per-request model.
type RateLimiterStore struct {
	mu       sync.Mutex
	records  map[string]*rateLimitRecord
	routes   map[string]RouteLimit
	fallback RouteLimit
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiterStore builds a store with the default route policies.
func NewRateLimiterStore() *RateLimiterStore {
	return newRateLimiterStore(defaultRouteLimits, time.Now)
}

func newRateLimiterStore(routes map[string]RouteLimit, now func() time.Time) *RateLimiterStore {
	copied := make(map[string]RouteLimit, len(routes))
	for key, limit := range routes {
		copied[key] = limit
	}
	return &RateLimiterStore{
		records:  make(map[string]*rateLimitRecord),
		routes:   copied,
		fallback: RouteLimit{Limit: defaultLimit, Window: defaultWindow},
		now:      now,
		stop:     make(chan struct{}),
	}
}

// Check applies the fixed-window policy for routeKey to the given client
// identifier. Denial is a normal outcome, not an error.
func (s *RateLimiterStore) Check(identifier, routeKey string) RateLimitResult {
	policy, ok := s.routes[routeKey]
	if !ok {
		policy = s.fallback
	}
	key := identifier + ":" + routeKey

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record, exists := s.records[key]

	if !exists || now.Sub(record.windowStart) >= policy.Window {
		s.records[key] = &rateLimitRecord{count: 1, windowStart: now}
		return RateLimitResult{Allowed: true, Remaining: policy.Limit - 1, ResetIn: policy.Window}
	}

	resetIn := policy.Window - now.Sub(record.windowStart)
	if record.count >= policy.Limit {
		return RateLimitResult{Allowed: false, Remaining: 0, ResetIn: resetIn}
	}

	record.count++
	return RateLimitResult{Allowed: true, Remaining: policy.Limit - record.count, ResetIn: resetIn}
}

// Handler adapts the store to a fiber middleware for one route key.
func (s *RateLimiterStore) Handler(routeKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := s.Check(ClientIdentifier(c), routeKey)
		if !result.Allowed {
			retryAfter := int((result.ResetIn + time.Second - 1) / time.Second)
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":      rateLimitError,
				"retryAfter": retryAfter,
			})
		}
		return c.Next()
	}
}

// StartSweep launches the background eviction loop. The sweep only bounds
// memory; windows are reset lazily inside Check, so eviction can never turn
// a denial into an allow.
func (s *RateLimiterStore) StartSweep() {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop cancels the sweep loop. Safe to call more than once.
func (s *RateLimiterStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *RateLimiterStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, record := range s.records {
		if now.Sub(record.windowStart) > recordMaxAge {
			delete(s.records, key)
		}
	}
}

func (s *RateLimiterStore) recordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// ClientIdentifier derives the rate-limit bucket for a request: the first
// X-Forwarded-For entry, then X-Real-Ip, then a shared "unknown" bucket.
func ClientIdentifier(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := c.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	return unknownClient
}
