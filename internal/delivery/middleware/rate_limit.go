package middleware

import (
	"log/slog"
	"sync"
	"time"

	"handloom/config"
	domainerrors "handloom/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerMin = 20
	defaultBurst          = 5
	defaultIdleTTL        = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles requests per client IP with a token bucket.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	enabled  bool
	logger   *slog.Logger
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimitMiddleware creates a limiter from the rateLimit config section.
// A nil section disables limiting.
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(defaultRequestsPerMin / 60.0),
		burst:    defaultBurst,
		idleTTL:  defaultIdleTTL,
		logger:   logger,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	rl := cfg.RateLimit
	if rl == nil {
		return m
	}

	m.enabled = rl.Enabled
	if rl.RequestsPerMin > 0 {
		m.limit = rate.Limit(rl.RequestsPerMin / 60.0)
	}
	if rl.Burst > 0 {
		m.burst = rl.Burst
	}
	if rl.IdleTTL > 0 {
		m.idleTTL = rl.IdleTTL
	}

	return m
}

// Start runs the idle visitor eviction loop until Stop is called.
func (m *RateLimitMiddleware) Start() {
	if !m.enabled {
		return
	}

	ticker := time.NewTicker(m.idleTTL)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.evictIdle()
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop ends the eviction loop.
func (m *RateLimitMiddleware) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *RateLimitMiddleware) evictIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.idleTTL)
	for ip, v := range m.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(m.visitors, ip)
		}
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = m.now()

	return v.limiter.AllowN(v.lastSeen, 1)
}

// Handle rejects requests over the per-IP budget with 429.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		ip := c.RealIP()
		if !m.allow(ip) {
			m.logger.Warn("Rate limit exceeded", slog.String("remote_ip", ip), slog.String("path", c.Path()))

			return errors.WithStack(domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}
