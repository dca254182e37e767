package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"liaison-portal/internal/observability"
)

// CleanupOpts controls eviction of idle per-IP limiters.
type CleanupOpts struct {
	TTL      time.Duration
	Interval time.Duration
}

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	cancel   context.CancelFunc
	rate     rate.Limit
	burst    int
	CleanupOpts
}

// NewIPRateLimiter allows requests per window for each IP. Stop releases
// the cleanup goroutine.
func NewIPRateLimiter(requests int, window time.Duration, opts CleanupOpts) *IPRateLimiter {
	if requests <= 0 {
		requests = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	rl := &IPRateLimiter{
		limiters:    make(map[string]*rate.Limiter),
		lastSeen:    make(map[string]time.Time),
		cancel:      cancel,
		rate:        rate.Every(window / time.Duration(requests)),
		burst:       requests,
		CleanupOpts: opts,
	}
	if opts.Interval > 0 {
		go rl.cleanup(ctx)
	}
	return rl
}

func (rl *IPRateLimiter) Stop() {
	rl.cancel()
}

func (rl *IPRateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, seen := range rl.lastSeen {
				if time.Since(seen) > rl.TTL {
					delete(rl.limiters, ip)
					delete(rl.lastSeen, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Allow consumes one token from the bucket for ip.
func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, ok := rl.limiters[ip]
	if !ok {
		bucket = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[ip] = bucket
	}
	rl.lastSeen[ip] = time.Now()
	return bucket.Allow()
}

// Middleware answers 429 once a client exhausts its bucket.
func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := observability.IPFromRequest(c.Request)
		if !rl.Allow(ip) {
			observability.IncRateLimited()
			slog.WarnContext(c.Request.Context(), "rate limit exceeded",
				"ip", ip,
				"path", c.Request.URL.Path,
				"method", c.Request.Method)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
			return
		}
		c.Next()
	}
}
