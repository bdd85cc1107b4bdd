package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	apperrors "relief-hub/app/utils/errors"
)

type RateLimiter struct {
	visitors map[string]*Visitor
	mutex    sync.RWMutex
}

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
	}

	go rl.cleanupVisitors()
	return rl
}

// RateLimit applies per-IP limits. Submissions are throttled hard; the
// feed polls from dashboards every few seconds, so reads get generous
// bursts.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			var limit rate.Limit
			var burst int

			path := c.Request().URL.Path
			method := c.Request().Method
			switch {
			case method == http.MethodPost && strings.Contains(path, "/requests"):
				limit = rate.Every(30 * time.Second)
				burst = 5
			case strings.Contains(path, "/reports"):
				limit = rate.Every(1 * time.Second)
				burst = 10
			default:
				limit = rate.Every(1 * time.Second)
				burst = 30
			}

			if !rl.allow(ip, limit, burst) {
				appErr := apperrors.ErrRateLimitExceeded
				return c.JSON(appErr.StatusCode, map[string]interface{}{
					"error":       appErr.Message,
					"code":        string(appErr.Code),
					"retry_after": rl.getRetryAfter(ip),
				})
			}

			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[ip]
	if !exists {
		visitor = &Visitor{
			limiter: rate.NewLimiter(limit, burst),
		}
		rl.visitors[ip] = visitor
	}

	// The first request consumes a token like every later one
	visitor.lastSeen = time.Now()
	return visitor.limiter.Allow()
}

func (rl *RateLimiter) getRetryAfter(ip string) int {
	rl.mutex.RLock()
	defer rl.mutex.RUnlock()

	visitor, exists := rl.visitors[ip]
	if !exists {
		return 0
	}

	reservation := visitor.limiter.Reserve()
	if !reservation.OK() {
		return 60
	}

	delay := reservation.Delay()
	reservation.Cancel()

	return int(delay.Seconds())
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for ip, visitor := range rl.visitors {
			if time.Since(visitor.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mutex.Unlock()
	}
}
