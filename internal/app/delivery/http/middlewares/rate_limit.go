package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit caps every client IP to App.MaxRequests per second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}
	return httprate.LimitByIP(maxRequests, time.Second)
}

// AuthRateLimit blocks an IP for a while once it exceeds the login and
// registration budget.
func (m *Middlewares) AuthRateLimit() func(next http.Handler) http.Handler {
	perMinute := m.InternalConfig.App.AuthRateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	blockMinutes := m.InternalConfig.App.AuthRateLimitBlockMinutes
	if blockMinutes <= 0 {
		blockMinutes = 15
	}

	limiter := NewRateLimiter(perMinute, time.Minute/time.Duration(perMinute), time.Duration(blockMinutes)*time.Minute, m.Log)
	return limiter.Limit
}
