package http

import (
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
)

// maxTrackedClients bounds the number of per-IP buckets held at once.
const maxTrackedClients = 65536

// RateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than a full refill are dropped.
type RateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows requests events per window for each client, with the given burst.
func NewRateLimiter(requests int, window time.Duration, burst int) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	if burst <= 0 {
		burst = requests
	}

	interval := window / time.Duration(requests)
	ttl := window
	if refill := interval * time.Duration(burst); refill > ttl {
		ttl = refill
	}

	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, ttl),
		limit:    rate.Every(interval),
		burst:    burst,
	}
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
	}
	// Add refreshes the expiry so an active client keeps its bucket.
	rl.limiters.Add(key, limiter)

	return limiter.Allow()
}

// Middleware rejects requests over the limit with 429.
// Relies on chi's RealIP middleware having rewritten RemoteAddr.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientKey(r)) {
			DefaultErrorHandler(w, apperrors.TooManyRequestsError("Too many requests, please try again later"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
