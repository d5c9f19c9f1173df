package interceptors

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/utils"
	"golang.org/x/time/rate"
)

const limiterIdleTimeout = 30 * time.Minute

// LimiterSweepInterval is how often idle clients are looked for
const LimiterSweepInterval = time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter allows each client a number of requests per second, with a
// burst of the same size. Clients are told apart by utils.ClientIP.
type RateLimiter struct {
	PerSecond      int
	TrustedProxies []string

	mtx     sync.Mutex
	clients map[string]*clientLimiter
	now     func() time.Time
}

// NewRateLimiter returns a RateLimiter allowing perSecond requests per client
func NewRateLimiter(perSecond int, trustedProxies []string) *RateLimiter {
	return &RateLimiter{
		PerSecond:      perSecond,
		TrustedProxies: trustedProxies,
		clients:        map[string]*clientLimiter{},
		now:            time.Now,
	}
}

func (rl *RateLimiter) limiterFor(client string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	c, ok := rl.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.PerSecond), rl.PerSecond)}
		rl.clients[client] = c
	}
	c.lastSeen = rl.now()
	return c.limiter
}

// sweep forgets clients idle for longer than limiterIdleTimeout
func (rl *RateLimiter) sweep() int {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	now := rl.now()
	removed := 0
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > limiterIdleTimeout {
			delete(rl.clients, key)
			removed++
		}
	}
	return removed
}

// Sweep forgets idle clients every interval until ctx is done
func (rl *RateLimiter) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := rl.sweep(); removed > 0 {
				log.Debug("idle rate limit clients removed", log.Data{"removed": removed})
			}
		}
	}
}

// RateLimitIntercept rejects requests from a client that has used up its
// allowance with 429 Too Many Requests. A non-positive PerSecond disables
// limiting.
func (rl *RateLimiter) RateLimitIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.PerSecond <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		client := utils.ClientIP(r, rl.TrustedProxies)
		if !rl.limiterFor(client).AllowN(rl.now(), 1) {
			log.InfoR(r, "rate limit exceeded", log.Data{"client": client, "path": r.URL.Path})
			w.Header().Set("Retry-After", "1")
			utils.WriteMessage(w, r, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
