package middlewares

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ScanRateLimiter throttles QR scan attempts per actor. Reference codes
// are the second authorization factor, so repeated failed scans against
// the same account must not become a guessing channel.
type ScanRateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	attempts  int
	per       time.Duration
	blockTime time.Duration
}

func NewScanRateLimiter(attempts int, per, blockTime time.Duration) *ScanRateLimiter {
	return &ScanRateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		attempts:  attempts,
		per:       per,
		blockTime: blockTime,
	}
}

func (m *Middlewares) LimitScanAttempts(limiter *ScanRateLimiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.ActorContext)
			if !ok || actor == nil || actor.UserID == "" {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrScanNotLoggedIn(nil))
				return
			}

			if !limiter.allow(actor.UserID) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrScanTooManyAttempts(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (l *ScanRateLimiter) allow(userID string) bool {
	l.mu.Lock()

	if blockedUntil, found := l.blocked[userID]; found {
		if time.Now().Before(blockedUntil) {
			l.mu.Unlock()
			return false
		}
		delete(l.blocked, userID)
	}

	limiter, exists := l.limiters[userID]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(l.per/time.Duration(l.attempts)), l.attempts)
		l.limiters[userID] = limiter
	}

	l.mu.Unlock()

	if !limiter.Allow() {
		l.mu.Lock()
		defer l.mu.Unlock()

		l.blocked[userID] = time.Now().Add(l.blockTime)
		return false
	}

	return true
}
