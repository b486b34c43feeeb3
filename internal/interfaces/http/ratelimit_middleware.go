package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/logistics-api/internal/application/dto"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter limita los intentos de login por IP con un token bucket por cliente.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	perSec   rate.Limit
	burst    int
	idleTTL  time.Duration
}

// NewLoginRateLimiter crea el limitador. perSecond <= 0 desactiva el límite.
func NewLoginRateLimiter(perSecond float64, burst int) *LoginRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &LoginRateLimiter{
		visitors: make(map[string]*visitor),
		perSec:   rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  5 * time.Minute,
	}
}

func (l *LoginRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	v, ok := l.visitors[ip]
	if !ok {
		// Limpieza de clientes inactivos al crear uno nuevo, sin goroutine aparte.
		for k, old := range l.visitors {
			if now.Sub(old.lastSeen) > l.idleTTL {
				delete(l.visitors, k)
			}
		}
		v = &visitor{limiter: rate.NewLimiter(l.perSec, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Handler middleware Fiber: 429 RATE_LIMITED cuando la IP agotó su cupo.
func (l *LoginRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l.perSec <= 0 {
			return c.Next()
		}
		if !l.get(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "demasiados intentos, espere un momento",
			})
		}
		return c.Next()
	}
}
