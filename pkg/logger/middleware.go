package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger middleware Fiber que registra método, ruta, status, latencia y usuario.
// 5xx se registran como error, 4xx como warn y el resto como info.
func RequestLogger(l *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			// El ErrorHandler de Fiber todavía no escribió la respuesta.
			status = fiber.StatusInternalServerError
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = l.Error().Err(chainErr)
		case status >= fiber.StatusBadRequest:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		ev = ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP())
		// "user_id" lo carga el middleware de auth en las rutas protegidas.
		if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
			ev = ev.Str("user_id", userID)
		}
		ev.Msg("request")
		return chainErr
	}
}
