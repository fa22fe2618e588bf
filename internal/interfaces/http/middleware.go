package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// HeaderRequestID header con el ID de correlación de la petición.
const HeaderRequestID = "X-Request-ID"

// RequestID asigna un UUID a cada petición (o respeta el que venga del cliente)
// y lo expone en locals y en el header de respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Locals("request_id", rid)
		c.Set(HeaderRequestID, rid)
		return c.Next()
	}
}

// GetRequestID devuelve el ID de correlación de la petición actual.
func GetRequestID(c *fiber.Ctx) string {
	rid, _ := c.Locals("request_id").(string)
	return rid
}

// RequestLogger registra cada petición con método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
