package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requestID tags every request with a generated ID, echoed back in the
// X-Request-Id response header.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals("request_id", id)
	c.Set("X-Request-Id", id)
	return c.Next()
}

// requestLogger logs one line per handled request.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	s.logger.Info(c.UserContext(), "request",
		"request_id", c.Locals("request_id"),
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String(),
	)
	return err
}
