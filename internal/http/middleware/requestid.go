package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"

	maxRequestIDLen = 128
)

// RequestID ensures every request has a request ID.
//
// Behavior:
//   - Reads X-Request-ID from the incoming request header.
//   - If missing or longer than 128 bytes, generates a new UUID.
//   - Stores the value in Fiber context locals under RequestIDLocalKey.
//   - Attaches a child of base carrying request_id to the user context, so
//     zerolog.Ctx works in services and repositories.
//   - Adds X-Request-ID to the response header with the same value.
func RequestID(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)

		reqLog := base.With().Str(RequestIDLocalKey, id).Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
