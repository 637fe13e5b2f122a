package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const RequestIDHeader = "X-Request-ID"

// RequestID assigns a correlation id to every request. Client-supplied ids
// are honored only when they parse as UUIDs, otherwise a fresh one is issued.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(rid); err != nil {
				rid = uuid.New().String()
			}
			c.Set("request_id", rid)
			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}

// CorrelationID returns the request's correlation id as a UUID. A missing or
// malformed id yields a fresh UUID so audit entries are always correlatable.
func CorrelationID(c echo.Context) uuid.UUID {
	rid, _ := c.Get("request_id").(string)
	if id, err := uuid.Parse(rid); err == nil {
		return id
	}
	return uuid.New()
}
