package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error().
						Interface("panic", r).
						Bytes("stack", debug.Stack()).
						Str("path", c.Request().URL.Path).
						Msg("panic recovered")
					err = echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("internal error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
