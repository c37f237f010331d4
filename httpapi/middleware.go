package httpapi

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-Wiki-User-ID"
	headerUserName = "X-Wiki-User"

	ctxUserID   = "favorites.user_id"
	ctxUserName = "favorites.user_name"
)

// resolveUser pulls the authenticated identity out of the headers the
// host wiki sets after its own session handling. A missing or zero id
// means anonymous; handlers deny mutations for it.
func resolveUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Request().Header.Get(headerUserID), 10, 64)
		if err != nil || id <= 0 {
			id = 0
		}
		c.Set(ctxUserID, id)
		c.Set(ctxUserName, c.Request().Header.Get(headerUserName))
		return next(c)
	}
}

func currentUserID(c echo.Context) int64 {
	id, _ := c.Get(ctxUserID).(int64)
	return id
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := uuid.NewString()
			c.Response().Header().Set(echo.HeaderXRequestID, reqID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info("request",
				"id", reqID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}
