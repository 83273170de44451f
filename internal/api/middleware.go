package api

import (
	"crypto/subtle"
	"strings"
	"time"

	"inspectrack/internal/apierr"
	"inspectrack/internal/handlers"
	"inspectrack/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AdminPasswordHeader = "X-Admin-Password"
	RequestIDHeader     = "X-Request-ID"
)

// RequireAdmin gates a route group behind the single shared admin password,
// read from the X-Admin-Password header or the password query parameter.
func RequireAdmin(password string, log *logger.Logger) gin.HandlerFunc {
	want := []byte(password)
	return func(c *gin.Context) {
		got := c.GetHeader(AdminPasswordHeader)
		if got == "" {
			got = c.Query("password")
		}
		if len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			if log != nil {
				log.Warn("admin password rejected", "path", c.FullPath(), "client_ip", c.ClientIP())
			}
			handlers.RespondError(c, log, apierr.Unauthorized("admin password required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestID propagates or assigns an X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("request_id"),
		}
		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

// CORS allows the admin UI origins; an empty list allows any origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", AdminPasswordHeader, RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
