package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"scheme-console/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "request_id"

// NewSlogLogger builds the process logger. Timestamps are rendered in the
// configured zone; JSON output is used in release mode.
func NewSlogLogger(cfg config.LogConfig) *slog.Logger {
	loc := logLocation(cfg)
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(loc).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logLocation prefers the IANA zone and falls back to the fixed offset when
// the container has no tzdata.
func logLocation(cfg config.LogConfig) *time.Location {
	if loc, err := time.LoadLocation(cfg.TimeZone); err == nil {
		return loc
	}
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}

type requestLogger struct {
	logger *slog.Logger
	loc    *time.Location
}

// LoggingMiddleware tags each request with an id and logs its start and
// outcome. Scheme routes also carry the scheme id, entry index and region code.
func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	if logger == nil {
		logger = NewSlogLogger(cfg)
	}
	l := &requestLogger{logger: logger, loc: logLocation(cfg)}
	return l.handle
}

func (l *requestLogger) handle(c *gin.Context) {
	start := time.Now()
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = l.newRequestID(start)
	}
	c.Set(requestIDKey, requestID)
	c.Header("X-Request-ID", requestID)

	attrs := []slog.Attr{
		slog.String(requestIDKey, requestID),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("client_ip", c.ClientIP()),
	}
	if route := c.FullPath(); route != "" {
		attrs = append(attrs, slog.String("route", route))
	}
	attrs = append(attrs, schemeAttrs(c)...)

	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "Request started", attrs...)

	c.Next()

	status := c.Writer.Status()
	attrs = append(attrs,
		slog.Int("status_code", status),
		slog.Duration("duration", time.Since(start)),
	)
	if size := c.Writer.Size(); size > 0 {
		attrs = append(attrs, slog.Int("response_size", size))
	}
	if loc := c.Writer.Header().Get("Location"); loc != "" {
		attrs = append(attrs, slog.String("location", loc))
	}
	if len(c.Errors) > 0 {
		attrs = append(attrs, slog.String("errors", c.Errors.String()))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400 && status != http.StatusUnprocessableEntity:
		level = slog.LevelWarn
	}
	l.logger.LogAttrs(context.Background(), level, "Request completed", attrs...)
}

func schemeAttrs(c *gin.Context) []slog.Attr {
	var attrs []slog.Attr
	for _, p := range []struct{ param, key string }{
		{"id", "scheme_id"},
		{"index", "entry_index"},
		{"code", "state_code"},
	} {
		if v := c.Param(p.param); v != "" {
			attrs = append(attrs, slog.String(p.key, v))
		}
	}
	return attrs
}

func (l *requestLogger) newRequestID(now time.Time) string {
	ts := now.In(l.loc).Format("20060102150405")
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s-fallback-%d", ts, now.UnixNano()%100000000)
	}
	return ts + "-" + hex.EncodeToString(b)
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
