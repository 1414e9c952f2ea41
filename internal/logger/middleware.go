package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Request returns a logger bound to the request: method, path, the matched
// route, the session path parameter when present, and the trace id when the
// request carries a sampled span.
func (l *Logger) Request(c *gin.Context) *Logger {
	if l == nil {
		return nil
	}

	kv := []any{"method", c.Request.Method, "path", c.Request.URL.Path}
	if route := c.FullPath(); route != "" {
		kv = append(kv, "route", route)
	}
	if id := c.Param("session"); id != "" {
		kv = append(kv, "session", id)
	}
	if sc := oteltrace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
		kv = append(kv, "trace_id", sc.TraceID().String())
	}
	return l.With(kv...)
}

// Middleware writes one "request" line after the handler chain ran. 5xx
// logs at error, 4xx at warn.
func (l *Logger) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if l == nil {
			return
		}

		status := c.Writer.Status()
		level := zerolog.InfoLevel
		switch {
		case status >= 500:
			level = zerolog.ErrorLevel
		case status >= 400:
			level = zerolog.WarnLevel
		}

		ev := l.Request(c).zl.WithLevel(level).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("bytes", c.Writer.Size())
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			ev = ev.Str("error", errs.String())
		}
		ev.Msg("request")
	}
}
