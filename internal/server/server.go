// Package server serves the portfolio over HTTP. Every page load gets its
// own session, and HTMX requests address that session by id.
package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/jianifeng/folio/internal/logger"
	"github.com/jianifeng/folio/internal/render"
	"github.com/jianifeng/folio/internal/session"
	"github.com/jianifeng/folio/internal/telemetry"
)

// Options configures the HTTP server.
type Options struct {
	// Assets is the directory holding images/ and static/.
	Assets         string
	Logger         *logger.Logger
	TracerProvider oteltrace.TracerProvider
}

// Server wires the routes to the composer and the session registry.
type Server struct {
	engine   *gin.Engine
	composer *render.Composer
	sessions *session.Registry
	log      *logger.Logger
}

// New builds the gin engine and registers every route.
func New(composer *render.Composer, sessions *session.Registry, opts Options) *Server {
	tp := opts.TracerProvider
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), telemetry.Middleware(tp), log.Middleware())
	r.SetHTMLTemplate(composer.Renderer().Template())

	s := &Server{
		engine:   r,
		composer: composer,
		sessions: sessions,
		log:      log,
	}

	if opts.Assets != "" {
		r.Static("/images", filepath.Join(opts.Assets, "images"))
		r.Static("/static", filepath.Join(opts.Assets, "static"))
	}

	// Fresh load: always a new session in the default mode
	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	sess := r.Group("/s/:session", s.requireSession)
	sess.GET("/mode", s.handleMode)
	sess.POST("/mode/toggle", s.handleToggle)
	sess.GET("/items/:item/qrcode", s.handleQRCode)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Routes returns the URLs a page in session id posts back to.
func Routes(id string) render.Routes {
	return render.Routes{Base: "/s/" + id}
}
