package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jianifeng/folio/internal/mode"
	"github.com/jianifeng/folio/internal/render"
	"github.com/jianifeng/folio/internal/session"
)

const sessionKey = "folio.session"

// requireSession scopes the request to the session named in the path. An
// unknown or expired session sends the browser back to a fresh load.
func (s *Server) requireSession(c *gin.Context) {
	sess, ok := s.sessions.Get(c.Param("session"))
	if !ok {
		c.Header("HX-Redirect", "/")
		c.String(http.StatusNotFound, "session expired")
		c.Abort()
		return
	}

	c.Set(sessionKey, sess)
	c.Request = c.Request.WithContext(sess.Context(c.Request.Context()))
	c.Next()
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func (s *Server) handleIndex(c *gin.Context) {
	sess, err := s.sessions.Create()
	if err != nil {
		s.fail(c, err, "create session")
		return
	}

	ctx := sess.Context(c.Request.Context())
	view, err := s.composer.Compose(ctx, sess.Document, sess.ID, Routes(sess.ID))
	if err != nil {
		s.fail(c, err, "compose page")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, render.PageTemplate, view)
}

// Handle the mode switch. The response replaces <body>.
func (s *Server) handleToggle(c *gin.Context) {
	sess := currentSession(c)
	ctx := c.Request.Context()

	if _, err := mode.Toggle(ctx); err != nil {
		s.fail(c, err, "toggle mode")
		return
	}

	view, err := s.composer.Compose(ctx, sess.Document, sess.ID, Routes(sess.ID))
	if err != nil {
		s.fail(c, err, "compose page")
		return
	}

	// Name the mode the body was rendered in, not the one Toggle returned.
	trigger, _ := json.Marshal(map[string]any{
		"modeChanged": map[string]string{"mode": view.Mode.String()},
	})
	c.Header("HX-Trigger", string(trigger))
	c.HTML(http.StatusOK, render.BodyTemplate, view)
}

func (s *Server) handleMode(c *gin.Context) {
	m, err := mode.Get(c.Request.Context())
	if err != nil {
		s.fail(c, err, "read mode")
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": m})
}

// Handle the QR popover. It never reads or writes the mode.
func (s *Server) handleQRCode(c *gin.Context) {
	it, ok := s.composer.Catalog().FindProject(c.Param("item"))
	if !ok || !it.HasQRCode() {
		c.String(http.StatusNotFound, "no qr code")
		return
	}

	var buf bytes.Buffer
	if err := s.composer.Renderer().RenderPopover(&buf, it); err != nil {
		s.fail(c, err, "render popover")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) fail(c *gin.Context, err error, msg string) {
	s.log.Request(c).Error(err, msg)
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "internal error")
}
