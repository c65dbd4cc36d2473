package site

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	contactSent   = "Thank you for your message! I'll get back to you soon."
	contactFailed = "Sorry, there was an error sending your message. Please try again later."
)

func (s *Server) handleIndex(c *gin.Context) {
	gallery := newGalleryView(len(s.deps.Content.Projects), s.cfg.Scroll.Breakpoint, s.cfg.Scroll.Spring())
	render(c, http.StatusOK, indexPage(s.deps.Content, gallery, s.now()))
}

func (s *Server) handlePrivacy(c *gin.Context) {
	render(c, http.StatusOK, privacyPage(s.cfg.Store.Retention))
}

func (s *Server) handleContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Content)
}

// floatQuery parses a finite float query parameter. A missing optional
// parameter yields def.
func floatQuery(c *gin.Context, name string, required bool, def float64) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		if required {
			return 0, fmt.Errorf("%s is required", name)
		}
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a finite number", name)
	}
	return v, nil
}

func (s *Server) galleryLayout(width float64) (scroll.Layout, scroll.Mode) {
	mode := scroll.ModeFor(width, s.cfg.Scroll.Breakpoint)
	return scroll.NewLayout(len(s.deps.Content.Projects), mode), mode
}

func (s *Server) handleFrame(c *gin.Context) {
	progress, err := floatQuery(c, "progress", true, 0)
	if err == nil && (progress < 0 || progress > 1) {
		err = errors.New("progress must be within [0, 1]")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	width, err := floatQuery(c, "width", false, 0)
	if err == nil && width < 0 {
		err = errors.New("width cannot be negative")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	l, mode := s.galleryLayout(width)
	s.metrics.GalleryFrames.Inc()
	c.JSON(http.StatusOK, scroll.Compute(l, mode, progress))
}

// JumpResponse is the response body for GET /api/gallery/jump.
type JumpResponse struct {
	Segment int     `json:"segment"`
	Offset  float64 `json:"offset"`
}

func (s *Server) handleJump(c *gin.Context) {
	segment, err := strconv.Atoi(c.Query("segment"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "segment must be an integer"})
		return
	}
	viewport, err := floatQuery(c, "viewport", true, 0)
	if err == nil && viewport <= 0 {
		err = errors.New("viewport must be positive")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	top, err := floatQuery(c, "top", false, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	width, err := floatQuery(c, "width", false, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	l, _ := s.galleryLayout(width)
	offset, err := scroll.NewNavigator(l, nil).Target(segment, viewport, top)
	if errors.Is(err, scroll.ErrSegmentOutOfRange) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.metrics.GalleryJumps.Inc()
	c.JSON(http.StatusOK, JumpResponse{Segment: segment, Offset: offset})
}

// handleContact answers with an HTML fragment for htmx. Failures still
// return 200 so the fragment is swapped in.
func (s *Server) handleContact(c *gin.Context) {
	msg := Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}
	if err := msg.Validate(); err != nil {
		s.metrics.ContactMessages.WithLabelValues("invalid").Inc()
		render(c, http.StatusOK, contactResult(false, "Please check the form: "+err.Error()+"."))
		return
	}

	err := ErrMailerNotConfigured
	if s.deps.Mailer != nil {
		err = s.deps.Mailer.Send(c.Request.Context(), msg)
	}
	if err != nil {
		s.logger.Error("failed to send contact email", zap.Error(err))
		s.metrics.ContactMessages.WithLabelValues("failed").Inc()
		render(c, http.StatusOK, contactResult(false, contactFailed))
		return
	}

	s.logger.Info("contact email sent")
	s.metrics.ContactMessages.WithLabelValues("sent").Inc()
	render(c, http.StatusOK, contactResult(true, contactSent))
}
