package site

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	adminCookie     = "admin_token"
	adminCookiePath = "/admin"
	adminSessionTTL = 24 * time.Hour
)

// adminAuth guards the dashboard with a per-process session token. Login is
// disabled when no password is configured.
type adminAuth struct {
	username string
	password string
	token    string
}

func newAdminAuth(username, password string) (*adminAuth, error) {
	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}
	return &adminAuth{username: username, password: password, token: token}, nil
}

func (a *adminAuth) enabled() bool { return a.password != "" }

func (a *adminAuth) check(username, password string) bool {
	if !a.enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) registerAdminRoutes() {
	s.engine.GET("/admin/login", s.handleLoginPage)
	s.engine.POST("/admin/login", s.handleLogin)
	s.engine.GET("/admin/logout", s.handleLogout)

	admin := s.engine.Group("/admin")
	admin.Use(s.auth.middleware())
	admin.GET("/dashboard", s.handleDashboard)
	admin.GET("/api/stats", s.handleStats)
	admin.GET("/export/stats", s.handleExportStats)
	admin.POST("/privacy/prune", s.handlePrune)
}

func (s *Server) handleLoginPage(c *gin.Context) {
	render(c, http.StatusOK, loginPage(""))
}

func (s *Server) handleLogin(c *gin.Context) {
	hashed := s.tracker.hashIP(c.ClientIP())
	if !s.auth.check(c.PostForm("username"), c.PostForm("password")) {
		s.logger.Warn("failed admin login attempt", zap.String("visitor", hashed))
		render(c, http.StatusUnauthorized, loginPage("Invalid credentials"))
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, s.auth.token, int(adminSessionTTL.Seconds()), adminCookiePath, "", c.Request.TLS != nil, true)
	s.logger.Info("admin login successful", zap.String("visitor", hashed))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, adminCookiePath, "", c.Request.TLS != nil, true)
	s.logger.Info("admin logout", zap.String("visitor", s.tracker.hashIP(c.ClientIP())))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) handleDashboard(c *gin.Context) {
	if s.deps.Visits == nil {
		render(c, http.StatusServiceUnavailable, adminErrorPage("Visitor tracking is disabled"))
		return
	}
	stats, err := s.deps.Visits.Stats(c.Request.Context(), s.now())
	if err != nil {
		s.logger.Error("failed to load admin stats", zap.Error(err))
		render(c, http.StatusInternalServerError, adminErrorPage("Failed to load statistics"))
		return
	}
	render(c, http.StatusOK, dashboardPage(stats))
}

func (s *Server) handleStats(c *gin.Context) {
	if s.deps.Visits == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
		return
	}
	stats, err := s.deps.Visits.Stats(c.Request.Context(), s.now())
	if err != nil {
		s.logger.Error("failed to load admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleExportStats(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	s.logger.Info("admin stats exported", zap.String("visitor", s.tracker.hashIP(c.ClientIP())))
	s.handleStats(c)
}

func (s *Server) handlePrune(c *gin.Context) {
	n, err := s.tracker.prune(c.Request.Context(), s.cfg.Store.Retention)
	if err != nil {
		s.logger.Error("privacy cleanup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "privacy cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
