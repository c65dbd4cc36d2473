package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVisits struct {
	mu     sync.Mutex
	visits []store.Visit
	pruned []time.Time
	err    error
}

func (f *fakeVisits) RecordVisit(_ context.Context, v store.Visit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits = append(f.visits, v)
	return f.err
}

func (f *fakeVisits) Stats(_ context.Context, _ time.Time) (*store.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &store.Stats{
		TotalVisitors:  int64(len(f.visits)),
		TopPaths:       []store.PathCount{},
		RecentVisitors: append([]store.Visit{}, f.visits...),
	}, nil
}

func (f *fakeVisits) Prune(_ context.Context, before time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pruned = append(f.pruned, before)
	return 3, f.err
}

func (f *fakeVisits) recorded() []store.Visit {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.Visit{}, f.visits...)
}

type fakeMailer struct {
	sent []Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type testEnv struct {
	server *Server
	visits *fakeVisits
	mailer *fakeMailer
	logger *logging.TestLogger
}

func newTestEnv(t *testing.T, mutate func(*config.Config)) *testEnv {
	t.Helper()
	cfg := config.Default()
	cfg.Admin.Password = config.Secret("s3cret")
	if mutate != nil {
		mutate(cfg)
	}

	c, err := content.Load("")
	require.NoError(t, err)

	env := &testEnv{visits: &fakeVisits{}, mailer: &fakeMailer{}, logger: logging.NewTest()}
	env.server, err = NewServer(cfg, Deps{Content: c, Visits: env.visits, Mailer: env.mailer}, env.logger.Logger)
	require.NoError(t, err)
	env.server.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	env.server.tracker.now = env.server.now
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(target string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestNewServerValidation(t *testing.T) {
	c, err := content.Load("")
	require.NoError(t, err)
	logger := logging.NewTest().Logger

	_, err = NewServer(nil, Deps{Content: c}, logger)
	assert.Error(t, err)
	_, err = NewServer(config.Default(), Deps{}, logger)
	assert.Error(t, err)
	_, err = NewServer(config.Default(), Deps{Content: c}, nil)
	assert.Error(t, err)

	s, err := NewServer(config.Default(), Deps{Content: c}, logger)
	require.NoError(t, err)
	assert.NotNil(t, s.Handler())
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.get("/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestRequestLogging(t *testing.T) {
	env := newTestEnv(t, nil)
	env.get("/health")
	env.get("/does-not-exist")

	env.logger.AssertLogged(t, zapcore.InfoLevel, "http request")
	env.logger.AssertLogged(t, zapcore.WarnLevel, "http request")
}

func TestIndexRendersGallery(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(strings.ToLower(body), "<!doctype html>"))
	assert.Contains(t, body, "<h1>Zach</h1>")
	assert.Contains(t, body, "9+ years of experience")

	// Four projects on desktop: intro + 4 projects + grid.
	assert.Contains(t, body, `data-total-segments="6"`)
	assert.Contains(t, body, "height: 900vh")
	assert.Equal(t, 6, strings.Count(body, `class="gallery-snap"`))
	assert.Equal(t, 5, strings.Count(body, `class="gallery-dot"`))
	assert.Equal(t, 4, strings.Count(body, `class="project-card"`))
	assert.Contains(t, body, `id="project-grid"`)
	assert.Contains(t, body, `data-active-value="-0.8"`)
	assert.Contains(t, body, `data-stiffness="200"`)
	assert.Contains(t, body, "pointer-events: none")
	assert.Contains(t, body, `hx-post="/contact"`)
}

func TestIndexWithoutProjects(t *testing.T) {
	env := newTestEnv(t, nil)
	env.server.deps.Content = &content.Content{Hero: content.Hero{Name: "Nobody"}}

	rec := env.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-total-segments="2"`)
	assert.Equal(t, 0, strings.Count(body, `class="project-card"`))
	assert.Equal(t, 1, strings.Count(body, `class="gallery-dot"`))
}

func TestPrivacyPage(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.get("/privacy")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "after 365 days")
}

func TestContentAPI(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.get("/api/content")
	require.Equal(t, http.StatusOK, rec.Code)

	var c content.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Zach", c.Hero.Name)
	assert.Len(t, c.Projects, 4)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	env.get("/api/gallery/frame?progress=0.1")

	rec := env.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfolio_gallery_frames_total")
}
