package site

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const recordTimeout = 5 * time.Second

// untrackedPrefixes are never recorded as visits.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/privacy",
	"/metrics",
	"/health",
}

// VisitStore is the persistence the site needs for visitor tracking.
type VisitStore interface {
	RecordVisit(ctx context.Context, v store.Visit) error
	Stats(ctx context.Context, now time.Time) (*store.Stats, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// tracker records visits in the background with salted, truncated IP
// hashes. The salt lives only in memory, so hashes cannot be linked across
// restarts.
type tracker struct {
	visits  VisitStore
	salt    string
	logger  *zap.Logger
	metrics *Metrics
	now     func() time.Time
	wg      sync.WaitGroup
}

func newTracker(visits VisitStore, logger *zap.Logger, metrics *Metrics) (*tracker, error) {
	salt, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}
	return &tracker{
		visits:  visits,
		salt:    salt,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}, nil
}

// hashIP is consistent per address for the life of the process.
func (t *tracker) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// middleware counts page views and records visits. Requests carrying
// "DNT: 1" are counted but never stored.
func (t *tracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !tracked(path) {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		t.metrics.PageViews.WithLabelValues(route).Inc()

		if t.visits != nil && c.GetHeader("DNT") != "1" {
			t.record(store.Visit{
				HashedIP:  t.hashIP(c.ClientIP()),
				UserAgent: c.GetHeader("User-Agent"),
				Path:      path,
				At:        t.now(),
			})
		}
		c.Next()
	}
}

func (t *tracker) record(v store.Visit) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := t.visits.RecordVisit(ctx, v); err != nil {
			t.logger.Warn("failed to record visitor", zap.String("path", v.Path), zap.Error(err))
		}
	}()
}

// prune removes visits older than retention.
func (t *tracker) prune(ctx context.Context, retention time.Duration) (int64, error) {
	if t.visits == nil {
		return 0, nil
	}
	n, err := t.visits.Prune(ctx, t.now().Add(-retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		t.logger.Info("privacy cleanup removed old visitor records",
			zap.Int64("deleted", n),
			zap.Duration("retention", retention),
		)
	}
	return n, nil
}

// wait blocks until in-flight visit writes finish.
func (t *tracker) wait() {
	t.wg.Wait()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
