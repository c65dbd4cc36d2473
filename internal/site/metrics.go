package site

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the site's Prometheus collectors.
type Metrics struct {
	PageViews       *prometheus.CounterVec
	GalleryFrames   prometheus.Counter
	GalleryJumps    prometheus.Counter
	ContactMessages *prometheus.CounterVec
}

// NewMetrics registers the site metrics with the default registry. Repeated
// calls return the same collectors.
//
// Metrics:
//   - portfolio_page_views_total{path} - tracked page requests by route
//   - portfolio_gallery_frames_total - frames served by the gallery API
//   - portfolio_gallery_jumps_total - jump offsets served by the gallery API
//   - portfolio_contact_messages_total{result} - contact form submissions
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			PageViews: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "portfolio_page_views_total",
					Help: "Total number of tracked page requests",
				},
				[]string{"path"},
			),
			GalleryFrames: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "portfolio_gallery_frames_total",
					Help: "Total number of gallery frames computed for API clients",
				},
			),
			GalleryJumps: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "portfolio_gallery_jumps_total",
					Help: "Total number of gallery jump targets computed for API clients",
				},
			),
			ContactMessages: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "portfolio_contact_messages_total",
					Help: "Total number of contact form submissions",
				},
				[]string{"result"}, // "sent", "failed" or "invalid"
			),
		}
	})
	return globalMetrics
}
