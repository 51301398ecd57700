package results

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scrapesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tfrrs_scrapes_total",
		Help: "Scrapes performed, by entity and outcome.",
	}, []string{"entity", "outcome"})

	scrapeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tfrrs_scrape_duration_seconds",
		Help:    "End-to-end scrape latency (fetch + parse).",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})
)

func observeScrape(entity, outcome string, elapsed time.Duration) {
	scrapesTotal.WithLabelValues(entity, outcome).Inc()
	scrapeDuration.WithLabelValues(entity).Observe(elapsed.Seconds())
}
