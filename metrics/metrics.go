// Package metrics exports game counters in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records tick events. It satisfies game.Recorder and is safe to
// scrape while the game runs.
type Collector struct {
	registry *prometheus.Registry

	ticks       prometheus.Counter
	foodEaten   prometheus.Counter
	resets      prometheus.Counter
	length      prometheus.Gauge
	bestLength  prometheus.Gauge
	resetLength prometheus.Histogram

	// best is only written from the game goroutine.
	best int
}

// NewCollector registers the game metrics on a fresh registry. Every series
// carries the run's session id.
func NewCollector(session string) *Collector {
	labels := prometheus.Labels{"session": session}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "snake_ticks_total",
			Help:        "Total number of game ticks played",
			ConstLabels: labels,
		}),
		foodEaten: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "snake_food_eaten_total",
			Help:        "Total number of food items eaten",
			ConstLabels: labels,
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "snake_resets_total",
			Help:        "Total number of resets caused by self-collision",
			ConstLabels: labels,
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "snake_length",
			Help:        "Current snake length in cells",
			ConstLabels: labels,
		}),
		bestLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "snake_best_length",
			Help:        "Longest snake seen during this run",
			ConstLabels: labels,
		}),
		resetLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "snake_length_at_reset",
			Help:        "Snake length at the moment of self-collision",
			Buckets:     prometheus.ExponentialBuckets(2, 2, 8),
			ConstLabels: labels,
		}),
	}
	c.registry.MustRegister(c.ticks, c.foodEaten, c.resets, c.length, c.bestLength, c.resetLength)
	return c
}

func (c *Collector) TickDone(length int) {
	c.ticks.Inc()
	c.observeLength(length)
}

func (c *Collector) FoodEaten() {
	c.foodEaten.Inc()
}

func (c *Collector) SnakeReset(lengthLost int) {
	c.resets.Inc()
	c.resetLength.Observe(float64(lengthLost))
	c.observeLength(lengthLost)
}

func (c *Collector) observeLength(length int) {
	c.length.Set(float64(length))
	if length > c.best {
		c.best = length
		c.bestLength.Set(float64(length))
	}
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Listen binds addr so that a bad address fails at startup rather than in a
// background goroutine.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener on %s: %w", addr, err)
	}
	return ln, nil
}

// Serve exposes /metrics on ln until ctx is done.
func (c *Collector) Serve(ctx context.Context, ln net.Listener, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", "addr", ln.Addr().String()+"/metrics")
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
