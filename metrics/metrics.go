// Package metrics exposes tour searches as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/salesman/tour"
)

// Namespace prefixes every metric name.
const Namespace = "salesman"

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound      = "found"
	OutcomeUnsolvable = "unsolvable"
	OutcomeAborted    = "aborted"
	OutcomeError      = "error"
)

// Metrics implements tour.Observer on top of Prometheus collectors.
//
// Metrics exposed (all namespaced with "salesman_"):
//
//  1. searches_total (counter): finished searches.
//     Labels: strategy, outcome (found/unsolvable/aborted/error).
//  2. search_duration_seconds (histogram): wall time per search.
//     Labels: strategy.
//  3. search_steps_total (counter): search events summed over searches.
//     Labels: event (admission/rejection/completion/prune).
//  4. tour_improvements_total (counter): completions accepted as the new best,
//     counted live while the search runs.
//  5. best_tour_cost (gauge): cost of the last tour found.
//  6. graph_nodes (gauge): node count of the last graph searched.
//  7. searches_inflight (gauge): searches currently running.
//
// Safe for concurrent use: every collector is.
type Metrics struct {
	searches     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	steps        *prometheus.CounterVec
	improvements prometheus.Counter
	bestCost     prometheus.Gauge
	nodes        prometheus.Gauge
	inflight     prometheus.Gauge
}

var _ tour.Observer = (*Metrics)(nil)

// New creates and registers all collectors with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "searches_total",
			Help:      "Finished tour searches by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a tour search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 8), // 100µs to 1000s
		}, []string{"strategy"}),
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_steps_total",
			Help:      "Search events summed over all searches",
		}, []string{"event"}),
		improvements: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tour_improvements_total",
			Help:      "Completed tours accepted as the new best",
		}),
		bestCost: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "best_tour_cost",
			Help:      "Cost of the last tour found",
		}),
		nodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_nodes",
			Help:      "Node count of the last graph searched",
		}),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "searches_inflight",
			Help:      "Searches currently running",
		}),
	}
}

// SearchStarted implements tour.Observer.
func (m *Metrics) SearchStarted(_ tour.Strategy, nodes int) {
	m.inflight.Inc()
	m.nodes.Set(float64(nodes))
}

// TourImproved implements tour.Observer.
func (m *Metrics) TourImproved(int64) {
	m.improvements.Inc()
}

// SearchFinished implements tour.Observer.
func (m *Metrics) SearchFinished(res tour.Result, err error) {
	m.inflight.Dec()
	strategy := res.Strategy.String()
	m.searches.WithLabelValues(strategy, Outcome(res, err)).Inc()
	m.duration.WithLabelValues(strategy).Observe(res.Stats.Elapsed.Seconds())

	m.steps.WithLabelValues("admission").Add(float64(res.Stats.Admissions))
	m.steps.WithLabelValues("rejection").Add(float64(res.Stats.Rejections))
	m.steps.WithLabelValues("completion").Add(float64(res.Stats.Completions))
	m.steps.WithLabelValues("prune").Add(float64(res.Stats.Prunes))
	if err == nil && res.Found {
		m.bestCost.Set(float64(res.Cost))
	}
}

// Outcome classifies a finished search for the "outcome" label.
func Outcome(res tour.Result, err error) string {
	switch {
	case err == nil && res.Found:
		return OutcomeFound
	case err == nil:
		return OutcomeUnsolvable
	case errors.Is(err, tour.ErrTimeLimit),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return OutcomeAborted
	default:
		return OutcomeError
	}
}

// WriteText writes every metric family of g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// Summary renders the headline numbers of res for log lines.
func Summary(res tour.Result) []any {
	return []any{
		"strategy", res.Strategy.String(),
		"found", res.Found,
		"cost", res.Cost,
		"admissions", res.Stats.Admissions,
		"completions", res.Stats.Completions,
		"prunes", res.Stats.Prunes,
		"elapsed", res.Stats.Elapsed,
	}
}
