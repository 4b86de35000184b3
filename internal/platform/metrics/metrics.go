// Package metrics holds the Prometheus collectors of the solver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tour_solve_total",
		Help: "Solve requests by outcome (computed, cached, error)",
	}, []string{"outcome"})

	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tour_solve_duration_seconds",
		Help:    "Wall time of a hill-climbing run",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
	})

	RestartsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tour_hillclimb_restarts_total",
		Help: "Random restarts completed",
	})

	ImprovementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tour_hillclimb_improvements_total",
		Help: "Accepted improving swaps across all restarts",
	})

	BestDistance = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tour_best_distance",
		Help: "Distance of the most recent best tour per dataset",
	}, []string{"dataset"})
)
