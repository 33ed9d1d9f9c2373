package services

import (
	"errors"

	"github.com/localnerve/octofit-tracker/internal/types"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	storeWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "store",
		Name:      "writes_total",
		Help:      "Store write operations by collection, operation and outcome.",
	}, []string{"kind", "op", "outcome"})
	seedRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "fixtures",
		Name:      "seed_runs_total",
		Help:      "Fixture loader runs by outcome.",
	}, []string{"outcome"})
	seededRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "octofit",
		Subsystem: "fixtures",
		Name:      "seeded_rows",
		Help:      "Rows per collection after the last successful fixture load.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(storeWrites, seedRuns, seededRows)
}

// outcome labels an error by its taxonomy type
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var custom *types.CustomError
	if errors.As(err, &custom) {
		return custom.Type
	}
	return "internal"
}

func recordWrite(kind Kind, op string, err error) {
	storeWrites.WithLabelValues(string(kind), op, outcome(err)).Inc()
}

func recordSeed(counts Counts, err error) {
	seedRuns.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return
	}
	seededRows.WithLabelValues(string(KindUsers)).Set(float64(counts.Users))
	seededRows.WithLabelValues(string(KindTeams)).Set(float64(counts.Teams))
	seededRows.WithLabelValues(string(KindActivities)).Set(float64(counts.Activities))
	seededRows.WithLabelValues(string(KindLeaderboard)).Set(float64(counts.Leaderboard))
	seededRows.WithLabelValues(string(KindWorkouts)).Set(float64(counts.Workouts))
}
