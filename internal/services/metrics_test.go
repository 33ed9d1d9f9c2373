package services

import (
	"errors"
	"testing"

	"github.com/localnerve/octofit-tracker/internal/types"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeLabels(t *testing.T) {
	assert.Equal(t, "ok", outcome(nil))
	assert.Equal(t, types.TypeForeignKey, outcome(types.ForeignKey("x")))
	assert.Equal(t, types.TypeSeed, outcome(types.Seed("users", errors.New("x"))))
	assert.Equal(t, "internal", outcome(errors.New("x")))
}

func TestRecordWrite(t *testing.T) {
	c := storeWrites.WithLabelValues(string(KindWorkouts), "create", types.TypeValidation)
	before := promtest.ToFloat64(c)

	recordWrite(KindWorkouts, "create", types.Validation("bad"))

	assert.Equal(t, before+1, promtest.ToFloat64(c))
}

func TestRecordSeedSetsGauges(t *testing.T) {
	recordSeed(Counts{Users: 6, Teams: 2, Activities: 6, Leaderboard: 6, Workouts: 3}, nil)

	assert.Equal(t, float64(6), promtest.ToFloat64(seededRows.WithLabelValues(string(KindUsers))))
	assert.Equal(t, float64(3), promtest.ToFloat64(seededRows.WithLabelValues(string(KindWorkouts))))

	failed := promtest.ToFloat64(seedRuns.WithLabelValues(types.TypeSeed))
	recordSeed(Counts{}, types.Seed("users", errors.New("x")))
	assert.Equal(t, failed+1, promtest.ToFloat64(seedRuns.WithLabelValues(types.TypeSeed)))
	assert.Equal(t, float64(6), promtest.ToFloat64(seededRows.WithLabelValues(string(KindUsers))))
}

func TestUnparsableFixtureCountsAsFailedRun(t *testing.T) {
	failed := promtest.ToFloat64(seedRuns.WithLabelValues(types.TypeSeed))

	_, err := resetFrom(nil, []byte(`{"users": 5}`))
	assert.ErrorIs(t, err, types.ErrSeed)

	assert.Equal(t, failed+1, promtest.ToFloat64(seedRuns.WithLabelValues(types.TypeSeed)))
}
