package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
)

func surprisePool() []ScoredPlace {
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	pool := make([]ScoredPlace, 0, len(names))
	for i, n := range names {
		pool = append(pool, ScoredPlace{
			Place: db_models.Place{Name: n},
			Score: float64(100 - i),
		})
	}
	return pool
}

func TestNewSurprisePicker_RejectsNilRand(t *testing.T) {
	_, err := NewSurprisePicker(nil)
	assert.Error(t, err)
}

func TestPick_ReturnsThreeWithReasonsFromPool(t *testing.T) {
	p, err := NewSurprisePicker(NewSeededRand(5))
	require.NoError(t, err)

	picks := p.Pick(surprisePool())
	require.Len(t, picks, 3)

	reasonSet := make(map[string]bool, len(surpriseReasons))
	for _, r := range surpriseReasons {
		reasonSet[r] = true
	}
	seen := make(map[string]bool)
	for _, pick := range picks {
		assert.True(t, reasonSet[pick.MatchReason], "reason %q not from the pool", pick.MatchReason)
		assert.False(t, seen[pick.Place.Name], "duplicate pick %q", pick.Place.Name)
		seen[pick.Place.Name] = true
	}
}

func TestPick_DifferentSeedsProduceDifferentSubsets(t *testing.T) {
	pool := surprisePool()
	subset := func(seed int64) []string {
		p, err := NewSurprisePicker(NewSeededRand(seed))
		require.NoError(t, err)
		var names []string
		for _, pick := range p.Pick(pool) {
			names = append(names, pick.Place.Name)
		}
		return names
	}

	distinct := make(map[string]bool)
	for seed := int64(1); seed <= 10; seed++ {
		key := ""
		for _, n := range subset(seed) {
			key += n
		}
		distinct[key] = true
	}
	assert.Greater(t, len(distinct), 1, "ten seeds all produced the same subset")
}

func TestPick_ShortListReturnsEverything(t *testing.T) {
	p, err := NewSurprisePicker(NewSeededRand(3))
	require.NoError(t, err)

	picks := p.Pick(surprisePool()[:2])
	assert.Len(t, picks, 2)
	assert.Empty(t, p.Pick(nil))
}

func TestPick_DoesNotMutateInput(t *testing.T) {
	pool := surprisePool()
	first := pool[0].Place.Name

	p, err := NewSurprisePicker(NewSeededRand(11))
	require.NoError(t, err)
	p.Pick(pool)

	assert.Equal(t, first, pool[0].Place.Name)
	assert.Empty(t, pool[0].MatchReason)
}
