package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
)

// scriptedRand replays a fixed sequence of values, cycling when exhausted.
type scriptedRand struct {
	values []float64
	i      int
}

func (s *scriptedRand) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func testCatalog() []db_models.Place {
	return []db_models.Place{
		{Name: "Cafe A", Category: "Cafe", Latitude: 12.9730, Longitude: 77.5930, Rating: 4.5, PriceLevel: 1, TransportModes: []string{"walk"}, SocialModes: []string{"solo"}},
		{Name: "Restaurant B", Category: "Restaurant", Latitude: 12.9740, Longitude: 77.5940, Rating: 4.2, PriceLevel: 2, TransportModes: []string{"walk"}, SocialModes: []string{"solo"}},
		{Name: "Park C", Category: "Park", Latitude: 12.9750, Longitude: 77.5950, Rating: 4.0, PriceLevel: 0, TransportModes: []string{"walk"}, SocialModes: []string{"solo"}},
		{Name: "Bar D", Category: "Bar", Latitude: 12.9760, Longitude: 77.5960, Rating: 3.5, PriceLevel: 3, TransportModes: []string{"car"}, SocialModes: []string{"friends"}},
		{Name: "Temple E", Category: "Temple", Latitude: 12.9770, Longitude: 77.5970, Rating: 4.8, PriceLevel: 0, TransportModes: []string{"walk"}, SocialModes: []string{"solo"}},
		{Name: "Mall F", Category: "Shopping", Latitude: 12.9780, Longitude: 77.5980, Rating: 3.9, PriceLevel: 2, TransportModes: []string{"car"}, SocialModes: []string{"friends"}},
		{Name: "Arcade G", Category: "Entertainment", Latitude: 12.9790, Longitude: 77.5990, Rating: 4.1, PriceLevel: 2, TransportModes: []string{"car"}, SocialModes: []string{"friends"}},
	}
}

var testUser = Point{Latitude: 12.9720, Longitude: 77.5920}

func TestNewRanker_RejectsNilInputs(t *testing.T) {
	e := newTestEngine()

	_, err := NewRanker(nil, NewSeededRand(1))
	assert.Error(t, err)
	_, err = NewRanker(e, nil)
	assert.Error(t, err)
	_, err = NewRanker(e, NewSeededRand(1))
	assert.NoError(t, err)
}

func TestScoreAll_SortedByScoreDescending(t *testing.T) {
	r, err := NewRanker(newTestEngine(), NewSeededRand(42))
	require.NoError(t, err)

	scored := r.ScoreAll(testCatalog(), testUser, basePrefs())
	require.Len(t, scored, len(testCatalog()))
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestScoreAll_RandomFactorStaysWithinBand(t *testing.T) {
	r, err := NewRanker(newTestEngine(), NewSeededRand(7))
	require.NoError(t, err)

	for _, sp := range r.ScoreAll(testCatalog(), testUser, basePrefs()) {
		if sp.BaseScore == 0 {
			assert.Zero(t, sp.Score)
			continue
		}
		factor := sp.Score / sp.BaseScore
		assert.GreaterOrEqual(t, factor, randomFactorMin)
		assert.LessOrEqual(t, factor, randomFactorMin+randomFactorSpread)
	}
}

func TestScoreAll_DeterministicForFixedSeed(t *testing.T) {
	prefs := basePrefs()
	run := func() []ScoredPlace {
		r, err := NewRanker(newTestEngine(), NewSeededRand(99))
		require.NoError(t, err)
		return r.ScoreAll(testCatalog(), testUser, prefs)
	}

	first := run()
	second := run()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Place.Name, second[i].Place.Name)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestScoreAll_TiesBrokenByDistance(t *testing.T) {
	// A zero-value rng pins every random factor to 0.9, so two identical
	// places at different distances tie on every term except distance.
	rng := &scriptedRand{values: []float64{0}}
	r, err := NewRanker(newTestEngine(), rng)
	require.NoError(t, err)

	places := []db_models.Place{
		{Name: "Far Twin", Category: "Observatory", Latitude: 12.9800, Longitude: 77.5920},
		{Name: "Near Twin", Category: "Observatory", Latitude: 12.9725, Longitude: 77.5920},
	}
	prefs := basePrefs()
	prefs.Interests = nil
	prefs.EnergyTier = "nonexistent" // disable the distance term

	scored := r.ScoreAll(places, testUser, prefs)
	require.Len(t, scored, 2)
	assert.Equal(t, "Near Twin", scored[0].Place.Name)
}

func TestTop_TruncatesToSix(t *testing.T) {
	rng := &scriptedRand{values: []float64{0.99}} // never rotate
	r, err := NewRanker(newTestEngine(), rng)
	require.NoError(t, err)

	top := r.Rank(testCatalog(), testUser, basePrefs())
	assert.Len(t, top, 6)
}

func TestTop_RotationMovesLeaderToEnd(t *testing.T) {
	r, err := NewRanker(newTestEngine(), &scriptedRand{values: []float64{0.1}})
	require.NoError(t, err)

	scored := []ScoredPlace{
		{Place: db_models.Place{Name: "first"}, Score: 90},
		{Place: db_models.Place{Name: "second"}, Score: 80},
		{Place: db_models.Place{Name: "third"}, Score: 70},
	}
	top := r.Top(scored)
	require.Len(t, top, 3)
	assert.Equal(t, "second", top[0].Place.Name)
	assert.Equal(t, "first", top[2].Place.Name)

	// Above the rotation chance the order is untouched.
	r2, err := NewRanker(newTestEngine(), &scriptedRand{values: []float64{0.9}})
	require.NoError(t, err)
	untouched := r2.Top(scored)
	assert.Equal(t, "first", untouched[0].Place.Name)
}

func TestGroupByCategory(t *testing.T) {
	scored := []ScoredPlace{
		{Place: db_models.Place{Name: "a", Category: "Cafe"}, Score: 90},
		{Place: db_models.Place{Name: "b", Category: "Park"}, Score: 80},
		{Place: db_models.Place{Name: "c", Category: "Cafe"}, Score: 70},
	}
	groups := GroupByCategory(scored)
	require.Len(t, groups, 2)
	require.Len(t, groups["Cafe"], 2)
	assert.Equal(t, "a", groups["Cafe"][0].Place.Name)
	assert.Equal(t, "c", groups["Cafe"][1].Place.Name)
	assert.Len(t, groups["Park"], 1)
}
