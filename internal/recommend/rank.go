package recommend

import (
	"errors"
	"sort"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
)

const (
	defaultTopN = 6
	// Randomization factor range [0.9, 1.1]: fresh results across
	// identical requests without letting noise invert a clear gap.
	randomFactorMin    = 0.9
	randomFactorSpread = 0.2
	// Chance of rotating the top pick to the end of the list.
	rotateChance = 0.3
)

// ScoredPlace is a catalog place with its computed score attached.
// BaseScore is the pre-randomization value, kept for debugging and tests.
type ScoredPlace struct {
	Place          db_models.Place
	DistanceMeters float64
	Score          float64
	BaseScore      float64
	MatchReason    string
}

// Ranker scores, randomizes and orders a catalog snapshot. The Rand
// source is mandatory: without it the anti-staleness randomization would
// silently degrade to a fixed stream.
type Ranker struct {
	engine *Engine
	rng    Rand
	topN   int
}

func NewRanker(engine *Engine, rng Rand) (*Ranker, error) {
	if engine == nil {
		return nil, errors.New("recommend: ranker needs an engine")
	}
	if rng == nil {
		return nil, errors.New("recommend: ranker needs a random source")
	}
	return &Ranker{engine: engine, rng: rng, topN: defaultTopN}, nil
}

// ScoreAll scores every place and returns the full list sorted by final
// score descending, ties broken by ascending distance. The randomization
// factor is re-sampled per place on every call.
func (r *Ranker) ScoreAll(places []db_models.Place, user Point, prefs Preferences) []ScoredPlace {
	scored := make([]ScoredPlace, 0, len(places))
	for _, place := range places {
		dist := DistanceMeters(user, Point{Latitude: place.Latitude, Longitude: place.Longitude})
		base := r.engine.Score(place, dist, prefs)
		factor := randomFactorMin + r.rng.Float64()*randomFactorSpread
		scored = append(scored, ScoredPlace{
			Place:          place,
			DistanceMeters: dist,
			Score:          base * factor,
			BaseScore:      base,
			MatchReason:    r.engine.MatchReason(place, dist, prefs),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].DistanceMeters < scored[j].DistanceMeters
	})
	return scored
}

// Rank returns the top-N scored places. With a fixed small probability
// the first element is rotated to the end, so repeated identical requests
// occasionally surface the runner-up first.
func (r *Ranker) Rank(places []db_models.Place, user Point, prefs Preferences) []ScoredPlace {
	return r.Top(r.ScoreAll(places, user, prefs))
}

// Top truncates an already-scored list to top-N and applies the
// occasional variety rotation.
func (r *Ranker) Top(scored []ScoredPlace) []ScoredPlace {
	top := scored
	if len(top) > r.topN {
		top = top[:r.topN]
	}
	if len(top) > 1 && r.rng.Float64() < rotateChance {
		rotated := make([]ScoredPlace, 0, len(top))
		rotated = append(rotated, top[1:]...)
		rotated = append(rotated, top[0])
		top = rotated
	}
	return top
}

// GroupByCategory partitions a scored list for category-browsing
// consumers, preserving the incoming order within each group.
func GroupByCategory(scored []ScoredPlace) map[string][]ScoredPlace {
	groups := make(map[string][]ScoredPlace)
	for _, s := range scored {
		groups[s.Place.Category] = append(groups[s.Place.Category], s)
	}
	return groups
}
