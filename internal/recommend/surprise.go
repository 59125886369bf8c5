package recommend

import "errors"

const surpriseCount = 3

// Reasons attached to surprise picks. Chosen at random, on purpose
// unrelated to the score: "surprise" means score-independent.
var surpriseReasons = []string{
	"A wildcard pick just for you",
	"Something different to shake things up",
	"Trust us on this one",
	"A hidden gem worth a detour",
	"Because routine is overrated",
}

// SurprisePicker returns a random subset of an already-ranked list.
type SurprisePicker struct {
	rng Rand
}

func NewSurprisePicker(rng Rand) (*SurprisePicker, error) {
	if rng == nil {
		return nil, errors.New("recommend: surprise picker needs a random source")
	}
	return &SurprisePicker{rng: rng}, nil
}

// Pick shuffles a copy of ranked uniformly and returns the first three,
// each stamped with a randomly chosen reason.
func (s *SurprisePicker) Pick(ranked []ScoredPlace) []ScoredPlace {
	shuffled := make([]ScoredPlace, len(ranked))
	copy(shuffled, ranked)

	// Fisher-Yates driven by the injected source.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(s.rng.Float64() * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	n := surpriseCount
	if len(shuffled) < n {
		n = len(shuffled)
	}
	picks := shuffled[:n]
	for i := range picks {
		picks[i].MatchReason = surpriseReasons[int(s.rng.Float64()*float64(len(surpriseReasons)))]
	}
	return picks
}
