package response_models

import "github.com/rhidhanya/nearbynomad/internal/recommend"

type ScoreResult struct {
	Place       string              `json:"place"`
	Score       float64             `json:"score"`
	MatchReason string              `json:"matchReason"`
	Breakdown   recommend.Breakdown `json:"breakdown"`
}
