package response_models

// ScoredPlace is one ranked recommendation as rendered to the client.
type ScoredPlace struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	Rating               float64  `json:"rating"`
	PriceLevel           int      `json:"priceLevel"`
	Tags                 []string `json:"tags"`
	Address              string   `json:"address,omitempty"`
	DistanceMeters       float64  `json:"distanceMeters"`
	Score                float64  `json:"score"`
	BaseScore            float64  `json:"baseScore"`
	MatchReason          string   `json:"matchReason"`
	WheelchairAccessible bool     `json:"wheelchairAccessible"`
	PetFriendly          bool     `json:"petFriendly"`
	KidFriendly          bool     `json:"kidFriendly"`
}

type RecommendationResult struct {
	Recommendations []ScoredPlace            `json:"recommendations"`
	ByCategory      map[string][]ScoredPlace `json:"byCategory,omitempty"`
	TotalPlaces     int                      `json:"totalPlaces"`
	GeneratedAt     string                   `json:"generatedAt"`
}

type TimeBasedResult struct {
	Recommendations []ScoredPlace `json:"recommendations"`
	Description     string        `json:"description"`
	CurrentHour     int           `json:"currentHour"`
}

type MoodProfile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Preferences []string `json:"preferences"`
}

type InterestMapping struct {
	Name       string             `json:"name"`
	Icon       string             `json:"icon"`
	Categories map[string]float64 `json:"categories"`
}
