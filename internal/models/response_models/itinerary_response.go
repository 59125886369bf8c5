package response_models

type ItineraryStop struct {
	Place               ScoredPlace `json:"place"`
	TimeEstimateMinutes int         `json:"timeEstimateMinutes"`
	CostEstimate        float64     `json:"costEstimate"`
	StepDescription     string      `json:"stepDescription"`
}

type Itinerary struct {
	Stops               []ItineraryStop `json:"stops"`
	TotalTimeMinutes    int             `json:"totalTimeMinutes"`
	TotalCost           float64         `json:"totalCost"`
	TotalDistanceMeters float64         `json:"totalDistanceMeters"`
}
