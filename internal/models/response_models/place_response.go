package response_models

type Place struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	Rating               float64  `json:"rating"`
	PriceLevel           int      `json:"priceLevel"`
	Tags                 []string `json:"tags"`
	TransportModes       []string `json:"transportModes"`
	SocialModes          []string `json:"socialModes"`
	FoodTypes            []string `json:"foodTypes"`
	WheelchairAccessible bool     `json:"wheelchairAccessible"`
	PetFriendly          bool     `json:"petFriendly"`
	KidFriendly          bool     `json:"kidFriendly"`
	Address              string   `json:"address,omitempty"`
	OpeningHours         string   `json:"openingHours,omitempty"`
	DistanceMeters       float64  `json:"distanceMeters,omitempty"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}
