package request_models

type CreatePlaceRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Category             string   `json:"category" binding:"required"`
	Latitude             float64  `json:"latitude" binding:"required"`
	Longitude            float64  `json:"longitude" binding:"required"`
	Rating               float64  `json:"rating"`
	PriceLevel           int      `json:"priceLevel"`
	Tags                 []string `json:"tags"`
	TransportModes       []string `json:"transportModes"`
	SocialModes          []string `json:"socialModes"`
	FoodTypes            []string `json:"foodTypes"`
	WheelchairAccessible bool     `json:"wheelchairAccessible"`
	PetFriendly          bool     `json:"petFriendly"`
	KidFriendly          bool     `json:"kidFriendly"`
	Address              string   `json:"address"`
	OpeningHours         string   `json:"openingHours"`
}

type ImportCatalogRequest struct {
	Path string `json:"path" binding:"required"`
}
