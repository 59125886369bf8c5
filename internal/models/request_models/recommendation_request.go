package request_models

import "github.com/rhidhanya/nearbynomad/internal/recommend"

type UserLocation struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// PreferencesPayload is the raw UI form. Energy is the 0-100 slider value
// and budget the raw currency amount; the normalizer turns both into tiers.
type PreferencesPayload struct {
	Mood          string   `json:"mood"`
	Interests     []string `json:"interests"`
	EnergyLevel   *float64 `json:"energyLevel"`
	Budget        *float64 `json:"budget"`
	Transport     string   `json:"transport"`
	SocialMode    string   `json:"socialMode"`
	Accessibility []string `json:"accessibility"`
	FoodTypes     []string `json:"foodTypes"`
}

func (p PreferencesPayload) ToRaw() recommend.RawPreferences {
	return recommend.RawPreferences{
		Mood:          p.Mood,
		Interests:     p.Interests,
		EnergyLevel:   p.EnergyLevel,
		Budget:        p.Budget,
		Transport:     p.Transport,
		SocialMode:    p.SocialMode,
		Accessibility: p.Accessibility,
		FoodTypes:     p.FoodTypes,
	}
}

type RecommendationRequest struct {
	UserLocation UserLocation       `json:"userLocation" binding:"required"`
	Preferences  PreferencesPayload `json:"preferences" binding:"required"`
	RadiusMeters float64            `json:"radius"`
}

// ItineraryRequest references recommended places by id; the service
// resolves them in the given order.
type ItineraryRequest struct {
	PlaceIDs     []string           `json:"placeIds" binding:"required"`
	UserLocation UserLocation       `json:"userLocation"`
	Preferences  PreferencesPayload `json:"preferences"`
}

// ScoreRequest asks for the per-term breakdown of a single place.
type ScoreRequest struct {
	PlaceID      string             `json:"placeId" binding:"required"`
	UserLocation UserLocation       `json:"userLocation" binding:"required"`
	Preferences  PreferencesPayload `json:"preferences" binding:"required"`
}
