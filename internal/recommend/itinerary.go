package recommend

import "fmt"

// Per-stop visit durations in minutes, keyed by category.
var stopDurationMinutes = map[string]int{
	"Restaurant":    60,
	"Cafe":          30,
	"Bar":           60,
	"Park":          45,
	"Temple":        30,
	"Shopping":      60,
	"Entertainment": 90,
	"Attraction":    60,
}

const defaultStopMinutes = 45

// Per-stop cost estimates keyed by price level.
var stopCostByPriceLevel = map[int]float64{
	0: 0,
	1: 10,
	2: 25,
	3: 50,
	4: 80,
}

// Categories that cost nothing to visit regardless of price level.
var freeCategories = map[string]bool{
	"Park":   true,
	"Temple": true,
}

type ItineraryStop struct {
	Place               ScoredPlace
	TimeEstimateMinutes int
	CostEstimate        float64
	StepDescription     string
}

type Itinerary struct {
	Stops               []ItineraryStop
	TotalTimeMinutes    int
	TotalCost           float64
	TotalDistanceMeters float64
}

// BuildItinerary derives an ordered multi-stop plan from an already
// rank-sorted slice. Time scales up for groups of friends and with high
// energy, down with low energy; cost scales for friends and is zero for
// free categories.
func BuildItinerary(places []ScoredPlace, prefs Preferences) Itinerary {
	timeScale := 1.0
	costScale := 1.0
	if prefs.SocialMode == "friends" {
		timeScale = 1.5
		costScale = 1.5
	}
	switch prefs.EnergyTier {
	case "very_low", "low":
		timeScale *= 0.7
	case "high", "very_high":
		timeScale *= 1.3
	}

	it := Itinerary{Stops: make([]ItineraryStop, 0, len(places))}
	for i, sp := range places {
		minutes, ok := stopDurationMinutes[sp.Place.Category]
		if !ok {
			minutes = defaultStopMinutes
		}
		minutes = int(float64(minutes) * timeScale)

		cost := 0.0
		if !freeCategories[sp.Place.Category] {
			cost = stopCostByPriceLevel[sp.Place.PriceLevel] * costScale
		}

		it.Stops = append(it.Stops, ItineraryStop{
			Place:               sp,
			TimeEstimateMinutes: minutes,
			CostEstimate:        cost,
			StepDescription:     stepDescription(i, len(places), sp),
		})
		it.TotalTimeMinutes += minutes
		it.TotalCost += cost

		if i > 0 {
			prev := places[i-1]
			it.TotalDistanceMeters += DistanceMeters(
				Point{Latitude: prev.Place.Latitude, Longitude: prev.Place.Longitude},
				Point{Latitude: sp.Place.Latitude, Longitude: sp.Place.Longitude},
			)
		}
	}
	return it
}

func stepDescription(i, total int, sp ScoredPlace) string {
	switch {
	case i == 0:
		return fmt.Sprintf("Start at %s", sp.Place.Name)
	case i == total-1:
		return fmt.Sprintf("Finally, wrap up at %s", sp.Place.Name)
	default:
		return fmt.Sprintf("Then head to %s", sp.Place.Name)
	}
}
