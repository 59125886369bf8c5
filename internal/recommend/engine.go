package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

// Engine computes the multi-factor recommendation score for a place.
// It is a pure function of (place, distance, preferences) plus the clock
// used for the time-of-day term; it holds no mutable state.
type Engine struct {
	profiles Profiles
	now      func() time.Time
}

func NewEngine(profiles Profiles) *Engine {
	return &Engine{profiles: profiles, now: time.Now}
}

// Breakdown carries the contribution of every scoring term. Total is the
// clamped sum; the individual terms are left unclamped.
type Breakdown struct {
	Mood          float64 `json:"mood"`
	Interest      float64 `json:"interest"`
	Distance      float64 `json:"distance"`
	Budget        float64 `json:"budget"`
	Transport     float64 `json:"transport"`
	Social        float64 `json:"social"`
	Accessibility float64 `json:"accessibility"`
	FoodTypes     float64 `json:"foodTypes"`
	Rating        float64 `json:"rating"`
	TimeOfDay     float64 `json:"timeOfDay"`
	Total         float64 `json:"total"`
}

// Score returns the clamped total for place at distanceMeters from the user.
func (e *Engine) Score(place db_models.Place, distanceMeters float64, prefs Preferences) float64 {
	return e.ScoreBreakdown(place, distanceMeters, prefs).Total
}

// ScoreBreakdown computes every term. Unknown moods, interests and
// categories contribute zero rather than failing: catalog categories are
// free-form strings from external sources.
func (e *Engine) ScoreBreakdown(place db_models.Place, distanceMeters float64, prefs Preferences) Breakdown {
	var b Breakdown
	distanceKm := distanceMeters / 1000

	if mood, ok := e.profiles.Moods[prefs.Mood]; ok {
		b.Mood = mood.Categories[place.Category] * moodWeight
	}

	// Additive across interests, uncapped: matching several interests at
	// once is exactly what should push a place up.
	for _, interest := range prefs.Interests {
		if ip, ok := e.profiles.Interests[interest]; ok {
			b.Interest += ip.Categories[place.Category] * interestWeight
		}
	}

	if energy, ok := e.profiles.Energy[prefs.EnergyTier]; ok {
		if distanceKm <= energy.MaxDistanceKm {
			b.Distance = distanceCredit * (1 - distanceKm/energy.MaxDistanceKm)
		} else {
			b.Distance = -(distanceKm - energy.MaxDistanceKm) * distancePenaltyPerKm
		}
	}

	if budget, ok := e.profiles.Budgets[prefs.BudgetTier]; ok {
		maxPrice := float64(budget.MaxPriceLevel)
		price := float64(place.PriceLevel)
		if price <= maxPrice {
			b.Budget = budgetCredit * (1 - price/maxPrice)
		} else {
			b.Budget = -(price - maxPrice) * budgetPenaltyPerLevel
		}
	}

	if transport, ok := e.profiles.Transports[prefs.Transport]; ok {
		if containsFold(place.TransportModes, prefs.Transport) && distanceKm <= transport.MaxDistanceKm {
			b.Transport = transportBonus * transport.Weight
		}
	}

	if social, ok := e.profiles.Socials[prefs.SocialMode]; ok {
		if containsFold(place.SocialModes, prefs.SocialMode) {
			b.Social = socialModeBonus
			b.Social += float64(countMatches(place.Tags, social.Keywords)) * socialTagBonus
		}
	}

	for _, need := range prefs.Accessibility {
		if accessibilitySatisfied(place, need) {
			b.Accessibility += accessibilityBonus
		} else {
			// Asymmetric on purpose: an unmet hard need pushes a place
			// down faster than a met one lifts it.
			b.Accessibility -= accessibilityPenalty
		}
	}

	if foodCategories[place.Category] && containsFold(prefs.Interests, "eat") {
		b.FoodTypes = float64(countMatches(place.FoodTypes, prefs.FoodTypes)) * foodTypeBonus
	}

	if place.Rating > 0 {
		b.Rating = (place.Rating - 3.0) * ratingWeight
	}

	if categories, ok := e.profiles.TimeOfDay[utils.HourBucket(e.now())]; ok {
		for _, c := range categories {
			if c == place.Category {
				b.TimeOfDay = timeOfDayBonus
				break
			}
		}
	}

	total := b.Mood + b.Interest + b.Distance + b.Budget + b.Transport +
		b.Social + b.Accessibility + b.FoodTypes + b.Rating + b.TimeOfDay
	// Floor at zero: a place is never anti-recommended, only ranked last.
	if total < 0 {
		total = 0
	}
	b.Total = total
	return b
}

// MatchReason derives a human-readable explanation from the terms that
// fired strongly, falling back to a generic line.
func (e *Engine) MatchReason(place db_models.Place, distanceMeters float64, prefs Preferences) string {
	var reasons []string
	distanceKm := distanceMeters / 1000

	if mood, ok := e.profiles.Moods[prefs.Mood]; ok && mood.Categories[place.Category] > 0.7 {
		reasons = append(reasons, fmt.Sprintf("Perfect for %s mood", prefs.Mood))
	}
	for _, interest := range prefs.Interests {
		if ip, ok := e.profiles.Interests[interest]; ok && ip.Categories[place.Category] > 0.7 {
			reasons = append(reasons, fmt.Sprintf("Matches your %s interest", interest))
		}
	}
	if energy, ok := e.profiles.Energy[prefs.EnergyTier]; ok && distanceKm <= energy.MaxDistanceKm {
		reasons = append(reasons, fmt.Sprintf("Perfect distance for %s energy", prefs.EnergyTier))
	}
	if social, ok := e.profiles.Socials[prefs.SocialMode]; ok && social.Categories[place.Category] > 0.7 {
		reasons = append(reasons, fmt.Sprintf("Great for %s visits", prefs.SocialMode))
	}
	if place.Rating > 4.0 {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f/5)", place.Rating))
	}

	if len(reasons) == 0 {
		return "Good match for your preferences"
	}
	return strings.Join(reasons, ", ")
}

func accessibilitySatisfied(place db_models.Place, need string) bool {
	switch need {
	case "wheelchair", "wheelchair_accessible":
		return place.WheelchairAccessible
	case "pets", "pet_friendly":
		return place.PetFriendly
	case "kids", "kid_friendly":
		return place.KidFriendly
	default:
		return false
	}
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func countMatches(values, wanted []string) int {
	n := 0
	for _, w := range wanted {
		if containsFold(values, w) {
			n++
		}
	}
	return n
}
