package recommend

import (
	"strings"

	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

// RawPreferences is the free-form input collected by the UI form. Energy
// arrives as a 0-100 slider value and budget as a currency amount; both
// are mapped onto fixed tiers here so raw values never reach the engine.
type RawPreferences struct {
	Mood          string
	Interests     []string
	EnergyLevel   *float64
	Budget        *float64
	Transport     string
	SocialMode    string
	Accessibility []string
	FoodTypes     []string
}

// Preferences is the canonical, tier-normalized form the engine consumes.
type Preferences struct {
	Mood          string
	Interests     []string
	EnergyTier    string
	BudgetTier    string
	Transport     string
	SocialMode    string
	Accessibility []string
	FoodTypes     []string
}

// Normalize validates raw preferences and maps them onto canonical tiers.
// Mood is the one required field; everything else falls back to defaults.
func Normalize(raw RawPreferences, profiles Profiles) (Preferences, error) {
	mood := strings.ToLower(strings.TrimSpace(raw.Mood))
	if mood == "" {
		return Preferences{}, utils.ErrMoodRequired
	}
	if _, ok := profiles.Moods[mood]; !ok {
		return Preferences{}, utils.ErrInvalidMood
	}

	prefs := Preferences{
		Mood:          mood,
		Interests:     lowerAll(raw.Interests),
		EnergyTier:    energyTier(raw.EnergyLevel),
		BudgetTier:    budgetTier(raw.Budget),
		Transport:     strings.ToLower(strings.TrimSpace(raw.Transport)),
		SocialMode:    strings.ToLower(strings.TrimSpace(raw.SocialMode)),
		Accessibility: lowerAll(raw.Accessibility),
		FoodTypes:     lowerAll(raw.FoodTypes),
	}
	if prefs.SocialMode == "" {
		prefs.SocialMode = "solo"
	}
	return prefs, nil
}

// energyTier maps a 0-100 slider value onto the five energy tiers.
func energyTier(level *float64) string {
	if level == nil {
		return "medium"
	}
	switch v := *level; {
	case v < 20:
		return "very_low"
	case v < 40:
		return "low"
	case v < 60:
		return "medium"
	case v < 80:
		return "high"
	default:
		return "very_high"
	}
}

// budgetTier maps a raw currency amount onto the three budget tiers.
func budgetTier(amount *float64) string {
	if amount == nil {
		return "medium"
	}
	switch v := *amount; {
	case v < 20:
		return "low"
	case v < 100:
		return "medium"
	default:
		return "high"
	}
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
