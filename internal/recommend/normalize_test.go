package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

func floatPtr(v float64) *float64 { return &v }

func TestNormalize_RequiresMood(t *testing.T) {
	profiles := DefaultProfiles()

	_, err := Normalize(RawPreferences{}, profiles)
	assert.ErrorIs(t, err, utils.ErrMoodRequired)

	_, err = Normalize(RawPreferences{Mood: "   "}, profiles)
	assert.ErrorIs(t, err, utils.ErrMoodRequired)

	_, err = Normalize(RawPreferences{Mood: "grumpy"}, profiles)
	assert.ErrorIs(t, err, utils.ErrInvalidMood)
}

func TestNormalize_LowercasesAndDefaults(t *testing.T) {
	profiles := DefaultProfiles()

	prefs, err := Normalize(RawPreferences{
		Mood:      "  HAPPY ",
		Interests: []string{"Eat", " RELAX ", ""},
		Transport: "Walk",
		FoodTypes: []string{"Indian"},
	}, profiles)
	require.NoError(t, err)

	assert.Equal(t, "happy", prefs.Mood)
	assert.Equal(t, []string{"eat", "relax"}, prefs.Interests)
	assert.Equal(t, "walk", prefs.Transport)
	assert.Equal(t, []string{"indian"}, prefs.FoodTypes)
	assert.Equal(t, "solo", prefs.SocialMode)
	assert.Equal(t, "medium", prefs.EnergyTier)
	assert.Equal(t, "medium", prefs.BudgetTier)
}

func TestNormalize_EnergyTiers(t *testing.T) {
	profiles := DefaultProfiles()
	cases := []struct {
		level float64
		tier  string
	}{
		{0, "very_low"},
		{19.9, "very_low"},
		{20, "low"},
		{39.9, "low"},
		{40, "medium"},
		{59.9, "medium"},
		{60, "high"},
		{79.9, "high"},
		{80, "very_high"},
		{100, "very_high"},
	}
	for _, tc := range cases {
		prefs, err := Normalize(RawPreferences{Mood: "calm", EnergyLevel: floatPtr(tc.level)}, profiles)
		require.NoError(t, err)
		assert.Equalf(t, tc.tier, prefs.EnergyTier, "energy level %.1f", tc.level)
	}
}

func TestNormalize_BudgetTiers(t *testing.T) {
	profiles := DefaultProfiles()
	cases := []struct {
		amount float64
		tier   string
	}{
		{0, "low"},
		{19.9, "low"},
		{20, "medium"},
		{99.9, "medium"},
		{100, "high"},
		{500, "high"},
	}
	for _, tc := range cases {
		prefs, err := Normalize(RawPreferences{Mood: "calm", Budget: floatPtr(tc.amount)}, profiles)
		require.NoError(t, err)
		assert.Equalf(t, tc.tier, prefs.BudgetTier, "budget %.1f", tc.amount)
	}
}
