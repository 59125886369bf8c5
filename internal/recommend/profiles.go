package recommend

// Scoring weight constants. Tuned against the catalog's 0-4 price levels
// and km-scale distances; the multipliers keep any single factor from
// dominating the additive total.
const (
	moodWeight            = 30.0
	interestWeight        = 20.0
	distanceCredit        = 20.0
	distancePenaltyPerKm  = 2.0
	budgetCredit          = 15.0
	budgetPenaltyPerLevel = 5.0
	transportBonus        = 10.0
	socialModeBonus       = 15.0
	socialTagBonus        = 5.0
	accessibilityBonus    = 10.0
	accessibilityPenalty  = 15.0
	foodTypeBonus         = 15.0
	ratingWeight          = 5.0
	timeOfDayBonus        = 10.0
)

type MoodProfile struct {
	Name        string
	Emoji       string
	Description string
	Categories  map[string]float64
	Keywords    []string
}

type InterestProfile struct {
	Name       string
	Icon       string
	Categories map[string]float64
	Keywords   []string
}

// EnergyProfile caps the comfortable travel radius for a tier.
type EnergyProfile struct {
	MaxDistanceKm float64
	ActivityLevel float64
}

type BudgetProfile struct {
	MaxPriceLevel int
}

type TransportProfile struct {
	MaxDistanceKm float64
	Weight        float64
}

type SocialProfile struct {
	Categories map[string]float64
	Keywords   []string
}

// Profiles holds every lookup table the engine consults. Built once at
// startup and passed by reference; never mutated afterwards.
type Profiles struct {
	Moods      map[string]MoodProfile
	Interests  map[string]InterestProfile
	Energy     map[string]EnergyProfile
	Budgets    map[string]BudgetProfile
	Transports map[string]TransportProfile
	Socials    map[string]SocialProfile
	TimeOfDay  map[string][]string
}

func DefaultProfiles() Profiles {
	return Profiles{
		Moods: map[string]MoodProfile{
			"happy": {
				Name: "Happy", Emoji: "😊", Description: "Feeling joyful and energetic",
				Categories: map[string]float64{"Cafe": 0.9, "Restaurant": 0.8, "Park": 0.7, "Entertainment": 0.6, "Shopping": 0.5},
				Keywords:   []string{"beautiful", "scenic", "vibrant", "colorful", "cheerful"},
			},
			"tired": {
				Name: "Tired", Emoji: "😴", Description: "Need rest and relaxation",
				Categories: map[string]float64{"Cafe": 0.9, "Temple": 0.8, "Park": 0.7, "Restaurant": 0.5},
				Keywords:   []string{"comfortable", "cozy", "peaceful", "quiet", "relaxing"},
			},
			"calm": {
				Name: "Calm", Emoji: "🌸", Description: "Seeking peace and tranquility",
				Categories: map[string]float64{"Temple": 0.9, "Park": 0.8, "Cafe": 0.8, "Restaurant": 0.5, "Shopping": 0.3},
				Keywords:   []string{"peaceful", "serene", "calm", "tranquil", "quiet"},
			},
			"romantic": {
				Name: "Romantic", Emoji: "😍", Description: "Looking for intimate experiences",
				Categories: map[string]float64{"Restaurant": 0.9, "Cafe": 0.8, "Park": 0.7, "Bar": 0.6, "Temple": 0.4},
				Keywords:   []string{"romantic", "intimate", "beautiful", "scenic", "cozy"},
			},
			"sad": {
				Name: "Sad", Emoji: "😔", Description: "Need comfort and healing",
				Categories: map[string]float64{"Park": 0.9, "Cafe": 0.8, "Temple": 0.7, "Restaurant": 0.6},
				Keywords:   []string{"comfortable", "peaceful", "quiet", "healing"},
			},
			"excited": {
				Name: "Excited", Emoji: "🤩", Description: "Ready for adventure and fun",
				Categories: map[string]float64{"Entertainment": 1.0, "Bar": 0.8, "Restaurant": 0.6, "Shopping": 0.5, "Park": 0.4},
				Keywords:   []string{"adventure", "thrilling", "exciting", "amazing", "lively"},
			},
		},
		Interests: map[string]InterestProfile{
			"eat": {
				Name: "Eat", Icon: "🍽️",
				Categories: map[string]float64{"Restaurant": 1.0, "Cafe": 0.7, "Bar": 0.5, "Fast Food": 0.6, "Shopping": 0.3},
				Keywords:   []string{"food", "delicious", "cuisine"},
			},
			"relax": {
				Name: "Relax", Icon: "🧘",
				Categories: map[string]float64{"Park": 0.9, "Cafe": 0.8, "Temple": 0.7, "Spa": 1.0},
				Keywords:   []string{"peaceful", "serene", "calm"},
			},
			"play": {
				Name: "Play", Icon: "🎮",
				Categories: map[string]float64{"Entertainment": 1.0, "Playground": 0.9, "Park": 0.6, "Gym": 0.5},
				Keywords:   []string{"fun", "games", "play"},
			},
			"sightseeing": {
				Name: "Sightseeing", Icon: "📸",
				Categories: map[string]float64{"Attraction": 1.0, "Temple": 0.8, "Museum": 0.9, "Park": 0.7},
				Keywords:   []string{"beautiful", "scenic", "view"},
			},
			"nature": {
				Name: "Nature", Icon: "🌳",
				Categories: map[string]float64{"Park": 1.0, "Garden": 0.9, "Zoo": 0.7, "Trail": 0.8},
				Keywords:   []string{"nature", "green", "outdoor"},
			},
			"sports": {
				Name: "Sports", Icon: "⚽",
				Categories: map[string]float64{"Gym": 1.0, "Stadium": 0.9, "Sports Center": 0.9, "Park": 0.6},
				Keywords:   []string{"sports", "exercise", "active"},
			},
			"events": {
				Name: "Events", Icon: "🎉",
				Categories: map[string]float64{"Entertainment": 1.0, "Bar": 0.8, "Concert Hall": 0.9, "Theater": 0.9},
				Keywords:   []string{"live", "music", "popular"},
			},
		},
		Energy: map[string]EnergyProfile{
			"very_low":  {MaxDistanceKm: 1, ActivityLevel: 0.2},
			"low":       {MaxDistanceKm: 2, ActivityLevel: 0.4},
			"medium":    {MaxDistanceKm: 5, ActivityLevel: 0.6},
			"high":      {MaxDistanceKm: 10, ActivityLevel: 0.8},
			"very_high": {MaxDistanceKm: 20, ActivityLevel: 1.0},
		},
		Budgets: map[string]BudgetProfile{
			"low":    {MaxPriceLevel: 1},
			"medium": {MaxPriceLevel: 2},
			"high":   {MaxPriceLevel: 3},
		},
		Transports: map[string]TransportProfile{
			"walk": {MaxDistanceKm: 2, Weight: 1.0},
			"bike": {MaxDistanceKm: 5, Weight: 0.8},
			"car":  {MaxDistanceKm: 20, Weight: 0.6},
			"uber": {MaxDistanceKm: 10, Weight: 0.7},
		},
		Socials: map[string]SocialProfile{
			"solo": {
				Categories: map[string]float64{"Temple": 0.9, "Cafe": 0.8, "Park": 0.7},
				Keywords:   []string{"peaceful", "quiet", "cozy"},
			},
			"friends": {
				Categories: map[string]float64{"Restaurant": 0.9, "Shopping": 0.8, "Bar": 0.8, "Entertainment": 0.8},
				Keywords:   []string{"lively", "fun", "social"},
			},
			"family": {
				Categories: map[string]float64{"Park": 0.9, "Temple": 0.8, "Restaurant": 0.6, "Playground": 0.9},
				Keywords:   []string{"family", "safe", "comfortable"},
			},
			"date": {
				Categories: map[string]float64{"Restaurant": 0.9, "Cafe": 0.8, "Park": 0.6},
				Keywords:   []string{"romantic", "intimate", "beautiful"},
			},
		},
		TimeOfDay: map[string][]string{
			"morning":   {"Cafe", "Park", "Temple"},
			"midday":    {"Restaurant", "Cafe", "Shopping"},
			"afternoon": {"Park", "Attraction", "Shopping", "Cafe"},
			"evening":   {"Restaurant", "Bar", "Entertainment"},
			"night":     {"Bar", "Entertainment"},
		},
	}
}

// foodCategories are the categories the food-type term applies to.
var foodCategories = map[string]bool{
	"Restaurant": true,
	"Cafe":       true,
	"Bar":        true,
	"Fast Food":  true,
}
