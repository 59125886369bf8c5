package services

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/models/response_models"
	"github.com/rhidhanya/nearbynomad/internal/recommend"
	"github.com/rhidhanya/nearbynomad/internal/repositories"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

type RecommendationServiceInterface interface {
	GetRecommendations(ctx context.Context, req request_models.RecommendationRequest) (*response_models.RecommendationResult, error)
	ScorePlace(ctx context.Context, req request_models.ScoreRequest) (*response_models.ScoreResult, error)
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.Itinerary, error)
	GenerateSurprise(ctx context.Context, req request_models.RecommendationRequest) ([]response_models.ScoredPlace, error)
	TimeBased(ctx context.Context, lat, lng float64) (*response_models.TimeBasedResult, error)
	MoodProfiles() []response_models.MoodProfile
	InterestMappings() map[string]response_models.InterestMapping
}

type RecommendationService struct {
	placeRepo repositories.PlaceRepository
	profiles  recommend.Profiles
	engine    *recommend.Engine
	ranker    *recommend.Ranker
	surprise  *recommend.SurprisePicker
}

func NewRecommendationService(
	placeRepo repositories.PlaceRepository,
	profiles recommend.Profiles,
	engine *recommend.Engine,
	ranker *recommend.Ranker,
	surprise *recommend.SurprisePicker,
) RecommendationServiceInterface {
	return &RecommendationService{
		placeRepo: placeRepo,
		profiles:  profiles,
		engine:    engine,
		ranker:    ranker,
		surprise:  surprise,
	}
}

func (s *RecommendationService) GetRecommendations(ctx context.Context, req request_models.RecommendationRequest) (*response_models.RecommendationResult, error) {
	prefs, err := recommend.Normalize(req.Preferences.ToRaw(), s.profiles)
	if err != nil {
		return nil, err
	}

	user := recommend.Point{Latitude: req.UserLocation.Latitude, Longitude: req.UserLocation.Longitude}
	places, err := s.loadCatalog(ctx, user, req.RadiusMeters, prefs.EnergyTier)
	if err != nil {
		return nil, err
	}

	result := &response_models.RecommendationResult{
		Recommendations: []response_models.ScoredPlace{},
		TotalPlaces:     len(places),
		GeneratedAt:     utils.FormatRFC3339(time.Now()),
	}
	// Empty catalog is a user-visible "no places found" state, not an error.
	if len(places) == 0 {
		return result, nil
	}

	full := s.ranker.ScoreAll(places, user, prefs)
	for _, sp := range s.ranker.Top(full) {
		result.Recommendations = append(result.Recommendations, toScoredPlaceResponse(sp))
	}

	result.ByCategory = make(map[string][]response_models.ScoredPlace)
	for category, group := range recommend.GroupByCategory(full) {
		for _, sp := range group {
			result.ByCategory[category] = append(result.ByCategory[category], toScoredPlaceResponse(sp))
		}
	}

	return result, nil
}

func (s *RecommendationService) ScorePlace(ctx context.Context, req request_models.ScoreRequest) (*response_models.ScoreResult, error) {
	prefs, err := recommend.Normalize(req.Preferences.ToRaw(), s.profiles)
	if err != nil {
		return nil, err
	}

	place, err := s.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		log.Printf("Error fetching place: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	user := recommend.Point{Latitude: req.UserLocation.Latitude, Longitude: req.UserLocation.Longitude}
	dist := recommend.DistanceMeters(user, recommend.Point{Latitude: place.Latitude, Longitude: place.Longitude})
	breakdown := s.engine.ScoreBreakdown(*place, dist, prefs)

	return &response_models.ScoreResult{
		Place:       place.Name,
		Score:       breakdown.Total,
		MatchReason: s.engine.MatchReason(*place, dist, prefs),
		Breakdown:   breakdown,
	}, nil
}

func (s *RecommendationService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.Itinerary, error) {
	prefs, err := recommend.Normalize(req.Preferences.ToRaw(), s.profiles)
	if err != nil {
		return nil, err
	}

	if len(req.PlaceIDs) == 0 {
		return nil, utils.ErrInvalidInput
	}
	places, err := s.placeRepo.GetByIDs(ctx, req.PlaceIDs)
	if err != nil {
		log.Printf("Error fetching itinerary places: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if len(places) == 0 {
		return nil, utils.ErrPlaceNotFound
	}

	user := recommend.Point{Latitude: req.UserLocation.Latitude, Longitude: req.UserLocation.Longitude}
	stops := make([]recommend.ScoredPlace, 0, len(places))
	for _, place := range places {
		dist := recommend.DistanceMeters(user, recommend.Point{Latitude: place.Latitude, Longitude: place.Longitude})
		stops = append(stops, recommend.ScoredPlace{Place: place, DistanceMeters: dist})
	}

	it := recommend.BuildItinerary(stops, prefs)

	out := &response_models.Itinerary{
		Stops:               make([]response_models.ItineraryStop, 0, len(it.Stops)),
		TotalTimeMinutes:    it.TotalTimeMinutes,
		TotalCost:           it.TotalCost,
		TotalDistanceMeters: it.TotalDistanceMeters,
	}
	for _, stop := range it.Stops {
		out.Stops = append(out.Stops, response_models.ItineraryStop{
			Place:               toScoredPlaceResponse(stop.Place),
			TimeEstimateMinutes: stop.TimeEstimateMinutes,
			CostEstimate:        stop.CostEstimate,
			StepDescription:     stop.StepDescription,
		})
	}
	return out, nil
}

func (s *RecommendationService) GenerateSurprise(ctx context.Context, req request_models.RecommendationRequest) ([]response_models.ScoredPlace, error) {
	prefs, err := recommend.Normalize(req.Preferences.ToRaw(), s.profiles)
	if err != nil {
		return nil, err
	}

	user := recommend.Point{Latitude: req.UserLocation.Latitude, Longitude: req.UserLocation.Longitude}
	places, err := s.loadCatalog(ctx, user, req.RadiusMeters, prefs.EnergyTier)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return []response_models.ScoredPlace{}, nil
	}

	ranked := s.ranker.ScoreAll(places, user, prefs)
	picks := s.surprise.Pick(ranked)

	out := make([]response_models.ScoredPlace, 0, len(picks))
	for _, sp := range picks {
		out = append(out, toScoredPlaceResponse(sp))
	}
	return out, nil
}

// timeBasedPreset drives the time-based endpoint: a canned preference
// profile per hour bucket.
type timeBasedPreset struct {
	mood        string
	interests   []string
	energyLevel float64
	description string
}

var timeBasedPresets = map[string]timeBasedPreset{
	"morning":   {mood: "calm", interests: []string{"relax", "eat"}, energyLevel: 40, description: "Morning recommendations"},
	"midday":    {mood: "happy", interests: []string{"eat", "sightseeing"}, energyLevel: 70, description: "Lunch time recommendations"},
	"afternoon": {mood: "calm", interests: []string{"relax", "nature"}, energyLevel: 50, description: "Afternoon recommendations"},
	"evening":   {mood: "romantic", interests: []string{"eat", "relax"}, energyLevel: 60, description: "Evening recommendations"},
	"night":     {mood: "excited", interests: []string{"events", "play"}, energyLevel: 80, description: "Night recommendations"},
}

func (s *RecommendationService) TimeBased(ctx context.Context, lat, lng float64) (*response_models.TimeBasedResult, error) {
	now := time.Now()
	preset := timeBasedPresets[utils.HourBucket(now)]

	energy := preset.energyLevel
	prefs, err := recommend.Normalize(recommend.RawPreferences{
		Mood:        preset.mood,
		Interests:   preset.interests,
		EnergyLevel: &energy,
	}, s.profiles)
	if err != nil {
		return nil, err
	}

	user := recommend.Point{Latitude: lat, Longitude: lng}
	places, err := s.loadCatalog(ctx, user, 0, prefs.EnergyTier)
	if err != nil {
		return nil, err
	}

	result := &response_models.TimeBasedResult{
		Recommendations: []response_models.ScoredPlace{},
		Description:     preset.description,
		CurrentHour:     now.Hour(),
	}
	top := s.ranker.Top(s.ranker.ScoreAll(places, user, prefs))
	if len(top) > 5 {
		top = top[:5]
	}
	for _, sp := range top {
		result.Recommendations = append(result.Recommendations, toScoredPlaceResponse(sp))
	}
	return result, nil
}

func (s *RecommendationService) MoodProfiles() []response_models.MoodProfile {
	out := make([]response_models.MoodProfile, 0, len(s.profiles.Moods))
	for id, mood := range s.profiles.Moods {
		out = append(out, response_models.MoodProfile{
			ID:          id,
			Name:        mood.Name,
			Emoji:       mood.Emoji,
			Description: mood.Description,
			Preferences: topCategories(mood.Categories),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *RecommendationService) InterestMappings() map[string]response_models.InterestMapping {
	out := make(map[string]response_models.InterestMapping, len(s.profiles.Interests))
	for id, interest := range s.profiles.Interests {
		out[id] = response_models.InterestMapping{
			Name:       interest.Name,
			Icon:       interest.Icon,
			Categories: interest.Categories,
		}
	}
	return out
}

// loadCatalog returns the catalog snapshot, optionally pre-filtered to a
// radius. The energy tier widens a too-tight radius so low-energy users
// still see their full comfortable range.
func (s *RecommendationService) loadCatalog(ctx context.Context, user recommend.Point, radiusMeters float64, energyTier string) ([]db_models.Place, error) {
	places, err := s.placeRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error loading place catalog: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if radiusMeters <= 0 {
		return places, nil
	}

	effective := radiusMeters
	if energy, ok := s.profiles.Energy[energyTier]; ok {
		if maxMeters := energy.MaxDistanceKm * 1000; maxMeters > effective {
			effective = maxMeters
		}
	}

	filtered := places[:0:0]
	for _, place := range places {
		dist := recommend.DistanceMeters(user, recommend.Point{Latitude: place.Latitude, Longitude: place.Longitude})
		if dist <= effective {
			filtered = append(filtered, place)
		}
	}
	return filtered, nil
}

func topCategories(weights map[string]float64) []string {
	type entry struct {
		category string
		weight   float64
	}
	entries := make([]entry, 0, len(weights))
	for c, w := range weights {
		if w >= 0.5 {
			entries = append(entries, entry{c, w})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].category < entries[j].category
	})
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.category)
	}
	return out
}

func toScoredPlaceResponse(sp recommend.ScoredPlace) response_models.ScoredPlace {
	return response_models.ScoredPlace{
		ID:                   sp.Place.ID.String(),
		Name:                 sp.Place.Name,
		Category:             sp.Place.Category,
		Latitude:             sp.Place.Latitude,
		Longitude:            sp.Place.Longitude,
		Rating:               sp.Place.Rating,
		PriceLevel:           sp.Place.PriceLevel,
		Tags:                 sp.Place.Tags,
		Address:              sp.Place.Address,
		DistanceMeters:       sp.DistanceMeters,
		Score:                sp.Score,
		BaseScore:            sp.BaseScore,
		MatchReason:          sp.MatchReason,
		WheelchairAccessible: sp.Place.WheelchairAccessible,
		PetFriendly:          sp.Place.PetFriendly,
		KidFriendly:          sp.Place.KidFriendly,
	}
}
