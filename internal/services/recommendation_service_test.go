package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/recommend"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

// fakePlaceRepo is an in-memory PlaceRepository for service tests.
type fakePlaceRepo struct {
	places  []db_models.Place
	listErr error
}

func (f *fakePlaceRepo) CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error) {
	if place.ID == uuid.Nil {
		place.ID = uuid.New()
	}
	f.places = append(f.places, *place)
	return place.ID, nil
}

func (f *fakePlaceRepo) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	for _, p := range f.places {
		if p.ID.String() == id {
			place := p
			return &place, nil
		}
	}
	return nil, nil
}

func (f *fakePlaceRepo) GetByIDs(ctx context.Context, ids []string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, id := range ids {
		if p, err := f.GetByID(ctx, id); err == nil && p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) ListAll(ctx context.Context) ([]db_models.Place, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.places, nil
}

func (f *fakePlaceRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	return f.places, nil
}

func seedRepo() *fakePlaceRepo {
	repo := &fakePlaceRepo{}
	seed := []db_models.Place{
		{Name: "Cafe Aurora", Category: "Cafe", Latitude: 12.9730, Longitude: 77.5930, Rating: 4.5, PriceLevel: 1, TransportModes: []string{"walk"}, SocialModes: []string{"solo"}},
		{Name: "The Grand Table", Category: "Restaurant", Latitude: 12.9740, Longitude: 77.5940, Rating: 4.3, PriceLevel: 2, TransportModes: []string{"walk"}, SocialModes: []string{"solo", "date"}},
		{Name: "Willow Park", Category: "Park", Latitude: 12.9750, Longitude: 77.5950, Rating: 4.1, PriceLevel: 0, TransportModes: []string{"walk"}, SocialModes: []string{"solo", "family"}},
		{Name: "Neon Arcade", Category: "Entertainment", Latitude: 12.9760, Longitude: 77.5960, Rating: 4.0, PriceLevel: 2, TransportModes: []string{"car"}, SocialModes: []string{"friends"}},
	}
	for i := range seed {
		seed[i].ID = uuid.New()
		repo.places = append(repo.places, seed[i])
	}
	return repo
}

func newTestService(repo *fakePlaceRepo) RecommendationServiceInterface {
	profiles := recommend.DefaultProfiles()
	engine := recommend.NewEngine(profiles)
	ranker, err := recommend.NewRanker(engine, recommend.NewSeededRand(42))
	if err != nil {
		panic(err)
	}
	surprise, err := recommend.NewSurprisePicker(recommend.NewSeededRand(42))
	if err != nil {
		panic(err)
	}
	return NewRecommendationService(repo, profiles, engine, ranker, surprise)
}

func recommendationRequest() request_models.RecommendationRequest {
	return request_models.RecommendationRequest{
		UserLocation: request_models.UserLocation{Latitude: 12.9720, Longitude: 77.5920},
		Preferences:  request_models.PreferencesPayload{Mood: "happy", Interests: []string{"eat"}},
	}
}

func TestGetRecommendations_ReturnsRankedPlaces(t *testing.T) {
	svc := newTestService(seedRepo())

	result, err := svc.GetRecommendations(context.Background(), recommendationRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 4, result.TotalPlaces)
	require.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 6)
	for _, rec := range result.Recommendations {
		assert.NotEmpty(t, rec.Name)
		assert.NotEmpty(t, rec.MatchReason)
		assert.GreaterOrEqual(t, rec.Score, 0.0)
	}
	assert.NotEmpty(t, result.ByCategory)
	assert.NotEmpty(t, result.GeneratedAt)
}

func TestGetRecommendations_EmptyCatalogIsNotAnError(t *testing.T) {
	svc := newTestService(&fakePlaceRepo{})

	result, err := svc.GetRecommendations(context.Background(), recommendationRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Zero(t, result.TotalPlaces)
	assert.Empty(t, result.Recommendations)
}

func TestGetRecommendations_InvalidMoodRejected(t *testing.T) {
	svc := newTestService(seedRepo())

	req := recommendationRequest()
	req.Preferences.Mood = ""
	_, err := svc.GetRecommendations(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrMoodRequired)

	req.Preferences.Mood = "hangry"
	_, err = svc.GetRecommendations(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidMood)
}

func TestGetRecommendations_RepositoryFailureMappedToDatabaseError(t *testing.T) {
	svc := newTestService(&fakePlaceRepo{listErr: errors.New("connection refused")})

	_, err := svc.GetRecommendations(context.Background(), recommendationRequest())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetRecommendations_RadiusFilterRespectsEnergyRange(t *testing.T) {
	repo := seedRepo()
	// A place far outside any energy tier's comfortable range.
	far := db_models.Place{Name: "Distant Resort", Category: "Restaurant", Latitude: 13.5000, Longitude: 78.0000, Rating: 4.9}
	far.ID = uuid.New()
	repo.places = append(repo.places, far)

	svc := newTestService(repo)
	req := recommendationRequest()
	req.RadiusMeters = 500
	low := 10.0
	req.Preferences.EnergyLevel = &low // very_low: 1 km comfortable range

	result, err := svc.GetRecommendations(context.Background(), req)
	require.NoError(t, err)
	for _, rec := range result.Recommendations {
		assert.NotEqual(t, "Distant Resort", rec.Name)
	}
}

func TestScorePlace(t *testing.T) {
	repo := seedRepo()
	svc := newTestService(repo)

	req := request_models.ScoreRequest{
		PlaceID:      repo.places[0].ID.String(),
		UserLocation: request_models.UserLocation{Latitude: 12.9720, Longitude: 77.5920},
		Preferences:  request_models.PreferencesPayload{Mood: "happy", Interests: []string{"eat"}},
	}
	result, err := svc.ScorePlace(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Cafe Aurora", result.Place)
	assert.Equal(t, result.Breakdown.Total, result.Score)
	assert.NotEmpty(t, result.MatchReason)

	req.PlaceID = uuid.NewString()
	_, err = svc.ScorePlace(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestGenerateItinerary_PreservesRequestedOrder(t *testing.T) {
	repo := seedRepo()
	svc := newTestService(repo)

	ids := []string{repo.places[2].ID.String(), repo.places[0].ID.String(), repo.places[1].ID.String()}
	req := request_models.ItineraryRequest{
		PlaceIDs:     ids,
		UserLocation: request_models.UserLocation{Latitude: 12.9720, Longitude: 77.5920},
		Preferences:  request_models.PreferencesPayload{Mood: "happy"},
	}
	it, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, it.Stops, 3)

	assert.Equal(t, "Willow Park", it.Stops[0].Place.Name)
	assert.Equal(t, "Cafe Aurora", it.Stops[1].Place.Name)
	assert.Equal(t, "The Grand Table", it.Stops[2].Place.Name)
	assert.Contains(t, it.Stops[0].StepDescription, "Start at")
	assert.Contains(t, it.Stops[2].StepDescription, "Finally")
	assert.Greater(t, it.TotalTimeMinutes, 0)
	assert.Greater(t, it.TotalDistanceMeters, 0.0)
}

func TestGenerateItinerary_Validation(t *testing.T) {
	svc := newTestService(seedRepo())

	_, err := svc.GenerateItinerary(context.Background(), request_models.ItineraryRequest{
		Preferences: request_models.PreferencesPayload{Mood: "happy"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.GenerateItinerary(context.Background(), request_models.ItineraryRequest{
		PlaceIDs:    []string{uuid.NewString()},
		Preferences: request_models.PreferencesPayload{Mood: "happy"},
	})
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestGenerateSurprise(t *testing.T) {
	svc := newTestService(seedRepo())

	picks, err := svc.GenerateSurprise(context.Background(), recommendationRequest())
	require.NoError(t, err)
	require.Len(t, picks, 3)
	for _, pick := range picks {
		assert.NotEmpty(t, pick.MatchReason)
	}

	empty, err := newTestService(&fakePlaceRepo{}).GenerateSurprise(context.Background(), recommendationRequest())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTimeBased(t *testing.T) {
	svc := newTestService(seedRepo())

	result, err := svc.TimeBased(context.Background(), 12.9720, 77.5920)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Description)
	assert.LessOrEqual(t, len(result.Recommendations), 5)
}

func TestMoodProfiles_SortedWithPreferences(t *testing.T) {
	svc := newTestService(seedRepo())

	moods := svc.MoodProfiles()
	require.Len(t, moods, 6)
	for i := 1; i < len(moods); i++ {
		assert.Less(t, moods[i-1].ID, moods[i].ID)
	}
	for _, m := range moods {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Emoji)
		assert.NotEmpty(t, m.Preferences)
	}
}

func TestInterestMappings(t *testing.T) {
	svc := newTestService(seedRepo())

	mappings := svc.InterestMappings()
	require.Len(t, mappings, 7)
	eat, ok := mappings["eat"]
	require.True(t, ok)
	assert.Equal(t, "Eat", eat.Name)
	assert.NotEmpty(t, eat.Categories)
}
