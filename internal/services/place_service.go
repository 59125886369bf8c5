package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sort"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/models/response_models"
	"github.com/rhidhanya/nearbynomad/internal/recommend"
	"github.com/rhidhanya/nearbynomad/internal/repositories"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

type PlaceServiceInterface interface {
	GetPlaceById(id string, ctx context.Context) (response_models.Place, error)
	GetNearbyPlaces(ctx context.Context, lat, lng, radiusMeters float64) ([]response_models.Place, error)
	ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.Place, error)
	CreatePlace(req request_models.CreatePlaceRequest, ctx context.Context) (string, error)
	ImportCatalog(ctx context.Context, path string) (int, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
	}
}

const defaultNearbyRadiusMeters = 1000

func (p *PlaceService) GetPlaceById(id string, ctx context.Context) (response_models.Place, error) {
	place, err := p.placeRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching place: %v", err)
		return response_models.Place{}, utils.ErrDatabaseError
	}
	if place == nil {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}
	return toPlaceResponse(*place, 0), nil
}

func (p *PlaceService) GetNearbyPlaces(ctx context.Context, lat, lng, radiusMeters float64) ([]response_models.Place, error) {
	if radiusMeters <= 0 {
		radiusMeters = defaultNearbyRadiusMeters
	}

	places, err := p.placeRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	user := recommend.Point{Latitude: lat, Longitude: lng}
	out := make([]response_models.Place, 0, len(places))
	for _, place := range places {
		dist := recommend.DistanceMeters(user, recommend.Point{Latitude: place.Latitude, Longitude: place.Longitude})
		if dist <= radiusMeters {
			out = append(out, toPlaceResponse(place, dist))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DistanceMeters < out[j].DistanceMeters })
	return out, nil
}

func (p *PlaceService) ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.Place, error) {
	places, err := p.placeRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Place, 0, len(places))
	for _, place := range places {
		out = append(out, toPlaceResponse(place, 0))
	}
	return out, nil
}

func (p *PlaceService) CreatePlace(req request_models.CreatePlaceRequest, ctx context.Context) (string, error) {
	newPlace := &db_models.Place{
		Name:                 req.Name,
		Category:             req.Category,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		Rating:               req.Rating,
		PriceLevel:           req.PriceLevel,
		Tags:                 req.Tags,
		TransportModes:       req.TransportModes,
		SocialModes:          req.SocialModes,
		FoodTypes:            req.FoodTypes,
		WheelchairAccessible: req.WheelchairAccessible,
		PetFriendly:          req.PetFriendly,
		KidFriendly:          req.KidFriendly,
		Address:              req.Address,
		OpeningHours:         req.OpeningHours,
	}

	id, err := p.placeRepo.CreatePlace(ctx, newPlace)
	if err != nil {
		log.Printf("Error creating place: %v", err)
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

// seedPlace is the JSON schema of the static catalog file.
type seedPlace struct {
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
	Address              string   `json:"address"`
	OpeningHours         string   `json:"openingHours"`
}

// ImportCatalog loads the static places file into the catalog table and
// returns how many records were created.
func (p *PlaceService) ImportCatalog(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading catalog file %s: %v", path, err)
		return 0, utils.ErrInvalidInput
	}

	var seeds []seedPlace
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Printf("Error parsing catalog file %s: %v", path, err)
		return 0, utils.ErrInvalidInput
	}

	imported := 0
	for _, seed := range seeds {
		place := &db_models.Place{
			Name:                 seed.Name,
			Category:             seed.Category,
			Latitude:             seed.Latitude,
			Longitude:            seed.Longitude,
			Rating:               seed.Rating,
			PriceLevel:           seed.PriceLevel,
			Tags:                 seed.Tags,
			TransportModes:       seed.TransportModes,
			SocialModes:          seed.SocialModes,
			FoodTypes:            seed.FoodTypes,
			WheelchairAccessible: seed.WheelchairAccessible,
			PetFriendly:          seed.PetFriendly,
			KidFriendly:          seed.KidFriendly,
			Address:              seed.Address,
			OpeningHours:         seed.OpeningHours,
		}
		if _, err := p.placeRepo.CreatePlace(ctx, place); err != nil {
			log.Printf("Error importing place %q: %v", seed.Name, err)
			return imported, utils.ErrDatabaseError
		}
		imported++
	}
	return imported, nil
}

func toPlaceResponse(place db_models.Place, distanceMeters float64) response_models.Place {
	return response_models.Place{
		ID:                   place.ID.String(),
		Name:                 place.Name,
		Category:             place.Category,
		Latitude:             place.Latitude,
		Longitude:            place.Longitude,
		Rating:               place.Rating,
		PriceLevel:           place.PriceLevel,
		Tags:                 place.Tags,
		TransportModes:       place.TransportModes,
		SocialModes:          place.SocialModes,
		FoodTypes:            place.FoodTypes,
		WheelchairAccessible: place.WheelchairAccessible,
		PetFriendly:          place.PetFriendly,
		KidFriendly:          place.KidFriendly,
		Address:              place.Address,
		OpeningHours:         place.OpeningHours,
		DistanceMeters:       distanceMeters,
	}
}
