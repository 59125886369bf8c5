package services

import (
	"fmt"
	"math"
	"net/url"

	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/models/response_models"
	"github.com/rhidhanya/nearbynomad/internal/recommend"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

type RideServiceInterface interface {
	GenerateRideLink(req request_models.RideLinkRequest) (*response_models.RideLink, error)
}

type RideService struct{}

func NewRideService() RideServiceInterface {
	return &RideService{}
}

// Assumed distance when no pickup is given (pickup will be the rider's
// current location, unknown to us).
const defaultRideDistanceKm = 5.0

type rideProduct struct {
	id             string
	name           string
	fareLow        float64
	fareHigh       float64
	durationFactor float64
}

var rideProducts = []rideProduct{
	{id: "uberx", name: "UberX", fareLow: 1.0, fareHigh: 1.3, durationFactor: 1.0},
	{id: "uberxl", name: "UberXL", fareLow: 1.5, fareHigh: 1.8, durationFactor: 1.0},
	{id: "uberpool", name: "UberPool", fareLow: 0.7, fareHigh: 0.9, durationFactor: 1.25},
	{id: "uberblack", name: "UberBlack", fareLow: 2.5, fareHigh: 3.0, durationFactor: 0.9},
}

func (r *RideService) GenerateRideLink(req request_models.RideLinkRequest) (*response_models.RideLink, error) {
	if !validLocation(req.Destination) {
		return nil, utils.ErrInvalidLocation
	}
	if req.Pickup != nil && !validLocation(*req.Pickup) {
		return nil, utils.ErrInvalidLocation
	}

	return &response_models.RideLink{
		DeepLink: buildDeepLink(req),
		WebURL:   buildWebURL(req),
		Fares:    estimateFares(req),
	}, nil
}

func buildDeepLink(req request_models.RideLinkRequest) string {
	params := url.Values{}
	params.Set("action", "setPickup")
	if req.Pickup != nil {
		params.Set("pickup[latitude]", formatCoord(req.Pickup.Latitude))
		params.Set("pickup[longitude]", formatCoord(req.Pickup.Longitude))
	} else {
		params.Set("pickup", "my_location")
	}
	params.Set("dropoff[latitude]", formatCoord(req.Destination.Latitude))
	params.Set("dropoff[longitude]", formatCoord(req.Destination.Longitude))
	if req.DestinationName != "" {
		params.Set("dropoff[nickname]", req.DestinationName)
	}
	return "uber://?" + params.Encode()
}

func buildWebURL(req request_models.RideLinkRequest) string {
	params := url.Values{}
	params.Set("action", "setPickup")
	if req.Pickup != nil {
		params.Set("pickup[latitude]", formatCoord(req.Pickup.Latitude))
		params.Set("pickup[longitude]", formatCoord(req.Pickup.Longitude))
	} else {
		params.Set("pickup", "my_location")
	}
	params.Set("dropoff[latitude]", formatCoord(req.Destination.Latitude))
	params.Set("dropoff[longitude]", formatCoord(req.Destination.Longitude))
	if req.DestinationName != "" {
		params.Set("dropoff[nickname]", req.DestinationName)
	}
	return "https://m.uber.com/ul/?" + params.Encode()
}

// estimateFares mirrors the demo estimator: $0.50/km with a $5 floor,
// scaled per product. Real fares would come from the provider's API.
func estimateFares(req request_models.RideLinkRequest) []response_models.RideFare {
	distanceKm := defaultRideDistanceKm
	if req.Pickup != nil {
		distanceKm = recommend.DistanceMeters(
			recommend.Point{Latitude: req.Pickup.Latitude, Longitude: req.Pickup.Longitude},
			recommend.Point{Latitude: req.Destination.Latitude, Longitude: req.Destination.Longitude},
		) / 1000
	}
	baseFare := math.Max(5, distanceKm*0.5)
	baseMinutes := math.Max(5, distanceKm*2)

	fares := make([]response_models.RideFare, 0, len(rideProducts))
	for _, product := range rideProducts {
		low := math.Round(baseFare * product.fareLow)
		high := math.Round(baseFare * product.fareHigh)
		fares = append(fares, response_models.RideFare{
			ProductID:      product.id,
			DisplayName:    product.name,
			CurrencyCode:   "USD",
			Estimate:       fmt.Sprintf("$%.0f-%.0f", low, high),
			LowEstimate:    low,
			HighEstimate:   high,
			DurationMinute: int(math.Round(baseMinutes * product.durationFactor)),
		})
	}
	return fares
}

func validLocation(loc request_models.UserLocation) bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
