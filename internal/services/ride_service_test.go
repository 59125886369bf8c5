package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

func rideRequest() request_models.RideLinkRequest {
	return request_models.RideLinkRequest{
		Destination:     request_models.UserLocation{Latitude: 12.9716, Longitude: 77.5946},
		DestinationName: "Cafe Aurora",
	}
}

func TestGenerateRideLink_DeepLinkAndWebURL(t *testing.T) {
	svc := NewRideService()

	link, err := svc.GenerateRideLink(rideRequest())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(link.DeepLink, "uber://?"))
	require.True(t, strings.HasPrefix(link.WebURL, "https://m.uber.com/ul/?"))

	parsed, err := url.ParseQuery(strings.TrimPrefix(link.DeepLink, "uber://?"))
	require.NoError(t, err)
	assert.Equal(t, "setPickup", parsed.Get("action"))
	assert.Equal(t, "my_location", parsed.Get("pickup"))
	assert.Equal(t, "12.971600", parsed.Get("dropoff[latitude]"))
	assert.Equal(t, "77.594600", parsed.Get("dropoff[longitude]"))
	assert.Equal(t, "Cafe Aurora", parsed.Get("dropoff[nickname]"))
}

func TestGenerateRideLink_PickupCoordinatesWhenGiven(t *testing.T) {
	svc := NewRideService()

	req := rideRequest()
	req.Pickup = &request_models.UserLocation{Latitude: 12.9600, Longitude: 77.5800}
	link, err := svc.GenerateRideLink(req)
	require.NoError(t, err)

	parsed, err := url.ParseQuery(strings.TrimPrefix(link.WebURL, "https://m.uber.com/ul/?"))
	require.NoError(t, err)
	assert.Equal(t, "12.960000", parsed.Get("pickup[latitude]"))
	assert.Empty(t, parsed.Get("pickup"))
}

func TestGenerateRideLink_FareEstimatesHaveFloor(t *testing.T) {
	svc := NewRideService()

	// Destination right next to the pickup: the $5 floor kicks in.
	req := rideRequest()
	req.Pickup = &request_models.UserLocation{Latitude: 12.9716, Longitude: 77.5947}
	link, err := svc.GenerateRideLink(req)
	require.NoError(t, err)
	require.Len(t, link.Fares, 4)

	for _, fare := range link.Fares {
		assert.GreaterOrEqual(t, fare.LowEstimate, 4.0) // uberpool scales 5 * 0.7 rounded
		assert.LessOrEqual(t, fare.LowEstimate, fare.HighEstimate)
		assert.Equal(t, "USD", fare.CurrencyCode)
		assert.Greater(t, fare.DurationMinute, 0)
		assert.NotEmpty(t, fare.Estimate)
	}
	assert.Equal(t, "uberx", link.Fares[0].ProductID)
}

func TestGenerateRideLink_RejectsInvalidCoordinates(t *testing.T) {
	svc := NewRideService()

	req := rideRequest()
	req.Destination.Latitude = 91
	_, err := svc.GenerateRideLink(req)
	assert.ErrorIs(t, err, utils.ErrInvalidLocation)

	req = rideRequest()
	req.Pickup = &request_models.UserLocation{Latitude: 12.9, Longitude: 181}
	_, err = svc.GenerateRideLink(req)
	assert.ErrorIs(t, err, utils.ErrInvalidLocation)
}
