package ridesfx

import (
	"go.uber.org/fx"

	"github.com/rhidhanya/nearbynomad/internal/services"
)

var Module = fx.Provide(provideRideService)

func provideRideService() services.RideServiceInterface {
	return services.NewRideService()
}
