package controllersfx

import (
	"go.uber.org/fx"

	"github.com/rhidhanya/nearbynomad/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewRecommendationsController,
	controllers.NewPlacesController,
	controllers.NewRidesController,
	controllers.NewAccountController)
