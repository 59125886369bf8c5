package recommendfx

import (
	"go.uber.org/fx"

	"github.com/rhidhanya/nearbynomad/internal/recommend"
	"github.com/rhidhanya/nearbynomad/internal/repositories"
	"github.com/rhidhanya/nearbynomad/internal/services"
)

var Module = fx.Provide(
	provideProfiles,
	provideRand,
	provideEngine,
	provideRanker,
	provideSurprisePicker,
	provideRecommendationService)

func provideProfiles() recommend.Profiles {
	return recommend.DefaultProfiles()
}

func provideRand() recommend.Rand {
	return recommend.NewTimeRand()
}

func provideEngine(profiles recommend.Profiles) *recommend.Engine {
	return recommend.NewEngine(profiles)
}

func provideRanker(engine *recommend.Engine, rng recommend.Rand) (*recommend.Ranker, error) {
	return recommend.NewRanker(engine, rng)
}

func provideSurprisePicker(rng recommend.Rand) (*recommend.SurprisePicker, error) {
	return recommend.NewSurprisePicker(rng)
}

func provideRecommendationService(
	placeRepo repositories.PlaceRepository,
	profiles recommend.Profiles,
	engine *recommend.Engine,
	ranker *recommend.Ranker,
	surprise *recommend.SurprisePicker,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(placeRepo, profiles, engine, ranker, surprise)
}
