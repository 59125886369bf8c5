package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/rhidhanya/nearbynomad/cmd/fx/accountfx"
	"github.com/rhidhanya/nearbynomad/cmd/fx/controllersfx"
	"github.com/rhidhanya/nearbynomad/cmd/fx/dbfx"
	"github.com/rhidhanya/nearbynomad/cmd/fx/placesfx"
	"github.com/rhidhanya/nearbynomad/cmd/fx/recommendfx"
	"github.com/rhidhanya/nearbynomad/cmd/fx/ridesfx"
	"github.com/rhidhanya/nearbynomad/internal/api/controllers"
	"github.com/rhidhanya/nearbynomad/internal/services"
	"github.com/rhidhanya/nearbynomad/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		dbfx.Module,
		placesfx.Module,
		recommendfx.Module,
		ridesfx.Module,
		accountfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedCatalog),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

// SeedCatalog imports places from CATALOG_SEED_FILE at startup when set.
func SeedCatalog(lc fx.Lifecycle, placeService services.PlaceServiceInterface) {
	path := os.Getenv("CATALOG_SEED_FILE")
	if path == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			imported, err := placeService.ImportCatalog(ctx, path)
			if err != nil {
				log.Printf("Catalog seed failed: %v", err)
				return nil
			}
			log.Printf("Seeded %d places from %s", imported, path)
			return nil
		},
	})
}

func ProvideRouter(
	recommendationsController *controllers.RecommendationsController,
	placesController *controllers.PlacesController,
	ridesController *controllers.RidesController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, recommendationsController, placesController, ridesController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendationsController *controllers.RecommendationsController,
	placesController *controllers.PlacesController,
	ridesController *controllers.RidesController,
	accountController *controllers.AccountController) {

	recGroup := r.Group("/api/recommendations")
	recGroup.POST("/generate", recommendationsController.Generate)
	recGroup.POST("/itinerary", recommendationsController.Itinerary)
	recGroup.POST("/surprise-me", recommendationsController.SurpriseMe)
	recGroup.POST("/score", recommendationsController.Score)
	recGroup.GET("/time-based", recommendationsController.TimeBased)
	recGroup.GET("/mood-profiles", recommendationsController.MoodProfiles)
	recGroup.GET("/interest-mappings", recommendationsController.InterestMappings)

	placesGroup := r.Group("/api/places")
	placesGroup.GET("", placesController.ListPlaces)
	placesGroup.GET("/nearby", placesController.GetNearbyPlaces)
	placesGroup.GET("/:id", placesController.GetPlaceById)
	placesGroup.POST("", middleware.JWTAuthMiddleware(), placesController.CreatePlace)
	placesGroup.POST("/import", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), placesController.ImportCatalog)

	ridesGroup := r.Group("/api/rides")
	ridesGroup.POST("/link", ridesController.GenerateLink)

	authGroup := r.Group("/api/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/otp/request", accountController.RequestOtp)
	authGroup.POST("/otp/verify", accountController.VerifyOtp)
}
