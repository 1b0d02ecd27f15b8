package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfarer/cmd/fx/auth_fx"
	"wayfarer/cmd/fx/controllers_fx"
	"wayfarer/cmd/fx/places_fx"
	"wayfarer/cmd/fx/store_fx"
	"wayfarer/cmd/fx/trips_fx"
	"wayfarer/cmd/fx/weather_fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		store_fx.Module,
		auth_fx.Module,
		places_fx.Module,
		weather_fx.Module,
		trips_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
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
				log.Printf("Starting HTTP server at :%s", port)
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

func ProvideRouter(
	authController *controllers.AuthController,
	tripsController *controllers.TripsController,
	placesController *controllers.PlacesController,
	weatherController *controllers.WeatherController,
	sessionController *controllers.SessionController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, tripsController, placesController, weatherController, sessionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	tripsController *controllers.TripsController,
	placesController *controllers.PlacesController,
	weatherController *controllers.WeatherController,
	sessionController *controllers.SessionController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", authController.Register)
	accounts.POST("/login", authController.Login)
	accounts.POST("/logout", middleware.JWTAuthMiddleware(), authController.Logout)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), authController.Me)

	places := r.Group("/places")
	places.GET("/restaurants", placesController.Restaurants)
	places.GET("/attractions", placesController.Attractions)
	places.GET("/autocomplete", placesController.Autocomplete)
	places.GET("/transport", placesController.Transport)

	weather := r.Group("/weather")
	weather.GET("/forecast", weatherController.Forecast)
	weather.GET("/outfits", weatherController.Outfits)

	trips := r.Group("/trips", middleware.JWTAuthMiddleware())
	trips.POST("", tripsController.Create)
	trips.GET("", tripsController.List)
	trips.GET("/:id", tripsController.Get)
	trips.PUT("/:id", tripsController.Update)
	trips.DELETE("/:id", tripsController.Delete)
	trips.POST("/:id/destinations", tripsController.AddDestination)
	trips.POST("/:id/destinations/:destId/restaurants/refresh", tripsController.RefreshRestaurants)
	trips.POST("/:id/destinations/:destId/restaurants/:restaurantId/bookmark", tripsController.ToggleBookmark)
	trips.POST("/:id/destinations/:destId/attractions/refresh", tripsController.RefreshAttractions)
	trips.PUT("/:id/destinations/:destId/attractions/:attractionId/status", tripsController.SetAttractionStatus)

	session := r.Group("/session", middleware.JWTAuthMiddleware())
	session.GET("/state", sessionController.State)
	session.PUT("/tab", sessionController.SetTab)
}
