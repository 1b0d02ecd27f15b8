package controllers_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewSessionController))
