package weather_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/gateway"
	"wayfarer/internal/services"
)

var Module = fx.Provide(
	provideWeatherProvider, provideWeatherService, provideOutfitService)

func provideWeatherProvider() gateway.WeatherProvider {
	return gateway.NewOpenWeatherClient()
}

func provideWeatherService(provider gateway.WeatherProvider) services.WeatherServiceInterface {
	return services.NewWeatherService(provider)
}

func provideOutfitService() services.OutfitServiceInterface {
	return services.NewOutfitService()
}
