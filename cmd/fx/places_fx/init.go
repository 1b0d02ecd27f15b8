package places_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"wayfarer/internal/gateway"
	"wayfarer/internal/services"
)

var Module = fx.Provide(
	providePlaceProvider, providePlacesService, provideTransportService)

// providePlaceProvider selects the Places API generation. The new
// searchText API is opt-in via PLACES_API_GENERATION=v1; the legacy
// text-search endpoint remains the default.
func providePlaceProvider() gateway.PlaceProvider {
	if os.Getenv("PLACES_API_GENERATION") == "v1" {
		log.Println("Using Places API (New) searchText provider")
		return gateway.NewPlacesV1Client()
	}
	return gateway.NewLegacyPlacesClient()
}

func providePlacesService(provider gateway.PlaceProvider) services.PlacesServiceInterface {
	return services.NewPlacesService(provider)
}

func provideTransportService() services.TransportServiceInterface {
	return services.NewTransportService()
}
