package trips_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/appstate"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/internal/store"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo)

func provideTripRepo(kv store.KV) repositories.TripRepository {
	return repositories.NewTripRepository(kv)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	places services.PlacesServiceInterface,
	transport services.TransportServiceInterface,
	sessions *appstate.SessionStore) services.TripServiceInterface {

	return services.NewTripService(tripRepo, places, transport, sessions)
}
