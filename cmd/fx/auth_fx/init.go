package auth_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/appstate"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/internal/store"
)

var Module = fx.Provide(
	provideAuthService, provideUserRepo)

func provideUserRepo(kv store.KV) repositories.UserRepository {
	return repositories.NewUserRepository(kv)
}

func provideAuthService(userRepo repositories.UserRepository, sessions *appstate.SessionStore) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, sessions)
}
