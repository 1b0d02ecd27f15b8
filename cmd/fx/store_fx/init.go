package store_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"wayfarer/internal/appstate"
	"wayfarer/internal/infra"
	"wayfarer/internal/store"
)

var Module = fx.Provide(
	provideKV, provideSessionStore)

// provideKV picks the persistence backend at startup: Postgres when
// POSTGRES_URL is set, an in-process map otherwise. Both speak the same
// key namespace, so the rest of the app never knows which one it got.
func provideKV(lc fx.Lifecycle) store.KV {
	if os.Getenv("POSTGRES_URL") == "" {
		log.Println("POSTGRES_URL not set, using in-memory store")
		return store.NewMemoryKV()
	}

	db := infra.InitPostgresql()
	if err := db.AutoMigrate(&store.Record{}); err != nil {
		log.Fatalf("Failed to migrate kv_records: %v", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return store.NewGormKV(db)
}

func provideSessionStore() *appstate.SessionStore {
	return appstate.NewSessionStore()
}
