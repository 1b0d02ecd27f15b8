package store

import (
	"context"
	"fmt"
)

// KV is the persistence port. Records are opaque JSON blobs under the
// documented key names (trip_{userId}_{tripId}, currentTripId_{userId},
// travel_app_users, travel_app_current_user), so the medium can be swapped
// between the in-memory store and the Postgres-backed one without touching
// the repositories.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys returns every stored key with the given prefix, in no particular order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

func TripKey(userID, tripID string) string {
	return fmt.Sprintf("trip_%s_%s", userID, tripID)
}

func TripKeyPrefix(userID string) string {
	return fmt.Sprintf("trip_%s_", userID)
}

func CurrentTripKey(userID string) string {
	return fmt.Sprintf("currentTripId_%s", userID)
}

const (
	UsersKey       = "travel_app_users"
	CurrentUserKey = "travel_app_current_user"
)
