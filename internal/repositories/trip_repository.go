package repositories

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"wayfarer/internal/models/domain"
	"wayfarer/internal/store"
	"wayfarer/pkg/utils"
)

// TripRepository persists trips as per-user JSON blobs. Keys are namespaced
// by user id so switching users never exposes another user's trips.
type TripRepository interface {
	// Save stamps UpdatedAt, overwrites the blob and moves the current-trip
	// pointer. Safe to call repeatedly.
	Save(ctx context.Context, userID string, trip *domain.Trip) error
	Load(ctx context.Context, userID, tripID string) (*domain.Trip, error)
	// All returns the user's trips sorted by UpdatedAt descending; blobs
	// that fail to parse are skipped, not fatal.
	All(ctx context.Context, userID string) ([]domain.Trip, error)
	// Delete removes the blob and clears the current-trip pointer when the
	// deleted trip was current. Reports whether it was.
	Delete(ctx context.Context, userID, tripID string) (wasCurrent bool, err error)
	CurrentTripID(ctx context.Context, userID string) (string, error)
	SetCurrentTripID(ctx context.Context, userID, tripID string) error
}

type tripRepository struct {
	kv store.KV
}

func NewTripRepository(kv store.KV) TripRepository {
	return &tripRepository{kv: kv}
}

func (r *tripRepository) Save(ctx context.Context, userID string, trip *domain.Trip) error {
	trip.UpdatedAt = time.Now()

	raw, err := json.Marshal(trip)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, store.TripKey(userID, trip.ID), raw); err != nil {
		return err
	}
	return r.kv.Set(ctx, store.CurrentTripKey(userID), []byte(trip.ID))
}

func (r *tripRepository) Load(ctx context.Context, userID, tripID string) (*domain.Trip, error) {
	raw, ok, err := r.kv.Get(ctx, store.TripKey(userID, tripID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, utils.ErrTripNotFound
	}

	var trip domain.Trip
	if err := json.Unmarshal(raw, &trip); err != nil {
		log.Printf("corrupt trip blob %s: %v", tripID, err)
		return nil, utils.ErrStorageError
	}
	return &trip, nil
}

func (r *tripRepository) All(ctx context.Context, userID string) ([]domain.Trip, error) {
	keys, err := r.kv.Keys(ctx, store.TripKeyPrefix(userID))
	if err != nil {
		return nil, err
	}

	trips := make([]domain.Trip, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := r.kv.Get(ctx, key)
		if err != nil || !ok {
			continue
		}
		var trip domain.Trip
		if err := json.Unmarshal(raw, &trip); err != nil {
			log.Printf("skipping corrupt trip blob %s: %v", key, err)
			continue
		}
		trips = append(trips, trip)
	}

	sort.Slice(trips, func(i, j int) bool {
		return trips[i].UpdatedAt.After(trips[j].UpdatedAt)
	})
	return trips, nil
}

func (r *tripRepository) Delete(ctx context.Context, userID, tripID string) (bool, error) {
	if err := r.kv.Delete(ctx, store.TripKey(userID, tripID)); err != nil {
		return false, err
	}

	current, err := r.CurrentTripID(ctx, userID)
	if err != nil {
		return false, err
	}
	if current == tripID {
		if err := r.kv.Delete(ctx, store.CurrentTripKey(userID)); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func (r *tripRepository) CurrentTripID(ctx context.Context, userID string) (string, error) {
	raw, ok, err := r.kv.Get(ctx, store.CurrentTripKey(userID))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return string(raw), nil
}

func (r *tripRepository) SetCurrentTripID(ctx context.Context, userID, tripID string) error {
	return r.kv.Set(ctx, store.CurrentTripKey(userID), []byte(tripID))
}
