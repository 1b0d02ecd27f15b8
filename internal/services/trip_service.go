package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"wayfarer/internal/appstate"
	"wayfarer/internal/models/domain"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type TripServiceInterface interface {
	Create(ctx context.Context, userID, name string) (*domain.Trip, error)
	Save(ctx context.Context, userID string, trip *domain.Trip) error
	Load(ctx context.Context, userID, tripID string) (*domain.Trip, error)
	All(ctx context.Context, userID string) ([]domain.Trip, error)
	Delete(ctx context.Context, userID, tripID string) error
	AddDestination(ctx context.Context, userID, tripID string, dest domain.Destination) (*domain.Trip, error)
	RefreshRestaurants(ctx context.Context, userID, tripID, destID string) ([]domain.Restaurant, string, error)
	RefreshAttractions(ctx context.Context, userID, tripID, destID string) ([]domain.Attraction, string, error)
	ToggleRestaurantBookmark(ctx context.Context, userID, tripID, destID, restaurantID string) (*domain.Restaurant, error)
	SetAttractionStatus(ctx context.Context, userID, tripID, destID, attractionID string, planned, completed bool) (*domain.Attraction, error)
}

type TripService struct {
	tripRepo  repositories.TripRepository
	places    PlacesServiceInterface
	transport TransportServiceInterface
	sessions  *appstate.SessionStore
}

func NewTripService(
	tripRepo repositories.TripRepository,
	places PlacesServiceInterface,
	transport TransportServiceInterface,
	sessions *appstate.SessionStore) TripServiceInterface {

	return &TripService{
		tripRepo:  tripRepo,
		places:    places,
		transport: transport,
		sessions:  sessions,
	}
}

func (t *TripService) Create(ctx context.Context, userID, name string) (*domain.Trip, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: trip name is required", utils.ErrValidation)
	}

	trip := &domain.Trip{
		ID:           uuid.New().String(),
		Name:         name,
		Destinations: []domain.Destination{},
		CreatedAt:    time.Now(),
	}
	if err := t.Save(ctx, userID, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (t *TripService) Save(ctx context.Context, userID string, trip *domain.Trip) error {
	if err := t.tripRepo.Save(ctx, userID, trip); err != nil {
		log.Printf("Error saving trip %s: %v", trip.ID, err)
		return utils.ErrStorageError
	}
	t.sessions.Dispatch(userID, appstate.Action{Type: appstate.SaveTrip, Trip: trip})
	return nil
}

func (t *TripService) Load(ctx context.Context, userID, tripID string) (*domain.Trip, error) {
	trip, err := t.tripRepo.Load(ctx, userID, tripID)
	if err != nil {
		// The error surfaces as state, not as a crash past the reducer.
		t.sessions.Dispatch(userID, appstate.Action{Type: appstate.SetError, Error: "Failed to load trip"})
		return nil, err
	}

	if err := t.tripRepo.SetCurrentTripID(ctx, userID, tripID); err != nil {
		log.Printf("Error moving current-trip pointer: %v", err)
	}
	t.sessions.Dispatch(userID, appstate.Action{Type: appstate.SetCurrentTrip, Trip: trip})
	return trip, nil
}

func (t *TripService) All(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips, err := t.tripRepo.All(ctx, userID)
	if err != nil {
		log.Printf("Error listing trips: %v", err)
		return nil, utils.ErrStorageError
	}
	return trips, nil
}

func (t *TripService) Delete(ctx context.Context, userID, tripID string) error {
	wasCurrent, err := t.tripRepo.Delete(ctx, userID, tripID)
	if err != nil {
		log.Printf("Error deleting trip %s: %v", tripID, err)
		return utils.ErrStorageError
	}
	if wasCurrent {
		t.sessions.Dispatch(userID, appstate.Action{Type: appstate.SetCurrentTrip, Trip: nil})
	}
	return nil
}

func (t *TripService) AddDestination(ctx context.Context, userID, tripID string, dest domain.Destination) (*domain.Trip, error) {
	if dest.City == "" || dest.Country == "" {
		return nil, fmt.Errorf("%w: city and country are required", utils.ErrValidation)
	}
	if dest.EndDate.Before(dest.StartDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", utils.ErrValidation)
	}

	trip, err := t.tripRepo.Load(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if dest.ID == "" {
		dest.ID = utils.GenerateID()
	}
	if dest.Transportation == nil {
		dest.Transportation = t.transport.InfoForCity(dest.City)
	}
	trip.Destinations = append(trip.Destinations, dest)

	if err := t.Save(ctx, userID, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (t *TripService) RefreshRestaurants(ctx context.Context, userID, tripID, destID string) ([]domain.Restaurant, string, error) {
	trip, err := t.tripRepo.Load(ctx, userID, tripID)
	if err != nil {
		return nil, "", err
	}
	dest := findDestination(trip, destID)
	if dest == nil {
		return nil, "", utils.ErrDestinationMissing
	}

	t.sessions.Dispatch(userID, appstate.Action{Type: appstate.SetLoading, Loading: true})
	defer t.sessions.Dispatch(userID, appstate.Action{Type: appstate.SetLoading, Loading: false})

	fetched, msg := t.places.FetchRestaurants(ctx, dest.City, dest.Country)
	dest.Restaurants = MergeRestaurants(fetched, dest.Restaurants)

	if err := t.Save(ctx, userID, trip); err != nil {
		return nil, "", err
	}
	return dest.Restaurants, msg, nil
}

func (t *TripService) RefreshAttractions(ctx context.Context, userID, tripID, destID string) ([]domain.Attraction, string, error) {
	trip, err := t.tripRepo.Load(ctx, userID, tripID)
	if err != nil {
		return nil, "", err
	}
	dest := findDestination(trip, destID)
	if dest == nil {
		return nil, "", utils.ErrDestinationMissing
	}

	t.sessions.Dispatch(userID, appstate.Action{Type: appstate.SetLoading, Loading: true})
	defer t.sessions.Dispatch(userID, appstate.Action{Type: appstate.SetLoading, Loading: false})

	fetched, msg := t.places.FetchAttractions(ctx, dest.City, dest.Country)
	dest.Attractions = MergeAttractions(fetched, dest.Attractions)

	if err := t.Save(ctx, userID, trip); err != nil {
		return nil, "", err
	}
	return dest.Attractions, msg, nil
}

func (t *TripService) ToggleRestaurantBookmark(ctx context.Context, userID, tripID, destID, restaurantID string) (*domain.Restaurant, error) {
	trip, err := t.tripRepo.Load(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	dest := findDestination(trip, destID)
	if dest == nil {
		return nil, utils.ErrDestinationMissing
	}

	for i := range dest.Restaurants {
		if dest.Restaurants[i].ID == restaurantID {
			dest.Restaurants[i].IsBookmarked = !dest.Restaurants[i].IsBookmarked
			if err := t.Save(ctx, userID, trip); err != nil {
				return nil, err
			}
			return &dest.Restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("%w: restaurant %s", utils.ErrDestinationMissing, restaurantID)
}

func (t *TripService) SetAttractionStatus(ctx context.Context, userID, tripID, destID, attractionID string, planned, completed bool) (*domain.Attraction, error) {
	trip, err := t.tripRepo.Load(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	dest := findDestination(trip, destID)
	if dest == nil {
		return nil, utils.ErrDestinationMissing
	}

	for i := range dest.Attractions {
		if dest.Attractions[i].ID == attractionID {
			// completed implies planned
			if completed {
				planned = true
			}
			dest.Attractions[i].IsPlanned = planned
			dest.Attractions[i].IsCompleted = completed
			if err := t.Save(ctx, userID, trip); err != nil {
				return nil, err
			}
			return &dest.Attractions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: attraction %s", utils.ErrDestinationMissing, attractionID)
}

func findDestination(trip *domain.Trip, destID string) *domain.Destination {
	for i := range trip.Destinations {
		if trip.Destinations[i].ID == destID {
			return &trip.Destinations[i]
		}
	}
	return nil
}
