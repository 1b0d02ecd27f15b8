package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wayfarer/internal/gateway"
)

type fakePlaceProvider struct {
	queries []string
	// results keyed by the exact query text; unknown queries error.
	results map[string][]gateway.Place
}

func (f *fakePlaceProvider) TextSearch(ctx context.Context, query, placeType string) ([]gateway.Place, error) {
	f.queries = append(f.queries, query)
	if places, ok := f.results[query]; ok {
		return places, nil
	}
	return nil, errors.New("quota exceeded")
}

func TestFetchRestaurantsFirstQueryWins(t *testing.T) {
	provider := &fakePlaceProvider{results: map[string][]gateway.Place{
		"restaurants in Barcelona, Spain": {
			{ID: "p1", Name: "Can Culleretes", Types: []string{"restaurant"}, Rating: 4.5, PriceLevel: 2},
		},
	}}
	svc := NewPlacesService(provider)

	restaurants, msg := svc.FetchRestaurants(context.Background(), "Barcelona", "Spain")
	if msg != "" {
		t.Fatalf("live results should carry no advisory message, got %q", msg)
	}
	if len(restaurants) != 1 || restaurants[0].Name != "Can Culleretes" {
		t.Fatalf("unexpected result: %+v", restaurants)
	}
	if restaurants[0].Rating != 4.5 {
		t.Fatalf("provider rating lost: %v", restaurants[0].Rating)
	}
	if restaurants[0].PriceRange != 3 {
		t.Fatalf("price level 2 should map to range 3, got %d", restaurants[0].PriceRange)
	}
	if len(provider.queries) != 1 {
		t.Fatalf("later queries should not run after a hit, got %v", provider.queries)
	}
}

func TestFetchRestaurantsRotatesThroughQueries(t *testing.T) {
	provider := &fakePlaceProvider{results: map[string][]gateway.Place{
		"dining Barcelona": {{ID: "p1", Name: "Last Chance Diner"}},
	}}
	svc := NewPlacesService(provider)

	restaurants, _ := svc.FetchRestaurants(context.Background(), "Barcelona", "Spain")
	if len(provider.queries) != 4 {
		t.Fatalf("expected all 4 query variants before the hit, got %v", provider.queries)
	}
	if len(restaurants) != 1 || restaurants[0].Name != "Last Chance Diner" {
		t.Fatalf("unexpected result: %+v", restaurants)
	}
}

func TestFetchRestaurantsNeverErrors(t *testing.T) {
	svc := NewPlacesService(&fakePlaceProvider{})

	restaurants, msg := svc.FetchRestaurants(context.Background(), "Barcelona", "Spain")
	if len(restaurants) == 0 {
		t.Fatalf("fallback should still produce restaurants")
	}
	if msg == "" {
		t.Fatalf("fallback results must carry an advisory message")
	}
}

func TestFetchRestaurantsCapsResults(t *testing.T) {
	var many []gateway.Place
	for i := 0; i < 25; i++ {
		many = append(many, gateway.Place{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Place %d", i)})
	}
	provider := &fakePlaceProvider{results: map[string][]gateway.Place{
		"restaurants in Rome, Italy": many,
	}}
	svc := NewPlacesService(provider)

	restaurants, _ := svc.FetchRestaurants(context.Background(), "Rome", "Italy")
	if len(restaurants) != 10 {
		t.Fatalf("results should cap at 10, got %d", len(restaurants))
	}
}

func TestFetchRestaurantsDefaults(t *testing.T) {
	provider := &fakePlaceProvider{results: map[string][]gateway.Place{
		"restaurants in Rome, Italy": {{ID: "p1", Name: "No Data Bistro"}},
	}}
	svc := NewPlacesService(provider)

	restaurants, _ := svc.FetchRestaurants(context.Background(), "Rome", "Italy")
	r := restaurants[0]
	if r.PriceRange != 2 {
		t.Fatalf("missing price level should default to 2, got %d", r.PriceRange)
	}
	if r.Rating != 4.0 {
		t.Fatalf("missing rating should default to 4.0, got %v", r.Rating)
	}
	if r.OpeningHours != "Hours not available" {
		t.Fatalf("missing hours placeholder wrong: %q", r.OpeningHours)
	}
	if len(r.MustTryDishes) == 0 {
		t.Fatalf("dishes should never be empty")
	}
}

func TestFetchAttractionsMapsCategories(t *testing.T) {
	provider := &fakePlaceProvider{results: map[string][]gateway.Place{
		"tourist attractions in Paris, France": {
			{ID: "a1", Name: "Louvre", Types: []string{"museum", "tourist_attraction"}},
			{ID: "a2", Name: "Mystery Spot", Types: []string{"unknown_type"}},
		},
	}}
	svc := NewPlacesService(provider)

	attractions, msg := svc.FetchAttractions(context.Background(), "Paris", "France")
	if msg != "" {
		t.Fatalf("live results should carry no message, got %q", msg)
	}
	if attractions[0].Category != "Museum" {
		t.Fatalf("first matching type should win, got %q", attractions[0].Category)
	}
	if attractions[1].Category != "Attraction" {
		t.Fatalf("unknown types should fall back to Attraction, got %q", attractions[1].Category)
	}
}

func TestAutocomplete(t *testing.T) {
	svc := NewPlacesService(&fakePlaceProvider{})

	if got := svc.Autocomplete("a"); len(got) != 0 {
		t.Fatalf("inputs under 2 chars should return nothing, got %d", len(got))
	}

	got := svc.Autocomplete("bar")
	if len(got) == 0 {
		t.Fatalf("expected a match for 'bar'")
	}
	if got[0].City != "Barcelona" {
		t.Fatalf("expected Barcelona first, got %q", got[0].City)
	}

	if got := svc.Autocomplete("spain"); len(got) == 0 {
		t.Fatalf("country names should match too")
	}

	if got := svc.Autocomplete("a"); len(got) > 8 {
		t.Fatalf("predictions must cap at 8")
	}
}
