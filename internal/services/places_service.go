package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wayfarer/internal/gateway"
	"wayfarer/internal/gateway/fallback"
	"wayfarer/internal/models/domain"
)

const maxPlaceResults = 10

// PlacesServiceInterface is the external data gateway for restaurants and
// attractions. Both fetch operations are total: they never return an error,
// only a possibly-empty list plus an advisory message.
type PlacesServiceInterface interface {
	FetchRestaurants(ctx context.Context, city, country string) ([]domain.Restaurant, string)
	FetchAttractions(ctx context.Context, city, country string) ([]domain.Attraction, string)
	Autocomplete(input string) []domain.CityPrediction
}

type PlacesService struct {
	provider gateway.PlaceProvider
}

func NewPlacesService(provider gateway.PlaceProvider) PlacesServiceInterface {
	return &PlacesService{provider: provider}
}

func restaurantQueries(city, country string) []string {
	return []string{
		fmt.Sprintf("restaurants in %s, %s", city, country),
		fmt.Sprintf("restaurants %s", city),
		fmt.Sprintf("food %s, %s", city, country),
		fmt.Sprintf("dining %s", city),
	}
}

func attractionQueries(city, country string) []string {
	return []string{
		fmt.Sprintf("tourist attractions in %s, %s", city, country),
		fmt.Sprintf("attractions %s", city),
		fmt.Sprintf("landmarks %s, %s", city, country),
		fmt.Sprintf("sights %s", city),
	}
}

func (s *PlacesService) FetchRestaurants(ctx context.Context, city, country string) ([]domain.Restaurant, string) {
	for _, query := range restaurantQueries(city, country) {
		places, err := s.provider.TextSearch(ctx, query, "restaurant")
		if err != nil {
			log.Printf("restaurant query %q failed: %v", query, err)
			continue
		}
		if len(places) == 0 {
			continue
		}

		if len(places) > maxPlaceResults {
			places = places[:maxPlaceResults]
		}
		restaurants := make([]domain.Restaurant, len(places))
		for i, p := range places {
			restaurants[i] = mapRestaurant(p)
		}
		return restaurants, ""
	}

	log.Printf("all restaurant queries failed for %s, %s; using fallback data", city, country)
	msg := fmt.Sprintf("No live results for %s, %s; showing sample restaurants.", city, country)
	return fallback.RestaurantsForCity(city, country), msg
}

func (s *PlacesService) FetchAttractions(ctx context.Context, city, country string) ([]domain.Attraction, string) {
	for _, query := range attractionQueries(city, country) {
		places, err := s.provider.TextSearch(ctx, query, "tourist_attraction")
		if err != nil {
			log.Printf("attraction query %q failed: %v", query, err)
			continue
		}
		if len(places) == 0 {
			continue
		}

		if len(places) > maxPlaceResults {
			places = places[:maxPlaceResults]
		}
		attractions := make([]domain.Attraction, len(places))
		for i, p := range places {
			attractions[i] = mapAttraction(p, city)
		}
		return attractions, ""
	}

	log.Printf("all attraction queries failed for %s, %s; using fallback data", city, country)
	msg := fmt.Sprintf("No live results for %s, %s; showing sample attractions.", city, country)
	return fallback.AttractionsForCity(city, country), msg
}

func (s *PlacesService) Autocomplete(input string) []domain.CityPrediction {
	if len(input) < 2 {
		return []domain.CityPrediction{}
	}
	return fallback.CitiesMatching(input)
}

func mapRestaurant(p gateway.Place) domain.Restaurant {
	cuisine := cuisineFromTypes(p.Types)

	r := domain.Restaurant{
		ID:            p.ID,
		Name:          p.Name,
		Cuisine:       cuisine,
		PriceRange:    2,
		Rating:        4.0,
		MustTryDishes: defaultDishesForCuisine(cuisine),
		Address:       p.Address,
		Phone:         p.Phone,
		Website:       p.Website,
		OpeningHours:  "Hours not available",
	}
	if p.PriceLevel > 0 {
		r.PriceRange = p.PriceLevel + 1
	}
	if p.Rating > 0 {
		r.Rating = p.Rating
	}
	if len(p.OpeningHours) > 0 {
		r.OpeningHours = strings.Join(p.OpeningHours, ", ")
	}
	if p.PhotoURL != "" {
		r.PhotoURL = p.PhotoURL
	}
	return r
}

func mapAttraction(p gateway.Place, city string) domain.Attraction {
	a := domain.Attraction{
		ID:            p.ID,
		Name:          p.Name,
		Description:   fmt.Sprintf("Popular tourist attraction in %s", city),
		Category:      categoryFromTypes(p.Types),
		OpeningHours:  "Hours vary",
		Cost:          "Varies",
		Duration:      "1-3 hours",
		HowToGetThere: fmt.Sprintf("Located at %s", p.Address),
		Rating:        4.0,
		ImageURL:      p.PhotoURL,
	}
	if p.Rating > 0 {
		a.Rating = p.Rating
	}
	if len(p.OpeningHours) > 0 {
		a.OpeningHours = strings.Join(p.OpeningHours, ", ")
	}
	return a
}

// Type-to-cuisine lookups: the first matching provider type wins.
var cuisineTable = []struct{ placeType, cuisine string }{
	{"restaurant", "Restaurant"},
	{"meal_takeaway", "Takeaway"},
	{"meal_delivery", "Delivery"},
	{"cafe", "Cafe"},
	{"bakery", "Bakery"},
	{"bar", "Bar"},
	{"food", "Food"},
	{"establishment", "Restaurant"},
}

func cuisineFromTypes(types []string) string {
	for _, t := range types {
		for _, entry := range cuisineTable {
			if entry.placeType == t {
				return entry.cuisine
			}
		}
	}
	return "Restaurant"
}

var categoryTable = []struct{ placeType, category string }{
	{"tourist_attraction", "Tourist Attraction"},
	{"museum", "Museum"},
	{"park", "Park"},
	{"church", "Religious Site"},
	{"mosque", "Religious Site"},
	{"synagogue", "Religious Site"},
	{"hindu_temple", "Religious Site"},
	{"shopping_mall", "Shopping"},
	{"zoo", "Zoo"},
	{"aquarium", "Aquarium"},
	{"amusement_park", "Entertainment"},
	{"art_gallery", "Art Gallery"},
}

func categoryFromTypes(types []string) string {
	for _, t := range types {
		for _, entry := range categoryTable {
			if entry.placeType == t {
				return entry.category
			}
		}
	}
	return "Attraction"
}

var dishTable = map[string][]string{
	"Restaurant": {"House special", "Chef's recommendation", "Popular choice"},
	"Cafe":       {"Coffee", "Pastries", "Light meals"},
	"Bar":        {"Cocktails", "Beer selection", "Bar snacks"},
	"Bakery":     {"Fresh bread", "Pastries", "Desserts"},
	"Takeaway":   {"Popular dishes", "Local favorites", "Quick meals"},
}

func defaultDishesForCuisine(cuisine string) []string {
	if dishes, ok := dishTable[cuisine]; ok {
		return dishes
	}
	return []string{"Local specialty", "House special", "Popular choice"}
}
