// Package fallback holds the hand-authored sample records served when a live
// provider call fails or returns nothing.
package fallback

import (
	"fmt"
	"strings"

	"wayfarer/internal/models/domain"
)

var cityRestaurants = map[string][]domain.Restaurant{
	"barcelona": {
		{
			ID:            "barcelona-1",
			Name:          "Casa Lolea",
			Cuisine:       "Spanish",
			PriceRange:    3,
			Rating:        4.5,
			MustTryDishes: []string{"Paella Valenciana", "Jamón Ibérico", "Sangría"},
			Address:       "Carrer de Sant Pere Més Alt, 49, 08003 Barcelona",
			Phone:         "+34 933 19 88 81",
			OpeningHours:  "1:00 PM - 4:00 PM, 8:00 PM - 11:30 PM",
		},
		{
			ID:            "barcelona-2",
			Name:          "El Nacional",
			Cuisine:       "Spanish",
			PriceRange:    2,
			Rating:        4.3,
			MustTryDishes: []string{"Tapas", "Seafood", "Local wines"},
			Address:       "Passeig de Gràcia, 24, 08007 Barcelona",
			Phone:         "+34 935 18 50 53",
			OpeningHours:  "12:00 PM - 1:00 AM",
		},
	},
	"tokyo": {
		{
			ID:            "tokyo-1",
			Name:          "Sukiyabashi Jiro",
			Cuisine:       "Japanese",
			PriceRange:    4,
			Rating:        4.8,
			MustTryDishes: []string{"Sushi Omakase", "Tuna", "Sea urchin"},
			Address:       "Tsukamoto Sogyo Building, 2-15-2 Ginza, Chuo City, Tokyo",
			Phone:         "+81 3-3535-3600",
			OpeningHours:  "11:30 AM - 2:00 PM, 5:00 PM - 8:30 PM",
		},
		{
			ID:            "tokyo-2",
			Name:          "Ramen Nagi",
			Cuisine:       "Japanese",
			PriceRange:    1,
			Rating:        4.4,
			MustTryDishes: []string{"Tonkotsu Ramen", "Gyoza", "Karaage"},
			Address:       "Multiple locations in Tokyo",
			Phone:         "+81 3-1234-5678",
			OpeningHours:  "11:00 AM - 2:00 AM",
		},
	},
	"mumbai": {
		{
			ID:            "mumbai-1",
			Name:          "Trishna",
			Cuisine:       "Indian",
			PriceRange:    2,
			Rating:        4.6,
			MustTryDishes: []string{"Butter Chicken", "Biryani", "Naan"},
			Address:       "7 Sai Baba Marg, Kala Ghoda, Fort, Mumbai",
			Phone:         "+91 22 2270 3213",
			OpeningHours:  "12:00 PM - 3:30 PM, 6:30 PM - 11:30 PM",
		},
		{
			ID:            "mumbai-2",
			Name:          "Leopold Cafe",
			Cuisine:       "Indian",
			PriceRange:    2,
			Rating:        4.2,
			MustTryDishes: []string{"Chicken Tikka", "Dal Makhani", "Lassi"},
			Address:       "Colaba Causeway, Colaba, Mumbai",
			Phone:         "+91 22 2282 8185",
			OpeningHours:  "7:30 AM - 12:00 AM",
		},
	},
}

func RestaurantsForCity(city, country string) []domain.Restaurant {
	if rs, ok := cityRestaurants[strings.ToLower(city)]; ok {
		out := make([]domain.Restaurant, len(rs))
		copy(out, rs)
		return out
	}

	return []domain.Restaurant{
		{
			ID:            fmt.Sprintf("local-1-%s", city),
			Name:          fmt.Sprintf("%s Central Restaurant", city),
			Cuisine:       "Local",
			PriceRange:    2,
			Rating:        4.2,
			MustTryDishes: []string{"Local specialty", "Traditional dish", "Regional favorite"},
			Address:       fmt.Sprintf("City Center, %s, %s", city, country),
			Phone:         "+1 (555) 123-4567",
			OpeningHours:  "11:00 AM - 10:00 PM",
		},
		{
			ID:            fmt.Sprintf("local-2-%s", city),
			Name:          "International Bistro",
			Cuisine:       "International",
			PriceRange:    3,
			Rating:        4.4,
			MustTryDishes: []string{"Chef's special", "Signature dish", "Popular choice"},
			Address:       fmt.Sprintf("Downtown District, %s, %s", city, country),
			Phone:         "+1 (555) 987-6543",
			OpeningHours:  "12:00 PM - 11:00 PM",
		},
		{
			ID:            fmt.Sprintf("local-3-%s", city),
			Name:          "Café Corner",
			Cuisine:       "Cafe",
			PriceRange:    1,
			Rating:        4.1,
			MustTryDishes: []string{"Coffee", "Pastries", "Light meals"},
			Address:       fmt.Sprintf("Main Street, %s, %s", city, country),
			Phone:         "+1 (555) 456-7890",
			OpeningHours:  "7:00 AM - 6:00 PM",
		},
	}
}

var cityAttractions = map[string][]domain.Attraction{
	"barcelona": {
		{
			ID:            "barcelona-attraction-1",
			Name:          "Sagrada Família",
			Description:   "Antoni Gaudí's unfinished masterpiece, a stunning basilica with unique architecture.",
			Category:      "Religious Site",
			OpeningHours:  "9:00 AM - 6:00 PM (varies by season)",
			Cost:          "€26-32",
			Duration:      "2-3 hours",
			HowToGetThere: "Metro: Sagrada Família (L2, L5)",
			Rating:        4.6,
			ImageURL:      "https://images.unsplash.com/photo-1539650116574-75c0c6d73c6e?w=400",
		},
		{
			ID:            "barcelona-attraction-2",
			Name:          "Park Güell",
			Description:   "Gaudí's colorful park with mosaic sculptures and city views.",
			Category:      "Park",
			OpeningHours:  "8:00 AM - 9:30 PM",
			Cost:          "€10",
			Duration:      "2-4 hours",
			HowToGetThere: "Metro: Lesseps (L3), then bus 24",
			Rating:        4.4,
			ImageURL:      "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400",
		},
		{
			ID:            "barcelona-attraction-3",
			Name:          "Casa Batlló",
			Description:   "Gaudí's architectural masterpiece with organic shapes and colorful facade.",
			Category:      "Museum",
			OpeningHours:  "9:00 AM - 8:00 PM",
			Cost:          "€35",
			Duration:      "1-2 hours",
			HowToGetThere: "Metro: Passeig de Gràcia (L2, L3, L4)",
			Rating:        4.3,
			ImageURL:      "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400",
		},
	},
	"tokyo": {
		{
			ID:            "tokyo-attraction-1",
			Name:          "Senso-ji Temple",
			Description:   "Tokyo's oldest temple, a beautiful Buddhist temple in Asakusa.",
			Category:      "Religious Site",
			OpeningHours:  "6:00 AM - 5:00 PM",
			Cost:          "Free",
			Duration:      "1-2 hours",
			HowToGetThere: "Metro: Asakusa (G19, Z18)",
			Rating:        4.4,
			ImageURL:      "https://images.unsplash.com/photo-1542640244-a10b6e5d1e2a?w=400",
		},
		{
			ID:            "tokyo-attraction-2",
			Name:          "Tokyo Skytree",
			Description:   "The tallest structure in Japan with panoramic city views.",
			Category:      "Landmark",
			OpeningHours:  "8:00 AM - 10:00 PM",
			Cost:          "¥2,100-3,100",
			Duration:      "2-3 hours",
			HowToGetThere: "Metro: Tokyo Skytree (Z14)",
			Rating:        4.2,
			ImageURL:      "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=400",
		},
		{
			ID:            "tokyo-attraction-3",
			Name:          "Meiji Shrine",
			Description:   "A peaceful Shinto shrine surrounded by forest in the heart of Tokyo.",
			Category:      "Religious Site",
			OpeningHours:  "6:40 AM - 4:20 PM (varies by season)",
			Cost:          "Free",
			Duration:      "1-2 hours",
			HowToGetThere: "Metro: Harajuku (C03) or Meiji-jingumae (C03, F15)",
			Rating:        4.5,
			ImageURL:      "https://images.unsplash.com/photo-1542640244-a10b6e5d1e2a?w=400",
		},
	},
	"mumbai": {
		{
			ID:            "mumbai-attraction-1",
			Name:          "Gateway of India",
			Description:   "Iconic arch monument overlooking the Arabian Sea.",
			Category:      "Landmark",
			OpeningHours:  "24/7",
			Cost:          "Free",
			Duration:      "30 minutes - 1 hour",
			HowToGetThere: "Local train: CST, Bus: Multiple routes",
			Rating:        4.3,
			ImageURL:      "https://images.unsplash.com/photo-1587474260584-136574528ed5?w=400",
		},
		{
			ID:            "mumbai-attraction-2",
			Name:          "Chhatrapati Shivaji Maharaj Vastu Sangrahalaya",
			Description:   "Formerly Prince of Wales Museum, showcasing Indian art and history.",
			Category:      "Museum",
			OpeningHours:  "10:15 AM - 6:00 PM (closed Mondays)",
			Cost:          "₹70-100",
			Duration:      "2-3 hours",
			HowToGetThere: "Local train: Churchgate, Bus: Route 1, 2, 3",
			Rating:        4.2,
			ImageURL:      "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400",
		},
		{
			ID:            "mumbai-attraction-3",
			Name:          "Marine Drive",
			Description:   "Famous 3.6km promenade along the Arabian Sea coastline.",
			Category:      "Landmark",
			OpeningHours:  "24/7",
			Cost:          "Free",
			Duration:      "1-2 hours",
			HowToGetThere: "Local train: Marine Lines, Bus: Multiple routes",
			Rating:        4.4,
			ImageURL:      "https://images.unsplash.com/photo-1587474260584-136574528ed5?w=400",
		},
	},
}

func AttractionsForCity(city, country string) []domain.Attraction {
	if as, ok := cityAttractions[strings.ToLower(city)]; ok {
		out := make([]domain.Attraction, len(as))
		copy(out, as)
		return out
	}

	return []domain.Attraction{
		{
			ID:            fmt.Sprintf("attraction-1-%s", city),
			Name:          fmt.Sprintf("%s City Center", city),
			Description:   fmt.Sprintf("The heart of %s with beautiful architecture and local culture.", city),
			Category:      "Landmark",
			OpeningHours:  "24/7",
			Cost:          "Free",
			Duration:      "1-2 hours",
			HowToGetThere: "Located in the city center, accessible by public transport",
			Rating:        4.3,
			ImageURL:      "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=400",
		},
		{
			ID:            fmt.Sprintf("attraction-2-%s", city),
			Name:          fmt.Sprintf("%s History Museum", city),
			Description:   fmt.Sprintf("Discover the rich history and culture of %s and the surrounding region.", city),
			Category:      "Museum",
			OpeningHours:  "10:00 AM - 6:00 PM (closed Mondays)",
			Cost:          "$10-15",
			Duration:      "2-3 hours",
			HowToGetThere: "Metro: City Center Station, Bus: Route 5",
			Rating:        4.1,
			ImageURL:      "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400",
		},
		{
			ID:            fmt.Sprintf("attraction-3-%s", city),
			Name:          fmt.Sprintf("%s Central Park", city),
			Description:   "A beautiful urban park perfect for relaxation and outdoor activities.",
			Category:      "Park",
			OpeningHours:  "6:00 AM - 10:00 PM",
			Cost:          "Free",
			Duration:      "1-3 hours",
			HowToGetThere: "Located in the city center, multiple entrances",
			Rating:        4.2,
			ImageURL:      "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400",
		},
	}
}
