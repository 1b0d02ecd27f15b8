package fallback

import (
	"strings"

	"wayfarer/internal/models/domain"
)

var cityTransport = map[string]domain.TransportationInfo{
	"paris": {
		City: "Paris",
		MetroSystem: &domain.TransitSystem{
			Name:          "Paris Metro",
			Description:   "Extensive underground rail system serving Paris and surrounding areas",
			Cost:          "€2.10 per ticket, €14.90 for 10-ticket carnet",
			PaymentMethod: "Contactless cards, mobile payments, or Navigo Easy card",
		},
		BusSystem: &domain.TransitSystem{
			Name:          "RATP Bus Network",
			Description:   "Comprehensive bus system with over 300 routes",
			Cost:          "€2.10 per ticket (same as metro)",
			PaymentMethod: "Same as metro - contactless or Navigo card",
		},
		AirportTransport: &domain.AirportTransport{
			Options:  []string{"RER B train", "Airport buses", "Taxis", "Uber"},
			Costs:    []string{"€10.30", "€12-17", "€50-70", "€35-55"},
			Duration: []string{"45-60 min", "60-90 min", "45-60 min", "45-60 min"},
		},
		Apps: []string{"RATP", "Citymapper", "Uber", "Bolt"},
		Tips: []string{
			"Get a Navigo Easy card for convenience",
			"Download the RATP app for real-time updates",
			"Avoid rush hours (7-9 AM, 5-7 PM)",
			"Validate your ticket before boarding",
		},
	},
	"london": {
		City: "London",
		MetroSystem: &domain.TransitSystem{
			Name:          "London Underground (Tube)",
			Description:   "World's oldest underground railway system",
			Cost:          "£2.80-£6.30 depending on zones",
			PaymentMethod: "Oyster card, contactless payment, or mobile",
		},
		BusSystem: &domain.TransitSystem{
			Name:          "London Buses",
			Description:   "Extensive bus network with iconic red double-deckers",
			Cost:          "£1.75 per journey (Hopper fare allows free transfers)",
			PaymentMethod: "Oyster card, contactless, or mobile payment",
		},
		AirportTransport: &domain.AirportTransport{
			Options:  []string{"Heathrow Express", "Piccadilly Line", "Taxis", "Uber"},
			Costs:    []string{"£25-37", "£3.10-£5.10", "£45-85", "£25-45"},
			Duration: []string{"15-20 min", "45-60 min", "45-60 min", "45-60 min"},
		},
		Apps: []string{"TfL Go", "Citymapper", "Uber", "Bolt"},
		Tips: []string{
			"Get an Oyster card or use contactless payment",
			"Download TfL Go app for live updates",
			"Avoid peak hours (7-9 AM, 5-7 PM)",
			"Stand on the right side of escalators",
		},
	},
	"tokyo": {
		City: "Tokyo",
		MetroSystem: &domain.TransitSystem{
			Name:          "Tokyo Metro & Toei Subway",
			Description:   "Two subway systems serving Tokyo with excellent coverage",
			Cost:          "¥170-¥320 depending on distance",
			PaymentMethod: "IC cards (Suica, Pasmo) or mobile payment",
		},
		BusSystem: &domain.TransitSystem{
			Name:          "Tokyo Buses",
			Description:   "Comprehensive bus network, especially useful for areas not served by trains",
			Cost:          "¥210 for most routes",
			PaymentMethod: "IC cards or exact change",
		},
		AirportTransport: &domain.AirportTransport{
			Options:  []string{"Narita Express", "Keisei Skyliner", "Airport Limousine Bus", "Taxis"},
			Costs:    []string{"¥3,070", "¥2,470", "¥3,100", "¥20,000-30,000"},
			Duration: []string{"53-60 min", "41 min", "60-90 min", "60-90 min"},
		},
		Apps: []string{"Google Maps", "Yahoo! Transit", "Uber", "DiDi"},
		Tips: []string{
			"Get a Suica or Pasmo IC card",
			"Google Maps works excellently for navigation",
			"Trains stop running around midnight",
			"Be prepared for crowded trains during rush hour",
		},
	},
	"new-york": {
		City: "New York",
		MetroSystem: &domain.TransitSystem{
			Name:          "NYC Subway",
			Description:   "24/7 subway system serving all five boroughs",
			Cost:          "$2.90 per ride (unlimited transfers)",
			PaymentMethod: "MetroCard, OMNY contactless, or mobile payment",
		},
		BusSystem: &domain.TransitSystem{
			Name:          "MTA Buses",
			Description:   "Extensive bus network with local and express routes",
			Cost:          "$2.90 per ride (free transfers to subway)",
			PaymentMethod: "Same as subway - MetroCard or OMNY",
		},
		AirportTransport: &domain.AirportTransport{
			Options:  []string{"AirTrain + Subway", "Airport Express Bus", "Taxis", "Uber/Lyft"},
			Costs:    []string{"$8.25 + $2.90", "$19", "$52-70", "$35-55"},
			Duration: []string{"60-90 min", "60-90 min", "45-60 min", "45-60 min"},
		},
		Apps: []string{"MYmta", "Citymapper", "Uber", "Lyft"},
		Tips: []string{
			"Get a MetroCard or use OMNY contactless",
			"Download MYmta app for real-time updates",
			"Subway runs 24/7 but with reduced service at night",
			"Express trains skip local stops",
		},
	},
}

// TransportForCity matches by substring so "Paris, France" and "paris" both
// resolve. Returns nil when no information is available.
func TransportForCity(city string) *domain.TransportationInfo {
	lower := strings.ToLower(city)

	switch {
	case strings.Contains(lower, "paris"):
		info := cityTransport["paris"]
		return &info
	case strings.Contains(lower, "london"):
		info := cityTransport["london"]
		return &info
	case strings.Contains(lower, "tokyo"):
		info := cityTransport["tokyo"]
		return &info
	case strings.Contains(lower, "new york") || strings.Contains(lower, "nyc"):
		info := cityTransport["new-york"]
		return &info
	}
	return nil
}
