package services

import (
	"fmt"
	"strings"

	"wayfarer/internal/gateway/fallback"
	"wayfarer/internal/models/domain"
)

// OutfitServiceInterface turns a week of weather into clothing
// recommendations. Pure and deterministic: identical inputs always produce
// identical output.
type OutfitServiceInterface interface {
	GenerateRecommendations(weather []domain.Weather, city string) []domain.OutfitRecommendation
}

type OutfitService struct{}

func NewOutfitService() OutfitServiceInterface {
	return &OutfitService{}
}

// Temperature buckets by average of daily high and low, in degrees Celsius.
var tempRanges = []struct {
	name  string
	below float64
}{
	{"very-cold", 5},
	{"cold", 15},
	{"mild", 25},
	{"warm", 35},
	{"hot", 1000},
}

func rangeForTemp(avg float64) string {
	for _, r := range tempRanges {
		if avg < r.below {
			return r.name
		}
	}
	return "hot"
}

func (o *OutfitService) GenerateRecommendations(weather []domain.Weather, city string) []domain.OutfitRecommendation {
	buckets := make(map[string][]domain.Weather)
	for _, day := range weather {
		avg := (float64(day.Temperature.High) + float64(day.Temperature.Low)) / 2
		name := rangeForTemp(avg)
		buckets[name] = append(buckets[name], day)
	}

	// Fixed bucket order keeps the output stable across calls.
	recommendations := make([]domain.OutfitRecommendation, 0, len(buckets))
	for _, r := range tempRanges {
		days, ok := buckets[r.name]
		if !ok {
			continue
		}

		var sum float64
		for _, day := range days {
			sum += (float64(day.Temperature.High) + float64(day.Temperature.Low)) / 2
		}
		avg := sum / float64(len(days))
		condition := strings.ToLower(days[0].Condition)

		recommendations = append(recommendations, buildOutfit(r.name, condition, avg, city))
	}
	return recommendations
}

func buildOutfit(tempRange, condition string, avgTemp float64, city string) domain.OutfitRecommendation {
	destinationType := outfitDestinationType(city)

	outfit := domain.OutfitRecommendation{
		ID:               fmt.Sprintf("%s-%s-%s", tempRange, condition, city),
		WeatherCondition: condition,
		Temperature:      domain.TempSpan{Min: avgTemp - 5, Max: avgTemp + 5},
		DestinationType:  destinationType,
	}

	switch tempRange {
	case "very-cold":
		outfit.Items = domain.OutfitItems{
			Tops:        []string{"Thermal base layer", "Wool sweater", "Fleece jacket"},
			Bottoms:     []string{"Thermal leggings", "Warm pants", "Jeans"},
			Outerwear:   []string{"Heavy winter coat", "Down jacket", "Wool coat"},
			Shoes:       []string{"Insulated boots", "Winter boots", "Wool socks"},
			Accessories: []string{"Warm hat", "Gloves", "Scarf", "Thermal socks"},
		}
		outfit.Tips = []string{"Layer up for warmth", "Bring hand warmers", "Protect extremities"}
	case "cold":
		outfit.Items = domain.OutfitItems{
			Tops:        []string{"Long-sleeve shirt", "Sweater", "Cardigan"},
			Bottoms:     []string{"Jeans", "Warm pants", "Leggings"},
			Outerwear:   []string{"Light jacket", "Trench coat", "Blazer"},
			Shoes:       []string{"Boots", "Sneakers", "Loafers"},
			Accessories: []string{"Light scarf", "Hat", "Gloves"},
		}
		outfit.Tips = []string{"Layer for versatility", "Bring a light jacket"}
	case "mild":
		outfit.Items = domain.OutfitItems{
			Tops:        []string{"T-shirt", "Long-sleeve shirt", "Light sweater"},
			Bottoms:     []string{"Jeans", "Chinos", "Skirt"},
			Outerwear:   []string{"Light jacket", "Cardigan", "Blazer"},
			Shoes:       []string{"Sneakers", "Loafers", "Boots"},
			Accessories: []string{"Light scarf", "Sunglasses"},
		}
		outfit.Tips = []string{"Perfect weather for layering", "Bring a light jacket for evenings"}
	case "warm":
		outfit.Items = domain.OutfitItems{
			Tops:        []string{"T-shirt", "Tank top", "Light blouse"},
			Bottoms:     []string{"Shorts", "Light pants", "Skirt"},
			Outerwear:   []string{"Light cardigan", "Denim jacket"},
			Shoes:       []string{"Sandals", "Sneakers", "Flats"},
			Accessories: []string{"Sunglasses", "Hat", "Light scarf"},
		}
		outfit.Tips = []string{"Stay cool and comfortable", "Bring sun protection"}
	case "hot":
		outfit.Items = domain.OutfitItems{
			Tops:        []string{"Tank top", "Light t-shirt", "Linen shirt"},
			Bottoms:     []string{"Shorts", "Light skirt", "Linen pants"},
			Outerwear:   []string{"Light shawl", "Sun hat"},
			Shoes:       []string{"Sandals", "Flip-flops", "Breathable sneakers"},
			Accessories: []string{"Sunglasses", "Wide-brim hat", "Sunscreen"},
		}
		outfit.Tips = []string{"Stay cool and hydrated", "Wear light colors", "Protect from sun"}
	}

	if strings.Contains(condition, "rain") {
		outfit.Items.Outerwear = append(outfit.Items.Outerwear, "Rain jacket", "Umbrella")
		outfit.Items.Shoes = []string{"Waterproof boots", "Rain boots"}
		outfit.Items.Accessories = append(outfit.Items.Accessories, "Waterproof bag cover")
		outfit.Tips = append(outfit.Tips, "Stay dry with waterproof gear")
	}
	if strings.Contains(condition, "snow") {
		outfit.Items.Outerwear = append(outfit.Items.Outerwear, "Snow jacket", "Waterproof coat")
		outfit.Items.Shoes = []string{"Snow boots", "Insulated boots"}
		outfit.Items.Accessories = append(outfit.Items.Accessories, "Snow gloves", "Winter hat")
		outfit.Tips = append(outfit.Tips, "Dress for snow and ice")
	}
	if strings.Contains(condition, "wind") {
		outfit.Items.Outerwear = append(outfit.Items.Outerwear, "Windbreaker", "Light jacket")
		outfit.Tips = append(outfit.Tips, "Protect against wind chill")
	}

	switch destinationType {
	case "beach":
		outfit.Items.Tops = append(outfit.Items.Tops, "Swimsuit", "Cover-up", "Rash guard")
		outfit.Items.Bottoms = append(outfit.Items.Bottoms, "Swim trunks", "Beach shorts")
		outfit.Items.Accessories = append(outfit.Items.Accessories, "Beach towel", "Sunscreen", "Beach hat")
		outfit.Tips = append(outfit.Tips, "Pack beach essentials", "Bring extra sunscreen")
	case "mountain":
		outfit.Items.Shoes = append(outfit.Items.Shoes, "Hiking boots", "Trail shoes")
		outfit.Items.Accessories = append(outfit.Items.Accessories, "Hiking backpack", "Water bottle")
		outfit.Tips = append(outfit.Tips, "Prepare for elevation changes", "Bring hiking gear")
	}

	return outfit
}

// The outfit heuristic only distinguishes beach, mountain and city.
func outfitDestinationType(city string) string {
	switch fallback.DestinationType(city) {
	case "beach":
		return "beach"
	case "mountain":
		return "mountain"
	}
	return "city"
}
