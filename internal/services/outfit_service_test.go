package services

import (
	"reflect"
	"testing"

	"wayfarer/internal/models/domain"
)

func weatherDay(date string, high, low int, condition string) domain.Weather {
	return domain.Weather{
		Date:        date,
		Temperature: domain.TemperatureRange{High: high, Low: low},
		Condition:   condition,
	}
}

func TestGenerateRecommendationsSnowyWinterDay(t *testing.T) {
	svc := NewOutfitService()

	week := []domain.Weather{weatherDay("2026-01-05", 3, -2, "Light Snow")}
	recs := svc.GenerateRecommendations(week, "Oslo")
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	rec := recs[0]
	if rec.WeatherCondition != "light snow" {
		t.Fatalf("condition should be lowercased, got %q", rec.WeatherCondition)
	}
	if !reflect.DeepEqual(rec.Items.Shoes, []string{"Snow boots", "Insulated boots"}) {
		t.Fatalf("snow should replace shoes, got %v", rec.Items.Shoes)
	}

	foundTip := false
	for _, tip := range rec.Tips {
		if tip == "Dress for snow and ice" {
			foundTip = true
		}
	}
	if !foundTip {
		t.Fatalf("missing snow tip in %v", rec.Tips)
	}
}

func TestGenerateRecommendationsBucketsByAverageTemp(t *testing.T) {
	svc := NewOutfitService()

	week := []domain.Weather{
		weatherDay("2026-08-01", 30, 24, "clear sky"),  // avg 27: warm
		weatherDay("2026-08-02", 31, 25, "clear sky"),  // avg 28: warm
		weatherDay("2026-08-03", 20, 14, "light rain"), // avg 17: mild
	}

	recs := svc.GenerateRecommendations(week, "Lisbon")
	if len(recs) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(recs))
	}
	// Fixed bucket order: colder ranges first.
	if recs[0].WeatherCondition != "light rain" {
		t.Fatalf("mild bucket should come first, got condition %q", recs[0].WeatherCondition)
	}
	if recs[1].WeatherCondition != "clear sky" {
		t.Fatalf("warm bucket second, got condition %q", recs[1].WeatherCondition)
	}
}

func TestGenerateRecommendationsRainAdjustments(t *testing.T) {
	svc := NewOutfitService()

	recs := svc.GenerateRecommendations([]domain.Weather{weatherDay("2026-04-01", 18, 10, "moderate rain")}, "London")
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	rec := recs[0]
	if !reflect.DeepEqual(rec.Items.Shoes, []string{"Waterproof boots", "Rain boots"}) {
		t.Fatalf("rain should replace shoes, got %v", rec.Items.Shoes)
	}
	foundUmbrella := false
	for _, item := range rec.Items.Outerwear {
		if item == "Umbrella" {
			foundUmbrella = true
		}
	}
	if !foundUmbrella {
		t.Fatalf("umbrella missing from outerwear: %v", rec.Items.Outerwear)
	}
}

func TestGenerateRecommendationsBeachDestination(t *testing.T) {
	svc := NewOutfitService()

	recs := svc.GenerateRecommendations([]domain.Weather{weatherDay("2026-07-01", 33, 25, "clear sky")}, "Miami Beach")
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].DestinationType != "beach" {
		t.Fatalf("expected beach destination, got %q", recs[0].DestinationType)
	}

	foundSwimsuit := false
	for _, top := range recs[0].Items.Tops {
		if top == "Swimsuit" {
			foundSwimsuit = true
		}
	}
	if !foundSwimsuit {
		t.Fatalf("beach outfit missing swimsuit: %v", recs[0].Items.Tops)
	}
}

func TestGenerateRecommendationsDeterministic(t *testing.T) {
	svc := NewOutfitService()
	week := []domain.Weather{
		weatherDay("2026-08-01", 30, 24, "clear sky"),
		weatherDay("2026-08-02", 12, 4, "windy"),
		weatherDay("2026-08-03", 2, -5, "snow"),
	}

	first := svc.GenerateRecommendations(week, "Denver")
	for i := 0; i < 20; i++ {
		if got := svc.GenerateRecommendations(week, "Denver"); !reflect.DeepEqual(first, got) {
			t.Fatalf("output varies across identical calls")
		}
	}
}
