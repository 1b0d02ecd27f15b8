package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"wayfarer/internal/gateway"
)

type stubWeatherProvider struct {
	samples []gateway.ForecastSample
	err     error
}

func (s *stubWeatherProvider) Forecast(ctx context.Context, city, country string) ([]gateway.ForecastSample, error) {
	return s.samples, s.err
}

func sampleAt(day time.Time, hour int, tempMax float64, condition string) gateway.ForecastSample {
	return gateway.ForecastSample{
		Timestamp: day.Add(time.Duration(hour) * time.Hour).Unix(),
		TempMin:   tempMax - 8,
		TempMax:   tempMax,
		Condition: condition,
	}
}

func TestGroupDailyForecastPicksHottestSamplePerDay(t *testing.T) {
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	samples := []gateway.ForecastSample{
		sampleAt(day, 6, 18, "morning mist"),
		sampleAt(day, 15, 26, "clear sky"),
		sampleAt(day, 21, 20, "few clouds"),
	}

	got := GroupDailyForecast(samples)
	if len(got) != 1 {
		t.Fatalf("expected 1 day, got %d", len(got))
	}
	if got[0].Date != "2026-08-10" {
		t.Fatalf("wrong date %s", got[0].Date)
	}
	if got[0].Temperature.High != 26 || got[0].Condition != "clear sky" {
		t.Fatalf("hottest sample should represent the day: %+v", got[0])
	}
}

func TestGroupDailyForecastTieKeepsLastSample(t *testing.T) {
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	samples := []gateway.ForecastSample{
		sampleAt(day, 9, 24, "first"),
		sampleAt(day, 18, 24, "second"),
	}

	got := GroupDailyForecast(samples)
	if len(got) != 1 {
		t.Fatalf("expected 1 day, got %d", len(got))
	}
	if got[0].Condition != "second" {
		t.Fatalf("on equal max temps the later sample wins, got %q", got[0].Condition)
	}
}

func TestGroupDailyForecastCapsAtSevenAscendingDays(t *testing.T) {
	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	var samples []gateway.ForecastSample
	// 9 days, appended newest first to prove ordering comes from sorting.
	for i := 8; i >= 0; i-- {
		samples = append(samples, sampleAt(start.AddDate(0, 0, i), 12, 20, "clear sky"))
	}

	got := GroupDailyForecast(samples)
	if len(got) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date <= got[i-1].Date {
			t.Fatalf("dates not ascending: %s then %s", got[i-1].Date, got[i].Date)
		}
	}
	if got[0].Date != "2026-08-10" {
		t.Fatalf("window should start at the earliest day, got %s", got[0].Date)
	}
}

func TestFetchForecastFallsBackOnProviderError(t *testing.T) {
	svc := NewWeatherService(&stubWeatherProvider{err: errors.New("dns failure")})

	first := svc.FetchForecast(context.Background(), "Barcelona", "Spain")
	if len(first) != 7 {
		t.Fatalf("fallback should produce 7 days, got %d", len(first))
	}

	second := svc.FetchForecast(context.Background(), "Barcelona", "Spain")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("fallback forecast must be deterministic across calls")
	}
}

func TestFetchForecastFallsBackOnEmptyResponse(t *testing.T) {
	svc := NewWeatherService(&stubWeatherProvider{})

	got := svc.FetchForecast(context.Background(), "Nowhere", "Atlantis")
	if len(got) != 7 {
		t.Fatalf("empty provider response should fall back, got %d days", len(got))
	}
}
