package services

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"wayfarer/internal/gateway"
	"wayfarer/internal/gateway/fallback"
	"wayfarer/internal/models/domain"
)

const forecastDays = 7

// WeatherServiceInterface returns at most 7 daily entries in ascending date
// order. The operation is total: any provider failure resolves to the
// deterministic fallback table for the city.
type WeatherServiceInterface interface {
	FetchForecast(ctx context.Context, city, country string) []domain.Weather
}

type WeatherService struct {
	provider gateway.WeatherProvider
}

func NewWeatherService(provider gateway.WeatherProvider) WeatherServiceInterface {
	return &WeatherService{provider: provider}
}

func (s *WeatherService) FetchForecast(ctx context.Context, city, country string) []domain.Weather {
	samples, err := s.provider.Forecast(ctx, city, country)
	if err != nil || len(samples) == 0 {
		log.Printf("weather forecast for %s, %s unavailable (%v); using fallback data", city, country, err)
		return fallback.WeatherForCity(city)
	}
	return GroupDailyForecast(samples)
}

// GroupDailyForecast buckets sub-daily samples by calendar day, keeping per
// day the sample with the highest reported max temperature. On equal max
// temperatures the later sample wins; that matches the shipped behavior and
// is pending product-owner review, so do not change it here.
func GroupDailyForecast(samples []gateway.ForecastSample) []domain.Weather {
	best := make(map[string]gateway.ForecastSample)
	for _, s := range samples {
		day := time.Unix(s.Timestamp, 0).UTC().Format("2006-01-02")
		if cur, ok := best[day]; !ok || s.TempMax >= cur.TempMax {
			best[day] = s
		}
	}

	days := make([]string, 0, len(best))
	for day := range best {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > forecastDays {
		days = days[:forecastDays]
	}

	out := make([]domain.Weather, len(days))
	for i, day := range days {
		s := best[day]
		out[i] = domain.Weather{
			Date: day,
			Temperature: domain.TemperatureRange{
				High: int(math.Round(s.TempMax)),
				Low:  int(math.Round(s.TempMin)),
			},
			Condition:     s.Condition,
			Precipitation: int(math.Round(s.Precipitation * 100)),
			Icon:          s.Icon,
			Humidity:      s.Humidity,
			WindSpeed:     s.WindSpeed,
		}
	}
	return out
}
