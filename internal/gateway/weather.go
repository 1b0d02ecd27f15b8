package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// ForecastSample is one sub-daily sample from the forecast provider.
type ForecastSample struct {
	Timestamp     int64
	TempMin       float64
	TempMax       float64
	Humidity      int
	Condition     string
	Icon          string
	WindSpeed     float64
	Precipitation float64 // probability 0..1
}

type WeatherProvider interface {
	Forecast(ctx context.Context, city, country string) ([]ForecastSample, error)
}

type OpenWeatherClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewOpenWeatherClient() *OpenWeatherClient {
	return &OpenWeatherClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		BaseURL: "https://api.openweathermap.org",
	}
}

type openWeatherResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Pop float64 `json:"pop"`
	} `json:"list"`
}

func (c *OpenWeatherClient) Forecast(ctx context.Context, city, country string) ([]ForecastSample, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("openweather api key missing")
	}

	q := url.Values{}
	q.Set("q", city+","+country)
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")

	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/data/2.5/forecast?"+q.Encode(), nil)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather forecast http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("weather forecast bad status: %s", resp.Status)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather decode: %w", err)
	}

	samples := make([]ForecastSample, 0, len(payload.List))
	for _, item := range payload.List {
		s := ForecastSample{
			Timestamp:     item.Dt,
			TempMin:       item.Main.TempMin,
			TempMax:       item.Main.TempMax,
			Humidity:      item.Main.Humidity,
			WindSpeed:     item.Wind.Speed,
			Precipitation: item.Pop,
		}
		if len(item.Weather) > 0 {
			s.Condition = item.Weather[0].Description
			s.Icon = item.Weather[0].Icon
		}
		samples = append(samples, s)
	}
	return samples, nil
}
