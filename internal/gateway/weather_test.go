package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenWeatherForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/forecast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "Barcelona,Spain" {
			t.Errorf("city query wrong: %q", q.Get("q"))
		}
		if q.Get("units") != "metric" {
			t.Errorf("units must be metric, got %q", q.Get("units"))
		}
		if q.Get("appid") != "ow-key" {
			t.Errorf("api key missing from query")
		}
		w.Write([]byte(`{"list": [
			{"dt": 1754900000, "main": {"temp": 24, "temp_min": 18.4, "temp_max": 25.6, "humidity": 60},
			 "weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}],
			 "wind": {"speed": 3.5}, "pop": 0.15},
			{"dt": 1754910800, "main": {"temp": 22, "temp_min": 17, "temp_max": 23, "humidity": 65},
			 "weather": [], "wind": {"speed": 2}, "pop": 0}
		]}`))
	}))
	defer srv.Close()

	client := &OpenWeatherClient{HTTP: srv.Client(), APIKey: "ow-key", BaseURL: srv.URL}
	samples, err := client.Forecast(context.Background(), "Barcelona", "Spain")
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}

	s := samples[0]
	if s.TempMax != 25.6 || s.TempMin != 18.4 || s.Humidity != 60 {
		t.Fatalf("bad mapping: %+v", s)
	}
	if s.Condition != "clear sky" || s.Icon != "01d" {
		t.Fatalf("weather description lost: %+v", s)
	}
	if s.Precipitation != 0.15 {
		t.Fatalf("pop not carried over: %v", s.Precipitation)
	}

	// Empty weather array must not panic; the sample just has no condition.
	if samples[1].Condition != "" {
		t.Fatalf("expected empty condition, got %q", samples[1].Condition)
	}
}

func TestOpenWeatherForecastRequiresKey(t *testing.T) {
	client := &OpenWeatherClient{HTTP: http.DefaultClient, BaseURL: "http://127.0.0.1:0"}
	if _, err := client.Forecast(context.Background(), "Barcelona", "Spain"); err == nil {
		t.Fatalf("missing api key should error before any request")
	}
}

func TestOpenWeatherForecastBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"401"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := &OpenWeatherClient{HTTP: srv.Client(), APIKey: "bad", BaseURL: srv.URL}
	if _, err := client.Forecast(context.Background(), "Barcelona", "Spain"); err == nil {
		t.Fatalf("non-2xx status should surface as an error")
	}
}
