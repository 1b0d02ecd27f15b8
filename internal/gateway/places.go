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

// Place is the provider-neutral search result both Places API generations
// normalize into.
type Place struct {
	ID           string
	Name         string
	Types        []string
	Rating       float64
	PriceLevel   int // 0 when the provider reported none
	Address      string
	OpeningHours []string
	PhotoURL     string
	Phone        string
	Website      string
}

// PlaceProvider abstracts the two Google Places API generations so the
// aggregation logic above it stays a single code path.
type PlaceProvider interface {
	TextSearch(ctx context.Context, query, placeType string) ([]Place, error)
}

// --------- Legacy text-search provider (query-parameter key) ---------

type LegacyPlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewLegacyPlacesClient() *LegacyPlacesClient {
	return &LegacyPlacesClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		BaseURL: "https://maps.googleapis.com",
	}
}

type legacyPlace struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`
	PriceLevel       int      `json:"price_level"`
	Types            []string `json:"types"`
	Vicinity         string   `json:"vicinity"`
	FormattedAddress string   `json:"formatted_address"`
	OpeningHours     *struct {
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

type legacySearchResponse struct {
	Results      []legacyPlace `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

func (c *LegacyPlacesClient) TextSearch(ctx context.Context, query, placeType string) ([]Place, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("type", placeType)
	q.Set("key", c.APIKey)

	req, _ := http.NewRequestWithContext(ctx, "GET",
		c.BaseURL+"/maps/api/place/textsearch/json?"+q.Encode(), nil)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places text search http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places text search bad status: %s", resp.Status)
	}

	var payload legacySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}
	if payload.Status != "OK" {
		return nil, fmt.Errorf("places status %s: %s", payload.Status, payload.ErrorMessage)
	}

	places := make([]Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		p := Place{
			ID:         r.PlaceID,
			Name:       r.Name,
			Types:      r.Types,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Address:    r.FormattedAddress,
		}
		if p.Address == "" {
			p.Address = r.Vicinity
		}
		if r.OpeningHours != nil {
			p.OpeningHours = r.OpeningHours.WeekdayText
		}
		if len(r.Photos) > 0 {
			p.PhotoURL = fmt.Sprintf(
				"https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photoreference=%s&key=%s",
				r.Photos[0].PhotoReference, c.APIKey)
		}
		places = append(places, p)
	}
	return places, nil
}
