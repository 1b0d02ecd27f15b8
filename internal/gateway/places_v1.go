package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

// PlacesV1Client talks to the newer POST-based Places API: searches go to
// places:searchText with a field mask, and phone/website/hours come from a
// per-place details lookup. A failed details lookup downgrades that one
// record only.
type PlacesV1Client struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewPlacesV1Client() *PlacesV1Client {
	return &PlacesV1Client{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		BaseURL: "https://places.googleapis.com",
	}
}

var v1PriceLevels = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

type v1Place struct {
	ID          string `json:"id"`
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	Types            []string `json:"types"`
	Rating           float64  `json:"rating"`
	PriceLevel       string   `json:"priceLevel"`
	FormattedAddress string   `json:"formattedAddress"`
	Photos           []struct {
		Name string `json:"name"`
	} `json:"photos"`
}

type v1SearchResponse struct {
	Places []v1Place `json:"places"`
}

type v1Details struct {
	WebsiteURI          string `json:"websiteUri"`
	NationalPhoneNumber string `json:"nationalPhoneNumber"`
	RegularOpeningHours *struct {
		WeekdayDescriptions []string `json:"weekdayDescriptions"`
	} `json:"regularOpeningHours"`
}

func (c *PlacesV1Client) TextSearch(ctx context.Context, query, placeType string) ([]Place, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"textQuery":      query,
		"maxResultCount": 10,
	})

	req, _ := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/v1/places:searchText", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask",
		"places.id,places.displayName,places.types,places.rating,places.priceLevel,places.formattedAddress,places.photos")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places v1 search http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places v1 search bad status: %s", resp.Status)
	}

	var payload v1SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places v1 decode: %w", err)
	}

	places := make([]Place, len(payload.Places))
	for i, r := range payload.Places {
		places[i] = Place{
			ID:         r.ID,
			Name:       r.DisplayName.Text,
			Types:      r.Types,
			Rating:     r.Rating,
			PriceLevel: v1PriceLevels[r.PriceLevel],
			Address:    r.FormattedAddress,
		}
	}

	// Detail lookups fan out per place; each failure leaves that record's
	// optional fields empty instead of failing the search.
	var wg sync.WaitGroup
	for i := range places {
		wg.Add(1)
		go func(p *Place) {
			defer wg.Done()
			details, err := c.fetchDetails(ctx, p.ID)
			if err != nil {
				log.Printf("places v1 details for %s: %v", p.ID, err)
				return
			}
			p.Phone = details.NationalPhoneNumber
			p.Website = details.WebsiteURI
			if details.RegularOpeningHours != nil {
				p.OpeningHours = details.RegularOpeningHours.WeekdayDescriptions
			}
		}(&places[i])
	}
	wg.Wait()

	return places, nil
}

func (c *PlacesV1Client) fetchDetails(ctx context.Context, placeID string) (*v1Details, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/v1/places/"+placeID, nil)
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", "websiteUri,nationalPhoneNumber,regularOpeningHours")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places v1 details http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places v1 details bad status: %s", resp.Status)
	}

	var details v1Details
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("places v1 details decode: %w", err)
	}
	return &details, nil
}
