package fallback

import (
	"strings"

	"wayfarer/internal/models/domain"
)

type commonCity struct {
	city, country, description string
}

var commonCities = []commonCity{
	{"New York", "USA", "New York, NY, USA"},
	{"London", "United Kingdom", "London, England, UK"},
	{"Paris", "France", "Paris, France"},
	{"Tokyo", "Japan", "Tokyo, Japan"},
	{"Barcelona", "Spain", "Barcelona, Spain"},
	{"Rome", "Italy", "Rome, Italy"},
	{"Berlin", "Germany", "Berlin, Germany"},
	{"Amsterdam", "Netherlands", "Amsterdam, Netherlands"},
	{"Vienna", "Austria", "Vienna, Austria"},
	{"Prague", "Czech Republic", "Prague, Czech Republic"},
	{"Budapest", "Hungary", "Budapest, Hungary"},
	{"Warsaw", "Poland", "Warsaw, Poland"},
	{"Copenhagen", "Denmark", "Copenhagen, Denmark"},
	{"Stockholm", "Sweden", "Stockholm, Sweden"},
	{"Oslo", "Norway", "Oslo, Norway"},
	{"Helsinki", "Finland", "Helsinki, Finland"},
	{"Zurich", "Switzerland", "Zurich, Switzerland"},
	{"Brussels", "Belgium", "Brussels, Belgium"},
	{"Lisbon", "Portugal", "Lisbon, Portugal"},
	{"Athens", "Greece", "Athens, Greece"},
	{"Istanbul", "Turkey", "Istanbul, Turkey"},
	{"Moscow", "Russia", "Moscow, Russia"},
	{"Dublin", "Ireland", "Dublin, Ireland"},
	{"Reykjavik", "Iceland", "Reykjavik, Iceland"},
	{"Sydney", "Australia", "Sydney, Australia"},
	{"Melbourne", "Australia", "Melbourne, Australia"},
	{"Toronto", "Canada", "Toronto, Canada"},
	{"Vancouver", "Canada", "Vancouver, Canada"},
	{"Montreal", "Canada", "Montreal, Canada"},
	{"Los Angeles", "USA", "Los Angeles, CA, USA"},
	{"Chicago", "USA", "Chicago, IL, USA"},
	{"San Francisco", "USA", "San Francisco, CA, USA"},
	{"Boston", "USA", "Boston, MA, USA"},
	{"Seattle", "USA", "Seattle, WA, USA"},
	{"Miami", "USA", "Miami, FL, USA"},
	{"Las Vegas", "USA", "Las Vegas, NV, USA"},
	{"Munich", "Germany", "Munich, Germany"},
	{"Hamburg", "Germany", "Hamburg, Germany"},
	{"Cologne", "Germany", "Cologne, Germany"},
	{"Madrid", "Spain", "Madrid, Spain"},
	{"Seville", "Spain", "Seville, Spain"},
	{"Valencia", "Spain", "Valencia, Spain"},
	{"Milan", "Italy", "Milan, Italy"},
	{"Florence", "Italy", "Florence, Italy"},
	{"Venice", "Italy", "Venice, Italy"},
	{"Naples", "Italy", "Naples, Italy"},
}

// CitiesMatching filters the common-city list by substring on city, country
// or description, returning at most 8 predictions.
func CitiesMatching(input string) []domain.CityPrediction {
	inputLower := strings.ToLower(input)

	out := make([]domain.CityPrediction, 0, 8)
	for _, c := range commonCities {
		if len(out) == 8 {
			break
		}
		if strings.Contains(strings.ToLower(c.city), inputLower) ||
			strings.Contains(strings.ToLower(c.country), inputLower) ||
			strings.Contains(strings.ToLower(c.description), inputLower) {
			out = append(out, domain.CityPrediction{
				PlaceID:     "fallback_" + strings.ReplaceAll(strings.ToLower(c.city), " ", "_"),
				Description: c.description,
				City:        c.city,
				Country:     c.country,
			})
		}
	}
	return out
}
