package fallback

import "strings"

var (
	beachCities    = []string{"miami", "san diego", "barcelona", "sydney", "cancun", "phuket"}
	mountainCities = []string{"denver", "zurich", "vancouver", "salt lake city", "aspen"}
	capitalCities  = []string{"washington", "london", "paris", "tokyo", "berlin", "rome"}
)

// DestinationType classifies a city as beach, mountain, capital or city by
// substring match against the fixed lists.
func DestinationType(city string) string {
	lower := strings.ToLower(city)

	for _, b := range beachCities {
		if strings.Contains(lower, b) {
			return "beach"
		}
	}
	for _, m := range mountainCities {
		if strings.Contains(lower, m) {
			return "mountain"
		}
	}
	for _, c := range capitalCities {
		if strings.Contains(lower, c) {
			return "capital"
		}
	}
	return "city"
}
