package domain

type Attraction struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	OpeningHours  string  `json:"openingHours"`
	Cost          string  `json:"cost"`
	Duration      string  `json:"duration"`
	HowToGetThere string  `json:"howToGetThere"`
	IsPlanned     bool    `json:"isPlanned,omitempty"`
	IsCompleted   bool    `json:"isCompleted,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
}

type Restaurant struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Cuisine       string   `json:"cuisine"`
	PriceRange    int      `json:"priceRange"` // 1-4
	Rating        float64  `json:"rating"`
	MustTryDishes []string `json:"mustTryDishes"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone,omitempty"`
	Website       string   `json:"website,omitempty"`
	OpeningHours  string   `json:"openingHours,omitempty"`
	IsBookmarked  bool     `json:"isBookmarked,omitempty"`
	PhotoURL      string   `json:"photoUrl,omitempty"`
}

type CityPrediction struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
	City        string `json:"city"`
	Country     string `json:"country"`
}
