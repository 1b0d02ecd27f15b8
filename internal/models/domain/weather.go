package domain

type Weather struct {
	Date          string           `json:"date"` // YYYY-MM-DD
	Temperature   TemperatureRange `json:"temperature"`
	Condition     string           `json:"condition"`
	Precipitation int              `json:"precipitation"` // percent
	Icon          string           `json:"icon"`
	Humidity      int              `json:"humidity"`
	WindSpeed     float64          `json:"windSpeed"`
}

type TemperatureRange struct {
	High int `json:"high"`
	Low  int `json:"low"`
}

type OutfitRecommendation struct {
	ID               string      `json:"id"`
	WeatherCondition string      `json:"weatherCondition"`
	Temperature      TempSpan    `json:"temperature"`
	DestinationType  string      `json:"destinationType"`
	Items            OutfitItems `json:"items"`
	Tips             []string    `json:"tips"`
}

type TempSpan struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type OutfitItems struct {
	Tops        []string `json:"tops"`
	Bottoms     []string `json:"bottoms"`
	Outerwear   []string `json:"outerwear"`
	Shoes       []string `json:"shoes"`
	Accessories []string `json:"accessories"`
}

type TransportationInfo struct {
	City             string            `json:"city"`
	MetroSystem      *TransitSystem    `json:"metroSystem,omitempty"`
	BusSystem        *TransitSystem    `json:"busSystem,omitempty"`
	AirportTransport *AirportTransport `json:"airportTransport,omitempty"`
	Apps             []string          `json:"apps"`
	Tips             []string          `json:"tips"`
}

type TransitSystem struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Cost          string `json:"cost"`
	PaymentMethod string `json:"paymentMethod"`
}

type AirportTransport struct {
	Options  []string `json:"options"`
	Costs    []string `json:"costs"`
	Duration []string `json:"duration"`
}
