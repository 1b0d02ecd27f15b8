package domain

import "time"

type Trip struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Destinations []Destination `json:"destinations"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Destination order inside a trip is the itinerary sequence.
type Destination struct {
	ID               string              `json:"id"`
	City             string              `json:"city"`
	Country          string              `json:"country"`
	StartDate        time.Time           `json:"startDate"`
	EndDate          time.Time           `json:"endDate"`
	Coordinates      *Coordinates        `json:"coordinates,omitempty"`
	Attractions      []Attraction        `json:"attractions,omitempty"`
	Restaurants      []Restaurant        `json:"restaurants,omitempty"`
	Transportation   *TransportationInfo `json:"transportation,omitempty"`
	CustomExcursions []CustomExcursion   `json:"customExcursions,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CustomExcursion struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Date                time.Time `json:"date"`
	Time                string    `json:"time"`
	Location            string    `json:"location"`
	Cost                float64   `json:"cost,omitempty"`
	ConfirmationDetails string    `json:"confirmationDetails,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	IsCompleted         bool      `json:"isCompleted,omitempty"`
}
