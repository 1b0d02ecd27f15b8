package request_models

import "time"

type CreateTripRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddDestinationRequest struct {
	City      string    `json:"city" binding:"required"`
	Country   string    `json:"country" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	Lat       *float64  `json:"lat"`
	Lng       *float64  `json:"lng"`
}

type AttractionStatusRequest struct {
	Planned   bool `json:"isPlanned"`
	Completed bool `json:"isCompleted"`
}

type SetTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}
