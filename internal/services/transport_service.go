package services

import (
	"wayfarer/internal/gateway/fallback"
	"wayfarer/internal/models/domain"
)

type TransportServiceInterface interface {
	// InfoForCity returns nil when no transportation information exists for
	// the city.
	InfoForCity(city string) *domain.TransportationInfo
}

type TransportService struct{}

func NewTransportService() TransportServiceInterface {
	return &TransportService{}
}

func (t *TransportService) InfoForCity(city string) *domain.TransportationInfo {
	return fallback.TransportForCity(city)
}
