package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/domain"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

// Create godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripsController) Create(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Create(c.Request.Context(), c.GetString("user_id"), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip created")
}

// List godoc
// @Summary List the user's trips, most recently updated first
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripsController) List(c *gin.Context) {
	trips, err := t.tripService.All(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "")
}

// Get godoc
// @Summary Load a trip and make it the current one
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [get]
func (t *TripsController) Get(c *gin.Context) {
	trip, err := t.tripService.Load(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "")
}

// Update godoc
// @Summary Overwrite a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body domain.Trip true "Full trip payload"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id} [put]
func (t *TripsController) Update(c *gin.Context) {
	var trip domain.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	trip.ID = c.Param("id")

	if err := t.tripService.Save(c.Request.Context(), c.GetString("user_id"), &trip); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip saved")
}

// Delete godoc
// @Summary Delete a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id} [delete]
func (t *TripsController) Delete(c *gin.Context) {
	if err := t.tripService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted")
}

// AddDestination godoc
// @Summary Add a destination to a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddDestinationRequest true "Destination payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/{id}/destinations [post]
func (t *TripsController) AddDestination(c *gin.Context) {
	var req request_models.AddDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	dest := domain.Destination{
		City:      req.City,
		Country:   req.Country,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.Lat != nil && req.Lng != nil {
		dest.Coordinates = &domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}

	trip, err := t.tripService.AddDestination(c.Request.Context(), c.GetString("user_id"), c.Param("id"), dest)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Destination added")
}

// RefreshRestaurants godoc
// @Summary Re-fetch restaurants for a destination, keeping bookmarks
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param destId path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/destinations/{destId}/restaurants/refresh [post]
func (t *TripsController) RefreshRestaurants(c *gin.Context) {
	restaurants, msg, err := t.tripService.RefreshRestaurants(
		c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("destId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurants, msg)
}

// RefreshAttractions godoc
// @Summary Re-fetch attractions for a destination, keeping planned and completed flags
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param destId path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/destinations/{destId}/attractions/refresh [post]
func (t *TripsController) RefreshAttractions(c *gin.Context) {
	attractions, msg, err := t.tripService.RefreshAttractions(
		c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("destId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, msg)
}

// ToggleBookmark godoc
// @Summary Toggle a restaurant bookmark
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param destId path string true "Destination ID"
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/destinations/{destId}/restaurants/{restaurantId}/bookmark [post]
func (t *TripsController) ToggleBookmark(c *gin.Context) {
	restaurant, err := t.tripService.ToggleRestaurantBookmark(
		c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("destId"), c.Param("restaurantId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurant, "")
}

// SetAttractionStatus godoc
// @Summary Set the planned/completed status of an attraction
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param destId path string true "Destination ID"
// @Param attractionId path string true "Attraction ID"
// @Param request body request_models.AttractionStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/destinations/{destId}/attractions/{attractionId}/status [put]
func (t *TripsController) SetAttractionStatus(c *gin.Context) {
	var req request_models.AttractionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attraction, err := t.tripService.SetAttractionStatus(
		c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("destId"),
		c.Param("attractionId"), req.Planned, req.Completed)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attraction, "")
}
