package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PlacesController struct {
	placesService    services.PlacesServiceInterface
	transportService services.TransportServiceInterface
}

func NewPlacesController(
	placesService services.PlacesServiceInterface,
	transportService services.TransportServiceInterface) *PlacesController {

	return &PlacesController{
		placesService:    placesService,
		transportService: transportService,
	}
}

// Restaurants godoc
// @Summary Fetch restaurants for a city
// @Description Returns live results when the places provider responds, curated fallbacks otherwise
// @Tags Places
// @Produce json
// @Param city query string true "City name"
// @Param country query string true "Country name"
// @Success 200 {object} utils.APIResponse
// @Router /places/restaurants [get]
func (p *PlacesController) Restaurants(c *gin.Context) {
	city, country := c.Query("city"), c.Query("country")
	if city == "" || country == "" {
		utils.RespondError(c, http.StatusBadRequest, "city and country are required")
		return
	}

	restaurants, msg := p.placesService.FetchRestaurants(c.Request.Context(), city, country)
	utils.RespondSuccess(c, restaurants, msg)
}

// Attractions godoc
// @Summary Fetch attractions for a city
// @Tags Places
// @Produce json
// @Param city query string true "City name"
// @Param country query string true "Country name"
// @Success 200 {object} utils.APIResponse
// @Router /places/attractions [get]
func (p *PlacesController) Attractions(c *gin.Context) {
	city, country := c.Query("city"), c.Query("country")
	if city == "" || country == "" {
		utils.RespondError(c, http.StatusBadRequest, "city and country are required")
		return
	}

	attractions, msg := p.placesService.FetchAttractions(c.Request.Context(), city, country)
	utils.RespondSuccess(c, attractions, msg)
}

// Autocomplete godoc
// @Summary Suggest cities matching a partial input
// @Tags Places
// @Produce json
// @Param input query string true "Partial city name"
// @Success 200 {object} utils.APIResponse
// @Router /places/autocomplete [get]
func (p *PlacesController) Autocomplete(c *gin.Context) {
	predictions := p.placesService.Autocomplete(c.Query("input"))
	utils.RespondSuccess(c, predictions, "")
}

// Transport godoc
// @Summary Local transportation guide for a city
// @Tags Places
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/transport [get]
func (p *PlacesController) Transport(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "city is required")
		return
	}

	info := p.transportService.InfoForCity(city)
	if info == nil {
		utils.RespondError(c, http.StatusNotFound, "No transportation information for this city")
		return
	}
	utils.RespondSuccess(c, info, "")
}
