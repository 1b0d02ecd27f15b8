package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
	outfitService  services.OutfitServiceInterface
}

func NewWeatherController(
	weatherService services.WeatherServiceInterface,
	outfitService services.OutfitServiceInterface) *WeatherController {

	return &WeatherController{
		weatherService: weatherService,
		outfitService:  outfitService,
	}
}

// Forecast godoc
// @Summary Seven day forecast for a city
// @Description Falls back to a deterministic seasonal forecast when the weather provider is unavailable
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param country query string true "Country name"
// @Success 200 {object} utils.APIResponse
// @Router /weather/forecast [get]
func (w *WeatherController) Forecast(c *gin.Context) {
	city, country := c.Query("city"), c.Query("country")
	if city == "" || country == "" {
		utils.RespondError(c, http.StatusBadRequest, "city and country are required")
		return
	}

	forecast := w.weatherService.FetchForecast(c.Request.Context(), city, country)
	utils.RespondSuccess(c, forecast, "")
}

// Outfits godoc
// @Summary Outfit recommendations derived from the forecast
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param country query string true "Country name"
// @Success 200 {object} utils.APIResponse
// @Router /weather/outfits [get]
func (w *WeatherController) Outfits(c *gin.Context) {
	city, country := c.Query("city"), c.Query("country")
	if city == "" || country == "" {
		utils.RespondError(c, http.StatusBadRequest, "city and country are required")
		return
	}

	forecast := w.weatherService.FetchForecast(c.Request.Context(), city, country)
	recommendations := w.outfitService.GenerateRecommendations(forecast, city)
	utils.RespondSuccess(c, recommendations, "")
}
