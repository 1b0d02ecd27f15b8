package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/appstate"
	"wayfarer/internal/models/request_models"
	"wayfarer/pkg/utils"
)

var validTabs = map[appstate.TabType]bool{
	appstate.TabDashboard:      true,
	appstate.TabDestinations:   true,
	appstate.TabWeather:        true,
	appstate.TabOutfits:        true,
	appstate.TabAttractions:    true,
	appstate.TabTransportation: true,
	appstate.TabExcursions:     true,
	appstate.TabRestaurants:    true,
}

type SessionController struct {
	sessions *appstate.SessionStore
}

func NewSessionController(sessions *appstate.SessionStore) *SessionController {
	return &SessionController{
		sessions: sessions,
	}
}

// State godoc
// @Summary Current per-user app state
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /session/state [get]
func (s *SessionController) State(c *gin.Context) {
	utils.RespondSuccess(c, s.sessions.Get(c.GetString("user_id")), "")
}

// SetTab godoc
// @Summary Switch the active tab
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.SetTabRequest true "Tab payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /session/tab [put]
func (s *SessionController) SetTab(c *gin.Context) {
	var req request_models.SetTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tab := appstate.TabType(req.Tab)
	if !validTabs[tab] {
		utils.RespondError(c, http.StatusBadRequest, "Unknown tab")
		return
	}

	userID := c.GetString("user_id")
	s.sessions.Dispatch(userID, appstate.Action{Type: appstate.SetActiveTab, Tab: tab})
	utils.RespondSuccess(c, s.sessions.Get(userID), "")
}
