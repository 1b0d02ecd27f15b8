package appstate

import "wayfarer/internal/models/domain"

type TabType string

const (
	TabDashboard      TabType = "dashboard"
	TabDestinations   TabType = "destinations"
	TabWeather        TabType = "weather"
	TabOutfits        TabType = "outfits"
	TabAttractions    TabType = "attractions"
	TabTransportation TabType = "transportation"
	TabExcursions     TabType = "excursions"
	TabRestaurants    TabType = "restaurants"
)

type State struct {
	CurrentTrip *domain.Trip `json:"currentTrip"`
	ActiveTab   TabType      `json:"activeTab"`
	IsLoading   bool         `json:"isLoading"`
	Error       string       `json:"error,omitempty"`
}

type ActionType string

const (
	SetCurrentTrip ActionType = "SET_CURRENT_TRIP"
	SetActiveTab   ActionType = "SET_ACTIVE_TAB"
	SetLoading     ActionType = "SET_LOADING"
	SetError       ActionType = "SET_ERROR"
	SaveTrip       ActionType = "SAVE_TRIP"
)

type Action struct {
	Type    ActionType
	Trip    *domain.Trip
	Tab     TabType
	Loading bool
	Error   string
}

func InitialState() State {
	return State{ActiveTab: TabDashboard}
}

// Reduce is pure: every transition reads only the incoming state and the
// action payload.
func Reduce(state State, action Action) State {
	switch action.Type {
	case SetCurrentTrip:
		state.CurrentTrip = action.Trip
	case SetActiveTab:
		state.ActiveTab = action.Tab
	case SetLoading:
		state.IsLoading = action.Loading
	case SetError:
		state.Error = action.Error
	case SaveTrip:
		state.CurrentTrip = action.Trip
	}
	return state
}
