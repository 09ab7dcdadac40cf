package metrotracker

import (
	"encoding/json"
	"net/http"
)

type planRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departure_time"`
}

type planLeg struct {
	Type      string `json:"type"`
	Mode      string `json:"mode"`
	Route     string `json:"route"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  int    `json:"duration"`
}

type planItinerary struct {
	Type            string    `json:"type"`
	TotalTime       int       `json:"totalTime"`
	Transfers       int       `json:"transfers"`
	WalkingDistance int       `json:"walkingDistance"`
	Legs            []planLeg `json:"legs"`
}

// handlePlan answers trip-plan requests with a canned single-leg itinerary.
// A real planner needs the static GTFS schedule, which this service does
// not carry.
func (a *App) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.From == "" || req.To == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "From and to stops required"})
		return
	}

	departure := req.DepartureTime
	if departure == "" {
		departure = "12:00"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"routes": []planItinerary{
			{
				Type:      "transit",
				TotalTime: 25,
				Transfers: 0,
				Legs: []planLeg{
					{
						Type:      "transit",
						Mode:      "bus",
						Route:     "Route 174",
						From:      req.From,
						To:        req.To,
						Departure: departure,
						Arrival:   "12:25",
						Duration:  25,
					},
				},
			},
		},
	})
}
