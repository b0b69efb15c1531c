// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// dashboardHandler serves the embedded report page.
type dashboardHandler struct{}

func newDashboardHandler() *dashboardHandler {
	return &dashboardHandler{}
}

// HandleDashboard handles GET /dashboard requests. The page fetches /report
// and /films and renders the charts and poster grid client-side; the
// pipeline itself never formats for display.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, dashboardFS, "dashboard.html")
}
