package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

type HealthResponse struct {
	Success bool              `json:"success"`
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// RegisterOpsRoutes mounts /healthz and /metrics.
func RegisterOpsRoutes(mux *http.ServeMux, checks map[string]HealthCheck) {
	mux.HandleFunc("GET /healthz", healthHandler(checks))
	mux.Handle("GET /metrics", promhttp.Handler())
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Success: true, Status: "ok", Checks: map[string]string{}}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Success = false
				resp.Status = "degraded"
				resp.Checks[name] = err.Error()
				continue
			}
			resp.Checks[name] = "ok"
		}

		status := http.StatusOK
		if !resp.Success {
			status = http.StatusServiceUnavailable
		}
		respondWithJSON(w, status, resp)
	}
}
