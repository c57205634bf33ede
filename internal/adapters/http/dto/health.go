package dto

import (
	"github.com/jsamuelsen11/delivery-core/internal/platform/health"
)

// Health status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps each
// checker to "ok" or its error text; Failing lists the failed names sorted.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Failing []string          `json:"failing,omitempty"`
}

// Ready reports whether every check passed.
func (r ReadinessResponse) Ready() bool { return len(r.Failing) == 0 }

// NewReadinessResponse summarizes registry results.
func NewReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{
		Status:  HealthReady,
		Checks:  make(map[string]string, len(results)),
		Failing: health.Failing(results),
	}
	for name, err := range results {
		resp.Checks[name] = HealthOK
		if err != nil {
			resp.Checks[name] = err.Error()
		}
	}
	if !resp.Ready() {
		resp.Status = HealthNotReady
	}
	return resp
}
