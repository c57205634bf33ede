package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/delivery-core/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	t.Parallel()

	// No registry expectations: liveness never runs the checks.
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.LivenessResponse](t, rec); got.Status != dto.HealthOK {
		t.Errorf("status = %q, want %q", got.Status, dto.HealthOK)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		results     map[string]error
		wantCode    int
		wantStatus  string
		wantChecks  map[string]string
		wantFailing []string
	}{
		{
			name:       "nothing registered",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{},
		},
		{
			name:       "all healthy",
			results:    map[string]error{"engine": nil, "sqlite": nil, "delivery-api": nil},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{"engine": "ok", "sqlite": "ok", "delivery-api": "ok"},
		},
		{
			name: "api down",
			results: map[string]error{
				"engine":       nil,
				"delivery-api": errors.New("circuit breaker delivery-api is open"),
			},
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  dto.HealthNotReady,
			wantChecks:  map[string]string{"engine": "ok", "delivery-api": "circuit breaker delivery-api is open"},
			wantFailing: []string{"delivery-api"},
		},
		{
			name: "engine stopped and cache locked",
			results: map[string]error{
				"sqlite": errors.New("database is locked"),
				"engine": errors.New("engine stopped"),
			},
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  dto.HealthNotReady,
			wantChecks:  map[string]string{"sqlite": "database is locked", "engine": "engine stopped"},
			wantFailing: []string{"engine", "sqlite"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			got := decodeJSON[dto.ReadinessResponse](t, rec)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if len(got.Checks) != len(tt.wantChecks) {
				t.Errorf("checks = %v, want %v", got.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if got.Checks[name] != want {
					t.Errorf("checks[%s] = %q, want %q", name, got.Checks[name], want)
				}
			}
			if !slices.Equal(got.Failing, tt.wantFailing) {
				t.Errorf("failing = %v, want %v", got.Failing, tt.wantFailing)
			}
		})
	}
}
