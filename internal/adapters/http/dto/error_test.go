package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/delivery-core/internal/domain"
)

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantDetail string
	}{
		{
			name:       "invalid message",
			err:        &domain.ValidationError{Fields: map[string]string{"type": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantType:   dto.ProblemInvalidMessage,
			wantDetail: "validation error: type is required",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("loading dish: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantType:   "about:blank",
			wantDetail: "loading dish: not found",
		},
		{name: "conflict", err: domain.ErrConflict, wantStatus: http.StatusConflict, wantType: "about:blank", wantDetail: "conflict"},
		{name: "forbidden", err: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantType: "about:blank", wantDetail: "forbidden"},
		{name: "upstream down", err: domain.ErrUnavailable, wantStatus: http.StatusBadGateway, wantType: "about:blank", wantDetail: "unavailable"},
		{
			name:       "unknown error is not echoed",
			err:        errors.New("sqlite: disk I/O error at /var/lib/delivery.db"),
			wantStatus: http.StatusInternalServerError,
			wantType:   dto.ProblemInternal,
			wantDetail: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/api/v1/messages", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.wantDetail)
			}
			if got.Instance != "/api/v1/messages" {
				t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/messages")
			}
		})
	}
}

func TestNewErrorResponse_FieldErrorsSorted(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"type":    `unknown message type "dish.Explode"`,
		"payload": "is required",
		"body":    "invalid JSON",
	}}

	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodPost, "/api/v1/messages", http.NoBody), verr)

	want := []string{"body.body", "body.payload", "body.type"}
	if len(got.Errors) != len(want) {
		t.Fatalf("Errors = %+v, want %d entries", got.Errors, len(want))
	}
	for i, loc := range want {
		if got.Errors[i].Location != loc {
			t.Errorf("Errors[%d].Location = %q, want %q", i, got.Errors[i].Location, loc)
		}
		if got.Errors[i].Message != verr.Fields[loc[len("body."):]] {
			t.Errorf("Errors[%d].Message = %q, want %q", i, got.Errors[i].Message, verr.Fields[loc[len("body."):]])
		}
	}
}

func TestNewErrorResponse_NoFieldErrorsOtherwise(t *testing.T) {
	t.Parallel()

	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, "/api/v1/state", http.NoBody), domain.ErrNotFound)
	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil", got.Errors)
	}
}

func TestNewProblem_Types(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, dto.ProblemInvalidMessage},
		{http.StatusGatewayTimeout, dto.ProblemTimeout},
		{http.StatusInternalServerError, dto.ProblemInternal},
		{http.StatusNotFound, "about:blank"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			if got := dto.NewProblem(tt.status, "", "").Type; got != tt.want {
				t.Errorf("NewProblem(%d).Type = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/messages", http.NoBody)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"payload": "is required"}})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Type != dto.ProblemInvalidMessage || len(resp.Errors) != 1 || resp.Errors[0].Location != "body.payload" {
		t.Errorf("body = %+v, want one body.payload error", resp)
	}
}
