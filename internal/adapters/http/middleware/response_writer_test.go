package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/middleware"
)

// Flushing through the whole chain is what keeps event streams live.
func TestChain_FlushReachesRecorder(t *testing.T) {
	t.Parallel()

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("event: state\n\n"))
		if err := http.NewResponseController(w).Flush(); err != nil {
			t.Errorf("Flush() error = %v", err)
		}
	}))
	for _, mw := range []func(http.Handler) http.Handler{
		middleware.Logging(discardLogger()),
		middleware.OpenTelemetry(nil),
		middleware.RequestID(),
		middleware.Recovery(discardLogger()),
	} {
		handler = mw(handler)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state/stream", http.NoBody))

	if !rec.Flushed {
		t.Error("Flushed = false, want true")
	}
	if rec.Body.String() != "event: state\n\n" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRecorder_FirstStatusWins(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
}
