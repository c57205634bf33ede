package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/dto"
)

// Recovery logs a handler panic with its stack and answers 500. A response
// that already started, such as an event stream, is left to be closed.
// http.ErrAbortHandler is re-raised for net/http to handle.
//
// Reducer panics never arrive here: the engine loop has its own goroutine.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := record(w)
			defer func() {
				v := recover()
				switch v {
				case nil:
					return
				case http.ErrAbortHandler:
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panicked",
					slog.Any("panic", v),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rw.started()),
					slog.String("stack", string(debug.Stack())),
				)
				if !rw.started() {
					dto.WriteProblem(rw, r, dto.NewProblem(http.StatusInternalServerError, "internal error", r.RequestURI))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
