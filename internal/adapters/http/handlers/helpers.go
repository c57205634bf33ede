package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/delivery-core/internal/domain"
)

// maxBodyBytes caps a posted message envelope.
const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", slog.Int("status", status), slog.Any("error", err))
	}
}

// readJSON decodes exactly one JSON value from the request body into dst.
// Unknown fields, trailing data and oversized bodies are answered with a
// 400 problem and readJSON returns false.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	reason := ""
	if err := dec.Decode(dst); err != nil {
		reason = "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			reason = "body exceeds limit"
		}
	} else if dec.More() {
		reason = "trailing data after message"
	}
	if reason == "" {
		return true
	}

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": reason}})
	return false
}
