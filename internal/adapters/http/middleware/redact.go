package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/delivery-core/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders returns one attribute per header with credential values
// replaced. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		v := strings.Join(vals, ",")
		if logging.IsSensitiveHeader(key) {
			v = redacted
		}
		attrs = append(attrs, slog.String(key, v))
	}
	return attrs
}
