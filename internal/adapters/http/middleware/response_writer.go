// Package middleware provides the inbound request pipeline of the host
// shell:
//
//	Recovery → RequestID → OpenTelemetry → Logging → [Timeout] → Handler
//
// Timeout wraps only request/response routes. Event streams stay open for
// the lifetime of the renderer connection and must not be buffered.
package middleware

import "net/http"

// recorder notes the status and body size a handler produced. Middleware
// further down the chain shares the outermost recorder instead of wrapping
// again. Unwrap lets http.ResponseController reach the connection, which
// the event streams need for flushing and deadlines.
type recorder struct {
	http.ResponseWriter
	code  int
	bytes int64
}

func record(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w}
}

func (rec *recorder) WriteHeader(code int) {
	if rec.code != 0 {
		return
	}
	rec.code = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if rec.code == 0 {
		rec.code = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// status is the code sent, or 200 when the handler wrote nothing.
func (rec *recorder) status() int {
	if rec.code == 0 {
		return http.StatusOK
	}
	return rec.code
}

// started reports whether headers have gone out.
func (rec *recorder) started() bool { return rec.code != 0 }

func (rec *recorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }
