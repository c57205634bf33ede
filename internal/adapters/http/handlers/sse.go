package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// eventStream writes a text/event-stream response. Every event is flushed
// as soon as it is written.
type eventStream struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

// openStream sends the stream headers. The server write timeout is lifted
// for the lifetime of the response.
func openStream(w http.ResponseWriter) *eventStream {
	rc := http.NewResponseController(w)
	_ = rc.SetWriteDeadline(time.Time{})

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_ = rc.Flush()

	return &eventStream{w: w, rc: rc}
}

func (s *eventStream) send(event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return s.rc.Flush()
}
