package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/c4sfood/payroll-backend-go/internal/pkg/sse"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	hub *sse.Hub
}

func NewEventsHandler(hub *sse.Hub) EventsHandler {
	return &EventsHandlerImpl{hub: hub}
}

// Stream handles the SSE connection for change notifications. Every
// authenticated client receives every topic; payloads carry only what
// changed, clients reload the affected view.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Topic, data)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
