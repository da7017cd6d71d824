package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// WatchCollection handles GET /api/watch/{collection}.
// It streams server-sent events; every event carries the full current
// snapshot of the collection, so clients re-render from whole snapshots and
// never apply deltas. The stream ends when the client disconnects.
func (s *Server) WatchCollection(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "collection") {
	case "packages":
		ch, detach := s.packages.Watch(r.Context())
		streamSnapshots(w, r, ch, detach)
	case "hero-slides":
		ch, detach := s.content.WatchHeroSlides(r.Context())
		streamSnapshots(w, r, ch, detach)
	case "places":
		ch, detach := s.content.WatchPlaces(r.Context())
		streamSnapshots(w, r, ch, detach)
	case "regions":
		ch, detach := s.content.WatchRegions(r.Context())
		streamSnapshots(w, r, ch, detach)
	default:
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{
			Code: "not_found", Message: "unknown collection",
		}})
	}
}

// streamSnapshots writes each snapshot from ch as one SSE "snapshot" event.
// detach is always invoked on return so the hub never leaks a listener.
func streamSnapshots[T any](w http.ResponseWriter, r *http.Request, ch <-chan []T, detach func()) {
	defer detach()

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
			Code: "internal_error", Message: "streaming unsupported",
		}})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snapshot := <-ch:
			data, err := json.Marshal(snapshot)
			if err != nil {
				return
			}
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
