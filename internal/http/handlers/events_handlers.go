package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const eventsKeepAlive = 15 * time.Second

// EventsHandler godoc
// @Summary Stream cart, favorites and notification changes
// @Description Server-sent events. Each frame carries the event id, its kind and a JSON body.
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} store.Event
// @Router /me/events [get]
func (s *Server) EventsHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	userID, sess := s.session(r)
	events, cancel := sess.Events.Subscribe(16)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log := s.log.WithField("user_id", userID)
	log.Debug("event stream opened")
	defer log.Debug("event stream closed")

	ticker := time.NewTicker(eventsKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case e, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(e)
			if err != nil {
				log.WithError(err).Warn("failed to encode event")
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", e.ID, e.Kind, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
