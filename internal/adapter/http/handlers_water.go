package adapthttp

import (
	"net/http"
	"time"
)

func (s *Server) handleWaterToday(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day, err := s.water.Today(r.Context(), userFromContext(r).ID, id, localDayString(time.Now()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleWaterEvent(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var body struct {
		DeltaMl int `json:"deltaMl"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	eventID, err := s.water.RecordEvent(r.Context(), userFromContext(r).ID, id, body.DeltaMl)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": eventID})
}

func (s *Server) handleWaterRecent(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	limit := intQuery(r, "limit", 20)
	items, err := s.water.ListRecent(r.Context(), userFromContext(r).ID, id, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWaterUndoLast(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	undone, eventID, err := s.water.UndoLast(r.Context(), userFromContext(r).ID, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"undone": undone, "id": eventID})
}
