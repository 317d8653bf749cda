package adapthttp

import (
	"net/http"

	"nutriplan/internal/app"
)

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	items, err := s.clients.List(r.Context(), userFromContext(r).ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var in app.ClientIntake
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := s.clients.Create(r.Context(), userFromContext(r).ID, in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.log.Info().Stringer("client", c.ID).Int64("coach", c.CoachID).Msg("client created")
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := s.clients.Get(r.Context(), userFromContext(r).ID, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var in app.ClientIntake
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := s.clients.Update(r.Context(), userFromContext(r).ID, id, in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.clients.Delete(r.Context(), userFromContext(r).ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
