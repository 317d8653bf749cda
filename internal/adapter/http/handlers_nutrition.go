package adapthttp

import (
	"net/http"

	"nutriplan/internal/app"
)

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in app.ProfileInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	plan, err := s.nutrition.Calculate(in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleClientPlan(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	plan, err := s.nutrition.PlanForClient(r.Context(), userFromContext(r).ID, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
