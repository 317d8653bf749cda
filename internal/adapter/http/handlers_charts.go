package adapthttp

import (
	"net/http"
	"time"

	"nutriplan/internal/domain"
)

func (s *Server) handleChartsDaily(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	days := intQuery(r, "days", 90)
	unit := stringQuery(r, "unit", domain.UnitKg)

	points, err := s.charts.GetDaily(r.Context(), userFromContext(r).ID, id, days, unit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"days":  len(points),
		"unit":  unit,
		"today": localDayString(time.Now()),
		"items": points,
	})
}
