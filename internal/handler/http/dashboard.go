package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-tracker/internal/utils"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.DashboardService.GetDashboard(r.Context(), callerID(r))
	if err != nil {
		writeError(w, r, "*Handler.dashboard", err)
		return
	}

	utils.WriteJSON(w, data, http.StatusOK)
}
