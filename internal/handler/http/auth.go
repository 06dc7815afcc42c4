package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// login answers an unknown email and a wrong password with the same 401
// body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	pair, err := h.services.AuthService.SignIn(r.Context(), credentials)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.refresh", err)
		return
	}

	pair, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if errors.Is(err, service.ErrUnauthorized) {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.refresh").Msg("refresh rejected")
		utils.WriteMessage(w, app.MsgInvalidRefreshToken, http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeError(w, r, "*Handler.refresh", err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context(), callerID(r)); err != nil {
		writeError(w, r, "*Handler.logout", err)
		return
	}

	utils.WriteMessage(w, app.MsgLogoutSucceeded, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.Profile(r.Context(), callerID(r))
	if err != nil {
		writeError(w, r, "*Handler.profile", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
