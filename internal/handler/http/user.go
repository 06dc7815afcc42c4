package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, "*Handler.registerUser", err)
		return
	}

	created, err := h.services.UserService.RegisterUser(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.registerUser", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)

	user, err := h.services.UserService.GetUser(r.Context(), caller, caller)
	if err != nil {
		writeError(w, r, "*Handler.currentUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), callerID(r), update)
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), callerID(r), id); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	utils.WriteMessage(w, app.MsgUserDeleted, http.StatusOK)
}
