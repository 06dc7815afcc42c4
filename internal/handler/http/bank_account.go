package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func (h *Handler) createBankAccount(w http.ResponseWriter, r *http.Request) {
	var account models.BankAccount
	if err := decodeJSON(r, &account); err != nil {
		writeError(w, r, "*Handler.createBankAccount", err)
		return
	}

	created, err := h.services.BankAccountService.CreateBankAccount(r.Context(), callerID(r), account)
	if err != nil {
		writeError(w, r, "*Handler.createBankAccount", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listBankAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.BankAccountService.ListBankAccounts(r.Context(), callerID(r))
	if err != nil {
		writeError(w, r, "*Handler.listBankAccounts", err)
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) getBankAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getBankAccount", err)
		return
	}

	account, err := h.services.BankAccountService.GetBankAccount(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, r, "*Handler.getBankAccount", err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) updateBankAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateBankAccount", err)
		return
	}

	var update models.BankAccountUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateBankAccount", err)
		return
	}

	account, err := h.services.BankAccountService.UpdateBankAccount(r.Context(), callerID(r), id, update)
	if err != nil {
		writeError(w, r, "*Handler.updateBankAccount", err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) deleteBankAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteBankAccount", err)
		return
	}

	if err = h.services.BankAccountService.DeleteBankAccount(r.Context(), callerID(r), id); err != nil {
		writeError(w, r, "*Handler.deleteBankAccount", err)
		return
	}

	utils.WriteMessage(w, app.MsgBankAccountDeleted, http.StatusOK)
}
