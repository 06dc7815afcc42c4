package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var transaction models.Transaction
	if err := decodeJSON(r, &transaction); err != nil {
		writeError(w, r, "*Handler.createTransaction", err)
		return
	}

	created, err := h.services.TransactionService.CreateTransaction(r.Context(), callerID(r), transaction)
	if err != nil {
		writeError(w, r, "*Handler.createTransaction", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.services.TransactionService.ListTransactions(r.Context(), callerID(r), pageParams(r))
	if err != nil {
		writeError(w, r, "*Handler.listTransactions", err)
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getTransaction", err)
		return
	}

	transaction, err := h.services.TransactionService.GetTransaction(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, r, "*Handler.getTransaction", err)
		return
	}

	utils.WriteJSON(w, transaction, http.StatusOK)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateTransaction", err)
		return
	}

	var update models.TransactionUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateTransaction", err)
		return
	}

	transaction, err := h.services.TransactionService.UpdateTransaction(r.Context(), callerID(r), id, update)
	if err != nil {
		writeError(w, r, "*Handler.updateTransaction", err)
		return
	}

	utils.WriteJSON(w, transaction, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteTransaction", err)
		return
	}

	if err = h.services.TransactionService.DeleteTransaction(r.Context(), callerID(r), id); err != nil {
		writeError(w, r, "*Handler.deleteTransaction", err)
		return
	}

	utils.WriteMessage(w, app.MsgTransactionDeleted, http.StatusOK)
}
