package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := decodeJSON(r, &category); err != nil {
		writeError(w, r, "*Handler.createCategory", err)
		return
	}

	created, err := h.services.CategoryService.CreateCategory(r.Context(), callerID(r), category)
	if err != nil {
		writeError(w, r, "*Handler.createCategory", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.ListCategories(r.Context(), callerID(r), pageParams(r))
	if err != nil {
		writeError(w, r, "*Handler.listCategories", err)
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getCategory", err)
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, r, "*Handler.getCategory", err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateCategory", err)
		return
	}

	var update models.CategoryUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateCategory", err)
		return
	}

	category, err := h.services.CategoryService.UpdateCategory(r.Context(), callerID(r), id, update)
	if err != nil {
		writeError(w, r, "*Handler.updateCategory", err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteCategory", err)
		return
	}

	if err = h.services.CategoryService.DeleteCategory(r.Context(), callerID(r), id); err != nil {
		writeError(w, r, "*Handler.deleteCategory", err)
		return
	}

	utils.WriteMessage(w, app.MsgCategoryDeleted, http.StatusOK)
}
