package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

func (h *Handler) LookupTechLead(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.handleError(w, domain.NewBadRequestError("email parameter is required"))
		return
	}

	view, err := h.assignmentService.Lookup(r.Context(), email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainLeadViewToHTTP(view))
}
