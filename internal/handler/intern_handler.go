package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

func (h *Handler) SetInternStatus(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}

	status, err := h.statusService.SetStatus(r.Context(), req.Email, req.IsActive)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SetStatusResponse{
		Status: domainStatusToHTTP(status),
	})
}
