package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	// An empty body means compute-if-absent.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.handleError(w, domain.NewBadRequestError("invalid request body"))
		return
	}

	compute := h.assignmentService.GetOrCompute
	if req.Force {
		compute = h.assignmentService.Recompute
	}

	snapshot, err := compute(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ComputeResponse{
		Snapshot: domainSnapshotToHTTP(snapshot),
	})
}
