package handler

import (
	"fmt"
	"net/http"

	"github.com/yash-u-12/grouping-l1-l2/internal/roster"
)

func (h *Handler) ExportUnassignedInterns(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.assignmentService.GetOrCompute(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", roster.UnassignedInternsFile))
	if err := roster.WriteInterns(w, snapshot.Result.UnassignedInterns); err != nil {
		// Headers are already out; nothing left to do but drop the stream.
		return
	}
}

func (h *Handler) ExportUnassignedTechLeads(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.assignmentService.GetOrCompute(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", roster.UnassignedTechLeadsFile))
	if err := roster.WriteTechLeads(w, snapshot.Result.UnassignedTechLeads); err != nil {
		return
	}
}
