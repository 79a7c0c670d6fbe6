package server

import (
	"net/http"

	"github.com/yash-u-12/grouping-l1-l2/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /assignments/compute", h.Compute)
	mux.HandleFunc("GET /techleads/lookup", h.LookupTechLead)
	mux.HandleFunc("POST /interns/setStatus", h.SetInternStatus)
	mux.HandleFunc("GET /stats", h.GetStats)
	mux.HandleFunc("GET /export/unassignedInterns", h.ExportUnassignedInterns)
	mux.HandleFunc("GET /export/unassignedTechLeads", h.ExportUnassignedTechLeads)
}
