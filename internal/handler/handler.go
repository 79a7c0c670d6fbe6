package handler

import "github.com/yash-u-12/grouping-l1-l2/internal/service"

type Handler struct {
	assignmentService service.AssignmentService
	statusService     service.StatusService
	statsService      service.StatsService
}

func NewHandler(
	assignmentService service.AssignmentService,
	statusService service.StatusService,
	statsService service.StatsService,
) *Handler {
	return &Handler{
		assignmentService: assignmentService,
		statusService:     statusService,
		statsService:      statsService,
	}
}
