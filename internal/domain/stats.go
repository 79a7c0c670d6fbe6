package domain

// OverviewStats are the aggregate counts of the latest snapshot.
type OverviewStats struct {
	TotalInterns        int
	AssignedInterns     int
	UnassignedInterns   int
	TotalTechLeads      int
	AssignedTechLeads   int
	UnassignedTechLeads int
	ActiveInterns       int
	InactiveInterns     int
}

// LeadView is the lookup result for one tech lead: the lead's roster
// detail, the assigned groups, and the status of every intern in them.
type LeadView struct {
	Lead     TechLead
	Groups   []Group
	Statuses map[string]bool
	Active   int
	Inactive int
}
