package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ComputeRequest struct {
	Force bool `json:"force"`
}

type SnapshotResponse struct {
	SnapshotID          string `json:"snapshot_id"`
	Seed                int64  `json:"seed"`
	CreatedAt           string `json:"created_at"`
	AssignedTechLeads   int    `json:"assigned_tech_leads"`
	AssignedGroups      int    `json:"assigned_groups"`
	AssignedInterns     int    `json:"assigned_interns"`
	UnassignedInterns   int    `json:"unassigned_interns"`
	UnassignedTechLeads int    `json:"unassigned_tech_leads"`
}

type ComputeResponse struct {
	Snapshot SnapshotResponse `json:"snapshot"`
}

type TechLeadResponse struct {
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Affiliation   string `json:"affiliation"`
	Gender        string `json:"gender,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Capacity      int    `json:"capacity"`
}

type GroupMemberResponse struct {
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number,omitempty"`
	IsActive      bool   `json:"is_active"`
}

type GroupResponse struct {
	Affiliation string                `json:"affiliation"`
	Ordinal     int                   `json:"ordinal"`
	Members     []GroupMemberResponse `json:"members"`
}

type LookupResponse struct {
	TechLead        TechLeadResponse `json:"tech_lead"`
	Groups          []GroupResponse  `json:"groups"`
	TotalInterns    int              `json:"total_interns"`
	ActiveInterns   int              `json:"active_interns"`
	InactiveInterns int              `json:"inactive_interns"`
}

type SetStatusRequest struct {
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type InternStatusResponse struct {
	Email     string  `json:"email"`
	IsActive  bool    `json:"is_active"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

type SetStatusResponse struct {
	Status InternStatusResponse `json:"status"`
}

type StatsResponse struct {
	TotalInterns        int `json:"total_interns"`
	AssignedInterns     int `json:"assigned_interns"`
	UnassignedInterns   int `json:"unassigned_interns"`
	TotalTechLeads      int `json:"total_tech_leads"`
	AssignedTechLeads   int `json:"assigned_tech_leads"`
	UnassignedTechLeads int `json:"unassigned_tech_leads"`
	ActiveInterns       int `json:"active_interns"`
	InactiveInterns     int `json:"inactive_interns"`
}
