package handler

import (
	"time"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

func domainSnapshotToHTTP(snapshot *domain.Snapshot) SnapshotResponse {
	groups := 0
	interns := 0
	for _, assignment := range snapshot.Result.Assignments {
		groups += len(assignment.Groups)
		for _, group := range assignment.Groups {
			interns += len(group.Members)
		}
	}

	return SnapshotResponse{
		SnapshotID:          snapshot.ID.String(),
		Seed:                snapshot.Seed,
		CreatedAt:           snapshot.CreatedAt.Format(time.RFC3339),
		AssignedTechLeads:   len(snapshot.Result.Assignments),
		AssignedGroups:      groups,
		AssignedInterns:     interns,
		UnassignedInterns:   len(snapshot.Result.UnassignedInterns),
		UnassignedTechLeads: len(snapshot.Result.UnassignedTechLeads),
	}
}

func domainLeadToHTTP(lead domain.TechLead) TechLeadResponse {
	return TechLeadResponse{
		Email:         lead.Email,
		FullName:      lead.FullName,
		Affiliation:   lead.Affiliation,
		Gender:        lead.Gender,
		ContactNumber: lead.ContactNumber,
		Capacity:      lead.Capacity,
	}
}

func domainLeadViewToHTTP(view *domain.LeadView) LookupResponse {
	groups := make([]GroupResponse, 0, len(view.Groups))
	for _, group := range view.Groups {
		members := make([]GroupMemberResponse, 0, len(group.Members))
		for _, member := range group.Members {
			members = append(members, GroupMemberResponse{
				Email:         member.Email,
				FullName:      member.FullName,
				ContactNumber: member.ContactNumber,
				IsActive:      view.Statuses[member.Email],
			})
		}
		groups = append(groups, GroupResponse{
			Affiliation: group.Affiliation,
			Ordinal:     group.Ordinal,
			Members:     members,
		})
	}

	return LookupResponse{
		TechLead:        domainLeadToHTTP(view.Lead),
		Groups:          groups,
		TotalInterns:    view.Active + view.Inactive,
		ActiveInterns:   view.Active,
		InactiveInterns: view.Inactive,
	}
}

func domainStatusToHTTP(status *domain.InternStatus) InternStatusResponse {
	var updatedAt *string
	if status.UpdatedAt != nil {
		formatted := status.UpdatedAt.Format(time.RFC3339)
		updatedAt = &formatted
	}

	return InternStatusResponse{
		Email:     status.Email,
		IsActive:  status.IsActive,
		UpdatedAt: updatedAt,
	}
}

func domainStatsToHTTP(stats *domain.OverviewStats) StatsResponse {
	return StatsResponse{
		TotalInterns:        stats.TotalInterns,
		AssignedInterns:     stats.AssignedInterns,
		UnassignedInterns:   stats.UnassignedInterns,
		TotalTechLeads:      stats.TotalTechLeads,
		AssignedTechLeads:   stats.AssignedTechLeads,
		UnassignedTechLeads: stats.UnassignedTechLeads,
		ActiveInterns:       stats.ActiveInterns,
		InactiveInterns:     stats.InactiveInterns,
	}
}
