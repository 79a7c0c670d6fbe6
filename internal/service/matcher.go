package service

import (
	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

// MatchGroups assigns complete groups to tech leads in two passes.
//
// Phase 1 walks each affiliation's leads (seeded-shuffled order) with a
// cursor: a group goes to the cursor lead while it has room, the cursor
// advances when a lead saturates. Groups with no local candidate, and all
// groups of an affiliation without leads, are deferred.
//
// Phase 2 collects leads with residual capacity across all affiliations
// and places deferred groups first-fit, in deferral order. Groups still
// unplaced after that stay unassigned for good.
func MatchGroups(partition PartitionResult, leads []domain.TechLead, seed int64) ([]domain.LeadAssignment, []domain.Group, []domain.TechLead) {
	shuffledLeads := shuffleTechLeads(leads, seed)

	leadsByAffiliation := make(map[string][]int)
	for i, lead := range shuffledLeads {
		leadsByAffiliation[lead.Affiliation] = append(leadsByAffiliation[lead.Affiliation], i)
	}

	load := make([]int, len(shuffledLeads))
	assigned := make([][]domain.Group, len(shuffledLeads))
	var deferred []domain.Group

	capacityOf := func(i int) int {
		if shuffledLeads[i].Capacity > 0 {
			return shuffledLeads[i].Capacity
		}
		return domain.LeadCapacity
	}

	// Phase 1: affiliation-local.
	for _, affiliation := range partition.Affiliations {
		groups := partition.Complete[affiliation]
		candidates := leadsByAffiliation[affiliation]
		if len(candidates) == 0 {
			deferred = append(deferred, groups...)
			continue
		}

		cursor := 0
		for _, group := range groups {
			placed := false
			for cursor < len(candidates) {
				idx := candidates[cursor]
				if load[idx] < capacityOf(idx) {
					assigned[idx] = append(assigned[idx], group)
					load[idx]++
					if load[idx] == capacityOf(idx) {
						cursor++
					}
					placed = true
					break
				}
				cursor++
			}
			if !placed {
				deferred = append(deferred, group)
			}
		}
	}

	// Phase 2: global reconciliation. The pool is filtered by current load
	// when built and the load is re-checked before each placement.
	// TODO: the historical passes disagree on whether a lead that saturates
	// mid-pass should have been excluded from the pool up front; pin one
	// behavior down before capacities become configurable.
	var pool []int
	for i := range shuffledLeads {
		if load[i] < capacityOf(i) {
			pool = append(pool, i)
		}
	}

	var unplaced []domain.Group
	for _, group := range deferred {
		placed := false
		for p, idx := range pool {
			if load[idx] < capacityOf(idx) {
				assigned[idx] = append(assigned[idx], group)
				load[idx]++
				if load[idx] == capacityOf(idx) {
					pool = append(pool[:p], pool[p+1:]...)
				}
				placed = true
				break
			}
		}
		if !placed {
			unplaced = append(unplaced, group)
		}
	}

	var assignments []domain.LeadAssignment
	var unassignedLeads []domain.TechLead
	for i, lead := range shuffledLeads {
		if len(assigned[i]) == 0 {
			unassignedLeads = append(unassignedLeads, lead)
			continue
		}
		assignments = append(assignments, domain.LeadAssignment{
			Lead:   lead,
			Groups: assigned[i],
		})
	}

	return assignments, unplaced, unassignedLeads
}

// ComputeAssignments runs the full partition-and-match pass over both
// rosters. Unassigned interns are reported in original roster order and
// cover both leftover partial chunks and complete groups that were never
// placed.
func ComputeAssignments(interns []domain.Intern, leads []domain.TechLead, seed int64) domain.AssignmentResult {
	partition := PartitionInterns(interns, seed)
	assignments, _, unassignedLeads := MatchGroups(partition, leads, seed)

	placed := make(map[string]bool)
	for _, a := range assignments {
		for _, group := range a.Groups {
			for _, email := range group.MemberEmails() {
				placed[email] = true
			}
		}
	}

	var unassignedInterns []domain.Intern
	for _, intern := range interns {
		if !placed[intern.Email] {
			unassignedInterns = append(unassignedInterns, intern)
		}
	}

	return domain.AssignmentResult{
		Assignments:         assignments,
		UnassignedInterns:   unassignedInterns,
		UnassignedTechLeads: unassignedLeads,
	}
}
