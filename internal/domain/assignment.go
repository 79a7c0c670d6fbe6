package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadAssignment is the set of groups one tech lead received, in
// assignment order.
type LeadAssignment struct {
	Lead   TechLead
	Groups []Group
}

// AssignmentResult is the outcome of one matching run. Assignments only
// contains leads that received at least one group; leads with zero groups
// go to UnassignedTechLeads.
type AssignmentResult struct {
	Assignments         []LeadAssignment
	UnassignedInterns   []Intern
	UnassignedTechLeads []TechLead
}

// Snapshot is a persisted assignment run. The latest snapshot is the
// authoritative assignment for lookup, stats and exports.
type Snapshot struct {
	ID        uuid.UUID
	Seed      int64
	CreatedAt time.Time
	Result    AssignmentResult
}

// GroupsFor returns the groups assigned to the given normalized lead
// email, or nil when the lead holds no groups.
func (s *Snapshot) GroupsFor(email string) []Group {
	for _, a := range s.Result.Assignments {
		if a.Lead.Email == email {
			return a.Groups
		}
	}
	return nil
}
