package domain

// GroupSize is the fixed size of a complete intern group.
const GroupSize = 5

// Group is an ordered set of interns sharing one affiliation. Ordinal is
// the formation order within the affiliation. Only complete groups are
// eligible for assignment.
type Group struct {
	Affiliation string
	Ordinal     int
	Members     []Intern
}

func (g *Group) IsComplete() bool {
	return len(g.Members) == GroupSize
}

func (g *Group) MemberEmails() []string {
	emails := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		emails = append(emails, m.Email)
	}
	return emails
}
