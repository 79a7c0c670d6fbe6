package domain

// LeadCapacity is the maximum number of groups a tech lead may receive.
const LeadCapacity = 5

type TechLead struct {
	Email         string
	FullName      string
	Affiliation   string
	Gender        string
	ContactNumber string
	Capacity      int
}
