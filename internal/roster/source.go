package roster

import "github.com/yash-u-12/grouping-l1-l2/internal/domain"

// Source loads both rosters from their configured CSV paths.
type Source struct {
	InternCSV   string
	TechLeadCSV string
}

func NewSource(internCSV, techLeadCSV string) *Source {
	return &Source{InternCSV: internCSV, TechLeadCSV: techLeadCSV}
}

func (s *Source) Load() ([]domain.Intern, []domain.TechLead, error) {
	interns, err := LoadInterns(s.InternCSV)
	if err != nil {
		return nil, nil, err
	}
	leads, err := LoadTechLeads(s.TechLeadCSV)
	if err != nil {
		return nil, nil, err
	}
	return interns, leads, nil
}
