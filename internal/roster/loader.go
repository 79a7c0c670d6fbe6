package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

// Roster CSV column headers. Both input files carry the same five columns.
const (
	colFullName    = "Full Name"
	colAffiliation = "Affiliation"
	colGender      = "Gender"
	colContact     = "Contact Number"
	colEmail       = "Email Address"
)

var requiredColumns = []string{colFullName, colAffiliation, colEmail}

// LoadInterns reads the developer intern roster. Rows with a duplicate
// email keep the first occurrence.
func LoadInterns(path string) ([]domain.Intern, error) {
	rows, err := readRoster(path)
	if err != nil {
		return nil, err
	}

	interns := make([]domain.Intern, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		email := domain.Normalize(row[colEmail])
		if seen[email] {
			continue
		}
		seen[email] = true
		interns = append(interns, domain.Intern{
			Email:         email,
			FullName:      strings.TrimSpace(row[colFullName]),
			Affiliation:   domain.Normalize(row[colAffiliation]),
			Gender:        strings.TrimSpace(row[colGender]),
			ContactNumber: strings.TrimSpace(row[colContact]),
		})
	}

	return interns, nil
}

// LoadTechLeads reads the tech lead roster. Every lead gets the fixed
// group capacity.
func LoadTechLeads(path string) ([]domain.TechLead, error) {
	rows, err := readRoster(path)
	if err != nil {
		return nil, err
	}

	leads := make([]domain.TechLead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, domain.TechLead{
			Email:         domain.Normalize(row[colEmail]),
			FullName:      strings.TrimSpace(row[colFullName]),
			Affiliation:   domain.Normalize(row[colAffiliation]),
			Gender:        strings.TrimSpace(row[colGender]),
			ContactNumber: strings.TrimSpace(row[colContact]),
			Capacity:      domain.LeadCapacity,
		})
	}

	return leads, nil
}

// readRoster parses a roster CSV into header-keyed rows. A missing header
// or an empty required field fails the load; matching never sees bad rows.
func readRoster(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewRosterInvalidError(fmt.Sprintf("cannot open roster %s: %v", path, err))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.NewRosterInvalidError(fmt.Sprintf("cannot read roster header of %s: %v", path, err))
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, domain.NewRosterInvalidError(fmt.Sprintf("roster %s is missing column %q", path, name))
		}
	}

	var rows []map[string]string
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, domain.NewRosterInvalidError(fmt.Sprintf("roster %s line %d: %v", path, line, err))
		}

		row := make(map[string]string, len(header))
		for name, i := range index {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		for _, name := range requiredColumns {
			if strings.TrimSpace(row[name]) == "" {
				return nil, domain.NewRosterInvalidError(fmt.Sprintf("roster %s line %d: missing %s", path, line, name))
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
