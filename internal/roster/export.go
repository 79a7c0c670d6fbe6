package roster

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

// Export file names match the original spreadsheets handed to coordinators.
const (
	UnassignedInternsFile   = "unassigned_developer_interns.csv"
	UnassignedTechLeadsFile = "unassigned_techleads.csv"
)

var exportHeader = []string{colFullName, colAffiliation, colGender, colContact, colEmail}

// WriteInterns streams a roster-shaped CSV of interns.
func WriteInterns(w io.Writer, interns []domain.Intern) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, intern := range interns {
		record := []string{intern.FullName, intern.Affiliation, intern.Gender, intern.ContactNumber, intern.Email}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTechLeads streams a roster-shaped CSV of tech leads.
func WriteTechLeads(w io.Writer, leads []domain.TechLead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, lead := range leads {
		record := []string{lead.FullName, lead.Affiliation, lead.Gender, lead.ContactNumber, lead.Email}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportUnassigned writes both unassigned CSVs for a snapshot into dir,
// overwriting previous runs.
func ExportUnassigned(dir string, snapshot *domain.Snapshot) error {
	if err := writeFile(filepath.Join(dir, UnassignedInternsFile), func(w io.Writer) error {
		return WriteInterns(w, snapshot.Result.UnassignedInterns)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, UnassignedTechLeadsFile), func(w io.Writer) error {
		return WriteTechLeads(w, snapshot.Result.UnassignedTechLeads)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
