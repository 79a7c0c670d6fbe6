package service

import (
	"math/rand"
	"sort"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

// PartitionResult holds the complete groups formed per affiliation plus
// the interns left in short final chunks. Affiliations is sorted so every
// consumer iterates in a stable order.
type PartitionResult struct {
	Affiliations []string
	Complete     map[string][]domain.Group
	Leftover     []domain.Intern
}

// PartitionInterns shuffles the roster with the given seed, then slices
// each affiliation's interns into consecutive groups of GroupSize in
// shuffled order. A final chunk smaller than GroupSize goes to Leftover
// and never reaches matching.
func PartitionInterns(interns []domain.Intern, seed int64) PartitionResult {
	shuffled := shuffleInterns(interns, seed)

	byAffiliation := make(map[string][]domain.Intern)
	var affiliations []string
	for _, intern := range shuffled {
		if _, ok := byAffiliation[intern.Affiliation]; !ok {
			affiliations = append(affiliations, intern.Affiliation)
		}
		byAffiliation[intern.Affiliation] = append(byAffiliation[intern.Affiliation], intern)
	}
	sort.Strings(affiliations)

	result := PartitionResult{
		Affiliations: affiliations,
		Complete:     make(map[string][]domain.Group, len(affiliations)),
	}

	for _, affiliation := range affiliations {
		members := byAffiliation[affiliation]
		ordinal := 0
		for start := 0; start < len(members); start += domain.GroupSize {
			end := start + domain.GroupSize
			if end > len(members) {
				result.Leftover = append(result.Leftover, members[start:]...)
				break
			}
			ordinal++
			group := domain.Group{
				Affiliation: affiliation,
				Ordinal:     ordinal,
				Members:     append([]domain.Intern(nil), members[start:end]...),
			}
			result.Complete[affiliation] = append(result.Complete[affiliation], group)
		}
	}

	return result
}

func shuffleInterns(interns []domain.Intern, seed int64) []domain.Intern {
	shuffled := append([]domain.Intern(nil), interns...)
	rng := rand.New(rand.NewSource(seed))
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

func shuffleTechLeads(leads []domain.TechLead, seed int64) []domain.TechLead {
	shuffled := append([]domain.TechLead(nil), leads...)
	rng := rand.New(rand.NewSource(seed))
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
