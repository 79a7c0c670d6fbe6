package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash-u-12/grouping-l1-l2/internal/domain"
)

func makeInterns(affiliation string, count int) []domain.Intern {
	interns := make([]domain.Intern, 0, count)
	for i := 0; i < count; i++ {
		interns = append(interns, domain.Intern{
			Email:       fmt.Sprintf("%s.intern%d@example.com", affiliation, i),
			FullName:    fmt.Sprintf("Intern %d", i),
			Affiliation: affiliation,
		})
	}
	return interns
}

func makeTechLeads(affiliation string, count int) []domain.TechLead {
	leads := make([]domain.TechLead, 0, count)
	for i := 0; i < count; i++ {
		leads = append(leads, domain.TechLead{
			Email:       fmt.Sprintf("%s.lead%d@example.com", affiliation, i),
			FullName:    fmt.Sprintf("Lead %d", i),
			Affiliation: affiliation,
			Capacity:    domain.LeadCapacity,
		})
	}
	return leads
}

func TestPartitionInterns(t *testing.T) {
	t.Run("every complete group has exactly five interns of one affiliation", func(t *testing.T) {
		interns := append(makeInterns("alpha", 12), makeInterns("beta", 7)...)

		result := PartitionInterns(interns, 42)

		require.ElementsMatch(t, []string{"alpha", "beta"}, result.Affiliations)
		for affiliation, groups := range result.Complete {
			for _, group := range groups {
				assert.Len(t, group.Members, domain.GroupSize)
				assert.Equal(t, affiliation, group.Affiliation)
				for _, member := range group.Members {
					assert.Equal(t, affiliation, member.Affiliation)
				}
			}
		}
		assert.Len(t, result.Complete["alpha"], 2)
		assert.Len(t, result.Complete["beta"], 1)
		// 12 -> 2 leftover, 7 -> 2 leftover
		assert.Len(t, result.Leftover, 4)
	})

	t.Run("no intern appears in more than one group", func(t *testing.T) {
		interns := append(makeInterns("alpha", 23), makeInterns("beta", 18)...)

		result := PartitionInterns(interns, 42)

		seen := make(map[string]int)
		for _, groups := range result.Complete {
			for _, group := range groups {
				for _, member := range group.Members {
					seen[member.Email]++
				}
			}
		}
		for _, intern := range result.Leftover {
			seen[intern.Email]++
		}

		assert.Len(t, seen, len(interns))
		for email, count := range seen {
			assert.Equal(t, 1, count, "intern %s placed more than once", email)
		}
	})

	t.Run("ordinals count up per affiliation", func(t *testing.T) {
		result := PartitionInterns(makeInterns("alpha", 15), 42)

		groups := result.Complete["alpha"]
		require.Len(t, groups, 3)
		for i, group := range groups {
			assert.Equal(t, i+1, group.Ordinal)
		}
	})

	t.Run("same seed gives the same partition", func(t *testing.T) {
		interns := append(makeInterns("alpha", 17), makeInterns("beta", 9)...)

		first := PartitionInterns(interns, 42)
		second := PartitionInterns(interns, 42)

		assert.Equal(t, first, second)
	})

	t.Run("different seed reshuffles", func(t *testing.T) {
		interns := makeInterns("alpha", 25)

		first := PartitionInterns(interns, 42)
		second := PartitionInterns(interns, 43)

		// Group counts are identical either way; the memberships differ.
		assert.Len(t, second.Complete["alpha"], len(first.Complete["alpha"]))
		assert.NotEqual(t, first.Complete["alpha"], second.Complete["alpha"])
	})

	t.Run("fewer than five interns form no group", func(t *testing.T) {
		result := PartitionInterns(makeInterns("alpha", 4), 42)

		assert.Empty(t, result.Complete["alpha"])
		assert.Len(t, result.Leftover, 4)
	})

	t.Run("empty roster", func(t *testing.T) {
		result := PartitionInterns(nil, 42)

		assert.Empty(t, result.Affiliations)
		assert.Empty(t, result.Leftover)
	})
}
