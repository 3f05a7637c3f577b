// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"sort"

	"github.com/danielhkuo/crowncast/models"
	"github.com/danielhkuo/crowncast/roster"
)

// CandidateTally is one candidate's standing within a category.
type CandidateTally struct {
	models.Candidate
	Votes      int    `json:"votes"`
	Percentage string `json:"percentage"` // of the category total, one decimal
}

// CategoryTally is the computed standing of one category.
type CategoryTally struct {
	models.Category
	TotalVotes int              `json:"totalVotes"`
	Candidates []CandidateTally `json:"candidates"`
	Leader     *CandidateTally  `json:"leader,omitempty"`
	LeadMargin int              `json:"leadMargin"`
}

// Summary is the full dashboard view of the ledger at one point in time.
type Summary struct {
	TotalVotes int             `json:"totalVotes"`
	Categories []CategoryTally `json:"categories"`
}

// Compute derives the summary from a candidateID -> count mapping (as
// produced by ledger.AllCounts). Pure and deterministic: the same counts
// always produce the same output, including tie-break order. Ties resolve
// to the roster's first-listed candidate via stable sort.
func Compute(counts map[string]int) Summary {
	var s Summary

	for _, cat := range roster.Categories {
		members := roster.CandidatesInCategory(cat.ID)

		ct := CategoryTally{
			Category:   cat,
			Candidates: make([]CandidateTally, 0, len(members)),
		}
		for _, c := range members {
			n := counts[c.ID]
			ct.TotalVotes += n
			ct.Candidates = append(ct.Candidates, CandidateTally{Candidate: c, Votes: n})
		}
		s.TotalVotes += ct.TotalVotes

		sort.SliceStable(ct.Candidates, func(i, j int) bool {
			return ct.Candidates[i].Votes > ct.Candidates[j].Votes
		})

		for i := range ct.Candidates {
			ct.Candidates[i].Percentage = percent(ct.Candidates[i].Votes, ct.TotalVotes)
		}

		if len(ct.Candidates) > 0 {
			leader := ct.Candidates[0]
			ct.Leader = &leader
			// Margin of 0 with votes present means "no clear leader" to
			// callers, not an error.
			if len(ct.Candidates) > 1 {
				ct.LeadMargin = leader.Votes - ct.Candidates[1].Votes
			}
		}

		s.Categories = append(s.Categories, ct)
	}

	return s
}

func percent(votes, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(votes)/float64(total)*100)
}
