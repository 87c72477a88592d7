package match

import (
	"sort"
)

// DefaultMinScore is the similarity below which a name is not suggested.
const DefaultMinScore = 0.5

// Candidate is a known field name scored against an unresolved name.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankNames scores every known name against target and returns those at or
// above minScore, best first.
func RankNames(target string, names []string, minScore float64) CandidateList {
	seen := make(map[string]bool, len(names))

	var candidates CandidateList

	for _, name := range names {
		if seen[name] {
			continue
		}

		seen[name] = true

		score := NormalizedLevenshteinScore(name, target)
		if score < minScore {
			continue
		}

		candidates = append(candidates, Candidate{Name: name, Score: score})
	}

	sort.Sort(candidates)

	return candidates
}

// Top returns at most n names from the list.
func (c CandidateList) Top(n int) []string {
	if n > len(c) {
		n = len(c)
	}

	names := make([]string, 0, n)
	for _, cand := range c[:n] {
		names = append(names, cand.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Less sorts by score (descending), then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
