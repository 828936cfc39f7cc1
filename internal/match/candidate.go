package match

import "sort"

// MinScore is the similarity a candidate needs to be suggested.
const MinScore = 0.5

// Candidate is a known name scored against the one looked up.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against name, best first.
// Qualified names also score by their unqualified part, so "Durations"
// ranks "time.Duration" high.
func Rank(name string, known []string) CandidateList {
	target := Normalize(name)

	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		norm := Normalize(k)

		score := max(Similarity(target, norm), Similarity(unqualified(target), unqualified(norm)))
		candidates = append(candidates, Candidate{Name: k, Score: score})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit known names close enough to name, best first.
// An exact match after normalization is returned alone.
func Suggest(name string, known []string, limit int) []string {
	var out []string

	for _, c := range Rank(name, known).Above(MinScore) {
		if c.Score == 1.0 {
			return []string{c.Name}
		}

		if len(out) == limit {
			break
		}

		out = append(out, c.Name)
	}

	return out
}

// Above returns the leading candidates scoring at least score.
func (c CandidateList) Above(score float64) CandidateList {
	for i := range c {
		if c[i].Score < score {
			return c[:i]
		}
	}

	return c
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}
