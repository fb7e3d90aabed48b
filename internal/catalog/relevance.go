package catalog

import (
	"sort"
	"strings"
)

// RelevanceThreshold is the minimum score a course needs to appear in
// in-memory search results.
const RelevanceThreshold = 0.25

// Rank scores courses against query and returns those above the threshold,
// best first. Equal scores keep their input order.
func Rank(courses []Course, query string) []Course {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Course{}
	}
	type scored struct {
		course Course
		score  float64
	}
	hits := make([]scored, 0, len(courses))
	for _, c := range courses {
		if s := Relevance(&c, query); s > RelevanceThreshold {
			hits = append(hits, scored{course: c, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]Course, len(hits))
	for i := range hits {
		out[i] = hits[i].course
	}
	return out
}

// Relevance weighs title, description, best alias and best review match.
func Relevance(c *Course, query string) float64 {
	var alias, review float64
	for _, a := range c.Aliases {
		alias = max(alias, jaccard(a, query))
	}
	for i := range c.Reviews {
		r := &c.Reviews[i]
		review = max(review, 0.6*jaccard(r.Professor, query)+0.4*jaccard(r.Major, query))
	}
	return 0.4*jaccard(c.Title, query) +
		0.1*jaccard(c.Description, query) +
		0.2*alias +
		0.3*review
}

// jaccard compares the lowercase character sets of a and b.
func jaccard(a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}
	left := runeSet(strings.ToLower(a))
	right := runeSet(strings.ToLower(b))
	inter := 0
	for r := range left {
		if _, ok := right[r]; ok {
			inter++
		}
	}
	union := len(left) + len(right) - inter
	return float64(inter) / float64(union)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
