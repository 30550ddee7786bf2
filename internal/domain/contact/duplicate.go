package contact

import (
	"github.com/agnivade/levenshtein"
)

// DuplicateThreshold is the similarity at or above which a new person name
// is flagged as a possible duplicate of an existing one.
const DuplicateThreshold = 0.8

// DuplicateWarning reports that a candidate person name matches, or closely
// resembles, a name already on file. The record has not been written; the
// operator confirms or cancels.
type DuplicateWarning struct {
	// Exact is true when the candidate equals an existing name verbatim.
	Exact bool `json:"exact"`
	// Match is the existing name the candidate collides with.
	Match string `json:"match"`
	// Score is the similarity of Match to the candidate, 1.0 for exact.
	Score float64 `json:"score"`
}

// Similarity returns an edit-distance ratio between a and b on a 0-1 scale,
// where 1 means equal.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// DetectDuplicate checks a candidate full name against the names already on
// file. An exact match short-circuits the fuzzy check; otherwise the closest
// existing name is reported when its similarity reaches the threshold.
// Returns nil when nothing is suspicious.
func DetectDuplicate(fullName string, existing []string) *DuplicateWarning {
	bestScore := 0.0
	bestName := ""
	for _, name := range existing {
		if name == fullName {
			return &DuplicateWarning{Exact: true, Match: name, Score: 1}
		}
		if score := Similarity(fullName, name); score > bestScore {
			bestScore = score
			bestName = name
		}
	}
	if bestScore >= DuplicateThreshold {
		return &DuplicateWarning{Match: bestName, Score: bestScore}
	}
	return nil
}
