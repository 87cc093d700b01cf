package workout

import "github.com/claude/liftlog/internal/models"

// dominates reports whether a beats b as a personal record: any heavier
// lift wins outright, and a lighter lift wins only with strictly more
// reps. Records at equal weight never dominate each other, so the same
// weight can appear on the frontier at several rep counts.
func dominates(a, b models.Record) bool {
	if a.Weight > b.Weight {
		return true
	}
	return a.Weight < b.Weight && a.Reps > b.Reps
}

// mergeRecord folds candidate into frontier: every record the candidate
// dominates is dropped, then the candidate itself is kept only if no
// survivor dominates it. Given an antichain in, the result is an
// antichain out. The fold is order-dependent across candidates, which is
// accepted: sets are applied in the order they were performed.
func mergeRecord(frontier []models.Record, candidate models.Record) []models.Record {
	merged := make([]models.Record, 0, len(frontier)+1)
	for _, r := range frontier {
		if dominates(candidate, r) {
			continue
		}
		merged = append(merged, r)
	}
	for _, r := range merged {
		// Records form a set: an exact duplicate blocks the append
		// just like a dominating record does.
		if r == candidate || dominates(r, candidate) {
			return merged
		}
	}
	return append(merged, candidate)
}
