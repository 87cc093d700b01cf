package workout

import (
	"sort"

	"github.com/claude/liftlog/internal/models"
)

// insertUnique appends name to list if absent, reporting whether the
// list changed. Callers check entity existence beforehand, so a no-op
// here is an index repair rather than a conflict.
func insertUnique(list []string, name string) ([]string, bool) {
	for _, n := range list {
		if n == name {
			return list, false
		}
	}
	return append(list, name), true
}

// removeByValue drops every occurrence of name from list.
func removeByValue(list []string, name string) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// insertPointer adds p to a session index and re-sorts the whole list
// newest first (date desc, then created_at desc). Dates and timestamps
// are zero-padded strings, so plain string comparison orders them.
func insertPointer(list []models.SessionPointer, p models.SessionPointer) []models.SessionPointer {
	list = append(list, p)
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date > list[j].Date
		}
		return list[i].CreatedAt > list[j].CreatedAt
	})
	return list
}
