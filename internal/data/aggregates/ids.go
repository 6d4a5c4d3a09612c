package aggregates

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// sortedIDs renders a set deterministically for error details.
func sortedIDs(s mapset.Set[uuid.UUID]) []string {
	out := make([]string, 0, s.Cardinality())
	for _, id := range s.ToSlice() {
		out = append(out, id.String())
	}
	sort.Strings(out)
	return out
}
