package discovery

import (
	"sort"
	"strings"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// Sort returns a new ordering of jobs under the given sort state. The input
// slice is never mutated. Sorting is stable: jobs that compare equal keep
// their relative input order in both directions, which callers rely on when
// toggling direction on an already-sorted list. Descending order inverts the
// ascending comparator rather than reversing the output, so ties never swap.
func Sort(jobs []*model.Job, state model.SortState) []*model.Job {
	out := make([]*model.Job, len(jobs))
	copy(out, jobs)

	cmp := comparator(state.Key)
	if cmp == nil {
		// Default key: stable pass-through preserving the upstream
		// relevance order.
		return out
	}

	desc := state.Dir == model.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// comparator returns the ascending comparison for a sort key, or nil for the
// default pass-through ordering.
func comparator(key model.SortKey) func(a, b *model.Job) int {
	switch key {
	case model.SortKeyPrice:
		return func(a, b *model.Job) int {
			return compareFloat(budgetValue(a), budgetValue(b))
		}
	case model.SortKeyDate:
		return func(a, b *model.Job) int {
			return compareInt(createdMillis(a), createdMillis(b))
		}
	case model.SortKeyCategory:
		return func(a, b *model.Job) int {
			return strings.Compare(firstTag(a), firstTag(b))
		}
	case model.SortKeyTitle:
		return func(a, b *model.Job) int {
			return strings.Compare(titleValue(a), titleValue(b))
		}
	case model.SortKeyLocation:
		return func(a, b *model.Job) int {
			return strings.Compare(cityValue(a), cityValue(b))
		}
	default:
		return nil
	}
}

// budgetValue treats a missing budget as zero for ordering purposes.
func budgetValue(j *model.Job) float64 {
	if j == nil || j.Budget == nil {
		return 0
	}
	return *j.Budget
}

// createdMillis treats an unset creation time as epoch zero.
func createdMillis(j *model.Job) int64 {
	if j == nil || j.CreatedAt.IsZero() {
		return 0
	}
	return j.CreatedAt.UnixMilli()
}

// firstTag returns the raw first category tag; unlike matching, ordering does
// not substitute the default category for untagged jobs.
func firstTag(j *model.Job) string {
	if j == nil || len(j.CategoryTags) == 0 {
		return ""
	}
	return j.CategoryTags[0]
}

func titleValue(j *model.Job) string {
	if j == nil {
		return ""
	}
	return j.Title
}

func cityValue(j *model.Job) string {
	if j == nil || j.Location == nil {
		return ""
	}
	return j.Location.City
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
