package discovery

import (
	"strings"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

// Matches reports whether a job satisfies the contractor's search query.
// Blank query and category values are wildcards that match everything; the
// overall result is text match AND category match. Text matching is a
// case-insensitive substring test over title and description; category
// matching is a case-insensitive equality test against any of the job's tags,
// with untagged jobs matched as model.DefaultCategory.
func Matches(job *model.Job, query model.SearchQuery) bool {
	if job == nil {
		return false
	}
	if query.IsWildcard() {
		return true
	}
	return matchesText(job, query.Query) && matchesCategory(job, query.Category)
}

func matchesText(job *model.Job, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Description), needle)
}

func matchesCategory(job *model.Job, category string) bool {
	category = strings.TrimSpace(category)
	if category == "" {
		return true
	}
	tags := job.CategoryTags
	if len(tags) == 0 {
		tags = []string{model.DefaultCategory}
	}
	for _, tag := range tags {
		if strings.EqualFold(tag, category) {
			return true
		}
	}
	return false
}
