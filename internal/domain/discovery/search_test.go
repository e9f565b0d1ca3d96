package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fixbid/marketplace-api/internal/domain/model"
)

func TestMatches(t *testing.T) {
	job := &model.Job{
		ID:           1,
		Title:        "Fix leaking kitchen faucet",
		Description:  "Dripping tap under the sink, likely needs a new cartridge.",
		CategoryTags: []string{"Plumbing", "urgent-repair"},
	}

	tests := []struct {
		name  string
		job   *model.Job
		query model.SearchQuery
		want  bool
	}{
		{
			name:  "blank query and category match everything",
			job:   job,
			query: model.SearchQuery{},
			want:  true,
		},
		{
			name:  "whitespace-only values are still wildcards",
			job:   job,
			query: model.SearchQuery{Query: "   ", Category: "\t"},
			want:  true,
		},
		{
			name:  "title substring match is case-insensitive",
			job:   job,
			query: model.SearchQuery{Query: "FAUCET"},
			want:  true,
		},
		{
			name:  "description substring match",
			job:   job,
			query: model.SearchQuery{Query: "cartridge"},
			want:  true,
		},
		{
			name:  "text mismatch",
			job:   job,
			query: model.SearchQuery{Query: "roofing"},
			want:  false,
		},
		{
			name:  "category equality is case-insensitive",
			job:   job,
			query: model.SearchQuery{Category: "plumbing"},
			want:  true,
		},
		{
			name:  "secondary tag also matches",
			job:   job,
			query: model.SearchQuery{Category: "Urgent-Repair"},
			want:  true,
		},
		{
			name:  "category mismatch",
			job:   job,
			query: model.SearchQuery{Category: "electrical"},
			want:  false,
		},
		{
			name:  "text and category must both match",
			job:   job,
			query: model.SearchQuery{Query: "faucet", Category: "electrical"},
			want:  false,
		},
		{
			name:  "untagged job matches the general category",
			job:   &model.Job{ID: 2, Title: "Paint the fence"},
			query: model.SearchQuery{Category: "general"},
			want:  true,
		},
		{
			name:  "empty title and description match as empty strings",
			job:   &model.Job{ID: 3},
			query: model.SearchQuery{Query: "anything"},
			want:  false,
		},
		{
			name:  "nil job never matches",
			job:   nil,
			query: model.SearchQuery{},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.job, tt.query))
		})
	}
}

func TestMatches_WildcardAdmitsAnyJob(t *testing.T) {
	jobs := []*model.Job{
		{ID: 1, Title: "a"},
		{ID: 2},
		{ID: 3, Title: "Replace gutters", CategoryTags: []string{"roofing"}},
	}

	for _, job := range jobs {
		assert.True(t, Matches(job, model.SearchQuery{Query: "", Category: ""}))
	}
}
