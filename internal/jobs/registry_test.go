package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_ContainsSamplePostingsInOrder(t *testing.T) {
	t.Parallel()

	reg := Default()
	require.Equal(t, 3, reg.Len())

	got := reg.All()
	require.Equal(t, []Posting{
		{
			ID:          1,
			Title:       "Senior React Developer",
			Company:     "TechCorp",
			Location:    "Remote",
			Description: "Looking for a seasoned React developer to build modern web applications.",
		},
		{
			ID:          2,
			Title:       "Python Backend Engineer",
			Company:     "DataMinds",
			Location:    "New York, NY",
			Description: "Build and maintain our data processing pipelines using Python.",
		},
		{
			ID:          3,
			Title:       "UX/UI Designer",
			Company:     "Creative Inc.",
			Location:    "San Francisco, CA",
			Description: "Design user-friendly interfaces for our new mobile app.",
		},
	}, got)
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := Default()
	first := reg.All()
	first[0].Title = "modified"

	require.Equal(t, "Senior React Developer", reg.All()[0].Title)
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	t.Parallel()

	in := []Posting{{ID: 7, Title: "Engineer", Company: "Acme"}}
	reg, err := NewRegistry(in...)
	require.NoError(t, err)

	in[0].Company = "Other"
	require.Equal(t, "Acme", reg.All()[0].Company)
}

func TestNewRegistry_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		postings []Posting
		want     string
	}{
		{
			name: "duplicate id",
			postings: []Posting{
				{ID: 1, Title: "a", Company: "b"},
				{ID: 1, Title: "c", Company: "d"},
			},
			want: "duplicate posting id",
		},
		{
			name:     "empty title",
			postings: []Posting{{ID: 1, Title: "  ", Company: "b"}},
			want:     "title is required",
		},
		{
			name:     "empty company",
			postings: []Posting{{ID: 1, Title: "a"}},
			want:     "company is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg, err := NewRegistry(tt.postings...)
			require.Nil(t, reg)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestNewRegistry_DuplicateIsSentinel(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(
		Posting{ID: 2, Title: "a", Company: "b"},
		Posting{ID: 2, Title: "a", Company: "b"},
	)
	require.True(t, errors.Is(err, ErrDuplicateID))
}

func TestNewRegistry_Empty(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry()
	require.NoError(t, err)
	require.Zero(t, reg.Len())
	require.NotNil(t, reg.All())
}
