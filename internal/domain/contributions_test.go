package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContributionGraph(t *testing.T) {
	// Wednesday.
	now := time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)
	events := []ActivityEvent{
		{ID: "1", CreatedAt: time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC)},
		{ID: "2", CreatedAt: time.Date(2024, time.March, 13, 10, 0, 0, 0, time.UTC)},
		{ID: "3", CreatedAt: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)},
		// Older than the graph window.
		{ID: "4", CreatedAt: time.Date(2023, time.January, 1, 10, 0, 0, 0, time.UTC)},
	}

	graph := BuildContributionGraph(events, now, nil)

	// 15 full weeks plus a partial week ending on Wednesday.
	require.Len(t, graph.Weeks, ContributionWeeks)
	assert.Equal(t, time.Sunday, time.Weekday(graph.Weeks[0][0].Weekday))
	for _, w := range graph.Weeks[:ContributionWeeks-1] {
		assert.Len(t, w, 7)
	}
	last := graph.Weeks[ContributionWeeks-1]
	assert.Len(t, last, 4)
	assert.Equal(t, "2024-03-13", last[len(last)-1].Date)
	assert.Equal(t, 2, last[len(last)-1].Count)

	assert.Equal(t, 3, graph.Total)
	assert.Equal(t, "2024-03-13", graph.BusiestOn)
}

func TestBuildContributionGraph_NoEvents(t *testing.T) {
	graph := BuildContributionGraph(nil, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC), nil)
	assert.Zero(t, graph.Total)
	assert.Empty(t, graph.BusiestOn)
	assert.NotEmpty(t, graph.Weeks)
}

func TestContributionColor(t *testing.T) {
	testCases := []struct {
		count    int
		expected string
	}{
		{0, "rgba(255, 255, 255, 0.04)"},
		{1, "rgba(102, 126, 234, 0.3)"},
		{2, "rgba(102, 126, 234, 0.3)"},
		{5, "rgba(102, 126, 234, 0.5)"},
		{9, "rgba(102, 126, 234, 0.7)"},
		{10, "rgba(102, 126, 234, 0.95)"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ContributionColor(tc.count))
	}
}
