package creator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bite-sized-learning-go/internal/catalog"
)

func TestDashboard(t *testing.T) {
	view := Dashboard(catalog.DefaultCreatorStats)

	assert.Equal(t, "Dr. Lina Woods", view.Name)
	assert.Equal(t, []Metric{
		{Label: "Followers", Value: "18,400"},
		{Label: "Reels Published", Value: "68"},
		{Label: "Micro-Courses", Value: "5"},
		{Label: "Watch Time", Value: "182,000 min"},
	}, view.Metrics)
	assert.Len(t, view.RecentReels, 3)
	assert.Len(t, view.TopicPerformance, 4)
}

func TestAnalytics(t *testing.T) {
	view := Analytics(catalog.DefaultCreatorStats)

	assert.Equal(t, 24000, view.TotalViews)
	assert.Equal(t, 1840, view.TotalLikes)
	require.Len(t, view.Reels, 3)

	tests := []struct {
		title     string
		watchTime float64
		share     float64
	}{
		{"Explain CRISPR", 4920, 34.17},
		{"Quantum in 90s", 6120, 42.5},
		{"Ethical AI Cheat", 3360, 23.33},
	}
	for i, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			row := view.Reels[i]
			assert.Equal(t, tt.title, row.Title)
			assert.InDelta(t, tt.watchTime, row.WatchTime, 0.001)
			assert.InDelta(t, tt.share, row.ViewShare, 0.001)
		})
	}
}

func TestAnalyticsWithoutViews(t *testing.T) {
	view := Analytics(catalog.CreatorStats{RecentReels: []catalog.ReelStat{{Title: "Fresh"}}})

	require.Len(t, view.Reels, 1)
	assert.Zero(t, view.Reels[0].ViewShare)
	assert.Zero(t, view.Reels[0].WatchTime)
}
