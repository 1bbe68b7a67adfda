package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bite-sized-learning-go/internal/catalog"
)

type signals struct {
	liked    map[string]bool
	saved    map[string]bool
	followed map[string]bool
}

func (s signals) IsLiked(id string) bool     { return s.liked[id] }
func (s signals) IsSaved(id string) bool     { return s.saved[id] }
func (s signals) IsFollowing(id string) bool { return s.followed[id] }

func testCatalog() []catalog.ContentItem {
	return []catalog.ContentItem{
		{ID: "r1", Topic: "Math", CreatorID: "maya_chen"},
		{ID: "r2", Topic: "DSA", CreatorID: "code_babbar"},
		{ID: "r3", Topic: "Design", CreatorID: "ux_lab"},
		{ID: "r4", Topic: "Programming", CreatorID: "codepulse"},
	}
}

func ids(items []catalog.ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestRankFeed(t *testing.T) {
	tests := []struct {
		name     string
		signals  signals
		expected []string
	}{
		{
			name:     "No engagement keeps catalog order",
			signals:  signals{},
			expected: []string{"r1", "r2", "r3", "r4"},
		},
		{
			name:     "Liked topic floats but ties keep order",
			signals:  signals{liked: map[string]bool{"r1": true}},
			expected: []string{"r1", "r2", "r3", "r4"},
		},
		{
			name:     "Saved reel gets topic and save points",
			signals:  signals{saved: map[string]bool{"r3": true}},
			expected: []string{"r3", "r1", "r2", "r4"},
		},
		{
			name:     "Followed creator beats topic match",
			signals:  signals{liked: map[string]bool{"r3": true}, followed: map[string]bool{"codepulse": true}},
			expected: []string{"r4", "r3", "r1", "r2"},
		},
		{
			name: "Every signal stacks",
			signals: signals{
				saved:    map[string]bool{"r2": true},
				followed: map[string]bool{"code_babbar": true, "maya_chen": true},
			},
			expected: []string{"r2", "r1", "r3", "r4"},
		},
		{
			name:     "Foreign ids are ignored",
			signals:  signals{liked: map[string]bool{"ghost": true}, saved: map[string]bool{"r99": true}},
			expected: []string{"r1", "r2", "r3", "r4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(RankFeed(testCatalog(), tt.signals)))
		})
	}
}

func TestScoreFeed(t *testing.T) {
	s := signals{
		liked:    map[string]bool{"r1": true},
		saved:    map[string]bool{"r2": true},
		followed: map[string]bool{"code_babbar": true},
	}

	scored := ScoreFeed(testCatalog(), s)
	require.Len(t, scored, 4)

	// r2: followed + own topic + saved
	assert.Equal(t, "r2", scored[0].Item.ID)
	assert.Equal(t, 6, scored[0].Score)
	assert.Equal(t, "r1", scored[1].Item.ID)
	assert.Equal(t, 2, scored[1].Score)
	assert.Equal(t, 0, scored[2].Score)
	assert.Equal(t, 0, scored[3].Score)
}

func TestRankFeedEmptyCatalog(t *testing.T) {
	ranked := RankFeed(nil, signals{liked: map[string]bool{"r1": true}})
	assert.Empty(t, ranked)
}

func TestRankFeedIsDeterministic(t *testing.T) {
	s := signals{liked: map[string]bool{"r4": true}, followed: map[string]bool{"ux_lab": true}}

	first := RankFeed(testCatalog(), s)
	second := RankFeed(testCatalog(), s)
	assert.Equal(t, first, second)
}

func TestRankFeedDoesNotMutateInput(t *testing.T) {
	items := testCatalog()
	s := signals{followed: map[string]bool{"codepulse": true}}

	RankFeed(items, s)
	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids(items))
}

func TestRankFeedStableAmongEqualScores(t *testing.T) {
	items := []catalog.ContentItem{
		{ID: "a", Topic: "Math"},
		{ID: "b", Topic: "Art"},
		{ID: "c", Topic: "Math"},
		{ID: "d", Topic: "Art"},
		{ID: "e", Topic: "Math"},
	}
	s := signals{liked: map[string]bool{"e": true}}

	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, ids(RankFeed(items, s)))
}

func TestInterestingTopics(t *testing.T) {
	s := signals{liked: map[string]bool{"r1": true}, saved: map[string]bool{"r4": true, "ghost": true}}

	topics := InterestingTopics(testCatalog(), s)
	assert.Len(t, topics, 2)
	assert.Contains(t, topics, "Math")
	assert.Contains(t, topics, "Programming")
}
