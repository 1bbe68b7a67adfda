package ranking

import (
	"slices"

	"bite-sized-learning-go/internal/catalog"
)

// Points contributed by each personalisation signal
const (
	FollowedCreatorPoints = 3
	TopicMatchPoints      = 2
	SavedPoints           = 1
)

// Signals is the read side of a learner's engagement state
type Signals interface {
	IsLiked(itemID string) bool
	IsSaved(itemID string) bool
	IsFollowing(creatorID string) bool
}

// ScoredItem is a reel with the score that placed it in the feed
type ScoredItem struct {
	Item  catalog.ContentItem `json:"reel"`
	Score int                 `json:"score"`
}

// InterestingTopics collects the topics of every reel the learner liked or
// saved. Engagement with reels outside items never matches anything.
func InterestingTopics(items []catalog.ContentItem, signals Signals) map[string]struct{} {
	topics := make(map[string]struct{})
	for _, item := range items {
		if signals.IsLiked(item.ID) || signals.IsSaved(item.ID) {
			topics[item.Topic] = struct{}{}
		}
	}
	return topics
}

// CalculateScore scores one reel against the learner's signals
func CalculateScore(item catalog.ContentItem, topics map[string]struct{}, signals Signals) int {
	score := 0
	if signals.IsFollowing(item.CreatorID) {
		score += FollowedCreatorPoints
	}
	if _, ok := topics[item.Topic]; ok {
		score += TopicMatchPoints
	}
	if signals.IsSaved(item.ID) {
		score += SavedPoints
	}
	return score
}

// ScoreFeed orders items by descending score. Items with equal scores keep
// their catalog order. items is not modified.
func ScoreFeed(items []catalog.ContentItem, signals Signals) []ScoredItem {
	topics := InterestingTopics(items, signals)

	scored := make([]ScoredItem, len(items))
	for i, item := range items {
		scored[i] = ScoredItem{Item: item, Score: CalculateScore(item, topics, signals)}
	}

	slices.SortStableFunc(scored, func(a, b ScoredItem) int {
		return b.Score - a.Score
	})
	return scored
}

// RankFeed returns the personalised feed ordering of items
func RankFeed(items []catalog.ContentItem, signals Signals) []catalog.ContentItem {
	scored := ScoreFeed(items, signals)

	ranked := make([]catalog.ContentItem, len(scored))
	for i, s := range scored {
		ranked[i] = s.Item
	}
	return ranked
}
