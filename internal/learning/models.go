package learning

import (
	"time"

	"bite-sized-learning-go/internal/catalog"
	"bite-sized-learning-go/internal/creator"
	"bite-sized-learning-go/internal/engagement"
)

// EventType represents different kinds of engagement events
type EventType string

const (
	EventTypeReelLiked         EventType = "reel_liked"
	EventTypeReelUnliked       EventType = "reel_unliked"
	EventTypeReelSaved         EventType = "reel_saved"
	EventTypeReelUnsaved       EventType = "reel_unsaved"
	EventTypeCreatorFollowed   EventType = "creator_followed"
	EventTypeCreatorUnfollowed EventType = "creator_unfollowed"
	EventTypeCommentAdded      EventType = "comment_added"
	EventTypeQuizAnswered      EventType = "quiz_answered"
	EventTypeCourseCompleted   EventType = "course_completed"
	EventTypeXPAwarded         EventType = "xp_awarded"
	EventTypeReelSubmitted     EventType = "reel_submitted"
	EventTypeCourseDrafted     EventType = "course_drafted"
)

// Event is pushed to a session's subscribers after each interaction
type Event struct {
	Type      EventType      `json:"type"`
	SessionID string         `json:"session_id"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

// ReelView is a reel as one learner sees it
type ReelView struct {
	catalog.ContentItem
	EmbedURL         string   `json:"embed_url"`
	Liked            bool     `json:"liked"`
	Saved            bool     `json:"saved"`
	FollowingCreator bool     `json:"following_creator"`
	Comments         []string `json:"comments"`
	HasQuiz          bool     `json:"has_quiz"`
	QuizCompleted    bool     `json:"quiz_completed"`
}

// FeedEntry is a reel in the ranked home feed
type FeedEntry struct {
	ReelView
	Score int `json:"score"`
}

type FeedView struct {
	Reels   []FeedEntry `json:"reels"`
	TotalXP int         `json:"total_xp"`
}

// ReelOption feeds the reel viewer's selector
type ReelOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ReelSummary is the short form of a reel used in lists
type ReelSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Topic string `json:"topic"`
}

// ToggleResult reports the state after a like, save or follow
type ToggleResult struct {
	TargetID string `json:"target_id"`
	Active   bool   `json:"active"`
	EarnedXP int    `json:"earned_xp"`
	TotalXP  int    `json:"total_xp"`
}

type CommentsView struct {
	ReelID   string   `json:"reel_id"`
	Comments []string `json:"comments"`
}

// QuizView is a quiz without its answer
type QuizView struct {
	ReelID    string   `json:"reel_id"`
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	Completed bool     `json:"completed"`
}

type AnswerResult struct {
	Correct   bool `json:"correct"`
	XPAwarded int  `json:"xp_awarded"`
	TotalXP   int  `json:"total_xp"`
}

type PlaylistView struct {
	catalog.Playlist
	Reels []ReelSummary `json:"reels"`
}

type CourseView struct {
	catalog.MicroCourse
	CompletionPercent int  `json:"completion_pct"`
	Completed         bool `json:"completed"`
}

type CompletionResult struct {
	CourseID  string `json:"course_id"`
	XPAwarded int    `json:"xp_awarded"`
	TotalXP   int    `json:"total_xp"`
}

type ProgressView struct {
	Cards               []catalog.StatCard      `json:"cards"`
	Weekly              []catalog.DailyActivity `json:"weekly"`
	Goals               []string                `json:"goals"`
	EarnedXP            int                     `json:"earned_xp"`
	CompletedChallenges []string                `json:"completed_challenges"`
}

type ProfileView struct {
	Name             string           `json:"name"`
	AvatarURL        string           `json:"avatar"`
	StreakDays       int              `json:"streak"`
	XP               int              `json:"xp"`
	Level            engagement.Level `json:"level"`
	XPToNextLevel    int              `json:"xp_to_next_level"`
	Badges           []string         `json:"badges"`
	SavedReels       []ReelSummary    `json:"saved_reels"`
	LikedReels       []ReelSummary    `json:"liked_reels"`
	FollowedCreators []string         `json:"followed_creators"`
	Goals            []string         `json:"learning_goals"`
}

// CreatorDrafts lists what the session submitted through the creator tools
type CreatorDrafts struct {
	Reels   []creator.ReelSubmission `json:"reels"`
	Courses []creator.CourseDraft    `json:"courses"`
}
