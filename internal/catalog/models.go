package catalog

// Difficulty represents how demanding a reel or course is
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether d is one of the known difficulties
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ContentItem is a single reel in the catalog. It is never mutated after load.
type ContentItem struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	CreatorName      string     `json:"creator_name"`
	CreatorID        string     `json:"creator_id"`
	Topic            string     `json:"topic"`
	Difficulty       Difficulty `json:"difficulty"`
	DurationLabel    string     `json:"duration"`
	ExternalVideoRef string     `json:"video_url"`
	LikeCount        int        `json:"likes"`
	SaveCount        int        `json:"saves"`
}

// Playlist groups reels under a theme
type Playlist struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ItemIDs     []string `json:"reel_ids"`
	Progress    float64  `json:"progress"`
	Tags        []string `json:"tags"`
}

// CourseModule is one lesson inside a micro-course
type CourseModule struct {
	Title         string `json:"title"`
	DurationLabel string `json:"duration"`
}

// MicroCourse is a short sequence of modules
type MicroCourse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Level         Difficulty     `json:"level"`
	DurationLabel string         `json:"duration"`
	Description   string         `json:"description"`
	Modules       []CourseModule `json:"modules"`
	Completion    float64        `json:"completion"`
}

// Quiz is the check-your-understanding question attached to a reel
type Quiz struct {
	ItemID      string   `json:"reel_id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"-"`
}

// LearnerProfile is the demo learner every session starts from
type LearnerProfile struct {
	Name          string   `json:"name"`
	AvatarURL     string   `json:"avatar"`
	StreakDays    int      `json:"streak"`
	BaseXP        int      `json:"xp"`
	Badges        []string `json:"badges"`
	SavedItemIDs  []string `json:"saved_reels"`
	LearningGoals []string `json:"learning_goals"`
}

// ReelStat is a creator's per-reel performance
type ReelStat struct {
	Title string `json:"title"`
	Views int    `json:"views"`
	Likes int    `json:"likes"`
}

// TopicViews is the view count attributed to a topic
type TopicViews struct {
	Topic string `json:"topic"`
	Views int    `json:"views"`
}

// CreatorStats backs the creator dashboard and analytics pages
type CreatorStats struct {
	Name             string       `json:"name"`
	AvatarURL        string       `json:"avatar"`
	Followers        int          `json:"followers"`
	ReelsPublished   int          `json:"reels_published"`
	MicroCourses     int          `json:"micro_courses"`
	WatchTimeMinutes int          `json:"watch_time"`
	RecentReels      []ReelStat   `json:"recent_reels"`
	TopicPerformance []TopicViews `json:"topic_performance"`
}

// DailyActivity is one day of the weekly progress trend
type DailyActivity struct {
	Day            string `json:"day"`
	MinutesWatched int    `json:"minutes_watch"`
	ReelsCompleted int    `json:"reels_completed"`
}

// StatCard is a headline metric on the progress dashboard
type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Help  string `json:"help,omitempty"`
}
