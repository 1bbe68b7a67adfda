package engagement

import "math"

// XP granted for each kind of engagement
const (
	LikeXP   = 5
	SaveXP   = 3
	QuizXP   = 10
	CourseXP = 25
)

// QuizChallengeID is the award key for answering a reel's quiz correctly
func QuizChallengeID(itemID string) string {
	return "quiz:" + itemID
}

// CourseChallengeID is the award key for finishing a micro-course
func CourseChallengeID(courseID string) string {
	return "course:" + courseID
}

// Level is a learner tier reached by total XP
type Level struct {
	Name  string `json:"name"`
	MinXP int    `json:"min_xp"`
	MaxXP int    `json:"max_xp"`
}

// Levels in ascending order
var Levels = []Level{
	{Name: "Novice", MinXP: 0, MaxXP: 999},
	{Name: "Explorer", MinXP: 1000, MaxXP: 2499},
	{Name: "Scholar", MinXP: 2500, MaxXP: 4999},
	{Name: "Expert", MinXP: 5000, MaxXP: 9999},
	{Name: "Sage", MinXP: 10000, MaxXP: 24999},
	{Name: "Luminary", MinXP: 25000, MaxXP: math.MaxInt},
}

// LevelForXP returns the tier for a total XP value
func LevelForXP(xp int) Level {
	for _, level := range Levels {
		if xp >= level.MinXP && xp <= level.MaxXP {
			return level
		}
	}
	return Levels[0]
}

// XPToNextLevel returns how much more XP reaches the next tier, or 0 at the top
func XPToNextLevel(xp int) int {
	level := LevelForXP(xp)
	if level.MaxXP == math.MaxInt {
		return 0
	}
	return level.MaxXP + 1 - xp
}
