package engagement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name     string
		xp       int
		expected string
	}{
		{"Starter level", 0, "Novice"},
		{"Top of novice", 999, "Novice"},
		{"Low explorer", 1000, "Explorer"},
		{"Demo learner", 4820, "Scholar"},
		{"Low expert", 5000, "Expert"},
		{"Mid sage", 12000, "Sage"},
		{"Far past the top", 1_000_000, "Luminary"},
		{"Below zero", -5, "Novice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelForXP(tt.xp).Name)
		})
	}
}

func TestXPToNextLevel(t *testing.T) {
	tests := []struct {
		name     string
		xp       int
		expected int
	}{
		{"Fresh learner", 0, 1000},
		{"Demo learner", 4820, 180},
		{"Top tier", 30000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, XPToNextLevel(tt.xp))
		})
	}
}

func TestChallengeIDs(t *testing.T) {
	assert.Equal(t, "quiz:r1", QuizChallengeID("r1"))
	assert.Equal(t, "course:c2", CourseChallengeID("c2"))
}
