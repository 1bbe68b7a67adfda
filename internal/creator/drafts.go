package creator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bite-sized-learning-go/internal/catalog"
)

var ErrUnknownReel = errors.New("attached reel is not in the catalog")

const (
	DefaultReelTitle       = "Untitled Reel"
	DefaultCourseTitle     = "Untitled Course"
	DefaultDurationSeconds = 60
)

// ReelSubmission is a reel a creator filed for review
type ReelSubmission struct {
	ID              string             `json:"id"`
	Title           string             `json:"title" validate:"max=120"`
	Topic           string             `json:"topic" validate:"required,oneof=AI Math Design Biology Other"`
	DurationSeconds int                `json:"duration" validate:"min=30,max=90"`
	Difficulty      catalog.Difficulty `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	Tags            string             `json:"tags" validate:"max=200"`
	TagList         []string           `json:"tag_list"`
	VideoURL        string             `json:"video_url" validate:"omitempty,url"`
	SubmittedAt     time.Time          `json:"submitted_at"`
}

// CourseDraft is a micro-course a creator is assembling
type CourseDraft struct {
	ID             string             `json:"id"`
	Title          string             `json:"title" validate:"max=120"`
	Level          catalog.Difficulty `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Summary        string             `json:"summary" validate:"max=2000"`
	AttachedReels  []string           `json:"videos" validate:"dive,required"`
	NewModuleTitle string             `json:"new_module" validate:"max=120"`
	Notes          string             `json:"notes" validate:"max=2000"`
	CreatedAt      time.Time          `json:"created_at"`
}

// ReelLookup resolves the reel titles a course draft attaches
type ReelLookup interface {
	ItemByTitle(title string) (catalog.ContentItem, bool)
}

// Drafts holds one session's creator submissions in the order they arrived
type Drafts struct {
	reels   []ReelSubmission
	courses []CourseDraft
	now     func() time.Time
}

func NewDrafts() *Drafts {
	return &Drafts{now: time.Now}
}

// SubmitReel fills in defaults, validates and stores a reel submission
func (d *Drafts) SubmitReel(in ReelSubmission) (ReelSubmission, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		in.Title = DefaultReelTitle
	}
	if in.DurationSeconds == 0 {
		in.DurationSeconds = DefaultDurationSeconds
	}
	if in.Difficulty == "" {
		in.Difficulty = catalog.DifficultyBeginner
	}
	in.VideoURL = strings.TrimSpace(in.VideoURL)
	in.TagList = splitTags(in.Tags)

	if err := validateStruct(in); err != nil {
		return ReelSubmission{}, err
	}

	in.ID = uuid.New().String()
	in.SubmittedAt = d.now()
	d.reels = append(d.reels, in)
	return in, nil
}

// DraftCourse fills in defaults, validates and stores a course draft. Every
// attached title must name a catalog reel.
func (d *Drafts) DraftCourse(in CourseDraft, reels ReelLookup) (CourseDraft, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		in.Title = DefaultCourseTitle
	}
	if in.Level == "" {
		in.Level = catalog.DifficultyBeginner
	}

	if err := validateStruct(in); err != nil {
		return CourseDraft{}, err
	}
	for _, title := range in.AttachedReels {
		if _, ok := reels.ItemByTitle(title); !ok {
			return CourseDraft{}, fmt.Errorf("%w: %q", ErrUnknownReel, title)
		}
	}

	in.ID = uuid.New().String()
	in.CreatedAt = d.now()
	d.courses = append(d.courses, in)
	return in, nil
}

func (d *Drafts) Reels() []ReelSubmission {
	return append([]ReelSubmission{}, d.reels...)
}

func (d *Drafts) Courses() []CourseDraft {
	return append([]CourseDraft{}, d.courses...)
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
