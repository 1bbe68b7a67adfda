package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID = errors.New("duplicate catalog id")
	ErrUnknownReel = errors.New("reference to unknown reel")
	ErrEmptyID     = errors.New("catalog id must not be empty")
)

// Catalog is a read-only index over the fixtures. It is safe for concurrent
// use because nothing mutates it after New returns.
type Catalog struct {
	items     []ContentItem
	byID      map[string]int
	creators  map[string]string
	playlists []Playlist
	courses   []MicroCourse
	quizzes   map[string]Quiz
	profile   LearnerProfile
	creator   CreatorStats
}

// Option customises a Catalog beyond its reels
type Option func(*Catalog)

func WithPlaylists(p []Playlist) Option {
	return func(c *Catalog) { c.playlists = p }
}

func WithCourses(courses []MicroCourse) Option {
	return func(c *Catalog) { c.courses = courses }
}

func WithQuizzes(quizzes []Quiz) Option {
	return func(c *Catalog) {
		for _, q := range quizzes {
			c.quizzes[q.ItemID] = q
		}
	}
}

func WithProfile(p LearnerProfile) Option {
	return func(c *Catalog) { c.profile = p }
}

func WithCreatorStats(s CreatorStats) Option {
	return func(c *Catalog) { c.creator = s }
}

// New indexes items and validates the references between fixtures
func New(items []ContentItem, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		items:    append([]ContentItem(nil), items...),
		byID:     make(map[string]int, len(items)),
		creators: make(map[string]string),
		quizzes:  make(map[string]Quiz),
	}

	for i, item := range c.items {
		if item.ID == "" {
			return nil, ErrEmptyID
		}
		if _, ok := c.byID[item.ID]; ok {
			return nil, fmt.Errorf("%w: reel %s", ErrDuplicateID, item.ID)
		}
		c.byID[item.ID] = i
		if item.CreatorID != "" {
			c.creators[item.CreatorID] = item.CreatorName
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	seenCourses := make(map[string]bool, len(c.courses))
	for _, course := range c.courses {
		if course.ID == "" {
			return nil, ErrEmptyID
		}
		if seenCourses[course.ID] {
			return nil, fmt.Errorf("%w: course %s", ErrDuplicateID, course.ID)
		}
		seenCourses[course.ID] = true
	}
	for _, p := range c.playlists {
		for _, id := range p.ItemIDs {
			if !c.HasItem(id) {
				return nil, fmt.Errorf("%w: playlist %q lists %s", ErrUnknownReel, p.Name, id)
			}
		}
	}
	for id := range c.quizzes {
		if !c.HasItem(id) {
			return nil, fmt.Errorf("%w: quiz for %s", ErrUnknownReel, id)
		}
	}
	for _, id := range c.profile.SavedItemIDs {
		if !c.HasItem(id) {
			return nil, fmt.Errorf("%w: profile saves %s", ErrUnknownReel, id)
		}
	}

	return c, nil
}

// Default builds the catalog from the bundled demo fixtures
func Default() *Catalog {
	c, err := New(Reels,
		WithPlaylists(Playlists),
		WithCourses(MicroCourses),
		WithQuizzes(Quizzes),
		WithProfile(DefaultLearnerProfile),
		WithCreatorStats(DefaultCreatorStats),
	)
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled fixtures are invalid: %v", err))
	}
	return c
}

// Items returns the reels in catalog order
func (c *Catalog) Items() []ContentItem {
	return append([]ContentItem(nil), c.items...)
}

func (c *Catalog) Item(id string) (ContentItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ContentItem{}, false
	}
	return c.items[i], true
}

func (c *Catalog) HasItem(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) HasCreator(id string) bool {
	_, ok := c.creators[id]
	return ok
}

// CreatorName returns the display name for a creator id
func (c *Catalog) CreatorName(id string) (string, bool) {
	name, ok := c.creators[id]
	return name, ok
}

// ItemByTitle finds a reel by its exact title
func (c *Catalog) ItemByTitle(title string) (ContentItem, bool) {
	for _, item := range c.items {
		if item.Title == title {
			return item, true
		}
	}
	return ContentItem{}, false
}

// Resolve maps ids to reels, skipping ids the catalog does not know
func (c *Catalog) Resolve(ids []string) []ContentItem {
	out := make([]ContentItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.Item(id); ok {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) Playlists() []Playlist {
	return append([]Playlist(nil), c.playlists...)
}

func (c *Catalog) Courses() []MicroCourse {
	return append([]MicroCourse(nil), c.courses...)
}

func (c *Catalog) Course(id string) (MicroCourse, bool) {
	for _, course := range c.courses {
		if course.ID == id {
			return course, true
		}
	}
	return MicroCourse{}, false
}

// Quiz returns the quiz attached to a reel
func (c *Catalog) Quiz(itemID string) (Quiz, bool) {
	q, ok := c.quizzes[itemID]
	return q, ok
}

func (c *Catalog) Profile() LearnerProfile {
	return c.profile
}

func (c *Catalog) CreatorStats() CreatorStats {
	return c.creator
}
