package engagement

import (
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Registry tells the state which ids are real. The catalog satisfies it.
type Registry interface {
	HasItem(id string) bool
	HasCreator(id string) bool
}

type set map[string]struct{}

func (s set) has(id string) bool {
	_, ok := s[id]
	return ok
}

// toggle flips membership and reports whether id is now present
func (s set) toggle(id string) bool {
	if s.has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s set) sorted() []string {
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}

// State is one session's engagement record. It is not safe for concurrent
// use; the owning session serialises access.
type State struct {
	registry  Registry
	baseXP    int
	liked     set
	saved     set
	followed  set
	completed set
	comments  map[string][]string
	earnedXP  int
}

// NewState creates an empty state whose saved set is seeded from the
// profile defaults. Seed ids the registry does not know are dropped.
func NewState(registry Registry, baseXP int, savedSeed []string) *State {
	s := &State{
		registry:  registry,
		baseXP:    baseXP,
		liked:     set{},
		saved:     set{},
		followed:  set{},
		completed: set{},
		comments:  make(map[string][]string),
	}
	for _, id := range savedSeed {
		if registry.HasItem(id) {
			s.saved[id] = struct{}{}
		}
	}
	return s
}

// ToggleLike likes or unlikes a reel and reports whether it is now liked.
// Liking grants LikeXP; unliking takes nothing back.
func (s *State) ToggleLike(itemID string) bool {
	if !s.registry.HasItem(itemID) {
		return false
	}
	liked := s.liked.toggle(itemID)
	if liked {
		s.earnedXP += LikeXP
	}
	return liked
}

// ToggleSave saves or unsaves a reel and reports whether it is now saved.
// Saving grants SaveXP; unsaving takes nothing back.
func (s *State) ToggleSave(itemID string) bool {
	if !s.registry.HasItem(itemID) {
		return false
	}
	saved := s.saved.toggle(itemID)
	if saved {
		s.earnedXP += SaveXP
	}
	return saved
}

// ToggleFollow follows or unfollows a creator and reports whether the
// creator is now followed.
func (s *State) ToggleFollow(creatorID string) bool {
	if !s.registry.HasCreator(creatorID) {
		return false
	}
	return s.followed.toggle(creatorID)
}

// AddComment records trimmed text against a reel. Blank text and unknown
// reels are ignored; the return value reports whether it was recorded.
func (s *State) AddComment(itemID, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || !s.registry.HasItem(itemID) {
		return false
	}
	s.comments[itemID] = append(s.comments[itemID], text)
	return true
}

// AwardOnce grants xp the first time challengeID is completed and reports
// whether anything was granted. It is the only way XP is awarded outside
// likes and saves.
func (s *State) AwardOnce(challengeID string, xp int) bool {
	if challengeID == "" || xp <= 0 || s.completed.has(challengeID) {
		return false
	}
	s.completed[challengeID] = struct{}{}
	s.earnedXP += xp
	return true
}

func (s *State) IsLiked(itemID string) bool {
	return s.liked.has(itemID)
}

func (s *State) IsSaved(itemID string) bool {
	return s.saved.has(itemID)
}

func (s *State) IsFollowing(creatorID string) bool {
	return s.followed.has(creatorID)
}

func (s *State) IsCompleted(challengeID string) bool {
	return s.completed.has(challengeID)
}

// EarnedXP is the XP gained during this session
func (s *State) EarnedXP() int {
	return s.earnedXP
}

// TotalXP is the profile's base XP plus everything earned this session
func (s *State) TotalXP() int {
	return s.baseXP + s.earnedXP
}

// CommentsFor returns a copy of a reel's comments in the order they were added
func (s *State) CommentsFor(itemID string) []string {
	return append([]string{}, s.comments[itemID]...)
}

// Snapshot is a point-in-time copy of a State, with sets in sorted order
type Snapshot struct {
	LikedItemIDs          []string `json:"liked_reels"`
	SavedItemIDs          []string `json:"saved_reels"`
	FollowedCreatorIDs    []string `json:"followed_creators"`
	CompletedChallengeIDs []string `json:"completed_challenges"`
	EarnedXP              int      `json:"earned_xp"`
	TotalXP               int      `json:"total_xp"`
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		LikedItemIDs:          s.liked.sorted(),
		SavedItemIDs:          s.saved.sorted(),
		FollowedCreatorIDs:    s.followed.sorted(),
		CompletedChallengeIDs: s.completed.sorted(),
		EarnedXP:              s.earnedXP,
		TotalXP:               s.TotalXP(),
	}
}

func (snap Snapshot) IsLiked(itemID string) bool {
	return slices.Contains(snap.LikedItemIDs, itemID)
}

func (snap Snapshot) IsSaved(itemID string) bool {
	return slices.Contains(snap.SavedItemIDs, itemID)
}

func (snap Snapshot) IsFollowing(creatorID string) bool {
	return slices.Contains(snap.FollowedCreatorIDs, creatorID)
}
