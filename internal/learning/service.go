package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"bite-sized-learning-go/internal/catalog"
	"bite-sized-learning-go/internal/creator"
	"bite-sized-learning-go/internal/engagement"
	"bite-sized-learning-go/internal/learning/ranking"
	"bite-sized-learning-go/internal/session"
)

var (
	ErrReelNotFound   = errors.New("reel not found")
	ErrCourseNotFound = errors.New("course not found")
	ErrQuizNotFound   = errors.New("quiz not found")
	ErrInvalidAnswer  = errors.New("answer is not one of the options")
)

type Service interface {
	Feed(ctx context.Context, sessionID string) (*FeedView, error)
	ReelOptions(ctx context.Context) []ReelOption
	Reel(ctx context.Context, sessionID, reelID string) (*ReelView, error)
	ToggleLike(ctx context.Context, sessionID, reelID string) (*ToggleResult, error)
	ToggleSave(ctx context.Context, sessionID, reelID string) (*ToggleResult, error)
	ToggleFollow(ctx context.Context, sessionID, creatorID string) (*ToggleResult, error)
	Comments(ctx context.Context, sessionID, reelID string) (*CommentsView, error)
	AddComment(ctx context.Context, sessionID, reelID, text string) (*CommentsView, error)
	Quiz(ctx context.Context, sessionID, reelID string) (*QuizView, error)
	AnswerQuiz(ctx context.Context, sessionID, reelID string, answer int) (*AnswerResult, error)
	Playlists(ctx context.Context) []PlaylistView
	Courses(ctx context.Context, sessionID string) ([]CourseView, error)
	Course(ctx context.Context, sessionID, courseID string) (*CourseView, error)
	CompleteCourse(ctx context.Context, sessionID, courseID string) (*CompletionResult, error)
	Progress(ctx context.Context, sessionID string) (*ProgressView, error)
	Profile(ctx context.Context, sessionID string) (*ProfileView, error)
	CreatorDashboard(ctx context.Context) creator.DashboardView
	CreatorAnalytics(ctx context.Context) creator.AnalyticsView
	SubmitReel(ctx context.Context, sessionID string, in creator.ReelSubmission) (*creator.ReelSubmission, error)
	DraftCourse(ctx context.Context, sessionID string, in creator.CourseDraft) (*creator.CourseDraft, error)
	CreatorDrafts(ctx context.Context, sessionID string) (*CreatorDrafts, error)
	Subscribe(sessionID string) (<-chan Event, func(), error)
}

type learningService struct {
	catalog   *catalog.Catalog
	sessions  *session.Manager
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(cat *catalog.Catalog, sessions *session.Manager, publisher Publisher, logger *slog.Logger) Service {
	return &learningService{
		catalog:   cat,
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *learningService) Feed(ctx context.Context, sessionID string) (*FeedView, error) {
	var view FeedView
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		scored := ranking.ScoreFeed(s.catalog.Items(), sess.State)
		view.Reels = make([]FeedEntry, 0, len(scored))
		for _, si := range scored {
			view.Reels = append(view.Reels, FeedEntry{
				ReelView: s.reelView(si.Item, sess.State),
				Score:    si.Score,
			})
		}
		view.TotalXP = sess.State.TotalXP()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *learningService) ReelOptions(ctx context.Context) []ReelOption {
	items := s.catalog.Items()
	options := make([]ReelOption, 0, len(items))
	for _, item := range items {
		options = append(options, ReelOption{ID: item.ID, Title: item.Title})
	}
	return options
}

func (s *learningService) Reel(ctx context.Context, sessionID, reelID string) (*ReelView, error) {
	item, ok := s.catalog.Item(reelID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReelNotFound, reelID)
	}

	var view ReelView
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		view = s.reelView(item, sess.State)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *learningService) ToggleLike(ctx context.Context, sessionID, reelID string) (*ToggleResult, error) {
	return s.toggle(sessionID, reelID, s.catalog.HasItem(reelID),
		func(st *engagement.State) bool { return st.ToggleLike(reelID) },
		EventTypeReelLiked, EventTypeReelUnliked)
}

func (s *learningService) ToggleSave(ctx context.Context, sessionID, reelID string) (*ToggleResult, error) {
	return s.toggle(sessionID, reelID, s.catalog.HasItem(reelID),
		func(st *engagement.State) bool { return st.ToggleSave(reelID) },
		EventTypeReelSaved, EventTypeReelUnsaved)
}

func (s *learningService) ToggleFollow(ctx context.Context, sessionID, creatorID string) (*ToggleResult, error) {
	return s.toggle(sessionID, creatorID, s.catalog.HasCreator(creatorID),
		func(st *engagement.State) bool { return st.ToggleFollow(creatorID) },
		EventTypeCreatorFollowed, EventTypeCreatorUnfollowed)
}

// toggle runs flip under the session lock. An unknown target leaves the
// state alone and emits nothing.
func (s *learningService) toggle(sessionID, targetID string, known bool, flip func(*engagement.State) bool, on, off EventType) (*ToggleResult, error) {
	result := ToggleResult{TargetID: targetID}
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		before := sess.State.EarnedXP()
		result.Active = flip(sess.State)
		result.EarnedXP = sess.State.EarnedXP() - before
		result.TotalXP = sess.State.TotalXP()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !known {
		return &result, nil
	}

	eventType := off
	if result.Active {
		eventType = on
	}
	s.emitEvent(eventType, sessionID, map[string]any{
		"target_id": targetID,
		"earned_xp": result.EarnedXP,
		"total_xp":  result.TotalXP,
	})
	return &result, nil
}

func (s *learningService) Comments(ctx context.Context, sessionID, reelID string) (*CommentsView, error) {
	if !s.catalog.HasItem(reelID) {
		return nil, fmt.Errorf("%w: %s", ErrReelNotFound, reelID)
	}

	view := CommentsView{ReelID: reelID}
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		view.Comments = sess.State.CommentsFor(reelID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// AddComment records text against the reel. Blank text and unknown reels are
// ignored; the current comments come back either way.
func (s *learningService) AddComment(ctx context.Context, sessionID, reelID, text string) (*CommentsView, error) {
	var added bool
	view := CommentsView{ReelID: reelID}
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		added = sess.State.AddComment(reelID, text)
		view.Comments = sess.State.CommentsFor(reelID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if added {
		s.emitEvent(EventTypeCommentAdded, sessionID, map[string]any{
			"reel_id": reelID,
			"comment": view.Comments[len(view.Comments)-1],
		})
	}
	return &view, nil
}

func (s *learningService) Quiz(ctx context.Context, sessionID, reelID string) (*QuizView, error) {
	quiz, err := s.quizFor(reelID)
	if err != nil {
		return nil, err
	}

	view := QuizView{
		ReelID:   reelID,
		Question: quiz.Question,
		Options:  append([]string{}, quiz.Options...),
	}
	err = s.sessions.With(sessionID, func(sess *session.Session) error {
		view.Completed = sess.State.IsCompleted(engagement.QuizChallengeID(reelID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// AnswerQuiz checks answer against the reel's quiz. A correct answer awards
// QuizXP the first time only.
func (s *learningService) AnswerQuiz(ctx context.Context, sessionID, reelID string, answer int) (*AnswerResult, error) {
	quiz, err := s.quizFor(reelID)
	if err != nil {
		return nil, err
	}
	if answer < 0 || answer >= len(quiz.Options) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAnswer, answer)
	}

	result := AnswerResult{Correct: answer == quiz.AnswerIndex}
	err = s.sessions.With(sessionID, func(sess *session.Session) error {
		if result.Correct && sess.State.AwardOnce(engagement.QuizChallengeID(reelID), engagement.QuizXP) {
			result.XPAwarded = engagement.QuizXP
		}
		result.TotalXP = sess.State.TotalXP()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitEvent(EventTypeQuizAnswered, sessionID, map[string]any{
		"reel_id": reelID,
		"correct": result.Correct,
	})
	if result.XPAwarded > 0 {
		s.emitEvent(EventTypeXPAwarded, sessionID, map[string]any{
			"challenge_id": engagement.QuizChallengeID(reelID),
			"xp":           result.XPAwarded,
			"total_xp":     result.TotalXP,
		})
	}
	return &result, nil
}

func (s *learningService) quizFor(reelID string) (catalog.Quiz, error) {
	if !s.catalog.HasItem(reelID) {
		return catalog.Quiz{}, fmt.Errorf("%w: %s", ErrReelNotFound, reelID)
	}
	quiz, ok := s.catalog.Quiz(reelID)
	if !ok {
		return catalog.Quiz{}, fmt.Errorf("%w: %s", ErrQuizNotFound, reelID)
	}
	return quiz, nil
}

func (s *learningService) Playlists(ctx context.Context) []PlaylistView {
	playlists := s.catalog.Playlists()
	views := make([]PlaylistView, 0, len(playlists))
	for _, p := range playlists {
		views = append(views, PlaylistView{
			Playlist: p,
			Reels:    summaries(s.catalog.Resolve(p.ItemIDs)),
		})
	}
	return views
}

func (s *learningService) Courses(ctx context.Context, sessionID string) ([]CourseView, error) {
	courses := s.catalog.Courses()
	views := make([]CourseView, 0, len(courses))
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		for _, c := range courses {
			views = append(views, courseView(c, sess.State))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (s *learningService) Course(ctx context.Context, sessionID, courseID string) (*CourseView, error) {
	course, ok := s.catalog.Course(courseID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}

	var view CourseView
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		view = courseView(course, sess.State)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// CompleteCourse marks the course done, awarding CourseXP the first time
func (s *learningService) CompleteCourse(ctx context.Context, sessionID, courseID string) (*CompletionResult, error) {
	if _, ok := s.catalog.Course(courseID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}

	result := CompletionResult{CourseID: courseID}
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		if sess.State.AwardOnce(engagement.CourseChallengeID(courseID), engagement.CourseXP) {
			result.XPAwarded = engagement.CourseXP
		}
		result.TotalXP = sess.State.TotalXP()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.XPAwarded > 0 {
		s.emitEvent(EventTypeCourseCompleted, sessionID, map[string]any{
			"course_id": courseID,
		})
		s.emitEvent(EventTypeXPAwarded, sessionID, map[string]any{
			"challenge_id": engagement.CourseChallengeID(courseID),
			"xp":           result.XPAwarded,
			"total_xp":     result.TotalXP,
		})
	}
	return &result, nil
}

func (s *learningService) Progress(ctx context.Context, sessionID string) (*ProgressView, error) {
	view := ProgressView{
		Cards:  append([]catalog.StatCard{}, catalog.ProgressCards...),
		Weekly: append([]catalog.DailyActivity{}, catalog.WeeklyActivity...),
		Goals:  append([]string{}, s.catalog.Profile().LearningGoals...),
	}
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		snap := sess.State.Snapshot()
		view.EarnedXP = snap.EarnedXP
		view.CompletedChallenges = snap.CompletedChallengeIDs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *learningService) Profile(ctx context.Context, sessionID string) (*ProfileView, error) {
	profile := s.catalog.Profile()

	var snap engagement.Snapshot
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		snap = sess.State.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	followed := make([]string, 0, len(snap.FollowedCreatorIDs))
	for _, id := range snap.FollowedCreatorIDs {
		if name, ok := s.catalog.CreatorName(id); ok {
			followed = append(followed, name)
		}
	}

	return &ProfileView{
		Name:             profile.Name,
		AvatarURL:        profile.AvatarURL,
		StreakDays:       profile.StreakDays,
		XP:               snap.TotalXP,
		Level:            engagement.LevelForXP(snap.TotalXP),
		XPToNextLevel:    engagement.XPToNextLevel(snap.TotalXP),
		Badges:           append([]string{}, profile.Badges...),
		SavedReels:       summaries(s.catalog.Resolve(snap.SavedItemIDs)),
		LikedReels:       summaries(s.catalog.Resolve(snap.LikedItemIDs)),
		FollowedCreators: followed,
		Goals:            append([]string{}, profile.LearningGoals...),
	}, nil
}

func (s *learningService) CreatorDashboard(ctx context.Context) creator.DashboardView {
	return creator.Dashboard(s.catalog.CreatorStats())
}

func (s *learningService) CreatorAnalytics(ctx context.Context) creator.AnalyticsView {
	return creator.Analytics(s.catalog.CreatorStats())
}

func (s *learningService) SubmitReel(ctx context.Context, sessionID string, in creator.ReelSubmission) (*creator.ReelSubmission, error) {
	var out creator.ReelSubmission
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		var err error
		out, err = sess.Drafts.SubmitReel(in)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.emitEvent(EventTypeReelSubmitted, sessionID, map[string]any{
		"id":    out.ID,
		"title": out.Title,
	})
	return &out, nil
}

func (s *learningService) DraftCourse(ctx context.Context, sessionID string, in creator.CourseDraft) (*creator.CourseDraft, error) {
	var out creator.CourseDraft
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		var err error
		out, err = sess.Drafts.DraftCourse(in, s.catalog)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.emitEvent(EventTypeCourseDrafted, sessionID, map[string]any{
		"id":    out.ID,
		"title": out.Title,
	})
	return &out, nil
}

func (s *learningService) CreatorDrafts(ctx context.Context, sessionID string) (*CreatorDrafts, error) {
	var drafts CreatorDrafts
	err := s.sessions.With(sessionID, func(sess *session.Session) error {
		drafts.Reels = sess.Drafts.Reels()
		drafts.Courses = sess.Drafts.Courses()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &drafts, nil
}

// Subscribe streams the session's events until cancel is called
func (s *learningService) Subscribe(sessionID string) (<-chan Event, func(), error) {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return nil, nil, err
	}
	events, cancel := s.publisher.Subscribe(sessionID)
	return events, cancel, nil
}

func (s *learningService) reelView(item catalog.ContentItem, st *engagement.State) ReelView {
	_, hasQuiz := s.catalog.Quiz(item.ID)
	return ReelView{
		ContentItem:      item,
		EmbedURL:         catalog.EmbedURL(item.ExternalVideoRef),
		Liked:            st.IsLiked(item.ID),
		Saved:            st.IsSaved(item.ID),
		FollowingCreator: st.IsFollowing(item.CreatorID),
		Comments:         st.CommentsFor(item.ID),
		HasQuiz:          hasQuiz,
		QuizCompleted:    st.IsCompleted(engagement.QuizChallengeID(item.ID)),
	}
}

func courseView(c catalog.MicroCourse, st *engagement.State) CourseView {
	completed := st.IsCompleted(engagement.CourseChallengeID(c.ID))
	pct := int(math.Round(c.Completion * 100))
	if completed {
		pct = 100
	}
	return CourseView{
		MicroCourse:       c,
		CompletionPercent: pct,
		Completed:         completed,
	}
}

func summaries(items []catalog.ContentItem) []ReelSummary {
	out := make([]ReelSummary, 0, len(items))
	for _, item := range items {
		out = append(out, ReelSummary{ID: item.ID, Title: item.Title, Topic: item.Topic})
	}
	return out
}

func (s *learningService) emitEvent(eventType EventType, sessionID string, payload map[string]any) {
	s.logger.Debug("engagement event", "type", eventType, "session_id", sessionID)
	s.publisher.Publish(Event{
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
