package learning

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"bite-sized-learning-go/internal/creator"
	"bite-sized-learning-go/internal/session"
)

const writeWait = 10 * time.Second

type Handler struct {
	service  Service
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler builds the learning routes. An empty allowedOrigins accepts
// websocket upgrades from any origin.
func NewHandler(service Service, allowedOrigins []string, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowedOrigins) == 0 || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

type CommentRequest struct {
	Text string `json:"text"`
}

type AnswerRequest struct {
	Answer *int `json:"answer"`
}

func (h *Handler) Feed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	feed, err := h.service.Feed(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feed)
}

func (h *Handler) ListReels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := requireSession(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.ReelOptions(r.Context()))
}

func (h *Handler) GetReel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	reel, err := h.service.Reel(r.Context(), sessionID, ps.ByName("reelID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reel)
}

func (h *Handler) LikeReel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.service.ToggleLike(r.Context(), sessionID, ps.ByName("reelID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) SaveReel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.service.ToggleSave(r.Context(), sessionID, ps.ByName("reelID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) FollowCreator(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.service.ToggleFollow(r.Context(), sessionID, ps.ByName("creatorID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	comments, err := h.service.Comments(r.Context(), sessionID, ps.ByName("reelID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comments, err := h.service.AddComment(r.Context(), sessionID, ps.ByName("reelID"), req.Text)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	quiz, err := h.service.Quiz(r.Context(), sessionID, ps.ByName("reelID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (h *Handler) AnswerQuiz(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Answer == nil {
		http.Error(w, "answer is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.AnswerQuiz(r.Context(), sessionID, ps.ByName("reelID"), *req.Answer)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := requireSession(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Playlists(r.Context()))
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	courses, err := h.service.Courses(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	course, err := h.service.Course(r.Context(), sessionID, ps.ByName("courseID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *Handler) CompleteCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.service.CompleteCourse(r.Context(), sessionID, ps.ByName("courseID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	progress, err := h.service.Progress(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	profile, err := h.service.Profile(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) CreatorDashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := requireSession(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.CreatorDashboard(r.Context()))
}

func (h *Handler) CreatorAnalytics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, ok := requireSession(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.CreatorAnalytics(r.Context()))
}

func (h *Handler) ListSubmittedReels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	drafts, err := h.service.CreatorDrafts(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drafts.Reels)
}

func (h *Handler) SubmitReel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req creator.ReelSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reel, err := h.service.SubmitReel(r.Context(), sessionID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reel)
}

func (h *Handler) ListCourseDrafts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	drafts, err := h.service.CreatorDrafts(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drafts.Courses)
}

func (h *Handler) DraftCourse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req creator.CourseDraft
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	course, err := h.service.DraftCourse(r.Context(), sessionID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

// SubscribeToEvents upgrades to a websocket and streams the session's
// events until either side goes away
func (h *Handler) SubscribeToEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	events, cancel, err := h.service.Subscribe(sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "session_id", sessionID, "error", err)
		return
	}
	defer conn.Close()

	// drain client frames so close messages are noticed
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended")
				conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}

func (h *Handler) Routes(router *httprouter.Router) {
	router.GET("/feed", h.Feed)
	router.GET("/reels", h.ListReels)
	router.GET("/reels/:reelID", h.GetReel)
	router.POST("/reels/:reelID/like", h.LikeReel)
	router.POST("/reels/:reelID/save", h.SaveReel)
	router.GET("/reels/:reelID/comments", h.ListComments)
	router.POST("/reels/:reelID/comments", h.AddComment)
	router.GET("/reels/:reelID/quiz", h.GetQuiz)
	router.POST("/reels/:reelID/quiz", h.AnswerQuiz)
	router.POST("/creators/:creatorID/follow", h.FollowCreator)
	router.GET("/playlists", h.ListPlaylists)
	router.GET("/courses", h.ListCourses)
	router.GET("/courses/:courseID", h.GetCourse)
	router.POST("/courses/:courseID/complete", h.CompleteCourse)
	router.GET("/progress", h.Progress)
	router.GET("/profile", h.Profile)
	router.GET("/creator/dashboard", h.CreatorDashboard)
	router.GET("/creator/analytics", h.CreatorAnalytics)
	router.GET("/creator/reels", h.ListSubmittedReels)
	router.POST("/creator/reels", h.SubmitReel)
	router.GET("/creator/courses", h.ListCourseDrafts)
	router.POST("/creator/courses", h.DraftCourse)
	router.GET("/events", h.SubscribeToEvents)
}

func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := session.SessionIDFromContext(r.Context())
	if sessionID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return sessionID, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *creator.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, verr)
	case errors.Is(err, session.ErrSessionNotFound):
		http.Error(w, "session expired", http.StatusUnauthorized)
	case errors.Is(err, ErrReelNotFound),
		errors.Is(err, ErrCourseNotFound),
		errors.Is(err, ErrQuizNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, creator.ErrUnknownReel):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Error("request failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
