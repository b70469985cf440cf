package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
	"github.com/heartmarshall/learninglog-backend/internal/service/journal"
	"github.com/heartmarshall/learninglog-backend/internal/transport/middleware"
)

// journalService defines the minimal interface needed by JournalHandler.
type journalService interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.TopicDetail, error)
	GetTopicForEntry(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	CreateTopic(ctx context.Context, input journal.TopicInput) (*domain.Topic, error)
	CreateEntry(ctx context.Context, topicID uuid.UUID, input journal.EntryInput) (*domain.Entry, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryWithTopic, error)
	UpdateEntry(ctx context.Context, entryID uuid.UUID, input journal.EntryInput) (*domain.EntryWithTopic, error)
}

// JournalHandler serves the topic and entry pages.
type JournalHandler struct {
	svc      journalService
	loginURL string
	log      *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, loginURL string, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, loginURL: loginURL, log: logger.With("handler", "journal")}
}

type topicResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	DateAdded time.Time `json:"date_added"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topic_id"`
	Text      string    `json:"text"`
	DateAdded time.Time `json:"date_added"`
}

type topicListResponse struct {
	Topics []topicResponse `json:"topics"`
}

type topicDetailResponse struct {
	Topic   topicResponse   `json:"topic"`
	Entries []entryResponse `json:"entries"`
}

type entryFormResponse struct {
	formState
	Topic topicResponse  `json:"topic"`
	Entry *entryResponse `json:"entry,omitempty"`
}

// Topics handles GET /topics.
func (h *JournalHandler) Topics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := topicListResponse{Topics: make([]topicResponse, 0, len(topics))}
	for i := range topics {
		resp.Topics = append(resp.Topics, toTopicResponse(&topics[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Topic handles GET /topics/{topicID}.
func (h *JournalHandler) Topic(w http.ResponseWriter, r *http.Request) {
	topicID, ok := parseID(chi.URLParam(r, "topicID"))
	if !ok {
		writeNotFound(w)
		return
	}

	detail, err := h.svc.GetTopic(r.Context(), topicID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := topicDetailResponse{
		Topic:   toTopicResponse(&detail.Topic),
		Entries: make([]entryResponse, 0, len(detail.Entries)),
	}
	for i := range detail.Entries {
		resp.Entries = append(resp.Entries, toEntryResponse(&detail.Entries[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// NewTopicForm handles GET /topics/new.
func (h *JournalHandler) NewTopicForm(w http.ResponseWriter, r *http.Request) {
	writeForm(w, http.StatusOK, map[string]string{"text": ""}, nil)
}

// CreateTopic handles POST /topics/new.
func (h *JournalHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(w, r, "text")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.svc.CreateTopic(r.Context(), journal.TopicInput{Text: form["text"]})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeForm(w, http.StatusUnprocessableEntity, form, fieldErrors(err))
			return
		}
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/topics", http.StatusSeeOther)
}

// NewEntryForm handles GET /topics/{topicID}/entries/new.
func (h *JournalHandler) NewEntryForm(w http.ResponseWriter, r *http.Request) {
	topicID, ok := parseID(chi.URLParam(r, "topicID"))
	if !ok {
		writeNotFound(w)
		return
	}

	topic, err := h.svc.GetTopicForEntry(r.Context(), topicID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entryFormResponse{
		formState: formState{Form: map[string]string{"text": ""}, Errors: map[string][]string{}},
		Topic:     toTopicResponse(topic),
	})
}

// CreateEntry handles POST /topics/{topicID}/entries/new.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	topicID, ok := parseID(chi.URLParam(r, "topicID"))
	if !ok {
		writeNotFound(w)
		return
	}

	form, err := readForm(w, r, "text")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), topicID, journal.EntryInput{Text: form["text"]})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeForm(w, http.StatusUnprocessableEntity, form, fieldErrors(err))
			return
		}
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, topicURL(entry.TopicID), http.StatusSeeOther)
}

// EditEntryForm handles GET /entries/{entryID}/edit.
func (h *JournalHandler) EditEntryForm(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseID(chi.URLParam(r, "entryID"))
	if !ok {
		writeNotFound(w)
		return
	}

	ewt, err := h.svc.GetEntry(r.Context(), entryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	entry := toEntryResponse(&ewt.Entry)
	writeJSON(w, http.StatusOK, entryFormResponse{
		formState: formState{Form: map[string]string{"text": ewt.Entry.Text}, Errors: map[string][]string{}},
		Topic:     toTopicResponse(&ewt.Topic),
		Entry:     &entry,
	})
}

// UpdateEntry handles POST /entries/{entryID}/edit.
func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseID(chi.URLParam(r, "entryID"))
	if !ok {
		writeNotFound(w)
		return
	}

	form, err := readForm(w, r, "text")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ewt, err := h.svc.UpdateEntry(r.Context(), entryID, journal.EntryInput{Text: form["text"]})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeForm(w, http.StatusUnprocessableEntity, form, fieldErrors(err))
			return
		}
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, topicURL(ewt.Topic.ID), http.StatusSeeOther)
}

func (h *JournalHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeNotFound(w)
	case errors.Is(err, domain.ErrUnauthorized):
		if middleware.WantsJSON(r) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		http.Redirect(w, r, middleware.LoginRedirectURL(h.loginURL, r.URL.RequestURI()), http.StatusSeeOther)
	case errors.Is(err, domain.ErrValidation):
		writeForm(w, http.StatusUnprocessableEntity, map[string]string{}, fieldErrors(err))
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeInternal(w)
	}
}

func topicURL(id uuid.UUID) string {
	return "/topics/" + id.String()
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{ID: t.ID.String(), Text: t.Text, DateAdded: t.DateAdded}
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{ID: e.ID.String(), TopicID: e.TopicID.String(), Text: e.Text, DateAdded: e.DateAdded}
}
