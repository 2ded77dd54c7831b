package assistant

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"brewvoice/models"
	"brewvoice/services/speech"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service drives the ordering conversation: it owns session lifecycle and
// hands each transcript to the parser and reducer.
type Service interface {
	StartSession(ctx context.Context) (*models.SessionSnapshot, error)
	ResetSession(ctx context.Context, sessionID string) (*models.SessionSnapshot, error)
	ToggleCapture(ctx context.Context, sessionID string) (bool, error)
	HandleTranscript(ctx context.Context, sessionID, transcript string) (*models.AssistantResponse, error)
}

// DefaultAssistantService is the production Service backed by a
// SessionStore. One finalize per session may be in flight at a time; a
// second one is answered with a busy message instead of a duplicate
// placement.
type DefaultAssistantService struct {
	Parser  *Parser
	Reducer *Reducer
	Store   SessionStore
	Logger  *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewDefaultAssistantService(parser *Parser, reducer *Reducer, store SessionStore, logger *zap.Logger) *DefaultAssistantService {
	return &DefaultAssistantService{
		Parser:   parser,
		Reducer:  reducer,
		Store:    store,
		Logger:   logger,
		inFlight: make(map[string]bool),
	}
}

// StartSession creates a fresh session with an empty open order.
func (s *DefaultAssistantService) StartSession(ctx context.Context) (*models.SessionSnapshot, error) {
	snapshot := &models.SessionSnapshot{
		Session: models.Session{
			SessionID: uuid.New().String(),
			CreatedAt: time.Now().UTC(),
		},
		Order: *models.NewOrder(),
	}
	if err := s.Store.Set(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ResetSession discards the given session and starts a new one.
func (s *DefaultAssistantService) ResetSession(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	if sessionID != "" {
		if err := s.Store.Delete(ctx, sessionID); err != nil {
			s.Logger.Warn("failed to delete session snapshot", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}
	return s.StartSession(ctx)
}

// ToggleCapture flips the voice-capture flag: starting capture while it
// is already active stops it. The new state is returned.
func (s *DefaultAssistantService) ToggleCapture(ctx context.Context, sessionID string) (bool, error) {
	snapshot, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	snapshot.CaptureActive = !snapshot.CaptureActive
	if err := s.Store.Set(ctx, snapshot); err != nil {
		return false, err
	}
	return snapshot.CaptureActive, nil
}

// userEchoRe mirrors the chat display quirk of showing "four" where the
// recognizer transcribed "for".
var userEchoRe = regexp.MustCompile(`\bfor\b`)

// HandleTranscript runs one voice command through parse and apply, saves
// the updated snapshot, and returns the full response projection. An
// unknown or empty session id starts a fresh session first.
func (s *DefaultAssistantService) HandleTranscript(ctx context.Context, sessionID, transcript string) (*models.AssistantResponse, error) {
	snapshot, err := s.load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		snapshot, err = s.StartSession(ctx)
		if err != nil {
			return nil, err
		}
	}

	intent := s.Parser.Parse(transcript)

	if intent.Kind == models.IntentFinalize && !s.beginFinalize(snapshot.Session.SessionID) {
		return s.respond(snapshot, []Event{chatEvent(finalizeBusyReply)}, transcript), nil
	}
	if intent.Kind == models.IntentFinalize {
		defer s.endFinalize(snapshot.Session.SessionID)
	}

	events := s.Reducer.Apply(ctx, snapshot.Session, &snapshot.Order, intent)

	if err := s.Store.Set(ctx, snapshot); err != nil {
		s.Logger.Warn("failed to persist session snapshot", zap.String("sessionId", snapshot.Session.SessionID), zap.Error(err))
	}
	return s.respond(snapshot, events, transcript), nil
}

func (s *DefaultAssistantService) load(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	return s.Store.Get(ctx, sessionID)
}

func (s *DefaultAssistantService) beginFinalize(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *DefaultAssistantService) endFinalize(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

// respond projects events into chat rows, speech requests and the payment
// artifact state.
func (s *DefaultAssistantService) respond(snapshot *models.SessionSnapshot, events []Event, transcript string) *models.AssistantResponse {
	resp := &models.AssistantResponse{
		SessionID:     snapshot.Session.SessionID,
		Order:         snapshot.Order,
		CaptureActive: snapshot.CaptureActive,
	}
	if transcript != "" {
		resp.Messages = append(resp.Messages, models.ChatMessage{
			Sender: models.SenderUser,
			Text:   userEchoRe.ReplaceAllString(transcript, "four"),
		})
	}
	for _, ev := range events {
		switch ev.Kind {
		case EventChat:
			resp.Messages = append(resp.Messages, models.ChatMessage{Sender: models.SenderApp, Text: ev.Message})
			resp.Speech = append(resp.Speech, speech.NewRequest(ev.Message))
		case EventShowPayment:
			resp.Payment = ev.Payment
		case EventClearPayment:
			resp.ClearPayment = true
		}
	}
	return resp
}
