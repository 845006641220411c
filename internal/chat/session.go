// Package chat owns a single conversational session scoped to one
// analysis result. It maintains the ordered message history and
// assembles streamed replies into a single growing model message.
package chat

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rithwika/career-advisor/internal/llm"
	"github.com/rithwika/career-advisor/internal/prompts"
	"github.com/rithwika/career-advisor/internal/types"
)

// Sentinel rejections. None of them touch the message history.
var (
	// ErrNotReady is returned when a turn is submitted to an uninitialized session.
	ErrNotReady = errors.New("chat session is not initialized")
	// ErrEmptyMessage is returned for empty or whitespace-only input.
	ErrEmptyMessage = errors.New("chat message is empty")
	// ErrTurnInFlight is returned when a turn is submitted while another is outstanding.
	// Turns are single-flight: a concurrent submission is rejected, not queued.
	ErrTurnInFlight = errors.New("a chat turn is already in flight")
)

// UpdateFunc receives a snapshot of the full message list each time it
// changes during a turn.
type UpdateFunc func(messages []types.ChatMessage)

// Session is a chat session bound to one analysis context. A session
// cannot be resumed mid-stream or rebound: a context change requires
// constructing a new session, discarding the old history.
type Session struct {
	mu        sync.Mutex
	id        uuid.UUID
	transport llm.Chat
	history   []types.ChatMessage
	inFlight  bool
}

// NewSession creates a ready session over an open conversation
// transport. The visible history is seeded with a synthetic greeting
// (role=model) that is never sent to the model.
func NewSession(transport llm.Chat) *Session {
	return &Session{
		id:        uuid.New(),
		transport: transport,
		history: []types.ChatMessage{
			{Role: types.RoleModel, Content: prompts.MustGet("chat.json", "greeting")},
		},
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Messages returns a copy of the visible message history.
func (s *Session) Messages() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Busy reports whether a turn is currently in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// SubmitTurn submits one user turn and streams the reply into the
// trailing model message, chunk by chunk in strict arrival order.
// The user message is appended before any network activity. onUpdate
// (optional) is invoked with a history snapshot after every change.
//
// On a mid-stream transport failure the partial reply is kept, a single
// apologetic model message is appended, and the transport error is
// returned for logging; nothing is retried.
func (s *Session) SubmitTurn(ctx context.Context, text string, onUpdate UpdateFunc) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	if s.transport == nil {
		s.mu.Unlock()
		return ErrNotReady
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrTurnInFlight
	}
	s.inFlight = true
	s.history = append(s.history, types.ChatMessage{Role: types.RoleUser, Content: text})
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	notify(onUpdate, snapshot)

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	stream := s.transport.SendMessageStream(ctx, text)
	replyStarted := false

	for {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			notify(onUpdate, s.appendMessage(types.ChatMessage{
				Role:    types.RoleModel,
				Content: prompts.MustGet("chat.json", "stream-error"),
			}))
			return err
		}

		if !replyStarted {
			// The empty model message appears on the first chunk so the
			// UI can show a pending state until content exists.
			s.appendMessage(types.ChatMessage{Role: types.RoleModel})
			replyStarted = true
		}

		notify(onUpdate, s.appendToLastMessage(chunk))
	}
}

func (s *Session) appendMessage(msg types.ChatMessage) []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, msg)
	return s.snapshotLocked()
}

func (s *Session) appendToLastMessage(chunk string) []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[len(s.history)-1].Content += chunk
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() []types.ChatMessage {
	out := make([]types.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

func notify(onUpdate UpdateFunc, messages []types.ChatMessage) {
	if onUpdate != nil {
		onUpdate(messages)
	}
}
