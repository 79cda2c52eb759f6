package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/conversation"
)

var ErrConversationNotFound = errors.New("conversation not found")

// Service keeps assistant conversations in process memory. Transcripts
// are ephemeral: a restart starts every visitor fresh.
type Service struct {
	mu            sync.RWMutex
	conversations map[string]conversation.Conversation
	turns         map[string][]conversation.Turn
}

// NewService bootstraps the in-memory conversation registry.
func NewService() *Service {
	return &Service{
		conversations: make(map[string]conversation.Conversation),
		turns:         make(map[string][]conversation.Turn),
	}
}

// Create provisions an anonymous conversation.
func (s *Service) Create(_ context.Context) (conversation.Conversation, error) {
	conv := conversation.Conversation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.conversations[conv.ID] = conv
	s.turns[conv.ID] = make([]conversation.Turn, 0, 16)
	s.mu.Unlock()

	return conv, nil
}

// Append records one turn at the end of the conversation history.
func (s *Service) Append(_ context.Context, turn conversation.Turn) error {
	if turn.ConversationID == "" {
		return ErrConversationNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[turn.ConversationID]; !ok {
		return ErrConversationNotFound
	}

	turn.ID = uuid.NewString()
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	s.turns[turn.ConversationID] = append(s.turns[turn.ConversationID], turn)
	return nil
}

// Get retrieves a conversation by identifier.
func (s *Service) Get(_ context.Context, id string) (conversation.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[id]
	if !ok {
		return conversation.Conversation{}, ErrConversationNotFound
	}
	return conv, nil
}

// Transcript returns stored turns for the provided conversation.
func (s *Service) Transcript(_ context.Context, id string) ([]conversation.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns, ok := s.turns[id]
	if !ok {
		return nil, ErrConversationNotFound
	}

	copied := make([]conversation.Turn, len(turns))
	copy(copied, turns)
	return copied, nil
}
