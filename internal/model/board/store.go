package board

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrUnavailable signals that the backing store could not be reached.
// Handlers translate it into a generic failure with no partial results.
var ErrUnavailable = errors.New("message store unavailable")

// Store abstracts the message collection.
type Store interface {
	// List returns every stored message ordered by ascending timestamp.
	List(ctx context.Context) ([]Message, error)
	// Create validates the request, assigns ID and timestamp, and persists
	// the message. A validation failure leaves the store unchanged.
	Create(ctx context.Context, req CreateRequest) (Message, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// MemoryStore keeps messages in process memory. It backs local runs
// without a database and the handler tests.
type MemoryStore struct {
	mu       sync.RWMutex
	messages []Message
}

// NewMemoryStore bootstraps an empty in-memory board.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make([]Message, 0, 16)}
}

// List returns a sorted copy of the stored messages.
func (s *MemoryStore) List(_ context.Context) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]Message, len(s.messages))
	copy(copied, s.messages)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].Timestamp.Before(copied[j].Timestamp)
	})
	return copied, nil
}

// Create appends a new message with a fresh ID and timestamp.
func (s *MemoryStore) Create(_ context.Context, req CreateRequest) (Message, error) {
	if err := req.Validate(); err != nil {
		return Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if n := len(s.messages); n > 0 && now.Before(s.messages[n-1].Timestamp) {
		// Keep insertion order and timestamp order aligned even if the
		// clock steps backwards.
		now = s.messages[n-1].Timestamp
	}

	message := Message{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Sender:    req.Sender,
		Email:     req.Email,
		Timestamp: now,
		IsPrivate: req.IsPrivate,
	}
	s.messages = append(s.messages, message)
	return message, nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
