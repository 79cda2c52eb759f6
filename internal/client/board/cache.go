package board

import (
	"context"
	"sync"

	boardModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
)

// Cache keeps the board feed in memory: one fetch when the board opens,
// then local appends as the user posts. Readers get snapshots and apply
// their own visibility filtering.
type Cache struct {
	client *Client

	mu       sync.Mutex
	loaded   bool
	messages []boardModel.Message
}

// NewCache wraps the client with a feed cache.
func NewCache(client *Client) *Cache {
	return &Cache{client: client}
}

// Load fetches the feed on first call; later calls are no-ops.
func (c *Cache) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return nil
	}
	return c.fetchLocked(ctx)
}

// Refresh re-fetches the feed unconditionally.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchLocked(ctx)
}

func (c *Cache) fetchLocked(ctx context.Context) error {
	messages, err := c.client.List(ctx)
	if err != nil {
		return err
	}
	c.messages = messages
	c.loaded = true
	return nil
}

// Post creates the message server-side and appends the stored record to
// the cached feed.
func (c *Cache) Post(ctx context.Context, create boardModel.CreateRequest) (boardModel.Message, error) {
	created, err := c.client.Create(ctx, create)
	if err != nil {
		return boardModel.Message{}, err
	}

	c.mu.Lock()
	c.messages = append(c.messages, created)
	c.mu.Unlock()

	return created, nil
}

// Snapshot returns a copy of the cached feed.
func (c *Cache) Snapshot() []boardModel.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]boardModel.Message, len(c.messages))
	copy(copied, c.messages)
	return copied
}
