// Package board is the native client for the message-board API: a thin
// REST wrapper plus the in-memory feed cache the browser client kept.
package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	boardModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
)

// Client talks to the portfolio backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// List fetches every board message, ascending by timestamp.
func (c *Client) List(ctx context.Context) ([]boardModel.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/messages", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("list messages", resp)
	}

	var messages []boardModel.Message
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}

// Create posts one message and returns the stored record.
func (c *Client) Create(ctx context.Context, create boardModel.CreateRequest) (boardModel.Message, error) {
	payload, err := json.Marshal(create)
	if err != nil {
		return boardModel.Message{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages", bytes.NewReader(payload))
	if err != nil {
		return boardModel.Message{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return boardModel.Message{}, fmt.Errorf("create message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return boardModel.Message{}, apiError("create message", resp)
	}

	var created boardModel.Message
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return boardModel.Message{}, fmt.Errorf("decode created message: %w", err)
	}
	return created, nil
}

// apiError extracts the server's {error} body when present.
func apiError(op string, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("%s: %s (status %d)", op, body.Error, resp.StatusCode)
	}
	return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
}
