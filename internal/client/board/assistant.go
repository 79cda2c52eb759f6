package board

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// streamEvent mirrors the server's SSE frame shape.
type streamEvent struct {
	Event    string `json:"event"`
	Content  string `json:"content"`
	Finished bool   `json:"finished"`
	Error    string `json:"error"`
}

// NewConversation opens an assistant conversation and returns its id.
func (c *Client) NewConversation(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/assistant/conversations", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("create conversation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", apiError("create conversation", resp)
	}

	var conv struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&conv); err != nil {
		return "", fmt.Errorf("decode conversation: %w", err)
	}
	return conv.ID, nil
}

// StreamChat sends one message to the assistant and passes each reply
// increment to emit as it arrives over the SSE stream. A stream that the
// server ends early simply terminates the reply; late chunks after the
// context is cancelled are discarded with it.
func (c *Client) StreamChat(ctx context.Context, conversationID, message string, emit func(chunk string)) error {
	endpoint := fmt.Sprintf("%s/api/assistant/stream/%s?message=%s",
		c.baseURL, url.PathEscape(conversationID), url.QueryEscape(message))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	// The stream outlives the client's default timeout on purpose.
	httpClient := &http.Client{Transport: c.http.Transport}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("open assistant stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("assistant stream", resp)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var event streamEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			continue
		}

		switch event.Event {
		case "chunk":
			emit(event.Content)
		case "error":
			return fmt.Errorf("assistant stream: %s", event.Error)
		case "end":
			return nil
		}
	}
	return scanner.Err()
}
