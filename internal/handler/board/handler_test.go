package board

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	boardModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
)

func setupRouter() (*chi.Mux, *boardModel.MemoryStore) {
	store := boardModel.NewMemoryStore()
	handler := New(store)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func postMessage(t *testing.T, r http.Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateThenList(t *testing.T) {
	r, _ := setupRouter()

	resp := postMessage(t, r, map[string]any{
		"content": "hello",
		"sender":  "Alice",
		"email":   "a@x.com",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created boardModel.Message
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created message: %v", err)
	}
	if created.ID == "" || created.Timestamp.IsZero() {
		t.Fatalf("expected server-assigned id and timestamp, got %+v", created)
	}
	if created.IsPrivate {
		t.Fatal("isPrivate should default to false")
	}

	listReq := httptest.NewRequest(http.MethodGet, "/messages", nil)
	listResp := httptest.NewRecorder()
	r.ServeHTTP(listResp, listReq)

	if listResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listResp.Code)
	}

	var listed []boardModel.Message
	if err := json.Unmarshal(listResp.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 message, got %d", len(listed))
	}
	if listed[0].Content != "hello" || listed[0].ID != created.ID {
		t.Fatalf("unexpected message: %+v", listed[0])
	}
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	r, store := setupRouter()

	resp := postMessage(t, r, map[string]any{
		"content": "",
		"sender":  "Alice",
		"email":   "a@x.com",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected error message in body")
	}

	listed, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("rejected create must not persist, found %d messages", len(listed))
	}
}

func TestCreateRejectsMissingSenderAndEmail(t *testing.T) {
	r, _ := setupRouter()

	for _, body := range []map[string]any{
		{"content": "hi", "email": "a@x.com"},
		{"content": "hi", "sender": "Alice"},
	} {
		if resp := postMessage(t, r, body); resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, resp.Code)
		}
	}
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader([]byte("{not json")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestListReturnsPrivateMessagesToEveryone(t *testing.T) {
	r, _ := setupRouter()

	postMessage(t, r, map[string]any{"content": "public", "sender": "A", "email": "a@x.com"})
	postMessage(t, r, map[string]any{"content": "secret", "sender": "B", "email": "b@x.com", "isPrivate": true})

	listReq := httptest.NewRequest(http.MethodGet, "/messages", nil)
	listResp := httptest.NewRecorder()
	r.ServeHTTP(listResp, listReq)

	var listed []boardModel.Message
	if err := json.Unmarshal(listResp.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	// The API never filters; visibility is a client concern.
	if len(listed) != 2 {
		t.Fatalf("expected both messages, got %d", len(listed))
	}
}

type failingStore struct{}

func (failingStore) List(context.Context) ([]boardModel.Message, error) {
	return nil, boardModel.ErrUnavailable
}

func (failingStore) Create(context.Context, boardModel.CreateRequest) (boardModel.Message, error) {
	return boardModel.Message{}, boardModel.ErrUnavailable
}

func (failingStore) Ping(context.Context) error {
	return boardModel.ErrUnavailable
}

func TestStorageFailureSignaledAsServerError(t *testing.T) {
	handler := New(failingStore{})
	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	listReq := httptest.NewRequest(http.MethodGet, "/messages", nil)
	listResp := httptest.NewRecorder()
	r.ServeHTTP(listResp, listReq)
	if listResp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on list, got %d", listResp.Code)
	}

	createResp := postMessage(t, r, map[string]any{"content": "hi", "sender": "A", "email": "a@x.com"})
	if createResp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on create, got %d", createResp.Code)
	}

	var errBody map[string]string
	if err := json.Unmarshal(createResp.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody["error"] == "" {
		t.Fatal("expected generic error body")
	}
}
