package cli

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/config"
	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/handler"
	boardModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
	conversationService "github.com/sudarshan-lab/MyInteractivePortfolio/internal/service/conversation"
)

const passwordHash = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

func startBackend(t *testing.T) (*httptest.Server, *boardModel.MemoryStore) {
	t.Helper()
	store := boardModel.NewMemoryStore()
	router := handler.NewRouter(store, conversationService.NewService(), nil, []string{"*"})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, store
}

func runScript(t *testing.T, srv *httptest.Server, script string) string {
	t.Helper()
	cfg := config.ClientConfig{APIBaseURL: srv.URL, SecretHash: passwordHash}

	var out strings.Builder
	app := NewApp(cfg, strings.NewReader(script), &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run err: %v", err)
	}
	return out.String()
}

func TestIdentityCaptureRetriesUntilValid(t *testing.T) {
	srv, _ := startBackend(t)

	out := runScript(t, srv, strings.Join([]string{
		"",            // empty name rejected
		"a@x.com",
		"Alice",
		"not-an-email", // invalid email rejected
		"Alice",
		"a@x.com",
		"quit",
	}, "\n")+"\n")

	if !strings.Contains(out, "name is required") {
		t.Fatalf("expected name rejection, got:\n%s", out)
	}
	if !strings.Contains(out, "valid email is required") {
		t.Fatalf("expected email rejection, got:\n%s", out)
	}
}

func TestPostAttachesIdentity(t *testing.T) {
	srv, store := startBackend(t)

	runScript(t, srv, "Alice\na@x.com\npost hello board\nquit\n")

	messages, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(messages))
	}
	if messages[0].Sender != "Alice" || messages[0].Email != "a@x.com" {
		t.Fatalf("identity not attached: %+v", messages[0])
	}
	if messages[0].Content != "hello board" {
		t.Fatalf("unexpected content: %q", messages[0].Content)
	}
}

func TestUnlockRevealsPrivateMessages(t *testing.T) {
	srv, store := startBackend(t)

	if _, err := store.Create(context.Background(), boardModel.CreateRequest{
		Content: "hidden note", Sender: "Bob", Email: "b@x.com", IsPrivate: true,
	}); err != nil {
		t.Fatalf("seed err: %v", err)
	}

	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("password"), nil }
	t.Cleanup(func() { readPassword = orig })

	out := runScript(t, srv, "Alice\na@x.com\nunlock\nquit\n")

	if !strings.Contains(out, "private messages unlocked") {
		t.Fatalf("expected unlock confirmation, got:\n%s", out)
	}
	if !strings.Contains(out, "hidden note") {
		t.Fatalf("expected private message to appear after unlock, got:\n%s", out)
	}
	// The feed printed before unlock must not include it.
	before := out[:strings.Index(out, "private messages unlocked")]
	if strings.Contains(before, "hidden note") {
		t.Fatalf("private message leaked before unlock:\n%s", out)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	srv, _ := startBackend(t)

	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("letmein"), nil }
	t.Cleanup(func() { readPassword = orig })

	out := runScript(t, srv, "Alice\na@x.com\nunlock\nquit\n")
	if !strings.Contains(out, "invalid private key") {
		t.Fatalf("expected rejection notice, got:\n%s", out)
	}
}
