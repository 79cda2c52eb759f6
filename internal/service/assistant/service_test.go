package assistant

import (
	"testing"

	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/conversation"
)

func TestCannedConnectSentinel(t *testing.T) {
	for _, input := range []string{
		"Connect with me",
		"can you CONNECT WITH ME please",
		"I'd like to connect with me options",
	} {
		reply, ok := canned(input)
		if !ok {
			t.Fatalf("expected short-circuit for %q", input)
		}
		if reply != ContactSentinel {
			t.Fatalf("expected contact sentinel, got %q", reply)
		}
	}
}

func TestCannedResumeRequest(t *testing.T) {
	reply, ok := canned("Can I see your resume?")
	if !ok {
		t.Fatal("expected short-circuit for resume request")
	}
	if reply == ContactSentinel || reply == "" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestCannedPassesOrdinaryMessages(t *testing.T) {
	if _, ok := canned("tell me about your projects"); ok {
		t.Fatal("ordinary message must reach the upstream model")
	}
}

func TestBuildHistoryBounded(t *testing.T) {
	turns := make([]conversation.Turn, 0, 24)
	for i := 0; i < 12; i++ {
		turns = append(turns,
			conversation.Turn{Role: conversation.RoleUser, Content: "q"},
			conversation.Turn{Role: conversation.RoleAssistant, Content: "a"},
		)
	}

	history := buildHistory(turns)
	if len(history) != historyLimit {
		t.Fatalf("expected %d history messages, got %d", historyLimit, len(history))
	}
}

func TestBuildHistorySkipsUnknownRoles(t *testing.T) {
	turns := []conversation.Turn{
		{Role: conversation.RoleUser, Content: "hi"},
		{Role: "system", Content: "ignored"},
		{Role: conversation.RoleAssistant, Content: "hello"},
	}

	history := buildHistory(turns)
	if len(history) != 2 {
		t.Fatalf("expected 2 history messages, got %d", len(history))
	}
}

func TestBuildHistoryEmpty(t *testing.T) {
	if history := buildHistory(nil); history != nil {
		t.Fatalf("expected nil history, got %v", history)
	}
}
