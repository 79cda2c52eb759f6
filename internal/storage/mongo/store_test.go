package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/storage/mongo"
)

// Requires a reachable MongoDB; set MONGO_TEST_URI to run.
func TestStoreRoundTrip(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	store, err := mongo.Connect(ctx, uri, "portfolio_test", 5*time.Second)
	if err != nil {
		t.Fatalf("Connect err: %v", err)
	}
	defer store.Close(ctx)

	created, err := store.Create(ctx, board.CreateRequest{
		Content: "integration hello",
		Sender:  "Alice",
		Email:   "a@x.com",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created.ID == "" || created.Timestamp.IsZero() {
		t.Fatalf("expected assigned id and timestamp, got %+v", created)
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}

	found := false
	var prev time.Time
	for _, msg := range listed {
		if msg.Timestamp.Before(prev) {
			t.Fatal("list not ordered by timestamp")
		}
		prev = msg.Timestamp
		if msg.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("created message missing from list")
	}
}
