// Package mongo persists board messages in a MongoDB collection,
// mirroring the layout the original site used: one `messages` collection,
// no secondary indexes beyond the timestamp sort.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
)

const collectionName = "messages"

// messageRecord is the persisted document shape. The _id stays a native
// ObjectID so new writes are drop-in compatible with the records the
// original mongoose layer created; the domain model carries its hex form.
type messageRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Sender    string             `bson:"sender"`
	Email     string             `bson:"email"`
	Timestamp time.Time          `bson:"timestamp"`
	IsPrivate bool               `bson:"isPrivate"`
}

func (r messageRecord) asMessage() board.Message {
	return board.Message{
		ID:        r.ID.Hex(),
		Content:   r.Content,
		Sender:    r.Sender,
		Email:     r.Email,
		Timestamp: r.Timestamp,
		IsPrivate: r.IsPrivate,
	}
}

// Store implements board.Store on a MongoDB collection.
type Store struct {
	client   *mongo.Client
	messages *mongo.Collection
	timeout  time.Duration
}

// Connect dials the document store and verifies it is reachable. Callers
// treat a failure here as fatal, matching the original server which exits
// when the initial connect fails.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return &Store{
		client:   client,
		messages: client.Database(database).Collection(collectionName),
		timeout:  timeout,
	}, nil
}

// List returns every stored message ordered by ascending timestamp.
func (s *Store) List(ctx context.Context) ([]board.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := s.messages.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", board.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	records := make([]messageRecord, 0, 16)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", board.ErrUnavailable, err)
	}

	messages := make([]board.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, record.asMessage())
	}
	return messages, nil
}

// Create validates the request, assigns an ObjectID and timestamp, and
// inserts the record.
func (s *Store) Create(ctx context.Context, req board.CreateRequest) (board.Message, error) {
	if err := req.Validate(); err != nil {
		return board.Message{}, err
	}

	record := messageRecord{
		ID:        primitive.NewObjectID(),
		Content:   req.Content,
		Sender:    req.Sender,
		Email:     req.Email,
		Timestamp: time.Now().UTC(),
		IsPrivate: req.IsPrivate,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if _, err := s.messages.InsertOne(ctx, record); err != nil {
		return board.Message{}, fmt.Errorf("%w: %v", board.ErrUnavailable, err)
	}
	return record.asMessage(), nil
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: %v", board.ErrUnavailable, err)
	}
	return nil
}

// Close disconnects from the document store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
