package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/config"
	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/conversation"
)

// ContactSentinel is returned verbatim when the visitor asks to connect;
// clients swap it for their contact card instead of rendering it.
const ContactSentinel = "SHOW_CONTACT_OPTIONS"

const (
	// apologyReply substitutes for any upstream failure.
	apologyReply = "I'm sorry, I couldn't process your request. Please try again later."
	// resumeReply answers direct resume requests without an upstream call.
	resumeReply = "You can grab the latest copy of my resume at /Resume.pdf. Happy to answer anything about my experience!"
)

// historyLimit bounds how many prior turns are replayed upstream.
const historyLimit = 10

// Service relays visitor text to the upstream generation model and
// republishes the reply incrementally.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the generation chain: fixed preamble, bounded
// history, then the visitor's message.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// StreamingEnabled indicates whether replies stream incrementally.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// Reply relays one visitor message. Each increment of the answer is
// passed to emit in arrival order; the accumulated reply text is
// returned once the stream ends. Upstream failures never propagate: the
// visitor sees the fixed apology (or whatever partial content already
// arrived) and the stream ends cleanly.
func (s *Service) Reply(ctx context.Context, history []conversation.Turn, userMessage string, emit func(chunk string)) string {
	if reply, ok := canned(userMessage); ok {
		emit(reply)
		return reply
	}

	input := map[string]any{
		"system":  systemPreamble,
		"history": buildHistory(history),
		"query":   userMessage,
	}

	if !s.StreamingEnabled() {
		response, err := s.chain.Invoke(ctx, input)
		if err != nil {
			log.Printf("[assistant] generation failed: %v", err)
			emit(apologyReply)
			return apologyReply
		}
		emit(response.Content)
		return response.Content
	}

	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		log.Printf("[assistant] failed to open stream: %v", err)
		emit(apologyReply)
		return apologyReply
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			// Producer died mid-stream: keep the partial content and end
			// the reply instead of surfacing a crash.
			log.Printf("[assistant] stream terminated early: %v", recvErr)
			if reply.Len() == 0 {
				emit(apologyReply)
				return apologyReply
			}
			break
		}
		if chunk == nil || chunk.Content == "" {
			continue
		}
		reply.WriteString(chunk.Content)
		emit(chunk.Content)
	}

	return reply.String()
}

// canned answers the fixed special cases without an upstream call.
func canned(userMessage string) (string, bool) {
	lower := strings.ToLower(userMessage)
	if strings.Contains(lower, "connect with me") {
		return ContactSentinel, true
	}
	if strings.Contains(lower, "your") && strings.Contains(lower, "resume") {
		return resumeReply, true
	}
	return "", false
}

// buildHistory converts the most recent transcript turns into upstream
// messages, newest last.
func buildHistory(turns []conversation.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	startIdx := 0
	if len(turns) > historyLimit {
		startIdx = len(turns) - historyLimit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		switch turn.Role {
		case conversation.RoleUser:
			history = append(history, schema.UserMessage(turn.Content))
		case conversation.RoleAssistant:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		}
	}

	return history
}
