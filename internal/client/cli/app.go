// Package cli is the terminal rendition of the board UI: identity capture
// before anything else, a cached feed filtered by the session, the
// shared-secret unlock, and a streaming chat with the assistant.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	boardClient "github.com/sudarshan-lab/MyInteractivePortfolio/internal/client/board"
	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/config"
	boardModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/session"
)

// App drives the interactive board session.
type App struct {
	client *boardClient.Client
	cache  *boardClient.Cache
	sess   *session.Session
	gate   session.Gate

	conversationID string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the client stack for the configured backend.
func NewApp(cfg config.ClientConfig, in io.Reader, out io.Writer) *App {
	client := boardClient.NewClient(cfg.APIBaseURL)
	return &App{
		client: client,
		cache:  boardClient.NewCache(client),
		sess:   session.NewSession(),
		gate:   session.NewGate(cfg.SecretHash),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run blocks until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.captureIdentity(); err != nil {
		return err
	}

	if err := a.cache.Load(ctx); err != nil {
		// Non-blocking notice; the board opens empty.
		fmt.Fprintf(a.out, "could not load the board: %v\n", err)
	}
	a.printFeed()

	for {
		line, err := promptLine(a.reader, a.out, ">")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		command, rest, _ := strings.Cut(line, " ")
		switch command {
		case "":
			continue
		case "help":
			a.printHelp()
		case "list":
			a.printFeed()
		case "refresh":
			if err := a.cache.Refresh(ctx); err != nil {
				fmt.Fprintf(a.out, "could not refresh the board: %v\n", err)
				continue
			}
			a.printFeed()
		case "post":
			a.post(ctx, rest, false)
		case "postprivate":
			a.post(ctx, rest, true)
		case "unlock":
			a.unlock()
		case "private":
			a.sess.SetShowPrivate(!a.sess.ShowPrivate())
			a.printFeed()
		case "chat":
			a.chat(ctx, rest)
		case "reset":
			a.sess.Clear()
			a.conversationID = ""
			fmt.Fprintln(a.out, "session cleared")
			if err := a.captureIdentity(); err != nil {
				return err
			}
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(a.out, "unknown command %q, try help\n", command)
		}
	}
}

// captureIdentity loops the one-shot identity form until it validates.
func (a *App) captureIdentity() error {
	fmt.Fprintln(a.out, "Welcome to the board. Please enter your details to continue.")
	for {
		name, err := promptLine(a.reader, a.out, "Name:")
		if err != nil {
			return err
		}
		email, err := promptLine(a.reader, a.out, "Email:")
		if err != nil {
			return err
		}

		id, err := session.CaptureIdentity(name, email)
		if err != nil {
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		a.sess.SetIdentity(id)
		return nil
	}
}

func (a *App) post(ctx context.Context, content string, private bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		fmt.Fprintln(a.out, "usage: post <message>")
		return
	}

	identity, ok := a.sess.Identity()
	if !ok {
		fmt.Fprintln(a.out, "enter your details first")
		return
	}

	if _, err := a.cache.Post(ctx, boardModel.CreateRequest{
		Content:   content,
		Sender:    identity.Name,
		Email:     identity.Email,
		IsPrivate: private,
	}); err != nil {
		fmt.Fprintf(a.out, "could not post: %v\n", err)
		return
	}
	a.printFeed()
}

func (a *App) unlock() {
	if a.sess.IsAuthenticated() {
		fmt.Fprintln(a.out, "already unlocked")
		return
	}

	secret, err := promptSecret(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "could not read secret: %v\n", err)
		return
	}

	if err := a.sess.Unlock(a.gate, secret); err != nil {
		fmt.Fprintln(a.out, "invalid private key")
		return
	}
	fmt.Fprintln(a.out, "private messages unlocked")
	a.printFeed()
}

func (a *App) chat(ctx context.Context, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		fmt.Fprintln(a.out, "usage: chat <message>")
		return
	}

	if a.conversationID == "" {
		id, err := a.client.NewConversation(ctx)
		if err != nil {
			fmt.Fprintf(a.out, "could not start a conversation: %v\n", err)
			return
		}
		a.conversationID = id
	}

	err := a.client.StreamChat(ctx, a.conversationID, message, func(chunk string) {
		fmt.Fprint(a.out, chunk)
	})
	fmt.Fprintln(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "chat failed: %v\n", err)
	}
}

func (a *App) printFeed() {
	feed := boardModel.Visible(a.cache.Snapshot(), a.sess.CanSeePrivate())
	if len(feed) == 0 {
		fmt.Fprintln(a.out, "(no messages)")
		return
	}
	for _, msg := range feed {
		marker := ""
		if msg.IsPrivate {
			marker = " [private]"
		}
		fmt.Fprintf(a.out, "%s  %s%s: %s\n",
			msg.Timestamp.Local().Format("2006-01-02 15:04"), msg.Sender, marker, msg.Content)
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `commands:
  list          show the board
  refresh       re-fetch the board
  post <text>   post a public message
  postprivate <text>  post a private message
  unlock        enter the shared secret to reveal private messages
  private       toggle showing private messages
  chat <text>   talk to the assistant
  reset         clear the session and start over
  quit          leave`)
}
