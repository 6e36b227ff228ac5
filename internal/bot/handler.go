// Package bot routes inbound chat messages to the grammar checker and replies in the same conversation.
package bot

import (
	"context"
	"log/slog"

	"golang.org/x/sync/semaphore"
)

// ParseMode selects how the chat client renders a reply.
type ParseMode string

const (
	ParseModeNone     ParseMode = ""
	ParseModeMarkdown ParseMode = "Markdown"
	ParseModeHTML     ParseMode = "HTML"
)

// Message is an inbound text message.
type Message struct {
	ChatID     int64
	ThreadID   int // forum topic, 0 outside topics
	ID         int
	SenderID   int64
	SenderName string
	Text       string
}

// ReplyOptions controls how a reply is delivered.
type ReplyOptions struct {
	ParseMode           ParseMode
	DisableLinkPreview  bool
	ReplyToMessageID    int
	ThreadID            int
	DisableNotification bool
}

// Replier sends a message to a chat.
type Replier interface {
	Reply(ctx context.Context, chatID int64, text string, opts ReplyOptions) error
}

// Checker produces a report for a piece of text. found is false when there is nothing to report.
type Checker interface {
	Check(ctx context.Context, text string) (report string, found bool, err error)
}

// Handler is the per-message boundary: it never panics on checker failures and shares no
// mutable state between messages, so Handle may be called concurrently.
type Handler struct {
	checker  Checker
	replier  Replier
	logger   *slog.Logger
	username string
	limiter  *semaphore.Weighted
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) { h.logger = logger }
}

// WithUsername sets the bot's own username so commands addressed to other bots are not ours.
func WithUsername(username string) Option {
	return func(h *Handler) { h.username = username }
}

// WithMaxConcurrent bounds simultaneous checks. Zero or less means unbounded.
func WithMaxConcurrent(limit int64) Option {
	return func(h *Handler) {
		if limit > 0 {
			h.limiter = semaphore.NewWeighted(limit)
		} else {
			h.limiter = nil
		}
	}
}

// NewHandler returns a Handler.
func NewHandler(checker Checker, replier Replier, opts ...Option) *Handler {
	handler := &Handler{
		checker: checker,
		replier: replier,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(handler)
	}

	return handler
}

// Handle routes one message.
func (h *Handler) Handle(ctx context.Context, msg *Message) {
	if msg == nil || msg.Text == "" {
		return
	}

	command, args, ok := ParseCommand(msg.Text, h.username)
	if !ok {
		h.passive(ctx, msg)

		return
	}

	switch command {
	case CommandStart:
		h.reply(ctx, msg, welcomeText, ParseModeMarkdown)
	case CommandHelp:
		h.reply(ctx, msg, helpText, ParseModeMarkdown)
	case CommandCheck:
		h.check(ctx, msg, args)
	default:
		h.passive(ctx, msg)
	}
}

// check answers an explicit request: always replies, unless there is no text.
func (h *Handler) check(ctx context.Context, msg *Message, text string) {
	if text == "" {
		return
	}

	report, found, err := h.run(ctx, text)
	if err != nil {
		h.logger.Error("error checking", "text", text, "error", err)
		h.reply(ctx, msg, failureNotice, ParseModeNone)

		return
	}

	if !found {
		report = thumbsUp
	}

	h.reply(ctx, msg, report, ParseModeHTML)
}

// passive handles ordinary conversation: replies only with a report, stays silent on failure.
func (h *Handler) passive(ctx context.Context, msg *Message) {
	report, found, err := h.run(ctx, msg.Text)
	if err != nil {
		h.logger.Error("error checking", "text", msg.Text, "error", err)

		return
	}

	if found {
		h.reply(ctx, msg, report, ParseModeHTML)
	}
}

func (h *Handler) run(ctx context.Context, text string) (string, bool, error) {
	if h.limiter != nil {
		if err := h.limiter.Acquire(ctx, 1); err != nil {
			return "", false, err
		}
		defer h.limiter.Release(1)
	}

	return h.checker.Check(ctx, text)
}

// reply answers in-thread, quietly, without link previews.
func (h *Handler) reply(ctx context.Context, msg *Message, text string, mode ParseMode) {
	err := h.replier.Reply(ctx, msg.ChatID, text, ReplyOptions{
		ParseMode:           mode,
		DisableLinkPreview:  true,
		ReplyToMessageID:    msg.ID,
		ThreadID:            msg.ThreadID,
		DisableNotification: true,
	})
	if err != nil {
		h.logger.Error("error replying", "chat", msg.ChatID, "message", msg.ID, "error", err)
	}
}
