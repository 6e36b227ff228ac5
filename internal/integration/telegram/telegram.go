// Package telegram adapts the Telegram Bot API client to the bot package.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/grammarify/internal/bot"
)

// Dispatcher receives every inbound text message, each on its own goroutine.
type Dispatcher func(ctx context.Context, msg *bot.Message)

// Client long-polls Telegram and sends replies.
type Client struct {
	api      *tgbot.Bot
	username string
	dispatch Dispatcher
	inflight sync.WaitGroup
}

// Option configures a Client.
type Option func(*[]tgbot.Option)

// WithServerURL points the client at another Bot API server.
func WithServerURL(u string) Option {
	return func(opts *[]tgbot.Option) {
		*opts = append(*opts, tgbot.WithServerURL(u))
	}
}

// New authenticates with token and resolves the bot's own username.
func New(ctx context.Context, token string, dispatch Dispatcher, opts ...Option) (*Client, error) {
	client := &Client{dispatch: dispatch}

	// Handlers run on the polling workers, which Start waits for, so every inflight.Add
	// happens before inflight.Wait.
	apiOpts := []tgbot.Option{
		tgbot.WithDefaultHandler(client.onUpdate),
		tgbot.WithNotAsyncHandlers(),
		tgbot.WithSkipGetMe(),
		tgbot.WithErrorsHandler(func(err error) {
			slog.Error("telegram polling", "error", err)
		}),
	}

	for _, opt := range opts {
		opt(&apiOpts)
	}

	api, err := tgbot.New(token, apiOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: creating telegram client: %w", fault.ErrCommandFailure, err)
	}

	me, err := api.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: telegram getMe: %w", fault.ErrCommandFailure, err)
	}

	client.api = api
	client.username = me.Username

	slog.Debug("telegram.New", "username", client.username)

	return client, nil
}

// Username is the bot's own username, without the leading @.
func (c *Client) Username() string {
	return c.username
}

// Start polls for updates until ctx is cancelled, then waits for in-flight handlers.
func (c *Client) Start(ctx context.Context) {
	c.api.Start(ctx)
	c.inflight.Wait()
}

// Reply implements bot.Replier.
func (c *Client) Reply(ctx context.Context, chatID int64, text string, opts bot.ReplyOptions) error {
	_, err := c.api.SendMessage(ctx, sendParams(chatID, text, opts))
	if err != nil {
		return fmt.Errorf("%w: telegram sendMessage: %w", fault.ErrCommandFailure, err)
	}

	return nil
}

func (c *Client) onUpdate(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	msg := toMessage(update)
	if msg == nil {
		return
	}

	c.inflight.Add(1)

	go func() {
		defer c.inflight.Done()

		c.dispatch(ctx, msg)
	}()
}

func toMessage(update *models.Update) *bot.Message {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return nil
	}

	in := update.Message
	msg := &bot.Message{
		ChatID:   in.Chat.ID,
		ThreadID: in.MessageThreadID,
		ID:       in.ID,
		Text:     in.Text,
	}

	if in.From != nil {
		msg.SenderID = in.From.ID
		msg.SenderName = in.From.Username
	}

	return msg
}

func sendParams(chatID int64, text string, opts bot.ReplyOptions) *tgbot.SendMessageParams {
	params := &tgbot.SendMessageParams{
		ChatID:              chatID,
		MessageThreadID:     opts.ThreadID,
		Text:                text,
		ParseMode:           models.ParseMode(opts.ParseMode),
		DisableNotification: opts.DisableNotification,
	}

	if opts.DisableLinkPreview {
		params.LinkPreviewOptions = &models.LinkPreviewOptions{IsDisabled: tgbot.True()}
	}

	if opts.ReplyToMessageID != 0 {
		params.ReplyParameters = &models.ReplyParameters{MessageID: opts.ReplyToMessageID}
	}

	return params
}
