// Package bot wires the Telegram conversation flow to the tracker.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/prasetyo/duitbot/pkg/ledger"
	"github.com/prasetyo/duitbot/pkg/tracker"
)

// DefaultPollTimeout is the long-polling timeout for Telegram updates.
const DefaultPollTimeout = 10 * time.Second

// Config holds bot configuration.
type Config struct {
	// Token is the Telegram bot API token.
	Token string
	// PollTimeout overrides DefaultPollTimeout when positive.
	PollTimeout time.Duration
}

// Bot is the Telegram-facing conversation handler. Messages are handled
// one at a time: parse, record, aggregate, reply.
type Bot struct {
	tele    *tele.Bot
	tracker *tracker.Tracker
	logger  *slog.Logger
}

// New creates the bot and registers its handlers. Reaching the Telegram
// API fails here, which the caller should treat as a startup failure.
func New(cfg Config, trk *tracker.Tracker, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}

	b := &Bot{
		tracker: trk,
		logger:  logger,
	}

	tb, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, _ tele.Context) {
			b.logger.Error("handler error", "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	b.tele = tb

	tb.Handle("/start", b.handleStart)
	tb.Handle(tele.OnText, b.handleText)

	return b, nil
}

// Run starts long polling and blocks until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		b.tele.Stop()
	}()

	b.logger.Info("bot started", "username", b.tele.Me.Username)
	b.tele.Start()
	return ctx.Err()
}

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send(startReply, tele.ModeMarkdown)
}

// handleText is the per-message flow: parse the expense, append it,
// recompute today's total, reply. Every failure turns into a reply; none
// of them terminates the conversation loop.
func (b *Bot) handleText(c tele.Context) error {
	ctx := context.Background()

	userID := strconv.FormatInt(c.Sender().ID, 10)
	username := c.Sender().Username
	if username == "" {
		username = "Unknown"
	}

	b.logger.Info("received message", "text", c.Text(), "username", username)

	amount, description, ok := ledger.ParseMessage(c.Text())
	if !ok {
		return c.Send(helpReply, tele.ModeMarkdown)
	}

	if !b.tracker.Add(ctx, amount, description, userID, username) {
		return c.Send(saveErrorReply)
	}

	total := b.tracker.DailyTotal(ctx, userID)
	return c.Send(confirmation(amount, description, total), tele.ModeMarkdown)
}
