// Package notify delivers advisory records and sandbox verdicts to a
// human reviewer over Telegram. Delivery is best-effort: the pipeline
// never blocks on Telegram and a full queue drops the message with a
// warning instead of stalling analysis.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/westbet/westbetpro/internal/pkg/models"
)

// Min interval between any two Telegram messages to the same chat to
// avoid 429 Too Many Requests (~30/min limit).
const telegramSendInterval = 2 * time.Second

type messageType int

const (
	messageTypeAdvisory messageType = iota
	messageTypeTestRun
	messageTypeText
)

type queuedMessage struct {
	msgType  messageType
	advisory *models.Advisory
	testRun  *models.TestRun
	text     string
}

// TelegramNotifier sends advisories and test-run summaries to a single
// reviewer chat through a buffered queue with rate limiting. It
// satisfies learning.Sink.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	mu       sync.Mutex
	lastSend time.Time

	queue     chan queuedMessage
	queueDone chan struct{}
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewTelegramNotifier creates the notifier and verifies the bot token
// against the Telegram API before accepting any message.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		return nil, fmt.Errorf("verify telegram bot: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	notifier := &TelegramNotifier{
		bot:       bot,
		chatID:    chatID,
		queue:     make(chan queuedMessage, 100),
		queueDone: make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
	}

	notifier.wg.Add(1)
	go notifier.messageSender()

	slog.Info("Telegram notifier initialized", "chat_id", chatID)
	return notifier, nil
}

// QueueLen returns the current number of queued messages (for logging).
func (n *TelegramNotifier) QueueLen() int {
	if n == nil || n.queue == nil {
		return 0
	}
	return len(n.queue)
}

// Emit queues an advisory for delivery (non-blocking).
func (n *TelegramNotifier) Emit(ctx context.Context, advisory models.Advisory) error {
	return n.enqueue(ctx, queuedMessage{msgType: messageTypeAdvisory, advisory: &advisory})
}

// SendTestRunSummary queues a sandbox verdict for delivery
// (non-blocking).
func (n *TelegramNotifier) SendTestRunSummary(ctx context.Context, run *models.TestRun) error {
	return n.enqueue(ctx, queuedMessage{msgType: messageTypeTestRun, testRun: run})
}

// SendText queues a plain status message, e.g. a run report.
func (n *TelegramNotifier) SendText(ctx context.Context, text string) error {
	return n.enqueue(ctx, queuedMessage{msgType: messageTypeText, text: text})
}

func (n *TelegramNotifier) enqueue(ctx context.Context, msg queuedMessage) error {
	if n == nil || n.bot == nil {
		return fmt.Errorf("telegram notifier not initialized")
	}
	select {
	case <-n.ctx.Done():
		return fmt.Errorf("notifier stopped")
	case <-ctx.Done():
		return ctx.Err()
	case n.queue <- msg:
		return nil
	default:
		slog.Warn("Telegram message queue is full, dropping message", "type", msg.msgType)
		return fmt.Errorf("message queue is full")
	}
}

// Stop stops the notifier and waits for queued messages to be sent.
func (n *TelegramNotifier) Stop() {
	if n == nil {
		return
	}
	n.cancel()
	<-n.queueDone
	n.wg.Wait()
}

func (n *TelegramNotifier) messageSender() {
	defer n.wg.Done()

	for {
		select {
		case <-n.ctx.Done():
			// Drain remaining messages before exit.
			for {
				select {
				case msg := <-n.queue:
					n.send(msg)
				default:
					close(n.queueDone)
					return
				}
			}
		case msg := <-n.queue:
			n.send(msg)
		}
	}
}

func (n *TelegramNotifier) send(msg queuedMessage) {
	var text string
	switch msg.msgType {
	case messageTypeAdvisory:
		text = formatAdvisory(msg.advisory)
	case messageTypeTestRun:
		text = formatTestRun(msg.testRun)
	case messageTypeText:
		text = msg.text
	default:
		slog.Error("Unknown message type", "type", msg.msgType)
		return
	}

	tgMsg := tgbotapi.NewMessage(n.chatID, text)
	tgMsg.ParseMode = tgbotapi.ModeMarkdown

	n.mu.Lock()
	if elapsed := time.Since(n.lastSend); elapsed < telegramSendInterval {
		wait := telegramSendInterval - elapsed
		n.mu.Unlock()
		select {
		case <-n.ctx.Done():
			slog.Warn("Telegram send: cancelled during rate-limit wait", "type", msg.msgType)
			return
		case <-time.After(wait):
		}
		n.mu.Lock()
	}
	n.lastSend = time.Now()
	_, err := n.bot.Send(tgMsg)
	n.mu.Unlock()

	if err != nil {
		slog.Error("Telegram send: failed", "error", err, "type", msg.msgType, "message_preview", truncateString(text, 50))
		return
	}
	slog.Info("Telegram send: success", "type", msg.msgType, "queue_length", len(n.queue))
}

var severityBadges = map[string]string{
	"high":   "🔴",
	"medium": "🟡",
	"low":    "🟢",
}

func formatAdvisory(advisory *models.Advisory) string {
	var builder strings.Builder

	badge := severityBadges[advisory.Severity]
	if badge == "" {
		badge = "⚪"
	}
	builder.WriteString(fmt.Sprintf("%s *%s*\n\n", badge, escapeMarkdown(advisory.Title)))
	builder.WriteString(escapeMarkdown(advisory.Description))
	builder.WriteString("\n\n")
	builder.WriteString(fmt.Sprintf("📂 %s | severity: %s\n", advisory.Category, advisory.Severity))
	if len(advisory.Actions) > 0 {
		builder.WriteString("\n*Suggested actions:*\n")
		for _, action := range advisory.Actions {
			builder.WriteString(fmt.Sprintf("• %s\n", escapeMarkdown(action)))
		}
	}
	if advisory.ActionRequired {
		builder.WriteString("\n⚠️ _Action required_\n")
	}
	builder.WriteString(fmt.Sprintf("\n`%s`", advisory.SuggestionID))
	return builder.String()
}

func formatTestRun(run *models.TestRun) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("🧪 *Sandbox Test Completed*\n\n*%s*\n", escapeMarkdown(run.TestName)))
	builder.WriteString(fmt.Sprintf("Candidate `%s` | baseline: %s\n", run.CandidateID, run.BaselineMode))
	builder.WriteString(fmt.Sprintf("Period: %s → %s (%d matches)\n\n",
		run.PeriodStart.Format("2006-01-02"), run.PeriodEnd.Format("2006-01-02"), run.TotalMatches))
	builder.WriteString(fmt.Sprintf("📈 Candidate: %d wins / %d predictions (%.1f%%)\n",
		run.CandidateWins, run.CandidatePredictions, run.CandidateWinRate))
	builder.WriteString(fmt.Sprintf("📉 Baseline: %d wins / %d predictions (%.1f%%)\n",
		run.BaselineWins, run.BaselinePredictions, run.BaselineWinRate))
	builder.WriteString(fmt.Sprintf("Δ %+.1f%% | p=%.4f", run.WinRateDelta, run.PValue))
	if run.IsSignificant {
		builder.WriteString(" (significant)")
	}
	builder.WriteString("\n\n")
	builder.WriteString(fmt.Sprintf("*Recommendation: %s*\n_%s_\n", run.Recommendation, escapeMarkdown(run.Reason)))
	builder.WriteString(fmt.Sprintf("\n`%s`", run.TestRunID))
	return builder.String()
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"`", "\\`",
	)
	return replacer.Replace(text)
}
