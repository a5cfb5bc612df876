package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"merojob-scraper/internal/models"
)

// sender is the part of tgbotapi.BotAPI the bot needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api    sender
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

var markdownReplacer = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
	")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
	"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
	"}", "\\}", ".", "\\.", "!", "\\!",
)

func escapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}

// FormatJob renders one job as a MarkdownV2 message.
func FormatJob(job models.JobRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔥 *%s*\n", escapeMarkdown(job.Title))
	fmt.Fprintf(&b, "🏢 %s\n", escapeMarkdown(job.Company))
	fmt.Fprintf(&b, "🧭 %s\n", escapeMarkdown(job.Experience))
	fmt.Fprintf(&b, "📶 %s\n", escapeMarkdown(job.Level))
	fmt.Fprintf(&b, "💰 %s\n", escapeMarkdown(job.Salary))
	fmt.Fprintf(&b, "📅 Apply before: %s", escapeMarkdown(job.ApplyBefore))
	return b.String()
}

func (b *Bot) SendJob(job models.JobRecord) error {
	msg := tgbotapi.NewMessage(b.chatID, FormatJob(job))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
