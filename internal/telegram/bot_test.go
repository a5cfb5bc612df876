package telegram

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merojob-scraper/internal/models"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func TestFormatJob(t *testing.T) {
	job := models.JobRecord{
		Title:       "Sr. Engineer (Go)",
		Company:     "Acme-Corp",
		Experience:  "2-4 years",
		Level:       "Mid",
		Salary:      "Rs. 50,000/month",
		ApplyBefore: "N/A",
	}

	text := FormatJob(job)

	assert.Contains(t, text, "*Sr\\. Engineer \\(Go\\)*")
	assert.Contains(t, text, "Acme\\-Corp")
	assert.Contains(t, text, "Rs\\. 50,000/month")
	assert.Contains(t, text, "Apply before: N/A")
}

func TestBot_Send(t *testing.T) {
	fake := &fakeSender{}
	bot := &Bot{api: fake, chatID: 42}

	require.NoError(t, bot.SendJob(models.JobRecord{Title: "Dev", Company: "Acme"}))
	require.NoError(t, bot.SendStatus("3 new jobs"))

	require.Len(t, fake.sent, 2)
	assert.Equal(t, int64(42), fake.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdownV2, fake.sent[0].ParseMode)
	assert.Equal(t, "ℹ️ 3 new jobs", fake.sent[1].Text)
}

func TestBot_SendError(t *testing.T) {
	fake := &fakeSender{err: errors.New("429 Too Many Requests")}
	bot := &Bot{api: fake, chatID: 1}

	err := bot.SendError(errors.New("boom"))

	assert.EqualError(t, err, "429 Too Many Requests")
	require.Len(t, fake.sent, 1)
	assert.Equal(t, "❌ Error: boom", fake.sent[0].Text)
}
