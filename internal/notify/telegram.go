package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bilalahmed15/sales-navigator/internal/config"
)

// Reporter pushes run outcomes to Telegram. A nil Reporter is valid and
// does nothing, so callers never have to branch on whether reporting is
// configured.
type Reporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewReporter returns nil when no Telegram token is configured.
func NewReporter(cfg *config.Config) (*Reporter, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &Reporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

// ExtractionFinished reports a completed run.
func (r *Reporter) ExtractionFinished(filename string, count int) error {
	text := fmt.Sprintf(
		"📦 <b>Lead extraction finished</b>\n"+
			"📄 %s\n"+
			"👥 %d leads",
		filename,
		count,
	)
	return r.send(text)
}

// RunFailed reports a failed run.
func (r *Reporter) RunFailed(cause string) error {
	return r.send(fmt.Sprintf("⚠️ <b>Lead extraction failed</b>:\n%s", cause))
}

func (r *Reporter) send(text string) error {
	if r == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := r.bot.Send(msg)
	return err
}
