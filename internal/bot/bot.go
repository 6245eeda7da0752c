package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"parking-bot/config"
	"parking-bot/internal/api"
	"parking-bot/internal/session"
)

type ParkingBot struct {
	botAPI   *tgbotapi.BotAPI
	client   *api.Client
	session  *session.Manager
	log      *zap.Logger
	currency string
	adminID  int64

	states map[int64]*chatState
}

func New(cfg *config.Config, client *api.Client, sess *session.Manager, log *zap.Logger) (*ParkingBot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &ParkingBot{
		botAPI:   botAPI,
		client:   client,
		session:  sess,
		log:      log,
		currency: cfg.Currency,
		adminID:  cfg.AdminChatID,
		states:   make(map[int64]*chatState),
	}, nil
}

// Start runs the update loop. Updates are handled one at a time on this
// goroutine, so chat state needs no locking.
func (b *ParkingBot) Start() {
	b.log.Info("authorized", zap.String("bot", b.botAPI.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleMessage(update.Message)
		} else if update.CallbackQuery != nil {
			b.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func (b *ParkingBot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.botAPI.Send(msg); err != nil {
		b.log.Warn("send failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}

func (b *ParkingBot) sendWithKeyboard(chatID int64, text string, keyboard any) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	if _, err := b.botAPI.Send(msg); err != nil {
		b.log.Warn("send failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}

func (b *ParkingBot) sendDocument(chatID int64, name string, data []byte) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := b.botAPI.Send(doc); err != nil {
		b.log.Warn("send document failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}

// failure surfaces one generic notification per failed call.
func (b *ParkingBot) failure(chatID int64, what string, err error) {
	b.log.Warn(what+" failed", zap.Int64("chat", chatID), zap.Error(err))
	if b.session.HandleAuthError(context.Background(), err) {
		b.send(chatID, "🔒 Your session has expired. Please /login again.")
		return
	}
	b.send(chatID, "⚠️ "+what+" failed. Please try again.")
}
