package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/classes_api/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// MessageSender часть *bot.Bot, которая нужна уведомлениям
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// SendTimeout ограничивает отправку, ответ клиенту ждёт её завершения
const SendTimeout = 3 * time.Second

// Telegram отправляет уведомления в один чат (например, канал модераторов)
type Telegram struct {
	sender MessageSender
	chatID int64
	logger *zap.Logger
}

// NewTelegram создаёт бота по токену без запроса getMe: недоступный Telegram не мешает старту
func NewTelegram(token string, chatID int64, logger *zap.Logger) (*Telegram, error) {
	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return NewTelegramWithSender(b, chatID, logger), nil
}

func NewTelegramWithSender(sender MessageSender, chatID int64, logger *zap.Logger) *Telegram {
	return &Telegram{
		sender: sender,
		chatID: chatID,
		logger: logger,
	}
}

func (t *Telegram) ClassRegistered(ctx context.Context, user *model.User, class *model.Class, windows []*model.ScheduleWindow) error {
	ctx, cancel := context.WithTimeout(ctx, SendTimeout)
	defer cancel()

	_, err := t.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    t.chatID,
		Text:      FormatClassRegistered(user, class, windows),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("send class notification: %w", err)
	}

	t.logger.Debug("Class notification sent",
		zap.Int64("class_id", class.ID),
		zap.Int64("chat_id", t.chatID))

	return nil
}
