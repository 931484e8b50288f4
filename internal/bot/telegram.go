package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram implements Channel on top of the Bot API long-poll endpoint.
type Telegram struct {
	api    *tgbotapi.BotAPI
	offset int
}

func New(token string) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{api: api}, nil
}

func (t *Telegram) FetchNewMessages() ([]Message, error) {
	cfg := tgbotapi.NewUpdate(t.offset)
	cfg.Timeout = 0 // не блокируемся, опрос идёт по тику планировщика

	updates, err := t.api.GetUpdates(cfg)
	if err != nil {
		return nil, err
	}

	var res []Message
	for _, upd := range updates {
		if upd.UpdateID >= t.offset {
			t.offset = upd.UpdateID + 1
		}
		if upd.Message == nil || upd.Message.From == nil {
			continue
		}
		res = append(res, Message{
			UserID: upd.Message.From.ID,
			ChatID: upd.Message.Chat.ID,
			Text:   upd.Message.Text,
		})
	}
	return res, nil
}

func (t *Telegram) SendText(chatID int64, text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (t *Telegram) SendChoices(chatID int64, text string, options []string, allowMultiple, oneTime bool) error {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(options))
	for _, opt := range options {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(opt)))
	}

	// reply-клавиатура Telegram всегда одиночный выбор, allowMultiple
	// остаётся на совести других транспортов.
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.OneTimeKeyboard = oneTime

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	_, err := t.api.Send(msg)
	return err
}
