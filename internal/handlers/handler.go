package handlers

import (
	"log"
	"strings"
	"time"

	"telegram-time-tracker/internal/bot"
	"telegram-time-tracker/internal/models"
	"telegram-time-tracker/internal/storage"
)

// Handler interprets inbound messages against each user's pending-action
// stack. Sessions are loaded per message and saved after every mutation.
type Handler struct {
	Bot bot.Channel
	DB  storage.Store
	Now func() time.Time // UTC; подменяется в тестах
}

func New(b bot.Channel, db storage.Store) *Handler {
	return &Handler{
		Bot: b,
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// CheckRequests drains the inbound queue and dispatches every message.
// Errors are logged per message, the loop keeps going.
func (h *Handler) CheckRequests() {
	msgs, err := h.Bot.FetchNewMessages()
	if err != nil {
		log.Println("Ошибка чтения сообщений:", err)
		return
	}

	for _, m := range msgs {
		log.Printf("Новое сообщение для бота : %q от пользователя %d.", m.Text, m.UserID)
		if err := h.ProcessMessage(m); err != nil {
			log.Printf("Ошибка обработки сообщения от %d: %v", m.UserID, err)
		}
	}
}

// ProcessMessage runs the FSM for one inbound message: menu keywords win
// unconditionally, otherwise the top of the stack decides how the text is
// interpreted; an empty stack falls back to the main menu.
func (h *Handler) ProcessMessage(m bot.Message) error {
	sess, err := h.userData(m.UserID, m.ChatID)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(m.Text)) {
	case cmdMenu:
		return h.sendMainMenu(sess.ChatID)
	case cmdPeriod:
		return h.periodMenu(sess)
	case cmdYesterday:
		yesterday := h.Now().AddDate(0, 0, -1)
		return h.showTasks(sess, &yesterday)
	case cmdToday:
		return h.showTasks(sess, nil)
	case cmdTimeZone:
		return h.timeZoneMenu(sess)
	case cmdNotDisturb:
		return h.notDisturbMenu(sess)
	case cmdUpdate:
		return h.selectRecordMenu(sess)
	case cmdSettings:
		return h.settingsMenu(sess)
	case cmdReport:
		return h.reportsMenu(sess)
	}

	action, ok := sess.Pop()
	if !ok {
		return h.sendMainMenu(sess.ChatID)
	}
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}

	switch action {
	case models.ActionAddRecord:
		return h.addRecord(sess, m.Text)
	case models.ActionUpdateRecord:
		return h.updateRecord(sess, m.Text)
	case models.ActionSetNotDisturb:
		return h.setNotDisturb(sess, m.Text)
	case models.ActionSetCheckWordsPeriod:
		return h.setPeriod(sess, m.Text)
	case models.ActionSetTimeZone:
		return h.setTimeZone(sess, m.Text)
	case models.ActionSelectRecord:
		return h.selectRecord(sess, m.Text)
	}
	return h.sendMainMenu(sess.ChatID)
}

// userData loads the session, creating it on the first inbound message.
// Только входящее сообщение знает chatId, поэтому планировщик сессий не
// создаёт никогда.
func (h *Handler) userData(userID, chatID int64) (*models.Session, error) {
	sess, err := h.DB.Session(userID)
	if err != nil || sess != nil {
		return sess, err
	}

	sess = models.NewSession(userID, chatID)
	if err := h.DB.SaveSession(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (h *Handler) sendMainMenu(chatID int64) error {
	return h.Bot.SendChoices(chatID, textChooseAction, menuMain, false, true)
}
