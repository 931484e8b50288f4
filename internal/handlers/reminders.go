package handlers

import (
	"fmt"
	"strings"
	"time"

	"telegram-time-tracker/internal/models"
	"telegram-time-tracker/internal/report"
)

// Outbound pieces of the reminder loop. The per-tick decision procedure lives
// in internal/scheduler; it calls back here for everything that talks to the
// user or mutates the session.

// ResolvePendingAdd force-answers a stale AddRecord prompt with the
// "unspecified" sentinel label. A top-of-stack of any other kind is pushed
// back untouched.
func (h *Handler) ResolvePendingAdd(sess *models.Session) error {
	if action, ok := sess.Pop(); ok && action != models.ActionAddRecord {
		sess.Push(action)
		return h.DB.SaveSession(sess)
	}
	return h.addRecord(sess, labelUnspecified)
}

// AnnounceFirst sends the day's opening message: the user is told when the
// first question will arrive. Both timestamps start counting from now.
func (h *Handler) AnnounceFirst(sess *models.Session, minutes int, now time.Time) error {
	text := fmt.Sprintf("Спрошу вас через %s о том - что вы успели сделать", minutesText(minutes, false))
	if err := h.Bot.SendText(sess.ChatID, text); err != nil {
		return err
	}

	sess.LastPromptAt = &now
	sess.LastAnswerAt = &now
	sess.FirstMessageToday = false
	return h.DB.SaveSession(sess)
}

// SendPrompt asks what the user has been doing for the last N minutes,
// pushing AddRecord with the interval stashed so the answer inherits it.
// Today's distinct answers become quick-reply buttons when there are any.
func (h *Handler) SendPrompt(sess *models.Session, minutes int, now time.Time) error {
	sess.Push(models.ActionAddRecord)
	sess.SetScratch(models.ActionAddRecord, models.Scratch{Minutes: minutes})

	question := fmt.Sprintf("Чем вы занимались %s ?", minutesText(minutes, true))

	choices, err := h.todayAnswers(sess.UserID)
	if err != nil {
		return err
	}
	if len(choices) > 0 {
		err = h.Bot.SendChoices(sess.ChatID,
			question+" Выберите из допустимых вариантов или напишите свой", choices, false, true)
	} else {
		err = h.Bot.SendText(sess.ChatID, question)
	}
	if err != nil {
		return err
	}

	sess.LastPromptAt = &now
	return h.DB.SaveSession(sess)
}

// ShowRollup sends the day summary produced during archival.
func (h *Handler) ShowRollup(sess *models.Session, records []models.Record) error {
	if err := h.Bot.SendText(sess.ChatID, report.Rollup(records)); err != nil {
		return err
	}
	return h.sendMainMenu(sess.ChatID)
}

// todayAnswers collects the distinct case-folded labels of the open records.
func (h *Handler) todayAnswers(userID int64) ([]string, error) {
	records, err := h.DB.OpenRecords(userID)
	if err != nil {
		return nil, err
	}

	var res []string
	seen := map[string]bool{}
	for _, r := range records {
		if r.Label == "" {
			continue
		}
		name := strings.ToLower(r.Label)
		if !seen[name] {
			seen[name] = true
			res = append(res, name)
		}
	}
	return res, nil
}
