package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"telegram-time-tracker/internal/models"
	"telegram-time-tracker/internal/timeutil"
)

// Period между напоминаниями ограничен сверху: 20 часов.
const maxPeriodMinutes = 20 * 60

// addRecord answers a pending AddRecord prompt: the text becomes the label,
// the duration was stashed when the prompt was sent.
func (h *Handler) addRecord(sess *models.Session, text string) error {
	now := h.Now()
	scratch, _ := sess.TakeScratch(models.ActionAddRecord)

	if err := h.DB.AddRecord(&models.Record{
		ID:       uuid.NewString(),
		UserID:   sess.UserID,
		Label:    text,
		Date:     now,
		Duration: scratch.Minutes,
	}); err != nil {
		return err
	}

	if err := h.Bot.SendText(sess.ChatID, textRecordAdded); err != nil {
		return err
	}

	sess.LastAnswerAt = &now
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}
	return h.sendMainMenu(sess.ChatID)
}

func (h *Handler) updateRecord(sess *models.Session, text string) error {
	scratch, ok := sess.TakeScratch(models.ActionUpdateRecord)
	if !ok || scratch.RecordID == "" {
		if err := h.Bot.SendText(sess.ChatID, textRecordNotFound); err != nil {
			return err
		}
		return h.sendMainMenu(sess.ChatID)
	}

	if err := h.DB.UpdateRecordLabel(sess.UserID, scratch.RecordID, text); err != nil {
		return err
	}
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}

	if err := h.Bot.SendText(sess.ChatID, textRecordUpdated); err != nil {
		return err
	}
	return h.sendMainMenu(sess.ChatID)
}

func (h *Handler) setNotDisturb(sess *models.Session, text string) error {
	from, to, ok := timeutil.ParseClockRange(text)
	if !ok {
		if err := h.Bot.SendText(sess.ChatID, textBadTime); err != nil {
			return err
		}
		return h.notDisturbMenu(sess) // повторный запрос того же ввода
	}

	sess.From = from
	sess.To = to
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}
	return h.Bot.SendText(sess.ChatID, textWindowSet)
}

func (h *Handler) setPeriod(sess *models.Session, text string) error {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || count <= 0 || count >= maxPeriodMinutes {
		if err := h.Bot.SendText(sess.ChatID, textBadMinutes); err != nil {
			return err
		}
		return h.periodMenu(sess)
	}

	sess.Period = &count
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}
	return h.Bot.SendText(sess.ChatID, textPeriodSet)
}

// setTimeZone reads the user's current local clock and infers their offset
// from the difference against the server's UTC clock.
func (h *Handler) setTimeZone(sess *models.Session, text string) error {
	clock, ok := timeutil.ParseClock(text)
	if !ok {
		if err := h.Bot.SendText(sess.ChatID, textBadTime); err != nil {
			return err
		}
		return h.timeZoneMenu(sess)
	}

	now := h.Now()
	local := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour, clock.Minute, 0, 0, time.UTC)
	offset := timeutil.InferUTCOffset(local, now)

	sess.UTCOffset = &offset
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}
	return h.Bot.SendText(sess.ChatID, fmt.Sprintf("Ваш часовой пояс : utc %d", offset))
}

// selectRecord resolves the numeric choice through the index table stashed by
// selectRecordMenu and switches the dialog to entering the new label.
func (h *Handler) selectRecord(sess *models.Session, text string) error {
	scratch, ok := sess.TakeScratch(models.ActionSelectRecord)
	if !ok {
		return h.selectRecordMenu(sess)
	}

	idx, err := strconv.Atoi(strings.TrimSpace(text))
	recordID, found := scratch.Choices[idx]
	if err != nil || !found {
		if err := h.Bot.SendText(sess.ChatID, textBadChoice); err != nil {
			return err
		}
		return h.selectRecordMenu(sess)
	}

	sess.Push(models.ActionUpdateRecord)
	sess.SetScratch(models.ActionUpdateRecord, models.Scratch{RecordID: recordID})
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}
	return h.Bot.SendText(sess.ChatID, textEnterNewLabel)
}
