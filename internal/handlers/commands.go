package handlers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"telegram-time-tracker/internal/models"
	"telegram-time-tracker/internal/report"
)

func (h *Handler) settingsMenu(sess *models.Session) error {
	return h.Bot.SendChoices(sess.ChatID, textChooseAction, menuSettings, false, true)
}

// reportsMenu ("что было") is gated on complete settings.
func (h *Handler) reportsMenu(sess *models.Session) error {
	if !sess.ValidSettings() {
		if err := h.Bot.SendText(sess.ChatID, textSetupFirst); err != nil {
			return err
		}
		return h.sendMainMenu(sess.ChatID)
	}
	return h.Bot.SendChoices(sess.ChatID, textChooseAction, menuReports, false, true)
}

// showTasks lists the distinct tasks of a day: open records when day is nil,
// the archive of that day otherwise.
func (h *Handler) showTasks(sess *models.Session, day *time.Time) error {
	var (
		records []models.Record
		err     error
	)
	if day == nil {
		records, err = h.DB.OpenRecords(sess.UserID)
	} else {
		records, err = h.DB.ArchivedRecords(sess.UserID, *day)
	}
	if err != nil {
		return err
	}

	if err := h.Bot.SendText(sess.ChatID, report.TaskList(records)); err != nil {
		return err
	}
	return h.sendMainMenu(sess.ChatID)
}

func (h *Handler) periodMenu(sess *models.Session) error {
	sess.Push(models.ActionSetCheckWordsPeriod)
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}
	return h.Bot.SendText(sess.ChatID, textEnterPeriod)
}

func (h *Handler) timeZoneMenu(sess *models.Session) error {
	sess.Push(models.ActionSetTimeZone)
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}
	return h.Bot.SendText(sess.ChatID, textEnterClock)
}

// notDisturbMenu needs a configured offset first: the window bounds are local
// times and mean nothing without it.
func (h *Handler) notDisturbMenu(sess *models.Session) error {
	if sess.UTCOffset == nil {
		if err := h.Bot.SendText(sess.ChatID, textNoTimeZone); err != nil {
			return err
		}
		return h.timeZoneMenu(sess)
	}

	sess.Push(models.ActionSetNotDisturb)
	if err := h.DB.SaveSession(sess); err != nil {
		return err
	}
	return h.Bot.SendText(sess.ChatID, textEnterWindow)
}

// selectRecordMenu ("обновить") lists the open records, remembers the
// displayed index of each id and waits for a numeric choice.
func (h *Handler) selectRecordMenu(sess *models.Session) error {
	records, err := h.DB.OpenRecords(sess.UserID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		if err := h.Bot.SendText(sess.ChatID, textNoRecords); err != nil {
			return err
		}
		return h.sendMainMenu(sess.ChatID)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })

	lines := []string{textRecordsHeader}
	var choices []string
	pairs := map[int]string{}

	for i, r := range records {
		idx := i + 1
		lines = append(lines, fmt.Sprintf("%d. %s", idx, strings.ToLower(r.Label)))
		choices = append(choices, strconv.Itoa(idx))
		pairs[idx] = r.ID
	}

	if err := h.Bot.SendText(sess.ChatID, strings.Join(lines, "\n")); err != nil {
		return err
	}
	if err := h.Bot.SendChoices(sess.ChatID, textChooseRecord, choices, false, true); err != nil {
		return err
	}

	sess.Push(models.ActionSelectRecord)
	sess.SetScratch(models.ActionSelectRecord, models.Scratch{Choices: pairs})
	return h.DB.SaveSession(sess)
}
