package scheduler

import (
	"log"
	"time"

	"telegram-time-tracker/internal/handlers"
	"telegram-time-tracker/internal/models"
	"telegram-time-tracker/internal/storage"
	"telegram-time-tracker/internal/timeutil"
)

// fallbackMinutes is the interval quoted when neither timestamp nor period is
// available (~ 6 days).
const fallbackMinutes = 8880

// Tick runs the reminder pass over every known user in id order. The pass
// stops after the first user that required a state-changing action, so one
// tick performs at most one prompt; fairness across users comes from the tick
// frequency.
func Tick(h *handlers.Handler, db storage.Store) error {
	ids, err := db.UserIDs()
	if err != nil {
		return err
	}

	now := h.Now()
	for _, id := range ids {
		acted, err := processUser(h, db, id, now)
		if err != nil {
			log.Printf("Ошибка напоминания для пользователя %d: %v", id, err)
			continue
		}
		if acted {
			return nil
		}
	}
	return nil
}

// processUser decides what, if anything, to do for one user on this tick.
// It reports acted=true when the tick must not go on to the next user.
func processUser(h *handlers.Handler, db storage.Store, userID int64, now time.Time) (bool, error) {
	sess, err := db.Session(userID)
	if err != nil || sess == nil {
		return false, err
	}

	if !sess.ValidSettings() {
		return false, nil
	}

	// В окне "не беспокоить" день закрывается, новые вопросы не шлются.
	if timeutil.InDoNotDisturb(sess.From, sess.To, sess.UTCOffset, now) {
		return false, closeDay(h, db, sess, now)
	}

	var sincePrompt *int
	if sess.LastPromptAt != nil {
		m := int(now.Sub(*sess.LastPromptAt).Minutes())
		if m < *sess.Period {
			return false, nil // ещё рано
		}
		sincePrompt = &m
	}

	if len(sess.Actions) > 0 {
		// Вопрос уже висит без ответа. Просроченный AddRecord закрываем
		// сами, на остальные просто не наслаиваем новых вопросов.
		if top, _ := sess.Peek(); top == models.ActionAddRecord {
			return true, h.ResolvePendingAdd(sess)
		}
		return true, nil
	}

	minutes := promptInterval(sess, sincePrompt, now)

	if sess.FirstMessageToday {
		return true, h.AnnounceFirst(sess, minutes, now)
	}
	return true, h.SendPrompt(sess, minutes, now)
}

// promptInterval is the elapsed span quoted in the question: the larger of
// "since last prompt" and "since last answer", falling back to the period and
// then to a constant when the user has no history yet.
func promptInterval(sess *models.Session, sincePrompt *int, now time.Time) int {
	minutes := sincePrompt
	if minutes != nil && sess.LastAnswerAt != nil {
		if m := int(now.Sub(*sess.LastAnswerAt).Minutes()); m > *minutes {
			minutes = &m
		}
	}

	switch {
	case minutes != nil:
		return *minutes
	case sess.Period != nil:
		return *sess.Period
	default:
		return fallbackMinutes
	}
}

// closeDay rolls an open day up: the summary is sent, every open record is
// archived as one batch and the session is reset for tomorrow. A day that
// never started is left alone, which makes the roll-up idempotent.
func closeDay(h *handlers.Handler, db storage.Store, sess *models.Session, now time.Time) error {
	if sess.FirstMessageToday {
		return nil
	}

	records, err := db.OpenRecords(sess.UserID)
	if err != nil {
		return err
	}
	if err := db.ArchiveOpenRecords(sess.UserID, now); err != nil {
		return err
	}
	if err := h.ShowRollup(sess, records); err != nil {
		return err
	}

	sess.LastPromptAt = nil
	sess.LastAnswerAt = nil
	sess.FirstMessageToday = true
	return db.SaveSession(sess)
}
