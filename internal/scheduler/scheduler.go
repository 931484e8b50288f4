package scheduler

import (
	"log"
	"time"

	"telegram-time-tracker/internal/handlers"
	"telegram-time-tracker/internal/storage"

	"github.com/go-co-op/gocron/v2"
)

// Start registers the polling job: each tick drains inbound messages and
// then runs the reminder pass. Singleton mode keeps ticks from overlapping,
// so at most one handler+scheduler pair touches a user's session at a time.
func Start(h *handlers.Handler, db storage.Store, every time.Duration) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			h.CheckRequests()
			if err := Tick(h, db); err != nil {
				log.Println("Ошибка обработки напоминаний:", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}
