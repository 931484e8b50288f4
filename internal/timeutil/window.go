package timeutil

import (
	"time"

	"telegram-time-tracker/internal/models"
)

// InDoNotDisturb reports whether the user's local wall clock is inside the
// do-not-disturb window. Only hour and minute matter; the local clock is
// nowUTC shifted by the whole-hour offset. Missing settings mean "do not
// disturb", so an unconfigured user is never prompted.
func InDoNotDisturb(from, to *models.DayTime, utcOffset *int, nowUTC time.Time) bool {
	if from == nil || to == nil || utcOffset == nil {
		return true
	}

	local := nowUTC.Add(time.Duration(*utcOffset) * time.Hour)
	hour := local.Hour()
	minute := local.Minute()

	switch {
	case from.Hour == to.Hour:
		if from.Minute < to.Minute {
			return hour == from.Hour && minute >= from.Minute && minute < to.Minute
		}
		// Вырожденный случай from.Minute >= to.Minute: окно покрывает весь
		// день, кроме [to.Minute, from.Minute) внутри этого часа. Границы
		// несимметричны относительно прямого случая — поведение сохранено
		// как есть, см. DESIGN.md.
		if hour == from.Hour && minute >= to.Minute && minute < from.Minute {
			return false
		}
		return true

	case from.Hour < to.Hour:
		switch hour {
		case from.Hour:
			return minute >= from.Minute
		case to.Hour:
			return minute < to.Minute
		default:
			return hour > from.Hour && hour < to.Hour
		}

	default: // from.Hour > to.Hour, окно через полночь
		switch hour {
		case from.Hour:
			return minute >= from.Minute
		case to.Hour:
			return minute < to.Minute
		default:
			return hour > from.Hour || hour < to.Hour
		}
	}
}
