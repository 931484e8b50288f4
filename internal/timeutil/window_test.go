package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"telegram-time-tracker/internal/models"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
}

func dt(hour, minute int) *models.DayTime {
	return &models.DayTime{Hour: hour, Minute: minute}
}

func intPtr(v int) *int { return &v }

func TestInDoNotDisturb_MissingSettings(t *testing.T) {
	now := at(12, 0)
	assert.True(t, InDoNotDisturb(nil, dt(10, 0), intPtr(0), now))
	assert.True(t, InDoNotDisturb(dt(18, 0), nil, intPtr(0), now))
	assert.True(t, InDoNotDisturb(dt(18, 0), dt(10, 0), nil, now))
}

func TestInDoNotDisturb_WrapsMidnight(t *testing.T) {
	from, to := dt(18, 0), dt(10, 0)
	zero := intPtr(0)

	assert.True(t, InDoNotDisturb(from, to, zero, at(22, 30)))
	assert.True(t, InDoNotDisturb(from, to, zero, at(9, 0)))
	assert.False(t, InDoNotDisturb(from, to, zero, at(11, 0)))
	assert.True(t, InDoNotDisturb(from, to, zero, at(18, 0)), "граница начала входит в окно")
	assert.True(t, InDoNotDisturb(from, to, zero, at(9, 59)))
	assert.False(t, InDoNotDisturb(from, to, zero, at(10, 0)), "граница конца в окно не входит")
}

func TestInDoNotDisturb_Forward(t *testing.T) {
	from, to := dt(9, 0), dt(18, 0)
	zero := intPtr(0)

	assert.False(t, InDoNotDisturb(from, to, zero, at(8, 59)))
	assert.True(t, InDoNotDisturb(from, to, zero, at(9, 0)))
	assert.True(t, InDoNotDisturb(from, to, zero, at(12, 0)))
	assert.True(t, InDoNotDisturb(from, to, zero, at(17, 59)))
	assert.False(t, InDoNotDisturb(from, to, zero, at(18, 0)))
}

func TestInDoNotDisturb_SameHour(t *testing.T) {
	from, to := dt(9, 10), dt(9, 40)
	zero := intPtr(0)

	assert.True(t, InDoNotDisturb(from, to, zero, at(9, 25)))
	assert.False(t, InDoNotDisturb(from, to, zero, at(9, 5)))
	assert.False(t, InDoNotDisturb(from, to, zero, at(10, 0)))
}

// Вырожденный случай from.Minute >= to.Minute при равных часах: окно
// инвертируется и покрывает весь день, кроме узкой полосы минут.
func TestInDoNotDisturb_SameHourInverted(t *testing.T) {
	from, to := dt(9, 40), dt(9, 10)
	zero := intPtr(0)

	assert.False(t, InDoNotDisturb(from, to, zero, at(9, 20)))
	assert.True(t, InDoNotDisturb(from, to, zero, at(9, 5)))
	assert.True(t, InDoNotDisturb(from, to, zero, at(9, 40)))
	assert.True(t, InDoNotDisturb(from, to, zero, at(12, 0)))
}

func TestInDoNotDisturb_OffsetShiftsLocalClock(t *testing.T) {
	from, to := dt(18, 0), dt(10, 0)

	// 20:00 UTC при +3 — это 23:00 по местному, внутри окна.
	assert.True(t, InDoNotDisturb(from, to, intPtr(3), at(20, 0)))
	// 08:00 UTC при +3 — это 11:00 по местному, вне окна.
	assert.False(t, InDoNotDisturb(from, to, intPtr(3), at(8, 0)))
}
