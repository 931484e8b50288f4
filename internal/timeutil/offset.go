package timeutil

import (
	"math"
	"time"
)

// InferUTCOffset converts a clock reading the user typed (parsed as if it
// were UTC) into a whole-hour UTC offset. The raw difference rarely lands on
// an exact hour because of the delay between the user reading their clock and
// the message being processed, so the result is rounded to the nearest of
// {h-1, h, h+1} by minute distance; ties keep the truncated hour.
func InferUTCOffset(local, nowUTC time.Time) int {
	diff := local.Sub(nowUTC)
	offsetHour := int(diff.Hours()) // усечение к нулю
	offsetMinutes := diff.Minutes()
	return nearestHour(offsetHour, offsetMinutes)
}

func nearestHour(offsetHour int, offsetMinutes float64) int {
	realValue := float64(offsetHour) * 60
	greatValue := float64(offsetHour+1) * 60
	lessValue := float64(offsetHour-1) * 60

	am := math.Abs(offsetMinutes)
	if math.Abs(am-math.Abs(greatValue)) < math.Abs(am-math.Abs(realValue)) {
		return offsetHour + 1
	}
	if math.Abs(am-math.Abs(lessValue)) < math.Abs(am-math.Abs(realValue)) {
		return offsetHour - 1
	}
	return offsetHour
}
