package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInferUTCOffset(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		diff time.Duration
		want int
	}{
		{"exact hours", 3 * time.Hour, 3},
		{"zero", 0, 0},
		{"150 minutes rounds to the truncated hour on a tie", 150 * time.Minute, 2},
		{"90 minutes keeps the truncated hour", 90 * time.Minute, 1},
		{"45 minutes rounds up", 45 * time.Minute, 1},
		{"30 minutes is a tie with zero", 30 * time.Minute, 0},
		{"negative 150 minutes", -150 * time.Minute, -2},
		// Сравнение идёт по модулям, поэтому -45 минут при усечённом нуле
		// округляется к +1, а не к -1. Поведение сохранено намеренно.
		{"negative 45 minutes", -45 * time.Minute, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InferUTCOffset(now.Add(tc.diff), now))
		})
	}
}
