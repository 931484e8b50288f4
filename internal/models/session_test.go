package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStackIsLIFO(t *testing.T) {
	s := NewSession(1, 10)

	_, ok := s.Pop()
	assert.False(t, ok, "пустой стек")

	s.Push(ActionSetTimeZone)
	s.Push(ActionAddRecord)

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, ActionAddRecord, top)
	assert.Len(t, s.Actions, 2, "peek ничего не снимает")

	a, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, ActionAddRecord, a)

	a, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, ActionSetTimeZone, a)

	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestScratchReadableExactlyOnce(t *testing.T) {
	s := NewSession(1, 10)
	s.SetScratch(ActionAddRecord, Scratch{Minutes: 45})

	got, ok := s.TakeScratch(ActionAddRecord)
	require.True(t, ok)
	assert.Equal(t, 45, got.Minutes)

	_, ok = s.TakeScratch(ActionAddRecord)
	assert.False(t, ok)
}

func TestValidSettings(t *testing.T) {
	s := NewSession(1, 10)
	assert.False(t, s.ValidSettings())

	offset, period := 3, 30
	s.UTCOffset = &offset
	s.Period = &period
	s.From = &DayTime{Hour: 22}
	assert.False(t, s.ValidSettings(), "без To настройки неполные")

	s.To = &DayTime{Hour: 8}
	assert.True(t, s.ValidSettings())
}

func TestSessionJSONRoundTrip(t *testing.T) {
	s := NewSession(1, 10)
	s.Push(ActionSelectRecord)
	s.SetScratch(ActionSelectRecord, Scratch{Choices: map[int]string{1: "rec-1", 2: "rec-2"}})
	s.SetScratch(ActionUpdateRecord, Scratch{RecordID: "rec-9"})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got Session
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *s, got)
}
