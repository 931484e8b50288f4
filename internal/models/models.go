package models

import "time"

// DayTime is a local time-of-day without a date.
type DayTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Record is a single time-tracking entry.
type Record struct {
	ID          string     `db:"id"`
	UserID      int64      `db:"user_id"`
	Label       string     `db:"label"`
	Date        time.Time  `db:"date"`
	Duration    int        `db:"duration"` // minutes
	IsArchived  bool       `db:"is_archived"`
	ArchiveDate *time.Time `db:"archive_date"` // nil -> still open
}
