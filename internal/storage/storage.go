package storage

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"telegram-time-tracker/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

const dayLayout = "2006-01-02"

// Store is the persistence contract consumed by the handlers and the
// reminder loop. *DB is the sqlite implementation.
type Store interface {
	AddRecord(r *models.Record) error
	UpdateRecordLabel(userID int64, recordID, label string) error
	OpenRecords(userID int64) ([]models.Record, error)
	ArchivedRecords(userID int64, day time.Time) ([]models.Record, error)
	ArchiveOpenRecords(userID int64, day time.Time) error
	SaveSession(s *models.Session) error
	Session(userID int64) (*models.Session, error)
	UserIDs() ([]int64, error)
}

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- sessions --------------------------------------------------------

func (d *DB) SaveSession(s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = d.Exec(`
        INSERT INTO sessions (user_id, data) VALUES (?,?)
        ON CONFLICT(user_id) DO UPDATE SET data=excluded.data
    `, s.UserID, string(data))
	return err
}

func (d *DB) Session(userID int64) (*models.Session, error) {
	var data string
	err := d.QueryRow(`SELECT data FROM sessions WHERE user_id=?`, userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s models.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		// Битый блоб ведёт себя как отсутствующий пользователь.
		log.Printf("Не удалось разобрать сессию пользователя %d: %v", userID, err)
		return nil, nil
	}
	return &s, nil
}

func (d *DB) UserIDs() ([]int64, error) {
	rows, err := d.Query(`SELECT user_id FROM sessions ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, rows.Err()
}

// ---------- records ---------------------------------------------------------

func (d *DB) AddRecord(r *models.Record) error {
	_, err := d.Exec(`
        INSERT INTO records (id, user_id, label, date, duration, is_archived)
        VALUES (?,?,?,?,?,0)
    `, r.ID, r.UserID, r.Label, r.Date.Unix(), r.Duration)
	return err
}

func (d *DB) UpdateRecordLabel(userID int64, recordID, label string) error {
	_, err := d.Exec(`UPDATE records SET label=? WHERE id=? AND user_id=?`,
		label, recordID, userID)
	return err
}

func (d *DB) OpenRecords(userID int64) ([]models.Record, error) {
	return d.queryRecords(`
        SELECT id, user_id, label, date, duration, is_archived, archive_date
        FROM records WHERE user_id=? AND is_archived=0 ORDER BY date`, userID)
}

func (d *DB) ArchivedRecords(userID int64, day time.Time) ([]models.Record, error) {
	return d.queryRecords(`
        SELECT id, user_id, label, date, duration, is_archived, archive_date
        FROM records WHERE user_id=? AND archive_date=? ORDER BY date`,
		userID, day.UTC().Format(dayLayout))
}

// ArchiveOpenRecords flips every open record of the user into the archive of
// the given day. Single statement, so the batch is atomic.
func (d *DB) ArchiveOpenRecords(userID int64, day time.Time) error {
	_, err := d.Exec(`
        UPDATE records SET is_archived=1, archive_date=?
        WHERE user_id=? AND is_archived=0
    `, day.UTC().Format(dayLayout), userID)
	return err
}

func (d *DB) queryRecords(query string, args ...any) ([]models.Record, error) {
	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.Record
	for rows.Next() {
		var r models.Record
		var ts int64
		var archiveDay sql.NullString
		if err := rows.Scan(&r.ID, &r.UserID, &r.Label, &ts, &r.Duration, &r.IsArchived, &archiveDay); err != nil {
			return nil, err
		}
		r.Date = time.Unix(ts, 0).UTC()
		if archiveDay.Valid {
			t, err := time.ParseInLocation(dayLayout, archiveDay.String, time.UTC)
			if err != nil {
				return nil, err
			}
			r.ArchiveDate = &t
		}
		res = append(res, r)
	}
	return res, rows.Err()
}
