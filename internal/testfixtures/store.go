package testfixtures

import (
	"encoding/json"
	"sort"
	"time"

	"telegram-time-tracker/internal/models"
)

const dayLayout = "2006-01-02"

// MemStore is an in-memory storage.Store. Sessions go through a JSON
// round-trip on save and load, mirroring how the sqlite store hands out
// detached copies.
type MemStore struct {
	sessions map[int64][]byte
	records  []models.Record
}

func NewMemStore() *MemStore {
	return &MemStore{sessions: map[int64][]byte{}}
}

func (m *MemStore) SaveSession(s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.sessions[s.UserID] = data
	return nil
}

func (m *MemStore) Session(userID int64) (*models.Session, error) {
	data, ok := m.sessions[userID]
	if !ok {
		return nil, nil
	}
	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil
	}
	return &s, nil
}

func (m *MemStore) UserIDs() ([]int64, error) {
	ids := make([]int64, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *MemStore) AddRecord(r *models.Record) error {
	m.records = append(m.records, *r)
	return nil
}

func (m *MemStore) UpdateRecordLabel(userID int64, recordID, label string) error {
	for i := range m.records {
		if m.records[i].UserID == userID && m.records[i].ID == recordID {
			m.records[i].Label = label
		}
	}
	return nil
}

func (m *MemStore) OpenRecords(userID int64) ([]models.Record, error) {
	var res []models.Record
	for _, r := range m.records {
		if r.UserID == userID && !r.IsArchived {
			res = append(res, r)
		}
	}
	return res, nil
}

func (m *MemStore) ArchivedRecords(userID int64, day time.Time) ([]models.Record, error) {
	key := day.UTC().Format(dayLayout)
	var res []models.Record
	for _, r := range m.records {
		if r.UserID == userID && r.ArchiveDate != nil && r.ArchiveDate.Format(dayLayout) == key {
			res = append(res, r)
		}
	}
	return res, nil
}

func (m *MemStore) ArchiveOpenRecords(userID int64, day time.Time) error {
	archived, err := time.ParseInLocation(dayLayout, day.UTC().Format(dayLayout), time.UTC)
	if err != nil {
		return err
	}
	for i := range m.records {
		if m.records[i].UserID == userID && !m.records[i].IsArchived {
			m.records[i].IsArchived = true
			t := archived
			m.records[i].ArchiveDate = &t
		}
	}
	return nil
}

// AllRecords returns everything the store holds, for assertions.
func (m *MemStore) AllRecords() []models.Record {
	res := make([]models.Record, len(m.records))
	copy(res, m.records)
	return res
}
