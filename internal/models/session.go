package models

import "time"

// Action says what kind of answer the bot is waiting for.
type Action int

const (
	ActionAddRecord Action = iota
	ActionGetRecords
	ActionSetTimeZone
	ActionSetNotDisturb
	ActionSetCheckWordsPeriod
	ActionUpdateRecord
	ActionSelectRecord
)

// Scratch carries data from the moment a prompt is pushed until its answer is
// processed. One field per payload kind; unused fields stay zero.
type Scratch struct {
	Minutes  int            `json:"minutes,omitempty"`  // AddRecord: elapsed interval to write into the record
	RecordID string         `json:"recordId,omitempty"` // UpdateRecord: target record
	Choices  map[int]string `json:"choices,omitempty"`  // SelectRecord: displayed index -> record id
}

// Session is the persisted conversational state of one user. It is stored as
// a JSON blob, loaded by value per message/tick and saved back after every
// mutation; nothing holds it in memory between calls.
type Session struct {
	UserID int64 `json:"userId"`
	ChatID int64 `json:"chatId"`

	// Actions is a LIFO stack, last element is the top. The top determines
	// how the next inbound message is interpreted.
	Actions []Action           `json:"actions,omitempty"`
	Scratch map[Action]Scratch `json:"scratch,omitempty"`

	UTCOffset *int     `json:"utcOffset,omitempty"` // hours
	Period    *int     `json:"period,omitempty"`    // minutes between prompts
	From      *DayTime `json:"from,omitempty"`      // do-not-disturb start, local time
	To        *DayTime `json:"to,omitempty"`        // do-not-disturb end, local time

	FirstMessageToday bool       `json:"firstMessageToday"`
	LastPromptAt      *time.Time `json:"lastPromptAt,omitempty"` // UTC
	LastAnswerAt      *time.Time `json:"lastAnswerAt,omitempty"` // UTC
}

func NewSession(userID, chatID int64) *Session {
	return &Session{
		UserID:            userID,
		ChatID:            chatID,
		FirstMessageToday: true,
		Scratch:           map[Action]Scratch{},
	}
}

// ValidSettings reports whether the user configured everything the reminder
// loop needs. Until then no prompts are sent.
func (s *Session) ValidSettings() bool {
	return s.From != nil && s.To != nil && s.Period != nil && s.UTCOffset != nil
}

func (s *Session) Push(a Action) {
	s.Actions = append(s.Actions, a)
}

func (s *Session) Pop() (Action, bool) {
	if len(s.Actions) == 0 {
		return 0, false
	}
	a := s.Actions[len(s.Actions)-1]
	s.Actions = s.Actions[:len(s.Actions)-1]
	return a, true
}

func (s *Session) Peek() (Action, bool) {
	if len(s.Actions) == 0 {
		return 0, false
	}
	return s.Actions[len(s.Actions)-1], true
}

func (s *Session) SetScratch(a Action, v Scratch) {
	if s.Scratch == nil {
		s.Scratch = map[Action]Scratch{}
	}
	s.Scratch[a] = v
}

// TakeScratch removes and returns the payload stashed for a. The payload is
// readable exactly once, while the popped action is being answered.
func (s *Session) TakeScratch(a Action) (Scratch, bool) {
	v, ok := s.Scratch[a]
	if ok {
		delete(s.Scratch, a)
	}
	return v, ok
}
