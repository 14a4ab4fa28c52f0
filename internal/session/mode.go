package session

// Mode is the user's active input mode. It decides which interpreter the
// next free-form message is handed to.
type Mode int

const (
	// ModeNone means free-form messages get the default treatment
	// (multi-expense extraction).
	ModeNone Mode = iota
	ModeExpense
	ModeIncome
	ModeReminder
	ModeReport
)

func (m Mode) String() string {
	switch m {
	case ModeExpense:
		return "expense"
	case ModeIncome:
		return "income"
	case ModeReminder:
		return "reminder"
	case ModeReport:
		return "report"
	default:
		return "none"
	}
}

// Modes tracks the active mode per user. The zero value of the underlying
// store means ModeNone, so absent entries behave correctly.
type Modes struct {
	store *Store[Mode]
}

// NewModes creates an empty mode tracker.
func NewModes() *Modes {
	return &Modes{store: NewStore[Mode]()}
}

// Get returns the user's active mode, ModeNone when never set.
func (m *Modes) Get(userID int64) Mode {
	mode, _ := m.store.Get(userID)
	return mode
}

// Set switches the user into mode.
func (m *Modes) Set(userID int64, mode Mode) {
	m.store.Set(userID, mode)
}

// Clear returns the user to ModeNone.
func (m *Modes) Clear(userID int64) {
	m.store.Delete(userID)
}
