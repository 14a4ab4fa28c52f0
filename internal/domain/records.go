package domain

import "strings"

// Category is the closed set of expense categories the model is asked to
// choose from. Values are stored as-is.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryEducation     Category = "Education"
	CategoryHealth        Category = "Health"
	CategoryElectronics   Category = "Electronics"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category, in the order presented to the model.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryEducation,
	CategoryHealth,
	CategoryElectronics,
	CategoryShopping,
	CategoryBills,
	CategoryOther,
}

// NormalizeCategory maps a raw model answer onto the closed set, defaulting
// to Other for anything unknown. Matching ignores case since models do not
// reliably preserve the requested capitalization.
func NormalizeCategory(raw string) Category {
	raw = strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(string(c), raw) {
			return c
		}
	}
	return CategoryOther
}

// Recurrence tags for income records.
const (
	IncomeMonthly = "monthly"
	IncomeDaily   = "daily"
)

// Expense is one confirmed, persisted expense record. Immutable once written.
type Expense struct {
	ID          int64
	UserID      int64
	Amount      float64
	Category    Category
	Description string
	Created     Instant
}

// Income is one confirmed, persisted income record.
type Income struct {
	ID          int64
	UserID      int64
	Amount      float64
	Currency    string
	Description string
	Recurrence  string
	Created     Instant
}

// Reminder is a persisted reminder. RemindAt is the trigger instant; Sent
// flips exactly once when the exact-time notification is delivered.
type Reminder struct {
	ID       int64
	UserID   int64
	ChatID   int64
	Message  string
	RemindAt Instant
	Sent     bool
	Created  Instant
}

// ExpenseItem is one extracted-but-unconfirmed expense produced by the
// extraction gateway. Currency here is advisory: it is shown during
// confirmation but the persisted record is labeled with the user's stored
// currency preference.
type ExpenseItem struct {
	Amount      float64
	Currency    string
	Category    Category
	Description string
	Advice      string
}

// IncomeItem is one extracted-but-unconfirmed income.
type IncomeItem struct {
	Amount      float64
	Currency    string
	Description string
	Recurrence  string
}
