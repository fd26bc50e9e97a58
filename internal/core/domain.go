package core

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Stable category identifiers. Display names are resolved through the
// i18n table at render time, persisted data never carries a localized string.
const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryEntertainment Category = "entertainment"
	CategoryClothing      Category = "clothing"
	CategoryEducation     Category = "education"
	CategoryIncome        Category = "income"
	CategoryOther         Category = "other"
)

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
	SortHigh   SortOrder = "high"
	SortLow    SortOrder = "low"
)

const (
	NotifInfo    NotificationType = "info"
	NotifSuccess NotificationType = "success"
	NotifWarning NotificationType = "warning"
	NotifDanger  NotificationType = "danger"
)

type (
	TransactionType  string
	Category         string
	SortOrder        string
	NotificationType string

	// Transaction is immutable once created: it is removed or cleared,
	// never edited.
	Transaction struct {
		ID       string          `json:"id"`
		Title    string          `json:"title"`
		Amount   int64           `json:"amount"`
		Date     string          `json:"date"`
		Category Category        `json:"category"`
		Type     TransactionType `json:"type"`
	}

	// BudgetLimit caps monthly spend for a category. One limit per
	// category is the intended usage; the model does not enforce it.
	BudgetLimit struct {
		ID       string   `json:"id"`
		Category Category `json:"category"`
		Limit    int64    `json:"limit"`
	}

	// NotificationItem is an entry in the activity/alert log. AlertTier
	// and AlertCategory form the structured deduplication key for budget
	// alerts and stay empty on plain activity entries.
	NotificationItem struct {
		ID            string           `json:"id"`
		Title         string           `json:"title"`
		Description   string           `json:"description"`
		Type          NotificationType `json:"type"`
		Time          string           `json:"time"`
		Read          bool             `json:"isRead"`
		AlertTier     string           `json:"alertTier,omitempty"`
		AlertCategory Category         `json:"alertCategory,omitempty"`
	}

	Settings struct {
		HideBalance bool      `json:"hideBalance"`
		SortBy      SortOrder `json:"sortBy"`
		DarkMode    bool      `json:"isDarkMode"`
	}

	UserProfile struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
)

var (
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrEmptyTitle      = errors.New("empty title")
	ErrInvalidLimit    = errors.New("budget limit must be positive")
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryBills,
		CategoryEntertainment,
		CategoryClothing,
		CategoryEducation,
		CategoryIncome,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryShopping, CategoryBills,
		CategoryEntertainment, CategoryClothing, CategoryEducation,
		CategoryIncome, CategoryOther:
		return true
	}
	return false
}

// Color returns the chart bar color for the category.
func (c Category) Color() string {
	switch c {
	case CategoryIncome:
		return "#10b981"
	case CategoryOther:
		return "#94a3b8"
	default:
		return "#197fe6"
	}
}

func (s SortOrder) Valid() bool {
	switch s {
	case SortLatest, SortOldest, SortHigh, SortLow:
		return true
	}
	return false
}

func (tx Transaction) Validate() error {
	if tx.Type != Income && tx.Type != Expense {
		return ErrUnknownType
	}
	if !tx.Category.Valid() {
		return ErrUnknownCategory
	}
	if tx.Amount < 0 {
		return ErrNegativeAmount
	}
	if len(strings.TrimSpace(tx.Title)) == 0 {
		return ErrEmptyTitle
	}
	return nil
}

func (b BudgetLimit) Validate() error {
	if !b.Category.Valid() {
		return ErrUnknownCategory
	}
	if b.Limit <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

// IDGenerator issues unique time-derived identifiers. Successive calls
// within the same nanosecond are bumped forward so ids stay unique.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *IDGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := now.UnixNano()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}
