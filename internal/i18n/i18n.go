// Package i18n is the localization table consumed by the tracker core:
// message keys with placeholder substitution, category display names and
// the relative-date phrases understood by the date parser.
package i18n

import (
	"strings"

	"financewise/internal/core"
)

const DefaultLanguage = "vi"

var messages = map[string]map[string]string{
	"vi": {
		"today":                  "Hôm nay",
		"yesterday":              "Hôm qua",
		"just_now":               "Vừa xong",
		"balance":                "Số dư",
		"income":                 "Thu nhập",
		"expense":                "Chi tiêu",
		"total_spending":         "Tổng chi tiêu",
		"transactions":           "Giao dịch",
		"notifications":          "Thông báo",
		"no_notifications":       "Không có thông báo",
		"budgets":                "Ngân sách",
		"notif_new_income":       "Thu nhập mới",
		"notif_new_expense":      "Chi tiêu mới",
		"notif_transaction_desc": "Đã ghi nhận {amount} cho {category}",
		"notif_budget_warning":   "Cảnh báo ngân sách",
		"notif_budget_exceeded":  "Vượt ngân sách",
		"notif_budget_desc":      "Bạn đã dùng {percent}% ngân sách cho {category}",
	},
	"en": {
		"today":                  "Today",
		"yesterday":              "Yesterday",
		"just_now":               "Just now",
		"balance":                "Balance",
		"income":                 "Income",
		"expense":                "Expense",
		"total_spending":         "Total spending",
		"transactions":           "Transactions",
		"notifications":          "Notifications",
		"no_notifications":       "No notifications",
		"budgets":                "Budgets",
		"notif_new_income":       "New income",
		"notif_new_expense":      "New expense",
		"notif_transaction_desc": "Recorded {amount} for {category}",
		"notif_budget_warning":   "Budget warning",
		"notif_budget_exceeded":  "Budget exceeded",
		"notif_budget_desc":      "You have used {percent}% of your {category} budget",
	},
}

var categoryNames = map[string]map[core.Category]string{
	"vi": {
		core.CategoryFood:          "Ăn uống",
		core.CategoryTransport:     "Di chuyển",
		core.CategoryShopping:      "Mua sắm",
		core.CategoryBills:         "Hóa đơn",
		core.CategoryEntertainment: "Giải trí",
		core.CategoryClothing:      "Quần áo",
		core.CategoryEducation:     "Giáo dục",
		core.CategoryIncome:        "Thu nhập",
		core.CategoryOther:         "Khác",
	},
	"en": {
		core.CategoryFood:          "Food & Drink",
		core.CategoryTransport:     "Transport",
		core.CategoryShopping:      "Shopping",
		core.CategoryBills:         "Bills",
		core.CategoryEntertainment: "Entertainment",
		core.CategoryClothing:      "Clothing",
		core.CategoryEducation:     "Education",
		core.CategoryIncome:        "Income",
		core.CategoryOther:         "Other",
	},
}

// Table resolves message keys for one language.
type Table struct {
	lang string
}

// Supported lists the language codes with a full message table.
func Supported() []string {
	return []string{"vi", "en"}
}

// New returns the table for lang, falling back to the default language
// when lang is unknown.
func New(lang string) *Table {
	if _, ok := messages[lang]; !ok {
		lang = DefaultLanguage
	}
	return &Table{lang: lang}
}

func (t *Table) Lang() string {
	return t.lang
}

// Get resolves a message key. Unknown keys fall back to the default
// language and finally to the key itself, so a missing entry renders
// recognizably instead of as an empty string.
func (t *Table) Get(key string) string {
	if s, ok := messages[t.lang][key]; ok {
		return s
	}
	if s, ok := messages[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Format resolves a key and substitutes {name} placeholders.
func (t *Table) Format(key string, repl map[string]string) string {
	s := t.Get(key)
	for name, val := range repl {
		s = strings.ReplaceAll(s, "{"+name+"}", val)
	}
	return s
}

// CategoryName returns the localized display name for a category.
func (t *Table) CategoryName(c core.Category) string {
	if s, ok := categoryNames[t.lang][c]; ok {
		return s
	}
	if s, ok := categoryNames[DefaultLanguage][c]; ok {
		return s
	}
	return string(c)
}

// RelativeTerms collects the relative-date phrases of every supported
// language. The union keeps dates parseable after a language switch:
// a transaction saved as "Hôm nay" must still resolve once the user
// moves to English.
func RelativeTerms() core.RelativeTerms {
	var terms core.RelativeTerms
	for _, lang := range Supported() {
		terms.Today = append(terms.Today, messages[lang]["today"])
		terms.Yesterday = append(terms.Yesterday, messages[lang]["yesterday"])
		terms.JustNow = append(terms.JustNow, messages[lang]["just_now"])
	}
	return terms
}
