package alerts

import (
	"strings"
	"testing"
	"time"

	"financewise/internal/core"
	"financewise/internal/i18n"
	"financewise/internal/report"
)

func newTestEngine() *Engine {
	reports := report.NewEngine(i18n.RelativeTerms(), 64, time.Hour)
	return NewEngine(reports.ParseDate, &core.IDGenerator{})
}

func foodExpense(id string, amount int64, date string) core.Transaction {
	return core.Transaction{ID: id, Title: id, Amount: amount, Date: date, Category: core.CategoryFood, Type: core.Expense}
}

func TestCheck_WarningThenExceeded(t *testing.T) {
	engine := newTestEngine()
	table := i18n.New("vi")
	log := NewLog(nil)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	budgets := []core.BudgetLimit{{ID: "b1", Category: core.CategoryFood, Limit: 100}}
	txs := []core.Transaction{foodExpense("t1", 95, "15/08/2026")}

	// 95/100 raises exactly one warning.
	if added := engine.Check(log, budgets, txs, now, table); added != 1 {
		t.Fatalf("first check added %d, want 1", added)
	}
	items := log.Items()
	if items[0].AlertTier != TierWarning || items[0].Type != core.NotifWarning {
		t.Fatalf("got tier %q type %q, want warning", items[0].AlertTier, items[0].Type)
	}
	if items[0].AlertCategory != core.CategoryFood {
		t.Errorf("alert category = %q", items[0].AlertCategory)
	}
	if !strings.Contains(items[0].Description, "95%") {
		t.Errorf("description %q does not mention the percent", items[0].Description)
	}

	// Re-evaluation with no state change is suppressed.
	if added := engine.Check(log, budgets, txs, now, table); added != 0 {
		t.Fatalf("second check added %d, want 0", added)
	}

	// After the user reads it, the exceeded tier fires on 100%.
	log.MarkRead(items[0].ID)
	txs = append(txs, foodExpense("t2", 5, "20/08/2026"))
	if added := engine.Check(log, budgets, txs, now, table); added != 1 {
		t.Fatalf("third check added %d, want 1", added)
	}
	latest := log.Items()[0]
	if latest.AlertTier != TierExceeded || latest.Type != core.NotifDanger {
		t.Errorf("got tier %q type %q, want exceeded/danger", latest.AlertTier, latest.Type)
	}
}

func TestCheck_ExceededNotBlockedByUnreadWarning(t *testing.T) {
	engine := newTestEngine()
	table := i18n.New("vi")
	log := NewLog(nil)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	budgets := []core.BudgetLimit{{ID: "b1", Category: core.CategoryFood, Limit: 100}}
	txs := []core.Transaction{foodExpense("t1", 95, "15/08/2026")}
	engine.Check(log, budgets, txs, now, table)

	// The warning is still unread, but exceeded is a different key.
	txs = append(txs, foodExpense("t2", 10, "16/08/2026"))
	if added := engine.Check(log, budgets, txs, now, table); added != 1 {
		t.Fatalf("added %d, want 1", added)
	}
	if log.Items()[0].AlertTier != TierExceeded {
		t.Errorf("tier = %q, want exceeded", log.Items()[0].AlertTier)
	}
}

func TestCheck_SkipsNonPositiveLimits(t *testing.T) {
	engine := newTestEngine()
	table := i18n.New("vi")
	log := NewLog(nil)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	budgets := []core.BudgetLimit{
		{ID: "b1", Category: core.CategoryFood, Limit: 0},
		{ID: "b2", Category: core.CategoryBills, Limit: -50},
	}
	txs := []core.Transaction{
		foodExpense("t1", 1000, "15/08/2026"),
		{ID: "t2", Title: "t2", Amount: 1000, Date: "15/08/2026", Category: core.CategoryBills, Type: core.Expense},
	}
	if added := engine.Check(log, budgets, txs, now, table); added != 0 {
		t.Errorf("added %d, want 0 for non-positive limits", added)
	}
}

func TestCheck_MonthOnlyMatch(t *testing.T) {
	engine := newTestEngine()
	table := i18n.New("vi")
	log := NewLog(nil)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	budgets := []core.BudgetLimit{{ID: "b1", Category: core.CategoryFood, Limit: 100}}

	// Same calendar month of a prior year counts toward spend; a
	// different month of the current year does not.
	txs := []core.Transaction{
		foodExpense("prior-year", 60, "10/08/2025"),
		foodExpense("this-month", 40, "10/08/2026"),
		foodExpense("other-month", 500, "10/07/2026"),
	}
	if added := engine.Check(log, budgets, txs, now, table); added != 1 {
		t.Fatalf("added %d, want 1", added)
	}
	if log.Items()[0].AlertTier != TierExceeded {
		t.Errorf("tier = %q, want exceeded (60+40 over 100)", log.Items()[0].AlertTier)
	}
}

func TestCheck_IgnoresIncomeAndOtherCategories(t *testing.T) {
	engine := newTestEngine()
	table := i18n.New("vi")
	log := NewLog(nil)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	budgets := []core.BudgetLimit{{ID: "b1", Category: core.CategoryFood, Limit: 100}}
	txs := []core.Transaction{
		{ID: "t1", Title: "t1", Amount: 500, Date: "15/08/2026", Category: core.CategoryFood, Type: core.Income},
		{ID: "t2", Title: "t2", Amount: 500, Date: "15/08/2026", Category: core.CategoryBills, Type: core.Expense},
	}
	if added := engine.Check(log, budgets, txs, now, table); added != 0 {
		t.Errorf("added %d, want 0", added)
	}
}

func TestCheck_LocalizedDescription(t *testing.T) {
	engine := newTestEngine()
	log := NewLog(nil)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	budgets := []core.BudgetLimit{{ID: "b1", Category: core.CategoryFood, Limit: 100}}
	txs := []core.Transaction{foodExpense("t1", 120, "15/08/2026")}

	engine.Check(log, budgets, txs, now, i18n.New("en"))
	desc := log.Items()[0].Description
	if !strings.Contains(desc, "Food & Drink") {
		t.Errorf("description %q does not use the localized category name", desc)
	}
	if strings.Contains(desc, "{percent}") || strings.Contains(desc, "{category}") {
		t.Errorf("description %q has unsubstituted placeholders", desc)
	}
}
