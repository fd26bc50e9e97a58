package alerts

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"financewise/internal/core"
	"financewise/internal/i18n"
)

// Alert tiers, also the structured half of the deduplication key.
const (
	TierWarning  = "warning"
	TierExceeded = "exceeded"
)

const warningThreshold = 90.0

// DateResolver turns a display date into a comparable date, typically
// report.Engine.ParseDate.
type DateResolver func(s string, now time.Time) core.Date

// Engine evaluates budget limits against current-month spend and pushes
// at most one unread notification per (tier, category) pair.
type Engine struct {
	parse DateResolver
	ids   *core.IDGenerator
}

func NewEngine(parse DateResolver, ids *core.IDGenerator) *Engine {
	return &Engine{parse: parse, ids: ids}
}

// Check runs one evaluation pass and returns the number of notifications
// pushed. Limits of zero or less are skipped, they have no meaningful
// percentage. Spend matches on calendar month only, not year; a prior
// year's same month counts (behavior kept from the original client).
// An exceeded alert takes precedence over a warning for the same budget.
func (e *Engine) Check(log *Log, budgets []core.BudgetLimit, txs []core.Transaction, now time.Time, table *i18n.Table) int {
	added := 0
	for _, b := range budgets {
		if b.Limit <= 0 {
			continue
		}

		var spent int64
		for _, tx := range txs {
			if tx.Type != core.Expense || tx.Category != b.Category {
				continue
			}
			if e.parse(tx.Date, now).Month() == now.Month() {
				spent += tx.Amount
			}
		}

		percent := float64(spent) / float64(b.Limit) * 100

		var tier string
		var ntype core.NotificationType
		switch {
		case percent >= 100:
			tier, ntype = TierExceeded, core.NotifDanger
		case percent >= warningThreshold:
			tier, ntype = TierWarning, core.NotifWarning
		default:
			continue
		}

		// Suppressed while an unread alert with the same key exists;
		// marking it read re-arms the pair.
		if log.HasUnreadAlert(tier, b.Category) {
			continue
		}

		titleKey := "notif_budget_warning"
		if tier == TierExceeded {
			titleKey = "notif_budget_exceeded"
		}
		log.Push(core.NotificationItem{
			ID:          e.ids.Next(now),
			Title:       table.Get(titleKey),
			Description: table.Format("notif_budget_desc", map[string]string{
				"percent":  strconv.Itoa(int(math.Round(percent))),
				"category": table.CategoryName(b.Category),
			}),
			Type:          ntype,
			Time:          now.Format("15:04"),
			AlertTier:     tier,
			AlertCategory: b.Category,
		})
		added++

		slog.Info("Budget alert raised",
			"category", b.Category,
			"tier", tier,
			"spent", spent,
			"limit", b.Limit,
			"percent", int(math.Round(percent)))
	}
	return added
}
