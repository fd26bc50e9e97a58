package report

import "financewise/internal/core"

// CategoryTotal is the summed expense for one category, paired with its
// chart color.
type CategoryTotal struct {
	Category core.Category
	Amount   int64
	Color    string
}

// Summary is the reduction of a transaction list into display totals.
type Summary struct {
	Income     int64
	Expense    int64
	Balance    int64
	ByCategory []CategoryTotal
}

// Aggregate reduces a transaction list. Income transactions never enter
// the per-category expense totals, whatever category they carry.
// Categories appear in first-seen order so the reduction stays
// deterministic for a given input order.
func Aggregate(txs []core.Transaction) Summary {
	var s Summary
	totals := make(map[core.Category]int64)
	var order []core.Category

	for _, tx := range txs {
		if tx.Type == core.Income {
			s.Income += tx.Amount
			continue
		}
		s.Expense += tx.Amount
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] += tx.Amount
	}

	s.Balance = s.Income - s.Expense
	for _, c := range order {
		s.ByCategory = append(s.ByCategory, CategoryTotal{
			Category: c,
			Amount:   totals[c],
			Color:    c.Color(),
		})
	}
	return s
}
