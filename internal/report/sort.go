package report

import (
	"sort"
	"time"

	"financewise/internal/core"
)

// Sort returns a new slice ordered by the given mode. The sort is stable
// and never mutates the input; an unrecognized mode returns the input
// order unchanged.
func (e *Engine) Sort(txs []core.Transaction, mode core.SortOrder, now time.Time) []core.Transaction {
	out := make([]core.Transaction, len(txs))
	copy(out, txs)

	switch mode {
	case core.SortLatest:
		sort.SliceStable(out, func(i, j int) bool {
			return e.ParseDate(out[i].Date, now).After(e.ParseDate(out[j].Date, now).Time)
		})
	case core.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return e.ParseDate(out[i].Date, now).Before(e.ParseDate(out[j].Date, now).Time)
		})
	case core.SortHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount > out[j].Amount
		})
	case core.SortLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount < out[j].Amount
		})
	}
	return out
}
