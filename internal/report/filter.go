// Package report derives display views from the raw transaction list:
// timeframe filtering, ordering and balance/category aggregation. All of
// it is pure recomputation over the current state, no caching protocol
// beyond a parsed-date memo.
package report

import (
	"strings"
	"time"

	"financewise/internal/cache"
	"financewise/internal/core"
)

const (
	Month     Timeframe = "month"
	PrevMonth Timeframe = "prev_month"
	Week      Timeframe = "week"
)

type Timeframe string

func (tf Timeframe) Valid() bool {
	switch tf {
	case Month, PrevMonth, Week:
		return true
	}
	return false
}

// Engine filters and orders transactions. It owns the parsed-date memo;
// only fully qualified dd/mm/yyyy strings are memoized, relative terms
// and year-less dates resolve against "now" and must be parsed fresh.
type Engine struct {
	terms core.RelativeTerms
	dates *cache.LRU[core.Date]
}

func NewEngine(terms core.RelativeTerms, cacheSize int, cacheTTL time.Duration) *Engine {
	return &Engine{
		terms: terms,
		dates: cache.NewLRU[core.Date](cacheSize, cacheTTL),
	}
}

// ParseDate resolves a display date, falling back to now on unrecognized
// input.
func (e *Engine) ParseDate(s string, now time.Time) core.Date {
	memo := hasYear(s)
	if memo {
		if d, ok := e.dates.Get(s); ok {
			return d
		}
	}
	d, err := core.ParseDisplayDate(s, now, e.terms)
	if err != nil {
		return core.Date{Time: now}
	}
	if memo {
		e.dates.Set(s, d)
	}
	return d
}

// Filter keeps the transactions whose date falls inside the selected
// window. An unknown timeframe keeps everything. Order is unchanged;
// sorting is a separate step.
func (e *Engine) Filter(txs []core.Transaction, tf Timeframe, now time.Time) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	switch tf {
	case Month:
		for _, tx := range txs {
			d := e.ParseDate(tx.Date, now)
			if d.Month() == now.Month() && d.Year() == now.Year() {
				out = append(out, tx)
			}
		}
	case PrevMonth:
		// Normalizing day 1 of month-1 handles the January rollover.
		prev := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		for _, tx := range txs {
			d := e.ParseDate(tx.Date, now)
			if d.Month() == prev.Month() && d.Year() == prev.Year() {
				out = append(out, tx)
			}
		}
	case Week:
		start, end := isoWeek(now)
		for _, tx := range txs {
			d := e.ParseDate(tx.Date, now)
			if !d.Before(start) && !d.After(end) {
				out = append(out, tx)
			}
		}
	default:
		out = append(out, txs...)
	}
	return out
}

// isoWeek returns the Monday 00:00:00 and Sunday 23:59:59.999 bounds of
// the week containing now. Sunday belongs to the preceding Monday's week.
func isoWeek(now time.Time) (time.Time, time.Time) {
	offset := (int(now.Weekday()) + 6) % 7 // days since Monday
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(999*time.Millisecond), end.Location())
	return start, end
}

func hasYear(s string) bool {
	datePart := strings.SplitN(s, ",", 2)[0]
	return strings.Count(datePart, "/") == 2
}
