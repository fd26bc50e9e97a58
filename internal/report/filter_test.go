package report

import (
	"testing"
	"time"

	"financewise/internal/core"
)

func testEngine() *Engine {
	terms := core.RelativeTerms{
		Today:     []string{"Hôm nay"},
		Yesterday: []string{"Hôm qua"},
		JustNow:   []string{"Vừa xong"},
	}
	return NewEngine(terms, 64, time.Hour)
}

func expense(id, date string) core.Transaction {
	return core.Transaction{ID: id, Title: id, Amount: 1000, Date: date, Category: core.CategoryFood, Type: core.Expense}
}

func ids(txs []core.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func TestFilter_Month(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	txs := []core.Transaction{
		expense("in-month", "01/08/2026"),
		expense("other-month", "01/07/2026"),
		expense("other-year", "01/08/2025"),
		expense("relative", "Hôm nay"),
	}

	got := ids(e.Filter(txs, Month, now))
	want := []string{"in-month", "relative"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestFilter_PrevMonthYearRollover(t *testing.T) {
	e := testEngine()
	// January: previous month is December of the prior year.
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	txs := []core.Transaction{
		expense("december", "20/12/2025"),
		expense("january", "05/01/2026"),
		expense("december-two-years", "20/12/2024"),
	}

	got := ids(e.Filter(txs, PrevMonth, now))
	if len(got) != 1 || got[0] != "december" {
		t.Errorf("got %v, want [december]", got)
	}
}

func TestFilter_WeekISOBounds(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name string
		now  time.Time
		txs  []core.Transaction
		want []string
	}{
		{
			// 2026-08-26 is a Wednesday; its ISO week is 24..30 August.
			name: "midweek window",
			now:  time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
			txs: []core.Transaction{
				expense("monday", "24/08/2026"),
				expense("sunday", "30/08/2026"),
				expense("next-monday", "31/08/2026"),
				expense("prev-sunday", "23/08/2026"),
			},
			want: []string{"monday", "sunday"},
		},
		{
			// On a Sunday the week started six days earlier, it is not
			// the first day of a new week.
			name: "sunday belongs to current week",
			now:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			txs: []core.Transaction{
				expense("monday", "24/08/2026"),
				expense("sunday", "30/08/2026"),
			},
			want: []string{"monday", "sunday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(e.Filter(tt.txs, Week, tt.now))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFilter_UnknownTimeframeKeepsAll(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		expense("a", "01/01/2020"),
		expense("b", "01/08/2026"),
	}
	got := e.Filter(txs, Timeframe("quarter"), now)
	if len(got) != 2 {
		t.Errorf("expected all transactions kept, got %d", len(got))
	}
}

func TestParseDate_MemoizesOnlyFullDates(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	e.ParseDate("15/03/2025", now)
	e.ParseDate("Hôm nay", now)
	e.ParseDate("15/03", now)

	// The relative term must re-resolve against a different now.
	later := now.AddDate(0, 0, 3)
	if d := e.ParseDate("Hôm nay", later); !d.Equal(later) {
		t.Errorf("relative date was memoized: got %v, want %v", d.Time, later)
	}

	// The full date stays stable.
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if d := e.ParseDate("15/03/2025", later); !d.Equal(want) {
		t.Errorf("full date parse: got %v, want %v", d.Time, want)
	}
}
