package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Date is a day-precision point in time. Display dates carry at most an
// informational time-of-day suffix which is dropped on parse.
type Date struct {
	time.Time
}

// NewDate creates a Date at midnight in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// RelativeTerms are the localized phrases a display date may use instead
// of a dd/mm/yyyy value. Matching is substring-based, as the rendering
// layer may decorate the phrase with a time suffix.
type RelativeTerms struct {
	Today     []string
	Yesterday []string
	JustNow   []string
}

var ErrInvalidDate = errors.New("unrecognized date format")

// ParseDisplayDate converts a display-formatted date string into a Date.
// Recognized shapes: a relative term ("today", "just now", "yesterday" in
// any configured language), dd/mm/yyyy with an optional ", HH:mm" suffix,
// and dd/mm which assumes the current year. Anything else is
// ErrInvalidDate; callers that want the historical silent fallback use
// ParseDisplayDateOr.
func ParseDisplayDate(s string, now time.Time, terms RelativeTerms) (Date, error) {
	if containsAny(s, terms.Today) || containsAny(s, terms.JustNow) {
		return Date{Time: now}, nil
	}
	if containsAny(s, terms.Yesterday) {
		return Date{Time: now.AddDate(0, 0, -1)}, nil
	}

	// Drop a ", HH:mm" time suffix, then split the dd/mm[/yyyy] part.
	datePart := strings.TrimSpace(strings.SplitN(s, ",", 2)[0])
	parts := strings.Split(datePart, "/")
	if len(parts) < 2 {
		return Date{}, ErrInvalidDate
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	year := now.Year()
	if len(parts) == 3 {
		year, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return Date{}, ErrInvalidDate
		}
	}

	// time.Date normalizes out-of-range day/month the same way the
	// display layer producing these strings does.
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())}, nil
}

// ParseDisplayDateOr parses like ParseDisplayDate but falls back to the
// given time on any unrecognized input instead of returning an error.
func ParseDisplayDateOr(s string, now time.Time, terms RelativeTerms) Date {
	d, err := ParseDisplayDate(s, now, terms)
	if err != nil {
		return Date{Time: now}
	}
	return d
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(s, t) {
			return true
		}
	}
	return false
}
