// Package alerts holds the notification log and the budget alert engine
// that feeds it.
package alerts

import "financewise/internal/core"

// Log is the ordered notification list, newest first. It is append-only
// apart from read-flag flips and bulk clears.
type Log struct {
	items []core.NotificationItem
}

func NewLog(items []core.NotificationItem) *Log {
	l := &Log{items: make([]core.NotificationItem, len(items))}
	copy(l.items, items)
	return l
}

// Push prepends a notification.
func (l *Log) Push(n core.NotificationItem) {
	l.items = append([]core.NotificationItem{n}, l.items...)
}

// MarkRead flips the read flag of one entry. Returns false when no entry
// has the id.
func (l *Log) MarkRead(id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flips every unread entry and returns how many it touched.
func (l *Log) MarkAllRead() int {
	n := 0
	for i := range l.items {
		if !l.items[i].Read {
			l.items[i].Read = true
			n++
		}
	}
	return n
}

func (l *Log) Clear() {
	l.items = nil
}

func (l *Log) UnreadCount() int {
	n := 0
	for _, item := range l.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// Items returns a copy of the log, newest first.
func (l *Log) Items() []core.NotificationItem {
	out := make([]core.NotificationItem, len(l.items))
	copy(out, l.items)
	return out
}

// HasUnreadAlert reports whether an unread alert with the given
// structured (tier, category) key is already in the log.
func (l *Log) HasUnreadAlert(tier string, category core.Category) bool {
	for _, item := range l.items {
		if !item.Read && item.AlertTier == tier && item.AlertCategory == category {
			return true
		}
	}
	return false
}
