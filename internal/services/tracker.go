// Package services orchestrates the tracker state: the single writer
// owning all persisted collections and every update operation on them.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"financewise/internal/alerts"
	"financewise/internal/core"
	"financewise/internal/i18n"
	"financewise/internal/report"
	"financewise/internal/storage"
)

// Collection keys in the local store.
const (
	keyTransactions  = "financewise_transactions"
	keyBudgets       = "financewise_budgets"
	keySettings      = "financewise_settings"
	keyLang          = "financewise_lang"
	keyNotifications = "financewise_notifications"
	keyUserData      = "financewise_user_data"
)

var ErrNotFound = errors.New("not found")

// Options tunes a Tracker. Zero values fall back to defaults.
type Options struct {
	Language      string
	DateCacheSize int
	DateCacheTTL  time.Duration
	Now           func() time.Time
}

// Tracker is the application state controller. All mutation goes through
// its methods; each method persists the collections it touched and
// re-derives whatever depends on them. Single control flow, no
// concurrent writers.
type Tracker struct {
	store   *storage.Store
	table   *i18n.Table
	reports *report.Engine
	engine  *alerts.Engine
	ids     *core.IDGenerator
	now     func() time.Time

	transactions []core.Transaction
	budgets      []core.BudgetLimit
	log          *alerts.Log
	settings     core.Settings
	profile      core.UserProfile
}

// NewTransaction is the user submission for a transaction. Amount is the
// raw input string; unparseable input coerces to zero. Empty Note falls
// back to the localized category name, empty Date to the localized
// "today".
type NewTransaction struct {
	Note     string
	Amount   string
	Date     string
	Category core.Category
	Type     core.TransactionType
}

// DashboardView is the derived state for one timeframe selection.
type DashboardView struct {
	Timeframe    report.Timeframe
	Transactions []core.Transaction
	Summary      report.Summary
}

func defaultSettings() core.Settings {
	return core.Settings{SortBy: core.SortLatest}
}

func defaultProfile() core.UserProfile {
	return core.UserProfile{
		Name:   "Minh Nguyễn",
		Avatar: "https://picsum.photos/seed/user123/200/200",
	}
}

// NewTracker loads every collection from the store and builds the
// controller. Collections load concurrently; each one independently
// falls back to its default when absent or malformed.
func NewTracker(ctx context.Context, store *storage.Store, opts Options) (*Tracker, error) {
	if opts.Language == "" {
		opts.Language = i18n.DefaultLanguage
	}
	if opts.DateCacheSize == 0 {
		opts.DateCacheSize = 512
	}
	if opts.DateCacheTTL == 0 {
		opts.DateCacheTTL = time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var (
		txs      []core.Transaction
		budgets  []core.BudgetLimit
		notifs   []core.NotificationItem
		settings core.Settings
		profile  core.UserProfile
		lang     string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		txs, err = storage.Load(gctx, store, keyTransactions, []core.Transaction{})
		return err
	})
	g.Go(func() (err error) {
		budgets, err = storage.Load(gctx, store, keyBudgets, []core.BudgetLimit{})
		return err
	})
	g.Go(func() (err error) {
		notifs, err = storage.Load(gctx, store, keyNotifications, []core.NotificationItem{})
		return err
	})
	g.Go(func() (err error) {
		settings, err = storage.Load(gctx, store, keySettings, defaultSettings())
		return err
	})
	g.Go(func() (err error) {
		profile, err = storage.Load(gctx, store, keyUserData, defaultProfile())
		return err
	})
	g.Go(func() (err error) {
		lang, err = storage.Load(gctx, store, keyLang, opts.Language)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load collections: %w", err)
	}

	ids := &core.IDGenerator{}
	reports := report.NewEngine(i18n.RelativeTerms(), opts.DateCacheSize, opts.DateCacheTTL)

	t := &Tracker{
		store:        store,
		table:        i18n.New(lang),
		reports:      reports,
		engine:       alerts.NewEngine(reports.ParseDate, ids),
		ids:          ids,
		now:          opts.Now,
		transactions: txs,
		budgets:      budgets,
		log:          alerts.NewLog(notifs),
		settings:     settings,
		profile:      profile,
	}

	slog.InfoContext(ctx, "Tracker loaded",
		"transactions", len(t.transactions),
		"budgets", len(t.budgets),
		"notifications", len(notifs),
		"lang", t.table.Lang())

	return t, nil
}

// AddTransaction records a user submission, logs the activity
// notification and re-evaluates budget alerts.
func (t *Tracker) AddTransaction(ctx context.Context, in NewTransaction) (core.Transaction, error) {
	now := t.now()

	title := in.Note
	if title == "" {
		title = t.table.CategoryName(in.Category)
	}
	date := in.Date
	if date == "" {
		date = t.table.Get("today")
	}

	tx := core.Transaction{
		ID:       t.ids.Next(now),
		Title:    title,
		Amount:   core.ParseAmount(in.Amount),
		Date:     date,
		Category: in.Category,
		Type:     in.Type,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	t.transactions = append([]core.Transaction{tx}, t.transactions...)
	if err := t.saveTransactions(ctx); err != nil {
		return core.Transaction{}, err
	}

	titleKey, ntype := "notif_new_expense", core.NotifInfo
	if tx.Type == core.Income {
		titleKey, ntype = "notif_new_income", core.NotifSuccess
	}
	t.log.Push(core.NotificationItem{
		ID:    t.ids.Next(now),
		Title: t.table.Get(titleKey),
		Description: t.table.Format("notif_transaction_desc", map[string]string{
			"amount":   core.FormatNoSignCurrency(tx.Amount),
			"category": t.table.CategoryName(tx.Category),
		}),
		Type: ntype,
		Time: now.Format("15:04"),
	})
	if err := t.saveNotifications(ctx); err != nil {
		return core.Transaction{}, err
	}

	if err := t.checkBudgets(ctx); err != nil {
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction added",
		"id", tx.ID, "type", tx.Type, "category", tx.Category, "amount", tx.Amount)
	return tx, nil
}

// DeleteTransaction removes one transaction by id.
func (t *Tracker) DeleteTransaction(ctx context.Context, id string) error {
	idx := -1
	for i, tx := range t.transactions {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	t.transactions = append(t.transactions[:idx], t.transactions[idx+1:]...)
	if err := t.saveTransactions(ctx); err != nil {
		return err
	}
	return t.checkBudgets(ctx)
}

// ClearTransactions removes every transaction.
func (t *Tracker) ClearTransactions(ctx context.Context) error {
	t.transactions = nil
	if err := t.saveTransactions(ctx); err != nil {
		return err
	}
	return t.checkBudgets(ctx)
}

func (t *Tracker) Transactions() []core.Transaction {
	out := make([]core.Transaction, len(t.transactions))
	copy(out, t.transactions)
	return out
}

// SetBudget creates the limit for a category, or updates it in place
// when one already exists.
func (t *Tracker) SetBudget(ctx context.Context, category core.Category, limit int64) (core.BudgetLimit, error) {
	b := core.BudgetLimit{Category: category, Limit: limit}
	if err := b.Validate(); err != nil {
		return core.BudgetLimit{}, fmt.Errorf("validate budget: %w", err)
	}

	updated := false
	for i := range t.budgets {
		if t.budgets[i].Category == category {
			t.budgets[i].Limit = limit
			b = t.budgets[i]
			updated = true
			break
		}
	}
	if !updated {
		b.ID = t.ids.Next(t.now())
		t.budgets = append(t.budgets, b)
	}

	if err := t.saveBudgets(ctx); err != nil {
		return core.BudgetLimit{}, err
	}
	if err := t.checkBudgets(ctx); err != nil {
		return core.BudgetLimit{}, err
	}
	return b, nil
}

// DeleteBudget removes one budget limit by id.
func (t *Tracker) DeleteBudget(ctx context.Context, id string) error {
	idx := -1
	for i, b := range t.budgets {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("budget %s: %w", id, ErrNotFound)
	}
	t.budgets = append(t.budgets[:idx], t.budgets[idx+1:]...)
	if err := t.saveBudgets(ctx); err != nil {
		return err
	}
	return t.checkBudgets(ctx)
}

func (t *Tracker) Budgets() []core.BudgetLimit {
	out := make([]core.BudgetLimit, len(t.budgets))
	copy(out, t.budgets)
	return out
}

// Dashboard derives the filtered, sorted list and its aggregates for a
// timeframe. Pure recomputation over current state.
func (t *Tracker) Dashboard(tf report.Timeframe) DashboardView {
	now := t.now()
	filtered := t.reports.Filter(t.transactions, tf, now)
	sorted := t.reports.Sort(filtered, t.settings.SortBy, now)
	return DashboardView{
		Timeframe:    tf,
		Transactions: sorted,
		Summary:      report.Aggregate(sorted),
	}
}

func (t *Tracker) Notifications() []core.NotificationItem {
	return t.log.Items()
}

func (t *Tracker) UnreadCount() int {
	return t.log.UnreadCount()
}

func (t *Tracker) MarkNotificationRead(ctx context.Context, id string) error {
	if !t.log.MarkRead(id) {
		return fmt.Errorf("notification %s: %w", id, ErrNotFound)
	}
	return t.saveNotifications(ctx)
}

func (t *Tracker) MarkAllNotificationsRead(ctx context.Context) error {
	if t.log.MarkAllRead() == 0 {
		return nil
	}
	return t.saveNotifications(ctx)
}

func (t *Tracker) ClearNotifications(ctx context.Context) error {
	t.log.Clear()
	return t.saveNotifications(ctx)
}

func (t *Tracker) Settings() core.Settings {
	return t.settings
}

// UpdateSettings overwrites the settings singleton wholesale.
func (t *Tracker) UpdateSettings(ctx context.Context, s core.Settings) error {
	if !s.SortBy.Valid() {
		return fmt.Errorf("invalid sort order %q", s.SortBy)
	}
	t.settings = s
	return storage.Save(ctx, t.store, keySettings, t.settings)
}

func (t *Tracker) Profile() core.UserProfile {
	return t.profile
}

func (t *Tracker) UpdateProfile(ctx context.Context, name, avatar string) error {
	t.profile = core.UserProfile{Name: name, Avatar: avatar}
	return storage.Save(ctx, t.store, keyUserData, t.profile)
}

func (t *Tracker) Language() string {
	return t.table.Lang()
}

// SetLanguage switches the active localization table. Persisted data is
// unaffected, categories are stored as stable identifiers.
func (t *Tracker) SetLanguage(ctx context.Context, lang string) error {
	supported := false
	for _, l := range i18n.Supported() {
		if l == lang {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported language %q", lang)
	}
	t.table = i18n.New(lang)
	return storage.Save(ctx, t.store, keyLang, lang)
}

// Table exposes the active localization table for rendering.
func (t *Tracker) Table() *i18n.Table {
	return t.table
}

// ResetData clears transactions, budgets and notifications and drops
// their stored collections. Settings, profile and language survive.
func (t *Tracker) ResetData(ctx context.Context) error {
	t.transactions = nil
	t.budgets = nil
	t.log.Clear()
	for _, key := range []string{keyTransactions, keyBudgets, keyNotifications} {
		if err := t.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	slog.InfoContext(ctx, "All tracker data reset")
	return nil
}

// checkBudgets re-evaluates alerts; runs after every transaction or
// budget mutation.
func (t *Tracker) checkBudgets(ctx context.Context) error {
	added := t.engine.Check(t.log, t.budgets, t.transactions, t.now(), t.table)
	if added == 0 {
		return nil
	}
	return t.saveNotifications(ctx)
}

func (t *Tracker) saveTransactions(ctx context.Context) error {
	return storage.Save(ctx, t.store, keyTransactions, t.transactions)
}

func (t *Tracker) saveBudgets(ctx context.Context) error {
	return storage.Save(ctx, t.store, keyBudgets, t.budgets)
}

func (t *Tracker) saveNotifications(ctx context.Context) error {
	return storage.Save(ctx, t.store, keyNotifications, t.log.Items())
}
