package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"financewise/internal/cli"
	"financewise/internal/core"
	"financewise/internal/report"
	"financewise/internal/services"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	store := cli.InitStore(logger, cfg.DBPath)
	defer store.Close()

	ctx := context.Background()
	tracker, err := services.NewTracker(ctx, store, services.Options{
		Language:      cfg.Language,
		DateCacheSize: cfg.DateCacheSize,
		DateCacheTTL:  cfg.DateCacheTTL,
	})
	if err != nil {
		logger.Error("Failed to load tracker", "error", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(ctx, tracker, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, tracker *services.Tracker, command string, args []string) error {
	switch command {
	case "add":
		return cmdAdd(ctx, tracker, args)
	case "list":
		return cmdList(tracker, args)
	case "rm":
		return cmdRemove(ctx, tracker, args)
	case "clear":
		return tracker.ClearTransactions(ctx)
	case "budget":
		return cmdBudget(ctx, tracker, args)
	case "notifications":
		return cmdNotifications(ctx, tracker, args)
	case "settings":
		return cmdSettings(ctx, tracker, args)
	case "profile":
		return cmdProfile(ctx, tracker, args)
	case "lang":
		return cmdLang(ctx, tracker, args)
	case "reset":
		return tracker.ResetData(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: financewise <command> [flags]

commands:
  add            record a transaction
  list           show the dashboard for a timeframe
  rm             remove a transaction by id
  clear          remove all transactions
  budget         manage budget limits (set | list | rm)
  notifications  show or update the notification log
  settings       show or update display settings
  profile        show or update the user profile
  lang           show or switch the language
  reset          clear transactions, budgets and notifications`)
}

func cmdAdd(ctx context.Context, tracker *services.Tracker, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	txType := fs.String("type", "expense", "income or expense")
	amount := fs.String("amount", "", "amount in đồng")
	category := fs.String("category", string(core.CategoryOther), "category id")
	note := fs.String("note", "", "title/note, defaults to the category name")
	date := fs.String("date", "", "display date (dd/mm/yyyy), defaults to today")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tx, err := tracker.AddTransaction(ctx, services.NewTransaction{
		Note:     *note,
		Amount:   *amount,
		Date:     *date,
		Category: core.Category(*category),
		Type:     core.TransactionType(*txType),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s  %s  %s\n", tx.ID, tx.Date, tracker.Table().CategoryName(tx.Category), core.FormatNoSignCurrency(tx.Amount))
	return nil
}

func cmdList(tracker *services.Tracker, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	timeframe := fs.String("timeframe", string(report.Month), "month, prev_month or week")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tf := report.Timeframe(*timeframe)
	if !tf.Valid() {
		return fmt.Errorf("unknown timeframe %q", *timeframe)
	}

	view := tracker.Dashboard(tf)
	t := tracker.Table()
	settings := tracker.Settings()

	balance := core.FormatCurrency(view.Summary.Balance)
	if settings.HideBalance {
		balance = "••••••"
	}
	fmt.Printf("%s: %s\n", t.Get("balance"), balance)
	fmt.Printf("%s: %s   %s: %s\n",
		t.Get("income"), core.FormatNoSignCurrency(view.Summary.Income),
		t.Get("expense"), core.FormatNoSignCurrency(view.Summary.Expense))

	if len(view.Summary.ByCategory) > 0 {
		fmt.Printf("\n%s:\n", t.Get("total_spending"))
		for _, ct := range view.Summary.ByCategory {
			fmt.Printf("  %-20s %s\n", t.CategoryName(ct.Category), core.FormatNoSignCurrency(ct.Amount))
		}
	}

	fmt.Printf("\n%s:\n", t.Get("transactions"))
	for _, tx := range view.Transactions {
		fmt.Printf("  %s  %-18s %-20s %s\n", tx.ID, tx.Date, tx.Title, core.FormatCurrency(signedAmount(tx)))
	}
	return nil
}

// signedAmount applies the transaction direction for display.
func signedAmount(tx core.Transaction) int64 {
	if tx.Type == core.Expense {
		return -tx.Amount
	}
	return tx.Amount
}

func cmdRemove(ctx context.Context, tracker *services.Tracker, args []string) error {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	id := fs.String("id", "", "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("missing -id")
	}
	return tracker.DeleteTransaction(ctx, *id)
}

func cmdBudget(ctx context.Context, tracker *services.Tracker, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "set":
		fs := flag.NewFlagSet("budget set", flag.ExitOnError)
		category := fs.String("category", "", "category id")
		limit := fs.Int64("limit", 0, "monthly limit in đồng")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		b, err := tracker.SetBudget(ctx, core.Category(*category), *limit)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s  %s\n", b.ID, tracker.Table().CategoryName(b.Category), core.FormatNoSignCurrency(b.Limit))
		return nil
	case "rm":
		fs := flag.NewFlagSet("budget rm", flag.ExitOnError)
		id := fs.String("id", "", "budget id")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("missing -id")
		}
		return tracker.DeleteBudget(ctx, *id)
	case "list":
		t := tracker.Table()
		fmt.Printf("%s:\n", t.Get("budgets"))
		for _, b := range tracker.Budgets() {
			fmt.Printf("  %s  %-20s %s\n", b.ID, t.CategoryName(b.Category), core.FormatNoSignCurrency(b.Limit))
		}
		return nil
	default:
		return fmt.Errorf("unknown budget subcommand %q", args[0])
	}
}

func cmdNotifications(ctx context.Context, tracker *services.Tracker, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	read := fs.String("read", "", "mark one notification read by id")
	readAll := fs.Bool("read-all", false, "mark every notification read")
	clear := fs.Bool("clear", false, "clear the notification log")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *read != "":
		return tracker.MarkNotificationRead(ctx, *read)
	case *readAll:
		return tracker.MarkAllNotificationsRead(ctx)
	case *clear:
		return tracker.ClearNotifications(ctx)
	}

	t := tracker.Table()
	items := tracker.Notifications()
	if len(items) == 0 {
		fmt.Println(t.Get("no_notifications"))
		return nil
	}
	fmt.Printf("%s (%d unread):\n", t.Get("notifications"), tracker.UnreadCount())
	for _, n := range items {
		marker := "●"
		if n.Read {
			marker = " "
		}
		fmt.Printf("  %s %s [%s] %s — %s\n", marker, n.Time, n.Type, n.Title, n.Description)
	}
	return nil
}

func cmdSettings(ctx context.Context, tracker *services.Tracker, args []string) error {
	current := tracker.Settings()

	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	hideBalance := fs.Bool("hide-balance", current.HideBalance, "hide the balance amount")
	sortBy := fs.String("sort", string(current.SortBy), "latest, oldest, high or low")
	darkMode := fs.Bool("dark", current.DarkMode, "dark mode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Printf("hide-balance=%v sort=%s dark=%v\n", current.HideBalance, current.SortBy, current.DarkMode)
		return nil
	}
	return tracker.UpdateSettings(ctx, core.Settings{
		HideBalance: *hideBalance,
		SortBy:      core.SortOrder(*sortBy),
		DarkMode:    *darkMode,
	})
}

func cmdProfile(ctx context.Context, tracker *services.Tracker, args []string) error {
	current := tracker.Profile()

	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", current.Name, "display name")
	avatar := fs.String("avatar", current.Avatar, "avatar reference")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Printf("%s  %s\n", current.Name, current.Avatar)
		return nil
	}
	return tracker.UpdateProfile(ctx, *name, *avatar)
}

func cmdLang(ctx context.Context, tracker *services.Tracker, args []string) error {
	if len(args) == 0 {
		fmt.Println(tracker.Language())
		return nil
	}
	return tracker.SetLanguage(ctx, args[0])
}
