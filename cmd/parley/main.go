package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/parley/internal/catalog"
	"github.com/alexanderramin/parley/internal/cli"
	"github.com/alexanderramin/parley/internal/coach"
	"github.com/alexanderramin/parley/internal/db"
	"github.com/alexanderramin/parley/internal/llm"
	"github.com/alexanderramin/parley/internal/lesson"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	dbPath := os.Getenv("PARLEY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".parley", "deck.db")
	}

	// The full-screen UI owns stdout, so logs only go to a file.
	logOut := io.Discard
	if path := os.Getenv("PARLEY_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rules := lesson.DefaultRules()
	store := catalog.NewStore(database, rules.MinCatalogSize(), catalog.NewLogDeckObserver(logOut))
	if _, err := store.Seed(ctx); err != nil {
		return err
	}

	app := &cli.App{
		Store:          store,
		Coach:          coach.Offline(),
		Rules:          rules,
		Observer:       lesson.NewLogObserver(logOut),
		ContentTimeout: contentTimeout(),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(logOut)
		}
		client, err := llm.NewClient(llmCfg, observer)
		if err != nil {
			return fmt.Errorf("configuring %s: %w", llmCfg.Provider, err)
		}
		app.Coach = coach.NewPracticeService(client, coach.NewLimiter(llmCfg.RatePerMinute))
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func contentTimeout() time.Duration {
	v := os.Getenv("PARLEY_CONTENT_TIMEOUT_MS")
	if v == "" {
		return lesson.DefaultContentTimeout
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return lesson.DefaultContentTimeout
	}
	return time.Duration(ms) * time.Millisecond
}
