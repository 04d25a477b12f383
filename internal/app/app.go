package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dori/wille/internal/db"
	"github.com/dori/wille/internal/notify"
	"github.com/dori/wille/internal/storage"
	"github.com/dori/wille/internal/store"
	"github.com/gofrs/flock"
)

// App holds the application state and dependencies
type App struct {
	Config   *Config
	Store    *store.Controller
	Logger   *log.Logger
	Notifier *notify.Notifier
	DataDir  string

	db       *db.DB
	logFile  *os.File
	lockFile *flock.Flock
	complete bool
}

// New creates a new application instance
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
		if err := cfg.finalize(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	app := &App{
		Config:   cfg,
		DataDir:  cfg.DataDir,
		Notifier: notify.NewNotifier(),
	}
	app.Notifier.SetEnabled(cfg.Notify)

	if err := app.openLog(); err != nil {
		return nil, err
	}

	// Acquire lock to ensure single instance
	if err := app.acquireLock(); err != nil {
		app.logFile.Close()
		return nil, err
	}

	locals := storage.New(app.openBackend(), app.Logger)
	if !locals.Available() {
		app.Logger.Warn("running without storage, changes will not be saved")
	}
	if err := store.RegisterSchemas(locals); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to register schemas: %w", err)
	}

	app.Store = store.Load(locals,
		store.WithLogger(app.Logger.WithPrefix("store")),
		store.WithObserver(app.onChange),
	)
	app.complete = app.Store.Progress().Complete()

	return app, nil
}

// openLog sends log output to a file so it cannot corrupt the TUI
func (a *App) openLog() error {
	path := filepath.Join(a.DataDir, "wille.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f

	level, err := log.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	a.Logger = log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "wille",
	})
	return nil
}

// openBackend opens the configured backend. When SQLite cannot be opened the
// session continues without durable storage.
func (a *App) openBackend() storage.Backend {
	if a.Config.Storage == StorageMemory {
		return storage.NewMemory()
	}

	database, err := db.Open(a.Config.DBPath)
	if err != nil {
		a.Logger.Error("failed to open database", "path", a.Config.DBPath, "err", err)
		return nil
	}
	a.db = database
	return database
}

// onChange notifies once when the last open todo gets done
func (a *App) onChange(e store.Event) {
	complete := a.Store.Progress().Complete()
	if complete && !a.complete {
		if err := a.Notifier.SendAllDone(a.Store.Progress().Total); err != nil {
			a.Logger.Debug("notification failed", "err", err)
		}
	}
	a.complete = complete
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "wille.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of wille is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if a.logFile != nil {
		a.logFile.Close()
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
