package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paleite/sidebar"
	"github.com/paleite/sidebar/internal/config"
	"github.com/paleite/sidebar/internal/database"
	"github.com/paleite/sidebar/internal/prefs"
	"github.com/paleite/sidebar/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, cleanup := openStore(cfg)
	if cleanup != nil {
		defer cleanup()
	}

	app, err := tui.New(cfg, store)
	if err != nil {
		log.Fatalf("sidebar: %v", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// openStore builds the configured preference backend. A backend that
// cannot be opened degrades to no persistence; the coordinator works
// without one.
func openStore(cfg config.Config) (sidebar.Store, func()) {
	switch cfg.Store.Backend {
	case "file":
		s, err := prefs.NewFileStore()
		if err != nil {
			log.Printf("warn: file store unavailable: %v", err)
			return nil, nil
		}
		return s, nil
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
			log.Printf("warn: sqlite store unavailable: %v", err)
			return nil, nil
		}
		if err := database.RunMigrations(cfg.Store.Path, "internal/database/migrations"); err != nil {
			log.Printf("warn: migrate: %v", err)
			return nil, nil
		}
		db, err := database.Open(cfg.Store.Path)
		if err != nil {
			log.Printf("warn: sqlite store unavailable: %v", err)
			return nil, nil
		}
		return prefs.NewSQLiteStore(db), func() { _ = db.Close() }
	case "redis":
		s, err := prefs.NewRedisStore(cfg.Store.RedisURL)
		if err != nil {
			log.Printf("warn: redis store unavailable: %v", err)
			return nil, nil
		}
		return s, func() { _ = s.Close() }
	case "none":
		return nil, nil
	default:
		log.Printf("warn: unknown store backend %q, running without persistence", cfg.Store.Backend)
		return nil, nil
	}
}
