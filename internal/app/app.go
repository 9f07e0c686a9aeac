// Package app assembles a running planner session from its parts:
// the seeded session store, the draft editor, the photo pipeline,
// and the configured enrichment strategy.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/expokit/standplan/internal/config"
	"github.com/expokit/standplan/internal/editor"
	"github.com/expokit/standplan/internal/enrich"
	"github.com/expokit/standplan/internal/photo"
	"github.com/expokit/standplan/internal/session"
	"github.com/expokit/standplan/internal/store"
)

// sampleStandID is the seeded stand whose draft starts pre-filled.
const sampleStandID = "s1"

// App bundles a session with the store backing it.
type App struct {
	Store   *store.SQLiteStore
	Session *session.Session
}

// New builds a fully wired session: in-memory store with the demo
// data loaded, the sample draft opened for stand s1, and the first
// demo project selected. The enrichment strategy follows the config:
// the local heuristic by default, the serve endpoint when
// cfg.Enrichment.Remote is set.
func New(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	st, err := store.NewSQLiteStore(store.MemoryDSN, log)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	if err := st.Seed(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("seeding session store: %w", err)
	}

	ed := editor.New(log)
	ed.SeedSample(sampleStandID)

	var svc enrich.Service
	if cfg.Enrichment.Remote {
		svc = enrich.NewClient(cfg.Enrichment.Endpoint, log)
	} else {
		svc = enrich.NewMock(cfg.Enrichment.MockDelay)
	}

	sess := session.New(st, ed, photo.New(log), svc, log, cfg.Enrichment.NoticeTTL)
	sess.SelectProject("expo-1")
	sess.EditStand(sampleStandID)
	sess.SwitchView(session.ViewDashboard)

	return &App{Store: st, Session: sess}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	return a.Store.Close()
}
