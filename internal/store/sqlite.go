package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database. Session state is
// volatile on purpose: nothing survives a restart.
const MemoryDSN = ":memory:"

// SQLiteStore implements the Store interface using a SQLite database.
type SQLiteStore struct {
	db  *sqlx.DB
	log *zap.Logger
	rng *rand.Rand

	// now is the clock used for ids and timestamps.
	now func() time.Time

	// lastProjectMilli keeps project-<timestamp> ids monotonic when
	// two projects are created within the same millisecond.
	mu               sync.Mutex
	lastProjectMilli int64
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and
// runs any pending schema migrations. Pass MemoryDSN for the normal
// volatile session store.
func NewSQLiteStore(dbPath string, log *zap.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// An in-memory database must not be re-opened per query; every
	// connection would see its own empty schema.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:  db,
		log: log,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// nextProjectMilli returns a strictly increasing millisecond value
// for project id generation.
func (s *SQLiteStore) nextProjectMilli() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := s.now().UnixMilli()
	if ms <= s.lastProjectMilli {
		ms = s.lastProjectMilli + 1
	}
	s.lastProjectMilli = ms
	return ms
}
