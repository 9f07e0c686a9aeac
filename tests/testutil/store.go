// Package testutil provides shared helpers for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/expokit/standplan/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations
// applied. It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(store.MemoryDSN, nil)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewSeededStore creates an in-memory store pre-loaded with the demo
// tags, projects, and stands.
func NewSeededStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s := NewTestStore(t)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seeding test store: %v", err)
	}
	return s
}
