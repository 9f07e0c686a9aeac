package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expokit/standplan/internal/model"
	"github.com/expokit/standplan/internal/palette"
)

// AddTag appends an auto-named tag ("Tag <n+1>") with a random color
// from the fixed palette and returns it.
func (s *SQLiteStore) AddTag(ctx context.Context) (model.Tag, error) {
	var count int
	if err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM tags"); err != nil {
		return model.Tag{}, fmt.Errorf("counting tags: %w", err)
	}

	tag := model.Tag{
		ID:       uuid.New().String(),
		Label:    fmt.Sprintf("Tag %d", count+1),
		Color:    palette.RandomPaletteColor(s.rng),
		Position: count + 1,
	}
	if err := s.CreateTag(ctx, tag); err != nil {
		return model.Tag{}, err
	}
	return tag, nil
}

// CreateTag inserts a tag with an explicit id, label, and color.
// The position defaults to the end of the palette when unset.
func (s *SQLiteStore) CreateTag(ctx context.Context, tag model.Tag) error {
	if strings.TrimSpace(tag.Label) == "" {
		return fmt.Errorf("tag label must not be empty")
	}
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	if tag.Position == 0 {
		var maxPos int
		_ = s.db.GetContext(ctx, &maxPos,
			"SELECT COALESCE(MAX(position), 0) FROM tags")
		tag.Position = maxPos + 1
	}
	tag.CreatedAt = s.now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tags (id, label, color, position, created_at) VALUES (?, ?, ?, ?, ?)",
		tag.ID, tag.Label, tag.Color, tag.Position, tag.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating tag: %w", err)
	}
	return nil
}

// GetTags retrieves the palette in insertion order.
func (s *SQLiteStore) GetTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM tags ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var (
			t         model.Tag
			createdAt time.Time
		)
		if err := rows.Scan(&t.ID, &t.Label, &t.Color, &t.Position, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		t.CreatedAt = createdAt
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
