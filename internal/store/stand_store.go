package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/expokit/standplan/internal/model"
)

// AddStand appends a stand to its project. The stand's position
// defaults to the end of the project's list when unset.
func (s *SQLiteStore) AddStand(ctx context.Context, stand model.Stand) error {
	if stand.Position == 0 {
		var maxPos int
		_ = s.db.GetContext(ctx, &maxPos,
			"SELECT COALESCE(MAX(position), 0) FROM stands WHERE project_id = ?",
			stand.ProjectID)
		stand.Position = maxPos + 1
	}
	if stand.Tags == nil {
		stand.Tags = []string{}
	}

	tagsJSON, err := json.Marshal(stand.Tags)
	if err != nil {
		return fmt.Errorf("marshaling stand tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO stands (id, project_id, company, position, tags)
		VALUES (?, ?, ?, ?, ?)`,
		stand.ID, stand.ProjectID, stand.Company, stand.Position, string(tagsJSON),
	)
	if err != nil {
		return fmt.Errorf("adding stand %s: %w", stand.ID, err)
	}
	return nil
}

// getStands loads every stand grouped by project id, ordered by
// position within each project.
func (s *SQLiteStore) getStands(ctx context.Context) (map[string][]model.Stand, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM stands ORDER BY project_id, position")
	if err != nil {
		return nil, fmt.Errorf("querying stands: %w", err)
	}
	defer rows.Close()

	byProject := make(map[string][]model.Stand)
	for rows.Next() {
		st, err := scanStand(rows)
		if err != nil {
			return nil, err
		}
		byProject[st.ProjectID] = append(byProject[st.ProjectID], st)
	}
	return byProject, rows.Err()
}

// getStandsForProject loads a single project's stands in position order.
func (s *SQLiteStore) getStandsForProject(ctx context.Context, projectID string) ([]model.Stand, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM stands WHERE project_id = ? ORDER BY position", projectID)
	if err != nil {
		return nil, fmt.Errorf("querying stands for project %s: %w", projectID, err)
	}
	defer rows.Close()

	stands := []model.Stand{}
	for rows.Next() {
		st, err := scanStand(rows)
		if err != nil {
			return nil, err
		}
		stands = append(stands, st)
	}
	return stands, rows.Err()
}

// scanStand scans a stand row from a sqlx.Rows result set.
func scanStand(rows *sqlx.Rows) (model.Stand, error) {
	var (
		st       model.Stand
		tagsJSON string
	)

	err := rows.Scan(&st.ID, &st.ProjectID, &st.Company, &st.Position, &tagsJSON)
	if err != nil {
		return model.Stand{}, fmt.Errorf("scanning stand row: %w", err)
	}

	if err := json.Unmarshal([]byte(tagsJSON), &st.Tags); err != nil {
		return model.Stand{}, fmt.Errorf("unmarshaling stand tags: %w", err)
	}

	return st, nil
}
