package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/expokit/standplan/internal/model"
)

// CreateProject inserts a new project at the head of the list and
// returns it. The project starts in Planning with the first two
// palette labels as default tags and today's date.
func (s *SQLiteStore) CreateProject(ctx context.Context) (model.Project, error) {
	ms := s.nextProjectMilli()

	tags, err := s.GetTags(ctx)
	if err != nil {
		return model.Project{}, err
	}
	defaultTags := make([]string, 0, 2)
	for _, t := range tags {
		if len(defaultTags) == 2 {
			break
		}
		defaultTags = append(defaultTags, t.Label)
	}

	var minOrder sql.NullInt64
	if err := s.db.GetContext(ctx, &minOrder,
		"SELECT MIN(sort_order) FROM projects"); err != nil {
		return model.Project{}, fmt.Errorf("reading project order: %w", err)
	}
	sortOrder := 0
	if minOrder.Valid {
		sortOrder = int(minOrder.Int64) - 1
	}

	project := model.Project{
		ID:        fmt.Sprintf("project-%d", ms),
		Name:      "Untitled Project",
		Location:  "Set location",
		Dates:     s.now().Format("Jan 2, 2006"),
		Status:    model.StatusPlanning,
		SortOrder: sortOrder,
		Tags:      defaultTags,
		Stands:    []model.Stand{},
	}

	tagsJSON, err := json.Marshal(project.Tags)
	if err != nil {
		return model.Project{}, fmt.Errorf("marshaling project tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, location, dates, status, sort_order, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Location, project.Dates,
		project.Status, project.SortOrder, string(tagsJSON),
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("creating project: %w", err)
	}

	return project, nil
}

// SetActiveProject promotes the target project to Active and demotes
// every other Active project to Planning, so at most one project is
// Active afterwards. An unknown id leaves the store unchanged.
func (s *SQLiteStore) SetActiveProject(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.GetContext(ctx, &exists,
		"SELECT COUNT(*) FROM projects WHERE id = ?", id); err != nil {
		return fmt.Errorf("checking project %s: %w", id, err)
	}
	if exists == 0 {
		s.log.Debug("set active: project not found, ignored", zap.String("project_id", id))
		return nil
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE projects SET status = ? WHERE status = ? AND id != ?",
		model.StatusPlanning, model.StatusActive, id); err != nil {
		return fmt.Errorf("demoting active projects: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE projects SET status = ? WHERE id = ?",
		model.StatusActive, id); err != nil {
		return fmt.Errorf("activating project %s: %w", id, err)
	}

	return tx.Commit()
}

// ArchiveProject sets the project's status to Archived regardless of
// its current status; archiving twice is a no-op in effect. An
// unknown id leaves the store unchanged.
func (s *SQLiteStore) ArchiveProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE projects SET status = ? WHERE id = ?",
		model.StatusArchived, id)
	if err != nil {
		return fmt.Errorf("archiving project %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		s.log.Debug("archive: project not found, ignored", zap.String("project_id", id))
	}
	return nil
}

// GetProjects retrieves all projects in display order (head first),
// with stands populated in stand position order.
func (s *SQLiteStore) GetProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM projects ORDER BY sort_order")
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stands, err := s.getStands(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Stands = stands[projects[i].ID]
		if projects[i].Stands == nil {
			projects[i].Stands = []model.Stand{}
		}
	}

	return projects, nil
}

// GetProjectByID retrieves a single project with its stands, or nil
// if no project has that id.
func (s *SQLiteStore) GetProjectByID(ctx context.Context, id string) (*model.Project, error) {
	row := s.db.QueryRowxContext(ctx, "SELECT * FROM projects WHERE id = ?", id)

	p, err := scanProjectRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting project %s: %w", id, err)
	}

	stands, err := s.getStandsForProject(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Stands = stands

	return &p, nil
}

// scanProject scans a project row from a sqlx.Rows result set.
func scanProject(rows *sqlx.Rows) (model.Project, error) {
	var (
		p        model.Project
		tagsJSON string
	)

	err := rows.Scan(
		&p.ID, &p.Name, &p.Location, &p.Dates,
		&p.Status, &p.SortOrder, &tagsJSON,
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("scanning project row: %w", err)
	}

	if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
		return model.Project{}, fmt.Errorf("unmarshaling project tags: %w", err)
	}

	return p, nil
}

// scanProjectRow scans a single project row from a sqlx.Row.
func scanProjectRow(row *sqlx.Row) (model.Project, error) {
	var (
		p        model.Project
		tagsJSON string
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Location, &p.Dates,
		&p.Status, &p.SortOrder, &tagsJSON,
	)
	if err != nil {
		return model.Project{}, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
		return model.Project{}, fmt.Errorf("unmarshaling project tags: %w", err)
	}

	return p, nil
}
