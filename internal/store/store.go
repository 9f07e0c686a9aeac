package store

import (
	"context"

	"github.com/expokit/standplan/internal/model"
)

// Store defines the session store for projects, stands, and the
// shared tag palette.
//
// Mutations on unknown ids are deliberately absorbed: the store is
// left unchanged and no error is returned. Each absorbed call is
// logged at debug level so the contract stays observable.
type Store interface {
	// === Projects ===

	CreateProject(ctx context.Context) (model.Project, error)
	SetActiveProject(ctx context.Context, id string) error
	ArchiveProject(ctx context.Context, id string) error
	GetProjects(ctx context.Context) ([]model.Project, error)
	GetProjectByID(ctx context.Context, id string) (*model.Project, error)

	// === Stands ===

	AddStand(ctx context.Context, stand model.Stand) error

	// === Tags ===

	AddTag(ctx context.Context) (model.Tag, error)
	CreateTag(ctx context.Context, tag model.Tag) error
	GetTags(ctx context.Context) ([]model.Tag, error)

	// Seed loads the demo tags, projects, and stands a fresh session
	// starts with.
	Seed(ctx context.Context) error
}
