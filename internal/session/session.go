// Package session owns the transient per-session state: the selected
// project, search and filter inputs, the active view, notices, and
// the coordination of asynchronous photo and enrichment completions
// with the domain store and draft editor.
//
// All state transitions run under one mutex, so synchronous mutations
// never interleave mid-operation. Asynchronous completions re-enter
// through guarded apply paths that discard stale results.
package session

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/expokit/standplan/internal/editor"
	"github.com/expokit/standplan/internal/enrich"
	"github.com/expokit/standplan/internal/model"
	"github.com/expokit/standplan/internal/photo"
	"github.com/expokit/standplan/internal/query"
	"github.com/expokit/standplan/internal/store"
)

// View identifies one of the named screens. Switching view never
// mutates domain data, and there is no navigation history.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewProject     View = "project"
	ViewStandEditor View = "standEditor"
	ViewTagManager  View = "tagManager"
	ViewExport      View = "export"
)

// Valid reports whether v names a known screen.
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewProject, ViewStandEditor, ViewTagManager, ViewExport:
		return true
	}
	return false
}

// Session is the state engine behind the UI. Create one per running
// session with New.
type Session struct {
	mu sync.Mutex

	store    store.Store
	editor   *editor.Editor
	ingestor *photo.Ingestor
	enricher enrich.Service
	log      *zap.Logger
	rng      *rand.Rand
	now      func() time.Time

	view              View
	selectedProjectID string
	selectedStandID   string
	projectSearch     string
	standSearch       string
	tagFilter         string

	aiLoading  bool
	generation uint64
	noticeTTL  time.Duration

	notice        string
	noticeExpires time.Time
}

// New creates a session over the given collaborators. noticeTTL
// controls how long notices stay visible before auto-expiring.
func New(st store.Store, ed *editor.Editor, ing *photo.Ingestor, svc enrich.Service, log *zap.Logger, noticeTTL time.Duration) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		store:     st,
		editor:    ed,
		ingestor:  ing,
		enricher:  svc,
		log:       log,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
		view:      ViewDashboard,
		tagFilter: query.TagFilterAll,
		noticeTTL: noticeTTL,
	}
}

// SwitchView changes the active screen. Unknown views are absorbed.
func (s *Session) SwitchView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !v.Valid() {
		s.log.Debug("switch view: unknown view, ignored", zap.String("view", string(v)))
		return
	}
	s.view = v
}

// View returns the active screen.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SelectProject makes the project the current one. Selecting a
// different project resets the stand search and tag filter to their
// defaults and invalidates any pending enrichment.
func (s *Session) SelectProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectProjectLocked(id)
}

func (s *Session) selectProjectLocked(id string) {
	if id == s.selectedProjectID {
		return
	}
	s.selectedProjectID = id
	s.standSearch = ""
	s.tagFilter = query.TagFilterAll
	s.invalidateGenerationLocked()
}

// SelectedProjectID returns the current project id.
func (s *Session) SelectedProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedProjectID
}

// CreateProject adds a fresh project at the head of the list, makes
// it current, and switches to the project view.
func (s *Session) CreateProject(ctx context.Context) (model.Project, error) {
	p, err := s.store.CreateProject(ctx)
	if err != nil {
		return model.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectProjectLocked(p.ID)
	s.view = ViewProject
	return p, nil
}

// SetActive promotes the project to Active (demoting any other Active
// project to Planning) and makes it current. Unknown ids leave the
// store unchanged but still move the selection; reads fall back to
// the head of the list when the selection is stale.
func (s *Session) SetActive(ctx context.Context, id string) error {
	if err := s.store.SetActiveProject(ctx, id); err != nil {
		return err
	}
	s.SelectProject(id)
	return nil
}

// Archive archives the project and makes it current.
func (s *Session) Archive(ctx context.Context, id string) error {
	if err := s.store.ArchiveProject(ctx, id); err != nil {
		return err
	}
	s.SelectProject(id)
	return nil
}

// Edit makes the project current and switches to the stand editor.
// Pure navigation; no domain data changes.
func (s *Session) Edit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectProjectLocked(id)
	s.view = ViewStandEditor
}

// EditStand opens the stand's draft in the editor view. Switching to
// a different stand invalidates any pending enrichment.
func (s *Session) EditStand(standID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if standID != s.selectedStandID {
		s.selectedStandID = standID
		s.invalidateGenerationLocked()
	}
	s.view = ViewStandEditor
}

// SelectedStandID returns the stand whose draft is open.
func (s *Session) SelectedStandID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedStandID
}

// SetProjectSearch sets the dashboard search query.
func (s *Session) SetProjectSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projectSearch = q
}

// SetStandSearch sets the stand search query for the current project.
func (s *Session) SetStandSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.standSearch = q
}

// SetTagFilter scopes the stand list to one tag label, or to all
// stands with query.TagFilterAll.
func (s *Session) SetTagFilter(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tagFilter = label
}

// Projects returns the project list filtered by the dashboard search.
func (s *Session) Projects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.store.GetProjects(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	search := s.projectSearch
	s.mu.Unlock()

	return query.FilterProjects(projects, search), nil
}

// SelectedProject returns the current project, falling back to the
// head of the list when the selection is empty or stale. Returns nil
// when no projects exist.
func (s *Session) SelectedProject(ctx context.Context) (*model.Project, error) {
	s.mu.Lock()
	id := s.selectedProjectID
	s.mu.Unlock()

	if id != "" {
		p, err := s.store.GetProjectByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}

	projects, err := s.store.GetProjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, nil
	}
	return &projects[0], nil
}

// FilterTags returns the current project's tag universe: its own tags
// first, then stand tags in stand order, de-duplicated.
func (s *Session) FilterTags(ctx context.Context) ([]string, error) {
	p, err := s.SelectedProject(ctx)
	if err != nil {
		return nil, err
	}
	return query.TagUniverse(p), nil
}

// Stands returns the current project's stands filtered by the stand
// search and tag filter.
func (s *Session) Stands(ctx context.Context) ([]model.Stand, error) {
	p, err := s.SelectedProject(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	search, tagFilter := s.standSearch, s.tagFilter
	s.mu.Unlock()

	return query.FilterStands(p, search, tagFilter), nil
}

// AddTag appends an auto-named tag to the shared palette.
func (s *Session) AddTag(ctx context.Context) (model.Tag, error) {
	return s.store.AddTag(ctx)
}

// AddStand appends a stand to its project.
func (s *Session) AddStand(ctx context.Context, stand model.Stand) error {
	return s.store.AddStand(ctx, stand)
}

// Draft returns a copy of the stand's draft.
func (s *Session) Draft(standID string) model.StandDraft {
	return s.editor.Draft(standID)
}

// Editor exposes the draft editor for field and list mutations.
func (s *Session) Editor() *editor.Editor {
	return s.editor
}

// Notice returns the current notice text, or "" once it has expired
// or been dismissed.
func (s *Session) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notice != "" && s.now().After(s.noticeExpires) {
		s.notice = ""
	}
	return s.notice
}

// DismissNotice clears the notice immediately.
func (s *Session) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = ""
}

// setNoticeLocked shows an auto-expiring notice. Callers hold s.mu.
func (s *Session) setNoticeLocked(text string) {
	s.notice = text
	s.noticeExpires = s.now().Add(s.noticeTTL)
}
