package store_test

import (
	"context"
	"strings"
	"testing"

	"github.com/expokit/standplan/internal/model"
	"github.com/expokit/standplan/tests/testutil"
)

func TestSeedLoadsDemoData(t *testing.T) {
	s := testutil.NewSeededStore(t)
	ctx := context.Background()

	projects, err := s.GetProjects(ctx)
	if err != nil {
		t.Fatalf("GetProjects: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("got %d projects, want 3", len(projects))
	}

	wantIDs := []string{"expo-1", "expo-2", "expo-3"}
	wantStatus := []string{model.StatusActive, model.StatusPlanning, model.StatusArchived}
	for i, p := range projects {
		if p.ID != wantIDs[i] {
			t.Errorf("project %d: got id %q, want %q", i, p.ID, wantIDs[i])
		}
		if p.Status != wantStatus[i] {
			t.Errorf("project %s: got status %q, want %q", p.ID, p.Status, wantStatus[i])
		}
		if len(p.Stands) != 2 {
			t.Errorf("project %s: got %d stands, want 2", p.ID, len(p.Stands))
		}
	}

	tags, err := s.GetTags(ctx)
	if err != nil {
		t.Fatalf("GetTags: %v", err)
	}
	if len(tags) != 5 {
		t.Fatalf("got %d tags, want 5", len(tags))
	}
	if tags[0].Label != "Sustainability" || tags[1].Label != "Innovation" {
		t.Errorf("unexpected leading tags: %q, %q", tags[0].Label, tags[1].Label)
	}
}

func TestCreateProjectDefaultsAndHeadInsertion(t *testing.T) {
	s := testutil.NewSeededStore(t)
	ctx := context.Background()

	created, err := s.CreateProject(ctx)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if !strings.HasPrefix(created.ID, "project-") {
		t.Errorf("got id %q, want project-<ms> shape", created.ID)
	}
	if created.Name != "Untitled Project" {
		t.Errorf("got name %q, want %q", created.Name, "Untitled Project")
	}
	if created.Location != "Set location" {
		t.Errorf("got location %q, want %q", created.Location, "Set location")
	}
	if created.Status != model.StatusPlanning {
		t.Errorf("got status %q, want %q", created.Status, model.StatusPlanning)
	}
	wantTags := []string{"Sustainability", "Innovation"}
	if len(created.Tags) != 2 || created.Tags[0] != wantTags[0] || created.Tags[1] != wantTags[1] {
		t.Errorf("got tags %v, want %v", created.Tags, wantTags)
	}

	projects, err := s.GetProjects(ctx)
	if err != nil {
		t.Fatalf("GetProjects: %v", err)
	}
	if projects[0].ID != created.ID {
		t.Errorf("new project not at head: got %q first", projects[0].ID)
	}
}

func TestCreateProjectOnEmptyStore(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProject(ctx)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if len(created.Tags) != 0 {
		t.Errorf("got tags %v, want none on empty palette", created.Tags)
	}
}

func TestSetActiveProjectDemotesPrevious(t *testing.T) {
	s := testutil.NewSeededStore(t)
	ctx := context.Background()

	if err := s.SetActiveProject(ctx, "expo-2"); err != nil {
		t.Fatalf("SetActiveProject: %v", err)
	}

	projects, err := s.GetProjects(ctx)
	if err != nil {
		t.Fatalf("GetProjects: %v", err)
	}

	active := 0
	for _, p := range projects {
		switch p.ID {
		case "expo-1":
			if p.Status != model.StatusPlanning {
				t.Errorf("expo-1: got %q, want demotion to %q", p.Status, model.StatusPlanning)
			}
		case "expo-2":
			if p.Status != model.StatusActive {
				t.Errorf("expo-2: got %q, want %q", p.Status, model.StatusActive)
			}
		}
		if p.Status == model.StatusActive {
			active++
		}
	}
	if active != 1 {
		t.Errorf("got %d active projects, want exactly 1", active)
	}
}

func TestSetActiveProjectUnknownIDIsNoOp(t *testing.T) {
	s := testutil.NewSeededStore(t)
	ctx := context.Background()

	if err := s.SetActiveProject(ctx, "missing"); err != nil {
		t.Fatalf("SetActiveProject: %v", err)
	}

	p, err := s.GetProjectByID(ctx, "expo-1")
	if err != nil {
		t.Fatalf("GetProjectByID: %v", err)
	}
	if p.Status != model.StatusActive {
		t.Errorf("expo-1 changed on unknown-id activate: got %q", p.Status)
	}
}

func TestArchiveProjectIsIdempotent(t *testing.T) {
	s := testutil.NewSeededStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := s.ArchiveProject(ctx, "expo-1"); err != nil {
			t.Fatalf("ArchiveProject (call %d): %v", i+1, err)
		}
	}

	p, err := s.GetProjectByID(ctx, "expo-1")
	if err != nil {
		t.Fatalf("GetProjectByID: %v", err)
	}
	if p.Status != model.StatusArchived {
		t.Errorf("got %q, want %q", p.Status, model.StatusArchived)
	}

	// Unknown ids are absorbed without error.
	if err := s.ArchiveProject(ctx, "missing"); err != nil {
		t.Fatalf("ArchiveProject unknown id: %v", err)
	}
}

func TestGetProjectByIDUnknownReturnsNil(t *testing.T) {
	s := testutil.NewSeededStore(t)

	p, err := s.GetProjectByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetProjectByID: %v", err)
	}
	if p != nil {
		t.Errorf("got %+v, want nil for unknown id", p)
	}
}

func TestAddTagAutoNaming(t *testing.T) {
	s := testutil.NewSeededStore(t)
	ctx := context.Background()

	tag, err := s.AddTag(ctx)
	if err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	if tag.Label != "Tag 6" {
		t.Errorf("got label %q, want %q", tag.Label, "Tag 6")
	}
	if tag.Color == "" {
		t.Error("tag has no color")
	}

	tags, err := s.GetTags(ctx)
	if err != nil {
		t.Fatalf("GetTags: %v", err)
	}
	if got := tags[len(tags)-1].Label; got != "Tag 6" {
		t.Errorf("new tag not last: got %q", got)
	}
}

func TestCreateTagRejectsEmptyLabel(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.CreateTag(context.Background(), model.Tag{ID: "t", Label: ""})
	if err == nil {
		t.Fatal("expected error for empty label")
	}
}

func TestAddStandAppendsAtEnd(t *testing.T) {
	s := testutil.NewSeededStore(t)
	ctx := context.Background()

	err := s.AddStand(ctx, model.Stand{
		ID:        "s-new",
		ProjectID: "expo-1",
		Company:   "NovaTech",
		Tags:      []string{"Innovation"},
	})
	if err != nil {
		t.Fatalf("AddStand: %v", err)
	}

	p, err := s.GetProjectByID(ctx, "expo-1")
	if err != nil {
		t.Fatalf("GetProjectByID: %v", err)
	}
	if len(p.Stands) != 3 {
		t.Fatalf("got %d stands, want 3", len(p.Stands))
	}
	if last := p.Stands[len(p.Stands)-1]; last.ID != "s-new" {
		t.Errorf("new stand not last: got %q", last.ID)
	}
}
