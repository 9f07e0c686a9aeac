package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/expokit/standplan/internal/model"
	"github.com/expokit/standplan/internal/palette"
)

// marshalLabels encodes a tag label list for storage, treating nil as
// an empty list.
func marshalLabels(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	b, err := json.Marshal(labels)
	return string(b), err
}

// seedProjects returns the demo projects a fresh session starts with,
// in display order.
func seedProjects() []model.Project {
	return []model.Project{
		{
			ID:       "expo-1",
			Name:     "Future Mobility Expo",
			Location: "Berlin, Germany",
			Dates:    "May 12 - 15, 2024",
			Status:   model.StatusActive,
			Tags:     []string{"Sustainability", "Innovation"},
			Stands: []model.Stand{
				{ID: "s1", Company: "AeroDynamics", Tags: []string{"VR/AR"}},
				{ID: "s2", Company: "VoltRide", Tags: []string{"Innovation"}},
			},
		},
		{
			ID:       "expo-2",
			Name:     "Luxury Hospitality Summit",
			Location: "Dubai, UAE",
			Dates:    "June 02 - 05, 2024",
			Status:   model.StatusPlanning,
			Tags:     []string{"Hospitality", "Retail"},
			Stands: []model.Stand{
				{ID: "s3", Company: "Oasis Living", Tags: []string{"Hospitality"}},
				{ID: "s4", Company: "Skyline Interiors", Tags: []string{"Retail"}},
			},
		},
		{
			ID:       "expo-3",
			Name:     "Immersive Tech Fair",
			Location: "Austin, USA",
			Dates:    "July 18 - 20, 2024",
			Status:   model.StatusArchived,
			Tags:     []string{"VR/AR", "Innovation"},
			Stands: []model.Stand{
				{ID: "s5", Company: "VisionGrid", Tags: []string{"VR/AR"}},
				{ID: "s6", Company: "HoloBay", Tags: []string{"Innovation"}},
			},
		},
	}
}

// Seed loads the demo tags, projects, and stands into an empty store.
func (s *SQLiteStore) Seed(ctx context.Context) error {
	for i, t := range palette.SeedTags() {
		t.Position = i + 1
		if err := s.CreateTag(ctx, t); err != nil {
			return err
		}
	}

	for i, p := range seedProjects() {
		if err := s.insertProject(ctx, p, i+1); err != nil {
			return err
		}
		for j, st := range p.Stands {
			st.ProjectID = p.ID
			st.Position = j + 1
			if err := s.AddStand(ctx, st); err != nil {
				return err
			}
		}
	}

	return nil
}

// insertProject writes a fully specified project row. Seeding only;
// user-created projects go through CreateProject.
func (s *SQLiteStore) insertProject(ctx context.Context, p model.Project, sortOrder int) error {
	tagsJSON, err := marshalLabels(p.Tags)
	if err != nil {
		return fmt.Errorf("marshaling tags for project %s: %w", p.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, location, dates, status, sort_order, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Location, p.Dates, p.Status, sortOrder, tagsJSON,
	)
	if err != nil {
		return fmt.Errorf("seeding project %s: %w", p.ID, err)
	}
	return nil
}
