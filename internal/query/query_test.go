package query_test

import (
	"reflect"
	"testing"

	"github.com/expokit/standplan/internal/model"
	"github.com/expokit/standplan/internal/query"
)

func demoProjects() []model.Project {
	return []model.Project{
		{ID: "p1", Name: "Future Mobility Expo", Location: "Berlin, Germany", Tags: []string{"Sustainability"}},
		{ID: "p2", Name: "Luxury Hospitality Summit", Location: "Dubai, UAE", Tags: []string{"Hospitality", "Retail"}},
		{ID: "p3", Name: "Immersive Tech Fair", Location: "Austin, USA", Tags: []string{"VR/AR"}},
	}
}

func projectIDs(projects []model.Project) []string {
	var ids []string
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterProjects(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all", "", []string{"p1", "p2", "p3"}},
		{"whitespace only returns all", "   ", []string{"p1", "p2", "p3"}},
		{"name match case-insensitive", "MOBILITY", []string{"p1"}},
		{"location match", "dubai", []string{"p2"}},
		{"tag substring match", "vr", []string{"p3"}},
		{"shared substring", "u", []string{"p1", "p2", "p3"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projectIDs(query.FilterProjects(demoProjects(), tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterProjects(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterProjectsEmptyQueryKeepsOrder(t *testing.T) {
	projects := demoProjects()
	got := query.FilterProjects(projects, "")
	if !reflect.DeepEqual(got, projects) {
		t.Errorf("empty query changed the slice: %v", projectIDs(got))
	}
}

func TestTagUniverse(t *testing.T) {
	project := &model.Project{
		Tags: []string{"A", "B"},
		Stands: []model.Stand{
			{Tags: []string{"B", "C"}},
			{Tags: []string{"A"}},
		},
	}

	got := query.TagUniverse(project)
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagUniverse = %v, want %v", got, want)
	}
}

func TestTagUniverseNilProject(t *testing.T) {
	if got := query.TagUniverse(nil); got != nil {
		t.Errorf("TagUniverse(nil) = %v, want nil", got)
	}
}

func TestFilterStands(t *testing.T) {
	project := &model.Project{
		Stands: []model.Stand{
			{ID: "s1", Company: "AeroDynamics", Tags: []string{"VR/AR"}},
			{ID: "s2", Company: "VoltRide", Tags: []string{"Innovation"}},
			{ID: "s3", Company: "Oasis Living", Tags: []string{"Hospitality"}},
		},
	}

	tests := []struct {
		name      string
		query     string
		tagFilter string
		want      []string
	}{
		{"all", "", query.TagFilterAll, []string{"s1", "s2", "s3"}},
		{"company search", "volt", query.TagFilterAll, []string{"s2"}},
		{"tag search", "hosp", query.TagFilterAll, []string{"s3"}},
		{"tag filter exact", "", "Innovation", []string{"s2"}},
		{"search and filter both apply", "aero", "Innovation", nil},
		{"filter label must be exact", "", "Innov", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stands := query.FilterStands(project, tt.query, tt.tagFilter)
			ids := make([]string, 0, len(stands))
			for _, st := range stands {
				ids = append(ids, st.ID)
			}
			if len(ids) == 0 {
				ids = nil
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("FilterStands(%q, %q) = %v, want %v", tt.query, tt.tagFilter, ids, tt.want)
			}
		})
	}
}

func TestFilterStandsNilProject(t *testing.T) {
	if got := query.FilterStands(nil, "", query.TagFilterAll); got != nil {
		t.Errorf("FilterStands(nil) = %v, want nil", got)
	}
}
