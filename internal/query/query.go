// Package query derives the filtered views the UI renders: the
// searched project list, a project's tag universe, and the searched,
// tag-scoped stand list. Everything here is a pure function over
// store snapshots; nothing mutates.
package query

import (
	"strings"

	"github.com/expokit/standplan/internal/model"
)

// TagFilterAll is the sentinel tag filter matching every stand.
const TagFilterAll = "All"

// FilterProjects returns the projects whose name, location, or any
// tag label contains the query as a case-insensitive substring. An
// empty or whitespace-only query returns the input unchanged, in the
// same order.
func FilterProjects(projects []model.Project, query string) []model.Project {
	value := strings.ToLower(strings.TrimSpace(query))
	if value == "" {
		return projects
	}

	var matched []model.Project
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), value) ||
			strings.Contains(strings.ToLower(p.Location), value) ||
			anyContains(p.Tags, value) {
			matched = append(matched, p)
		}
	}
	return matched
}

// TagUniverse returns the union of a project's own tags and every tag
// on its stands, de-duplicated, first-seen order preserved: project
// tags first, then stand tags in stand order.
func TagUniverse(project *model.Project) []string {
	if project == nil {
		return nil
	}

	seen := make(map[string]bool)
	var universe []string
	add := func(label string) {
		if !seen[label] {
			seen[label] = true
			universe = append(universe, label)
		}
	}

	for _, t := range project.Tags {
		add(t)
	}
	for _, st := range project.Stands {
		for _, t := range st.Tags {
			add(t)
		}
	}
	return universe
}

// FilterStands returns the project's stands matching both the search
// query (company name or any stand tag, case-insensitive; empty
// matches all) and the tag filter (TagFilterAll or one exact label).
func FilterStands(project *model.Project, query, tagFilter string) []model.Stand {
	if project == nil {
		return nil
	}

	value := strings.ToLower(strings.TrimSpace(query))

	var matched []model.Stand
	for _, st := range project.Stands {
		matchesSearch := value == "" ||
			strings.Contains(strings.ToLower(st.Company), value) ||
			anyContains(st.Tags, value)
		matchesTag := tagFilter == TagFilterAll || st.HasTag(tagFilter)

		if matchesSearch && matchesTag {
			matched = append(matched, st)
		}
	}
	return matched
}

// anyContains reports whether any label contains the lowercased value.
func anyContains(labels []string, value string) bool {
	for _, l := range labels {
		if strings.Contains(strings.ToLower(l), value) {
			return true
		}
	}
	return false
}
