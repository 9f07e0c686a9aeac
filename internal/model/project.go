package model

// Project status constants. At most one project is Active at a time;
// the store enforces this on every activation.
const (
	StatusActive   = "Active"
	StatusPlanning = "Planning"
	StatusArchived = "Archived"
)

// Project is a trade-show event containing multiple stands.
// Dates is free text exactly as the user entered it.
type Project struct {
	ID        string   `json:"id" db:"id"`
	Name      string   `json:"name" db:"name"`
	Location  string   `json:"location" db:"location"`
	Dates     string   `json:"dates" db:"dates"`
	Status    string   `json:"status" db:"status"`
	SortOrder int      `json:"sort_order" db:"sort_order"`
	Tags      []string `json:"tags" db:"-"`

	// Stands is populated by queries that join with the stands table,
	// in stand position order.
	Stands []Stand `json:"stands" db:"-"`
}

// Stand is the lightweight summary form of an exhibitor booth inside
// a project. The richer editable content lives in a StandDraft.
type Stand struct {
	ID        string   `json:"id" db:"id"`
	ProjectID string   `json:"project_id" db:"project_id"`
	Company   string   `json:"company" db:"company"`
	Position  int      `json:"position" db:"position"`
	Tags      []string `json:"tags" db:"-"`
}

// HasTag reports whether the stand carries the exact tag label.
func (s Stand) HasTag(label string) bool {
	for _, t := range s.Tags {
		if t == label {
			return true
		}
	}
	return false
}
