package model

// ListField names an ordered string list on a StandDraft.
type ListField string

const (
	FieldPros ListField = "pros"
	FieldCons ListField = "cons"
)

// Photo status constants. A photo starts Pending while its file is
// being decoded, then becomes Ready or Failed. Placeholders are Ready
// immediately.
const (
	PhotoPending = "pending"
	PhotoReady   = "ready"
	PhotoFailed  = "failed"
)

// Photo is an in-memory preview record attached to a stand draft.
// PreviewURI is a base64 data URI when a source file was decoded;
// placeholders have none. Err holds the decode failure message when
// Status is PhotoFailed.
type Photo struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Color      string `json:"color"`
	PreviewURI string `json:"preview_uri,omitempty"`
	Status     string `json:"status"`
	Err        string `json:"error,omitempty"`
}

// Contact is a person attached to a stand draft. Contacts are
// addressed by ID so removals never disturb unrelated entries.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// StandDraft is the in-progress, unsaved content for one stand.
// Drafts are keyed by stand ID in the editor and never persisted.
type StandDraft struct {
	StandID     string    `json:"stand_id"`
	CompanyName string    `json:"company_name"`
	ProductRef  string    `json:"product_ref"`
	Description string    `json:"description"`
	Pros        []string  `json:"pros"`
	Cons        []string  `json:"cons"`
	Photos      []Photo   `json:"photos"`
	Contacts    []Contact `json:"contacts"`
}

// List returns the named ordered field, or nil for an unknown name.
func (d *StandDraft) List(field ListField) []string {
	switch field {
	case FieldPros:
		return d.Pros
	case FieldCons:
		return d.Cons
	default:
		return nil
	}
}
