// Package editor owns the per-stand content drafts: description,
// pros/cons lists, contacts, and photos. Drafts are an in-memory
// editing buffer independent of the domain store; they are keyed by
// stand id and never persisted.
package editor

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/expokit/standplan/internal/model"
)

// ContactField names a mutable field on a Contact.
type ContactField string

const (
	ContactName  ContactField = "name"
	ContactRole  ContactField = "role"
	ContactEmail ContactField = "email"
	ContactPhone ContactField = "phone"
)

// Editor holds every open stand draft. All methods are safe for
// concurrent use; mutations are serialized by a single mutex, so no
// two edits interleave mid-operation.
//
// Out-of-range indices and unknown ids are absorbed without error,
// leaving the draft unchanged; each absorbed call is debug-logged.
type Editor struct {
	mu     sync.Mutex
	drafts map[string]*model.StandDraft
	log    *zap.Logger
}

// New creates an empty draft editor.
func New(log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		drafts: make(map[string]*model.StandDraft),
		log:    log,
	}
}

// draft returns the stand's draft, creating an empty one on first use.
// Callers must hold e.mu.
func (e *Editor) draft(standID string) *model.StandDraft {
	d, ok := e.drafts[standID]
	if !ok {
		d = &model.StandDraft{
			StandID:  standID,
			Pros:     []string{},
			Cons:     []string{},
			Photos:   []model.Photo{},
			Contacts: []model.Contact{},
		}
		e.drafts[standID] = d
	}
	return d
}

// Draft returns a deep copy of the stand's draft, creating an empty
// one on first use. The copy is safe to hand to rendering code.
func (e *Editor) Draft(standID string) model.StandDraft {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	out := *d
	out.Pros = append([]string{}, d.Pros...)
	out.Cons = append([]string{}, d.Cons...)
	out.Photos = append([]model.Photo{}, d.Photos...)
	out.Contacts = append([]model.Contact{}, d.Contacts...)
	return out
}

// SetCompanyName replaces the draft's company name.
func (e *Editor) SetCompanyName(standID, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft(standID).CompanyName = value
}

// SetProductRef replaces the draft's product reference.
func (e *Editor) SetProductRef(standID, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft(standID).ProductRef = value
}

// SetDescription replaces the draft's description.
func (e *Editor) SetDescription(standID, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft(standID).Description = value
}

// ApplySuggestion copies a generated description and pros/cons lists
// into the draft verbatim.
func (e *Editor) ApplySuggestion(standID, description string, pros, cons []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	d.Description = description
	d.Pros = append([]string{}, pros...)
	d.Cons = append([]string{}, cons...)
}

// AddItem appends an empty entry to the named list field.
func (e *Editor) AddItem(standID string, field model.ListField) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	switch field {
	case model.FieldPros:
		d.Pros = append(d.Pros, "")
	case model.FieldCons:
		d.Cons = append(d.Cons, "")
	default:
		e.log.Debug("add item: unknown field, ignored", zap.String("field", string(field)))
	}
}

// UpdateItem replaces the list entry at index. Out-of-range indices
// leave the list unchanged.
func (e *Editor) UpdateItem(standID string, field model.ListField, index int, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	items := d.List(field)
	if index < 0 || index >= len(items) {
		e.log.Debug("update item: index out of range, ignored",
			zap.String("field", string(field)), zap.Int("index", index))
		return
	}
	items[index] = value
}

// RemoveItem deletes the list entry at index; later entries shift
// down by one. Removing the last entry leaves an empty list.
// Out-of-range indices leave the list unchanged.
func (e *Editor) RemoveItem(standID string, field model.ListField, index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	items := d.List(field)
	if index < 0 || index >= len(items) {
		e.log.Debug("remove item: index out of range, ignored",
			zap.String("field", string(field)), zap.Int("index", index))
		return
	}

	updated := append([]string{}, items[:index]...)
	updated = append(updated, items[index+1:]...)
	switch field {
	case model.FieldPros:
		d.Pros = updated
	case model.FieldCons:
		d.Cons = updated
	}
}

// AddContact appends a contact with a fresh id and empty fields, and
// returns it.
func (e *Editor) AddContact(standID string) model.Contact {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := model.Contact{ID: uuid.New().String()}
	d := e.draft(standID)
	d.Contacts = append(d.Contacts, c)
	return c
}

// UpdateContact sets one field of the contact with the given id.
// Unknown contact ids leave the draft unchanged.
func (e *Editor) UpdateContact(standID, contactID string, field ContactField, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	for i := range d.Contacts {
		if d.Contacts[i].ID != contactID {
			continue
		}
		switch field {
		case ContactName:
			d.Contacts[i].Name = value
		case ContactRole:
			d.Contacts[i].Role = value
		case ContactEmail:
			d.Contacts[i].Email = value
		case ContactPhone:
			d.Contacts[i].Phone = value
		}
		return
	}
	e.log.Debug("update contact: not found, ignored", zap.String("contact_id", contactID))
}

// RemoveContact deletes the contact with the given id; other contacts
// keep their identity and relative order.
func (e *Editor) RemoveContact(standID, contactID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	kept := d.Contacts[:0:0]
	for _, c := range d.Contacts {
		if c.ID != contactID {
			kept = append(kept, c)
		}
	}
	d.Contacts = kept
}

// AppendPhoto adds a photo record to the end of the draft's gallery.
func (e *Editor) AppendPhoto(standID string, photo model.Photo) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	d.Photos = append(d.Photos, photo)
}

// ResolvePhoto fills a pending photo slot with its decode outcome.
// A non-empty errMsg marks the slot failed; otherwise the preview URI
// is attached and the slot becomes ready. Unknown photo ids are
// absorbed (the photo may have been removed while decoding).
func (e *Editor) ResolvePhoto(standID, photoID, previewURI, errMsg string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	for i := range d.Photos {
		if d.Photos[i].ID != photoID {
			continue
		}
		if errMsg != "" {
			d.Photos[i].Status = model.PhotoFailed
			d.Photos[i].Err = errMsg
		} else {
			d.Photos[i].Status = model.PhotoReady
			d.Photos[i].PreviewURI = previewURI
		}
		return
	}
	e.log.Debug("resolve photo: not found, ignored", zap.String("photo_id", photoID))
}

// RemovePhoto deletes the photo with the given id from the gallery.
func (e *Editor) RemovePhoto(standID, photoID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft(standID)
	kept := d.Photos[:0:0]
	for _, p := range d.Photos {
		if p.ID != photoID {
			kept = append(kept, p)
		}
	}
	d.Photos = kept
}
