// Package disclosure tracks show/hide state for sensitive fields, keyed
// per entity. Disclosure is purely a presentation flag — the underlying
// value lives in the credential vault and is delivered only through the
// audited reveal operation.
package disclosure

import "github.com/alifsmart-team/alifsmart-analytics-service/internal/model"

// Key identifies one sensitive field: the entity's kind plus its id
// within that kind's collection.
type Key struct {
	Kind model.EntityKind
	ID   int
}

// Controller maps keys to their visibility. Absent keys are hidden.
// Entries are created lazily on first toggle and retained until session
// end; nothing ever auto-hides a key.
type Controller struct {
	visible map[Key]bool
}

// NewController returns an empty controller (everything hidden).
func NewController() *Controller {
	return &Controller{visible: make(map[Key]bool)}
}

// Toggle flips exactly one key and returns its new state. Every other
// key — same kind or not — is untouched.
func (c *Controller) Toggle(kind model.EntityKind, id int) bool {
	k := Key{Kind: kind, ID: id}
	c.visible[k] = !c.visible[k]
	return c.visible[k]
}

// Visible reports whether the field for (kind, id) is currently shown.
func (c *Controller) Visible(kind model.EntityKind, id int) bool {
	return c.visible[Key{Kind: kind, ID: id}]
}
