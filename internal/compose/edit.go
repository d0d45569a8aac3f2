package compose

import (
	"github.com/fontdeck/fontdeck/internal/model"
)

// EditSession is the working copy used while editing one existing group.
// The selection is a membership set replaced wholesale on every change;
// the server receives the full new membership, never a delta. Discarding
// the session (cancel) leaves the canonical group untouched.
type EditSession struct {
	GroupID string
	Title   string

	selection []string // ordered, first occurrence wins
	selected  map[string]bool
}

// NewEditSession opens an editor working copy for the given group,
// pre-selecting its current membership.
func NewEditSession(group model.Group) *EditSession {
	s := &EditSession{
		GroupID: group.ID,
		Title:   group.Title,
	}
	s.SetSelection(group.FontIDs())
	return s
}

// SetSelection replaces the entire membership set atomically. Duplicates
// are collapsed, keeping the first occurrence.
func (s *EditSession) SetSelection(ids []string) {
	s.selection = s.selection[:0]
	s.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || s.selected[id] {
			continue
		}
		s.selected[id] = true
		s.selection = append(s.selection, id)
	}
}

// IsSelected reports whether the font is part of the working membership.
func (s *EditSession) IsSelected(id string) bool {
	return s.selected[id]
}

// SelectedCount returns the size of the working membership.
func (s *EditSession) SelectedCount() int {
	return len(s.selection)
}

// FontIDs returns the working membership ordered by the given catalog.
// Selected fonts missing from the catalog (deleted while referenced) are
// kept and appended in selection order rather than silently dropped.
func (s *EditSession) FontIDs(catalog []model.Font) []string {
	ids := make([]string, 0, len(s.selection))
	inCatalog := make(map[string]bool, len(catalog))
	for _, f := range catalog {
		inCatalog[f.ID] = true
		if s.selected[f.ID] {
			ids = append(ids, f.ID)
		}
	}
	for _, id := range s.selection {
		if !inCatalog[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Validate enforces the same minimum membership as group creation.
func (s *EditSession) Validate() error {
	if len(s.selection) < MinGroupFonts {
		return ErrTooFewFonts
	}
	return nil
}
