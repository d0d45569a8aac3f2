package compose

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fontdeck/fontdeck/internal/model"
)

// MinGroupFonts is the minimum number of selected fonts a group must have.
// It is enforced on both creation and update.
const MinGroupFonts = 2

// Validation and row manipulation errors.
var (
	ErrLastRow       = errors.New("cannot remove the last remaining row")
	ErrRowOutOfRange = errors.New("row index out of range")
	ErrTooFewFonts   = fmt.Errorf("select at least %d fonts", MinGroupFonts)
	ErrDuplicateFont = errors.New("the same font is selected in more than one row")
)

// GroupDraft is the working state of the group composer: a free-text title
// plus an ordered list of font rows. A draft always has at least one row.
type GroupDraft struct {
	Title string
	rows  []model.FontReference
}

// NewGroupDraft creates a draft with a single empty row.
func NewGroupDraft() *GroupDraft {
	return &GroupDraft{rows: []model.FontReference{newRow()}}
}

func newRow() model.FontReference {
	return model.FontReference{Key: uuid.NewString()}
}

// Rows returns a copy of the draft rows in order.
func (d *GroupDraft) Rows() []model.FontReference {
	rows := make([]model.FontReference, len(d.rows))
	copy(rows, d.rows)
	return rows
}

// RowCount returns the number of rows, selected or not.
func (d *GroupDraft) RowCount() int {
	return len(d.rows)
}

// AddRow appends one empty row to the end of the list. There is no upper
// bound on the row count.
func (d *GroupDraft) AddRow() model.FontReference {
	row := newRow()
	d.rows = append(d.rows, row)
	return row
}

// RemoveRow removes the row at index, shifting subsequent rows up. The
// last remaining row cannot be removed, so the count never reaches zero.
func (d *GroupDraft) RemoveRow(index int) error {
	if index < 0 || index >= len(d.rows) {
		return ErrRowOutOfRange
	}
	if len(d.rows) == 1 {
		return ErrLastRow
	}
	d.rows = append(d.rows[:index], d.rows[index+1:]...)
	return nil
}

// SelectFont sets the font at the given row and seeds the row's display
// name from the catalog entry. The name is free to drift afterwards via
// SetRowName; it is never sent to the server.
func (d *GroupDraft) SelectFont(index int, font model.Font) error {
	if index < 0 || index >= len(d.rows) {
		return ErrRowOutOfRange
	}
	d.rows[index].FontID = font.ID
	d.rows[index].FontName = font.DisplayName()
	return nil
}

// SetRowName overrides the row's advisory display name.
func (d *GroupDraft) SetRowName(index int, name string) error {
	if index < 0 || index >= len(d.rows) {
		return ErrRowOutOfRange
	}
	d.rows[index].FontName = name
	return nil
}

// FontIDs projects the rows with a selection to identifiers, preserving
// row order. Empty rows are skipped.
func (d *GroupDraft) FontIDs() []string {
	ids := make([]string, 0, len(d.rows))
	for _, row := range d.rows {
		if row.IsSelected() {
			ids = append(ids, row.FontID)
		}
	}
	return ids
}

// Validate checks that the draft can be submitted: at least MinGroupFonts
// rows have a font selected, and no font appears twice. When it returns an
// error no request may be sent.
func (d *GroupDraft) Validate() error {
	ids := d.FontIDs()
	if len(ids) < MinGroupFonts {
		return ErrTooFewFonts
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return ErrDuplicateFont
		}
		seen[id] = true
	}
	return nil
}

// Reset returns the draft to its initial state: empty title, one empty row.
func (d *GroupDraft) Reset() {
	d.Title = ""
	d.rows = []model.FontReference{newRow()}
}
