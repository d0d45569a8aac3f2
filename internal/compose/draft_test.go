package compose

import (
	"errors"
	"testing"

	"github.com/fontdeck/fontdeck/internal/model"
)

var (
	sans  = model.Font{ID: "1", Name: "Sans"}
	serif = model.Font{ID: "2", Name: "Serif"}
	mono  = model.Font{ID: "3", Name: "Mono"}
)

func TestNewGroupDraft_StartsWithOneRow(t *testing.T) {
	draft := NewGroupDraft()

	if draft.RowCount() != 1 {
		t.Errorf("Expected 1 initial row, got %d", draft.RowCount())
	}

	if draft.Rows()[0].IsSelected() {
		t.Error("Initial row should be empty")
	}

	if draft.Rows()[0].Key == "" {
		t.Error("Rows must carry a stable key")
	}
}

func TestAddRow_AppendsAtEnd(t *testing.T) {
	draft := NewGroupDraft()

	first := draft.Rows()[0]
	added := draft.AddRow()

	if draft.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", draft.RowCount())
	}

	rows := draft.Rows()
	if rows[0].Key != first.Key {
		t.Error("Existing row should keep its position")
	}
	if rows[1].Key != added.Key {
		t.Error("New row should be appended at the end")
	}
	if added.Key == first.Key {
		t.Error("Rows must have distinct keys")
	}
}

func TestRemoveRow_RefusesLastRow(t *testing.T) {
	draft := NewGroupDraft()

	err := draft.RemoveRow(0)
	if !errors.Is(err, ErrLastRow) {
		t.Errorf("Expected ErrLastRow, got %v", err)
	}

	if draft.RowCount() != 1 {
		t.Errorf("Row count must never reach zero, got %d", draft.RowCount())
	}
}

func TestRemoveRow_OutOfRange(t *testing.T) {
	draft := NewGroupDraft()
	draft.AddRow()

	if err := draft.RemoveRow(5); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("Expected ErrRowOutOfRange, got %v", err)
	}
	if err := draft.RemoveRow(-1); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("Expected ErrRowOutOfRange for negative index, got %v", err)
	}
}

func TestAddThenRemove_PreservesRelativeOrder(t *testing.T) {
	draft := NewGroupDraft()
	// 5 rows total, select a distinct font marker on each via the name
	for i := 0; i < 4; i++ {
		draft.AddRow()
	}

	fonts := []model.Font{sans, serif, mono, {ID: "4", Name: "Display"}, {ID: "5", Name: "Script"}}
	for i, f := range fonts {
		if err := draft.SelectFont(i, f); err != nil {
			t.Fatalf("SelectFont(%d) failed: %v", i, err)
		}
	}

	// Remove rows 1 and 2 (Serif, then what was Mono shifts into index 1).
	if err := draft.RemoveRow(1); err != nil {
		t.Fatalf("RemoveRow(1) failed: %v", err)
	}
	if err := draft.RemoveRow(1); err != nil {
		t.Fatalf("RemoveRow(1) failed: %v", err)
	}

	if draft.RowCount() != 3 {
		t.Fatalf("Expected 3 rows after removing 2 of 5, got %d", draft.RowCount())
	}

	ids := draft.FontIDs()
	if len(ids) != 3 || ids[0] != "1" || ids[1] != "4" || ids[2] != "5" {
		t.Errorf("Expected untouched rows [1 4 5] in order, got %v", ids)
	}
}

func TestSelectFont_SeedsDisplayName(t *testing.T) {
	draft := NewGroupDraft()

	if err := draft.SelectFont(0, sans); err != nil {
		t.Fatalf("SelectFont failed: %v", err)
	}

	row := draft.Rows()[0]
	if row.FontID != "1" || row.FontName != "Sans" {
		t.Errorf("Expected row seeded with id=1 name=Sans, got %+v", row)
	}
}

func TestSetRowName_DriftDoesNotAffectSubmission(t *testing.T) {
	draft := NewGroupDraft()
	draft.AddRow()

	_ = draft.SelectFont(0, sans)
	_ = draft.SelectFont(1, serif)
	_ = draft.SetRowName(0, "My Favourite Font")

	// The drifted name is UI state only; FontIDs is what gets submitted.
	ids := draft.FontIDs()
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Errorf("Expected submission ids [1 2] regardless of name drift, got %v", ids)
	}

	if draft.Rows()[0].FontName != "My Favourite Font" {
		t.Errorf("Expected drifted display name to stick, got %q", draft.Rows()[0].FontName)
	}
}

func TestValidate_RequiresTwoSelectedFonts(t *testing.T) {
	draft := NewGroupDraft()
	draft.Title = "Body Text"

	// One empty row: invalid.
	if err := draft.Validate(); !errors.Is(err, ErrTooFewFonts) {
		t.Errorf("Expected ErrTooFewFonts with no selection, got %v", err)
	}

	// One selected font: still invalid, even with extra empty rows.
	_ = draft.SelectFont(0, sans)
	draft.AddRow()
	if err := draft.Validate(); !errors.Is(err, ErrTooFewFonts) {
		t.Errorf("Expected ErrTooFewFonts with one selection, got %v", err)
	}

	// Two selected fonts: valid.
	_ = draft.SelectFont(1, serif)
	if err := draft.Validate(); err != nil {
		t.Errorf("Expected valid draft, got %v", err)
	}
}

func TestValidate_RejectsDuplicateFonts(t *testing.T) {
	draft := NewGroupDraft()
	draft.AddRow()

	_ = draft.SelectFont(0, sans)
	_ = draft.SelectFont(1, sans)

	if err := draft.Validate(); !errors.Is(err, ErrDuplicateFont) {
		t.Errorf("Expected ErrDuplicateFont, got %v", err)
	}
}

func TestReset_ReturnsToInitialState(t *testing.T) {
	draft := NewGroupDraft()
	draft.Title = "Body Text"
	draft.AddRow()
	_ = draft.SelectFont(0, sans)
	_ = draft.SelectFont(1, serif)

	draft.Reset()

	if draft.Title != "" {
		t.Errorf("Expected empty title after reset, got %q", draft.Title)
	}
	if draft.RowCount() != 1 {
		t.Errorf("Expected single row after reset, got %d", draft.RowCount())
	}
	if len(draft.FontIDs()) != 0 {
		t.Errorf("Expected no selection after reset, got %v", draft.FontIDs())
	}
}
