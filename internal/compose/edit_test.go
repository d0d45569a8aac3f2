package compose

import (
	"errors"
	"testing"

	"github.com/fontdeck/fontdeck/internal/model"
)

func editableGroup() model.Group {
	return model.Group{
		ID:    "10",
		Title: "Body Text",
		Fonts: []model.Font{sans, serif},
	}
}

func TestNewEditSession_SeedsFromGroup(t *testing.T) {
	session := NewEditSession(editableGroup())

	if session.GroupID != "10" {
		t.Errorf("Expected group id '10', got %q", session.GroupID)
	}
	if session.Title != "Body Text" {
		t.Errorf("Expected title seeded from group, got %q", session.Title)
	}
	if !session.IsSelected("1") || !session.IsSelected("2") {
		t.Error("Expected current membership to be pre-selected")
	}
	if session.SelectedCount() != 2 {
		t.Errorf("Expected 2 selected fonts, got %d", session.SelectedCount())
	}
}

func TestSetSelection_ReplacesWholesale(t *testing.T) {
	session := NewEditSession(editableGroup())

	// Replace {1,2} with {2,3}: font 1 drops out entirely.
	session.SetSelection([]string{"2", "3"})

	if session.IsSelected("1") {
		t.Error("Font 1 should no longer be selected after replacement")
	}
	if !session.IsSelected("2") || !session.IsSelected("3") {
		t.Error("Expected fonts 2 and 3 selected")
	}

	catalog := []model.Font{sans, serif, mono}
	ids := session.FontIDs(catalog)
	if len(ids) != 2 || ids[0] != "2" || ids[1] != "3" {
		t.Errorf("Expected submission ids [2 3], got %v", ids)
	}
}

func TestSetSelection_CollapsesDuplicatesAndEmpties(t *testing.T) {
	session := NewEditSession(editableGroup())

	session.SetSelection([]string{"2", "", "2", "3"})

	if session.SelectedCount() != 2 {
		t.Errorf("Expected duplicates and empties collapsed to 2, got %d", session.SelectedCount())
	}
}

func TestFontIDs_FollowsCatalogOrder(t *testing.T) {
	session := NewEditSession(editableGroup())
	session.SetSelection([]string{"3", "1"})

	catalog := []model.Font{sans, serif, mono}
	ids := session.FontIDs(catalog)

	if len(ids) != 2 || ids[0] != "1" || ids[1] != "3" {
		t.Errorf("Expected catalog order [1 3], got %v", ids)
	}
}

func TestFontIDs_KeepsDanglingSelection(t *testing.T) {
	session := NewEditSession(editableGroup())
	session.SetSelection([]string{"1", "9"}) // font 9 was deleted from the catalog

	catalog := []model.Font{sans, serif}
	ids := session.FontIDs(catalog)

	if len(ids) != 2 || ids[0] != "1" || ids[1] != "9" {
		t.Errorf("Expected dangling id kept after catalog members, got %v", ids)
	}
}

func TestEditValidate_EnforcedSymmetricallyWithCreate(t *testing.T) {
	session := NewEditSession(editableGroup())

	if err := session.Validate(); err != nil {
		t.Errorf("Expected seeded session to be valid, got %v", err)
	}

	session.SetSelection([]string{"1"})
	if err := session.Validate(); !errors.Is(err, ErrTooFewFonts) {
		t.Errorf("Expected ErrTooFewFonts on update too, got %v", err)
	}

	session.SetSelection(nil)
	if err := session.Validate(); !errors.Is(err, ErrTooFewFonts) {
		t.Errorf("Expected ErrTooFewFonts with empty selection, got %v", err)
	}
}
