package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fontdeck/fontdeck/internal/compose"
	"github.com/fontdeck/fontdeck/internal/model"
)

// GroupEditor is the modal editor for one existing group. It wraps a
// compose.EditSession: the multi-select presents the full catalog with the
// current membership pre-checked, and every change replaces the working
// membership wholesale. Nothing reaches the server until Update is pressed,
// and a failed update leaves the editor open with the edits intact.
type GroupEditor struct {
	window       fyne.Window
	localization *Localization

	session  *compose.EditSession
	fonts    []model.Font
	byOption map[string]model.Font

	titleEntry *widget.Entry
	checks     *widget.CheckGroup
	updateBtn  *widget.Button
	cancelBtn  *widget.Button
	popup      *widget.PopUp

	// onSubmit sends the full replacement to the server; the root calls
	// FinishSubmit when the request completes.
	onSubmit func(editor *GroupEditor, groupID, title string, fontIDs []string)
}

// NewGroupEditor opens an editor working copy for the given group against
// the current catalog.
func NewGroupEditor(window fyne.Window, localization *Localization, group model.Group, fonts []model.Font, onSubmit func(*GroupEditor, string, string, []string)) *GroupEditor {
	ge := &GroupEditor{
		window:       window,
		localization: localization,
		session:      compose.NewEditSession(group),
		fonts:        fonts,
		onSubmit:     onSubmit,
	}
	ge.createUI()
	return ge
}

func (ge *GroupEditor) createUI() {
	header := widget.NewLabel(ge.localization.GetText(KeyEditGroup))
	header.TextStyle = fyne.TextStyle{Bold: true}

	ge.titleEntry = widget.NewEntry()
	ge.titleEntry.SetPlaceHolder(ge.localization.GetText(KeyGroupTitle))
	ge.titleEntry.SetText(ge.session.Title)

	var options []string
	options, ge.byOption = fontOptions(ge.fonts)

	ge.checks = widget.NewCheckGroup(options, func(selected []string) {
		ids := make([]string, 0, len(selected))
		for _, option := range selected {
			if f, ok := ge.byOption[option]; ok {
				ids = append(ids, f.ID)
			}
		}
		// Wholesale replacement: the widget always reports the full set.
		ge.session.SetSelection(ids)
	})

	// Pre-check current membership. Members deleted from the catalog have
	// no option to check; they survive in the session until the user
	// touches the selection.
	preChecked := make([]string, 0, ge.session.SelectedCount())
	for _, f := range ge.fonts {
		if ge.session.IsSelected(f.ID) {
			preChecked = append(preChecked, formatFontOption(f))
		}
	}
	ge.checks.SetSelected(preChecked)

	ge.updateBtn = widget.NewButton(ge.localization.GetText(KeyUpdate), ge.onUpdateClick)
	ge.updateBtn.Importance = widget.HighImportance

	ge.cancelBtn = widget.NewButton(ge.localization.GetText(KeyCancel), func() {
		// Cancel discards the working copy without any request.
		ge.Close()
	})

	content := container.NewBorder(
		container.NewVBox(header, ge.titleEntry),
		container.NewBorder(nil, nil, ge.cancelBtn, ge.updateBtn),
		nil,
		nil,
		container.NewVScroll(ge.checks),
	)

	ge.popup = widget.NewModalPopUp(content, ge.window.Canvas())
	ge.popup.Resize(fyne.NewSize(EditorDialogWidth, EditorDialogHeight))
}

// Show displays the modal editor. Being modal, it also guarantees that
// only one editing surface is open at a time.
func (ge *GroupEditor) Show() {
	ge.popup.Show()
}

// Close hides and discards the editor.
func (ge *GroupEditor) Close() {
	ge.popup.Hide()
}

// onUpdateClick validates the working copy and hands the full replacement
// to the submit callback. Validation failures keep the editor open and
// send nothing.
func (ge *GroupEditor) onUpdateClick() {
	ge.session.Title = ge.titleEntry.Text

	if err := ge.session.Validate(); err != nil {
		message := err.Error()
		if errors.Is(err, compose.ErrTooFewFonts) {
			message = ge.localization.GetText(KeyNeedTwoFonts)
		}
		widget.ShowPopUp(widget.NewLabel(message), ge.window.Canvas())
		return
	}
	if ge.onSubmit == nil {
		log.Printf("Warning: group editor submitted with no onSubmit callback")
		return
	}

	ge.updateBtn.Disable()
	ge.cancelBtn.Disable()
	ge.onSubmit(ge, ge.session.GroupID, ge.session.Title, ge.session.FontIDs(ge.fonts))
}

// FinishSubmit is called by the root after the update request completes.
// Success closes the editor; failure re-enables it with the unsaved edits
// still in place.
func (ge *GroupEditor) FinishSubmit(success bool) {
	if success {
		ge.Close()
		return
	}
	ge.updateBtn.Enable()
	ge.cancelBtn.Enable()
}
