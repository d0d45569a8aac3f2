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

// GroupComposer builds a new group from a title and a dynamic, ordered list
// of font-selection rows. Row state lives in a compose.GroupDraft; this
// widget only renders it and forwards edits.
type GroupComposer struct {
	widget.BaseWidget

	window       fyne.Window
	localization *Localization

	draft    *compose.GroupDraft
	fonts    []model.Font
	options  []string
	byOption map[string]model.Font

	titleEntry *widget.Entry
	rowsBox    *fyne.Container
	addRowBtn  *widget.Button
	submitBtn  *widget.Button
	content    *fyne.Container

	// onSubmit sends the validated draft to the server; the root calls
	// FinishSubmit when the request completes.
	onSubmit func(title string, fontIDs []string)
}

// NewGroupComposer creates the group creation form with a single empty row.
func NewGroupComposer(window fyne.Window, localization *Localization, onSubmit func(string, []string)) *GroupComposer {
	gc := &GroupComposer{
		window:       window,
		localization: localization,
		draft:        compose.NewGroupDraft(),
		onSubmit:     onSubmit,
	}
	gc.ExtendBaseWidget(gc)
	gc.createUI()
	return gc
}

func (gc *GroupComposer) createUI() {
	header := widget.NewLabel(gc.localization.GetText(KeyCreateGroup))
	header.TextStyle = fyne.TextStyle{Bold: true}

	gc.titleEntry = widget.NewEntry()
	gc.titleEntry.SetPlaceHolder(gc.localization.GetText(KeyGroupTitle))
	gc.titleEntry.OnChanged = func(text string) {
		gc.draft.Title = text
	}

	gc.rowsBox = container.NewVBox()

	gc.addRowBtn = widget.NewButton(gc.localization.GetText(KeyAddRow), func() {
		gc.draft.AddRow()
		gc.rebuildRows()
	})

	gc.submitBtn = widget.NewButton(gc.localization.GetText(KeyCreateGroup), gc.onSubmitClick)
	gc.submitBtn.Importance = widget.HighImportance

	gc.content = container.NewVBox(
		header,
		gc.titleEntry,
		gc.rowsBox,
		container.NewBorder(nil, nil, gc.addRowBtn, gc.submitBtn),
	)

	gc.rebuildRows()
}

// SetFonts replaces the selectable catalog. Existing selections are kept;
// their display names are not re-seeded, only an explicit selection does
// that.
func (gc *GroupComposer) SetFonts(fonts []model.Font) {
	gc.fonts = fonts
	gc.options, gc.byOption = fontOptions(fonts)
	gc.rebuildRows()
}

// rebuildRows re-renders the row widgets from the draft. Rows are few and
// cheap, so a full rebuild keeps index handling straightforward.
func (gc *GroupComposer) rebuildRows() {
	gc.rowsBox.Objects = nil

	rows := gc.draft.Rows()
	for i, row := range rows {
		index := i

		sel := widget.NewSelect(gc.options, nil)
		sel.PlaceHolder = gc.localization.GetText(KeySelectFont)

		nameEntry := widget.NewEntry()
		nameEntry.SetPlaceHolder(gc.localization.GetText(KeyDisplayName))
		nameEntry.SetText(row.FontName)
		nameEntry.OnChanged = func(text string) {
			if err := gc.draft.SetRowName(index, text); err != nil {
				log.Printf("Composer: set row name failed: %v", err)
			}
		}

		// Selecting a font stores the ID and re-seeds the display name;
		// after that the name entry is free to drift.
		sel.OnChanged = func(option string) {
			font, ok := gc.byOption[option]
			if !ok {
				return
			}
			if err := gc.draft.SelectFont(index, font); err != nil {
				log.Printf("Composer: select font failed: %v", err)
				return
			}
			nameEntry.SetText(font.DisplayName())
		}

		if row.IsSelected() {
			for _, f := range gc.fonts {
				if f.ID == row.FontID {
					sel.Selected = formatFontOption(f)
					break
				}
			}
		}

		removeBtn := widget.NewButton(IconRemove, func() {
			if err := gc.draft.RemoveRow(index); err != nil {
				log.Printf("Composer: remove row %d refused: %v", index, err)
				return
			}
			gc.rebuildRows()
		})
		if len(rows) == 1 {
			// The last row can never be removed.
			removeBtn.Disable()
		}

		gc.rowsBox.Add(container.NewBorder(nil, nil, sel, removeBtn, nameEntry))
	}

	gc.rowsBox.Refresh()
}

// onSubmitClick validates the draft locally. When validation fails nothing
// is sent and the form state is left untouched for correction.
func (gc *GroupComposer) onSubmitClick() {
	if err := gc.draft.Validate(); err != nil {
		gc.showValidationError(err)
		return
	}
	if gc.onSubmit == nil {
		log.Printf("Warning: composer submitted with no onSubmit callback")
		return
	}

	gc.submitBtn.Disable()
	gc.onSubmit(gc.draft.Title, gc.draft.FontIDs())
}

// FinishSubmit is called by the root after the create request completes.
// On success the form resets to a single empty row; on failure every row
// and the title are preserved so the user can retry.
func (gc *GroupComposer) FinishSubmit(success bool) {
	gc.submitBtn.Enable()
	if !success {
		return
	}
	gc.draft.Reset()
	gc.titleEntry.SetText("")
	gc.rebuildRows()
}

func (gc *GroupComposer) showValidationError(err error) {
	message := err.Error()
	switch {
	case errors.Is(err, compose.ErrTooFewFonts):
		message = gc.localization.GetText(KeyNeedTwoFonts)
	case errors.Is(err, compose.ErrDuplicateFont):
		message = gc.localization.GetText(KeyDuplicateFonts)
	}
	widget.ShowPopUp(widget.NewLabel(message), gc.window.Canvas())
}

// RefreshTexts updates labels after a language change.
func (gc *GroupComposer) RefreshTexts() {
	gc.titleEntry.SetPlaceHolder(gc.localization.GetText(KeyGroupTitle))
	gc.addRowBtn.SetText(gc.localization.GetText(KeyAddRow))
	gc.submitBtn.SetText(gc.localization.GetText(KeyCreateGroup))
	gc.rebuildRows()
}

// CreateRenderer creates the widget renderer
func (gc *GroupComposer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(gc.content)
}
