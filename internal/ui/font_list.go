package ui

import (
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fontdeck/fontdeck/internal/model"
)

// FontList renders the uploaded fonts with a preview link and a delete
// action per row. It holds a snapshot of the catalog; the root replaces it
// through SetFonts after every applied delta.
type FontList struct {
	widget.BaseWidget

	localization *Localization
	fonts        []model.Font

	list *widget.List

	// previewURL resolves a font's server-relative storage path to an
	// absolute URL on the configured origin.
	previewURL func(filePath string) string

	// onDelete requests deletion of the font; the root only removes it
	// from the catalog after the server confirms.
	onDelete func(fontID string)
}

// NewFontList creates the font catalog view.
func NewFontList(localization *Localization, previewURL func(string) string, onDelete func(string)) *FontList {
	fl := &FontList{
		localization: localization,
		previewURL:   previewURL,
		onDelete:     onDelete,
	}
	fl.ExtendBaseWidget(fl)

	fl.list = widget.NewList(
		func() int { return len(fl.fonts) },
		func() fyne.CanvasObject { return fl.createRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { fl.updateRow(id, obj) },
	)
	return fl
}

// SetFonts replaces the rendered snapshot and refreshes the list.
func (fl *FontList) SetFonts(fonts []model.Font) {
	fl.fonts = fonts
	fl.list.Refresh()
}

// fontRow is one line of the catalog table.
type fontRow struct {
	widget.BaseWidget

	nameLabel *widget.Label
	preview   *widget.Hyperlink
	deleteBtn *widget.Button
	content   *fyne.Container

	fontID string
}

func (fl *FontList) createRow() fyne.CanvasObject {
	row := &fontRow{}
	row.ExtendBaseWidget(row)

	row.nameLabel = widget.NewLabel("")
	row.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	row.nameLabel.Truncation = fyne.TextTruncateEllipsis

	row.preview = widget.NewHyperlink("", nil)

	row.deleteBtn = widget.NewButton(fl.localization.GetText(KeyDelete), func() {
		if row.fontID == "" || fl.onDelete == nil {
			return
		}
		fl.onDelete(row.fontID)
	})
	row.deleteBtn.Importance = widget.DangerImportance

	row.content = container.NewBorder(nil, nil, nil, row.deleteBtn,
		container.NewBorder(nil, nil, nil, row.preview, row.nameLabel))
	return row
}

func (fl *FontList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(fl.fonts) {
		return
	}
	row, ok := obj.(*fontRow)
	if !ok {
		return
	}

	font := fl.fonts[id]
	row.fontID = font.ID
	row.nameLabel.SetText(font.DisplayName())
	row.deleteBtn.SetText(fl.localization.GetText(KeyDelete))

	// Preview links straight into the server's upload directory, the way
	// the font is referenced for rendering elsewhere.
	if font.FilePath != "" && fl.previewURL != nil {
		raw := fl.previewURL(font.FilePath)
		if parsed, err := url.Parse(raw); err == nil {
			row.preview.SetText(font.FilePath)
			row.preview.SetURL(parsed)
		} else {
			log.Printf("Invalid preview URL for font %s: %v", font.ID, err)
			row.preview.SetText("")
			row.preview.SetURL(nil)
		}
	} else {
		row.preview.SetText("")
		row.preview.SetURL(nil)
	}

	row.Refresh()
}

// CreateRenderer creates the widget renderer
func (fl *FontList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(fl.list)
}

// CreateRenderer creates the widget renderer
func (r *fontRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

// MinSize keeps the list usable inside the scrolling root layout.
func (fl *FontList) MinSize() fyne.Size {
	min := fl.BaseWidget.MinSize()
	if min.Width < ListMinWidth {
		min.Width = ListMinWidth
	}
	if min.Height < ListMinHeight {
		min.Height = ListMinHeight
	}
	return min
}
