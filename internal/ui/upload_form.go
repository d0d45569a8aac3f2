package ui

import (
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/fontdeck/fontdeck/internal/fontfile"
	"github.com/fontdeck/fontdeck/internal/model"
)

// UploadForm collects exactly one TTF file and submits it to the server.
// The picked file is inspected locally before upload so obviously broken
// files never leave the machine.
type UploadForm struct {
	widget.BaseWidget

	window       fyne.Window
	localization *Localization

	fileLabel *widget.Label
	chooseBtn *widget.Button
	uploadBtn *widget.Button
	content   *fyne.Container

	// selected file state; nil data means nothing is picked yet
	fileName string
	fileData []byte

	// onSubmit performs the upload; it runs off the UI thread in the root.
	onSubmit func(fileName string, data []byte)
}

// NewUploadForm creates the font upload form.
func NewUploadForm(window fyne.Window, localization *Localization, onSubmit func(string, []byte)) *UploadForm {
	uf := &UploadForm{
		window:       window,
		localization: localization,
		onSubmit:     onSubmit,
	}
	uf.ExtendBaseWidget(uf)
	uf.createUI()
	return uf
}

func (uf *UploadForm) createUI() {
	uf.fileLabel = widget.NewLabel(uf.localization.GetText(KeyNoFileSelected))
	uf.fileLabel.Truncation = fyne.TextTruncateEllipsis

	uf.chooseBtn = widget.NewButton(uf.localization.GetText(KeyChooseFile), uf.onChooseFile)

	uf.uploadBtn = widget.NewButton(uf.localization.GetText(KeyUploadFont), uf.onUploadClick)
	uf.uploadBtn.Importance = widget.HighImportance
	uf.uploadBtn.Disable()

	header := widget.NewLabel(uf.localization.GetText(KeyUploadFont))
	header.TextStyle = fyne.TextStyle{Bold: true}

	uf.content = container.NewVBox(
		header,
		container.NewBorder(nil, nil, uf.chooseBtn, uf.uploadBtn, uf.fileLabel),
	)
}

// onChooseFile opens the file picker restricted to the allowed extension.
// The restriction lives at selection level only; the server does its own
// checks on the stored file.
func (uf *UploadForm) onChooseFile() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File picker error: %v", err)
			uf.showMessage(uf.localization.GetText(KeyError) + ": " + err.Error())
			return
		}
		if reader == nil {
			return // user cancelled
		}
		defer reader.Close()

		uf.handlePickedFile(reader.URI().Name(), reader)
	}, uf.window)

	picker.SetFilter(storage.NewExtensionFileFilter([]string{fontfile.AllowedExtension}))
	picker.Show()
}

// handlePickedFile validates and inspects the chosen file, keeping its
// bytes in memory until the user submits.
func (uf *UploadForm) handlePickedFile(name string, r io.Reader) {
	if err := fontfile.ValidateExtension(name); err != nil {
		uf.showMessage(err.Error())
		return
	}

	data, err := io.ReadAll(r)
	if err != nil {
		log.Printf("Failed to read picked font file %s: %v", name, err)
		uf.showMessage(uf.localization.GetText(KeyError) + ": " + err.Error())
		return
	}

	info, err := fontfile.Inspect(data)
	if err != nil {
		log.Printf("Rejected font file %s: %v", name, err)
		uf.showMessage(err.Error())
		return
	}

	uf.fileName = name
	uf.fileData = data
	uf.fileLabel.SetText(fmt.Sprintf("%s: %s", name, info.Family))
	uf.uploadBtn.Enable()
}

// onUploadClick hands the selected file to the submit callback. Form state
// stays untouched here: on failure the user can retry the same file, and
// the root clears the form only after the server confirms.
func (uf *UploadForm) onUploadClick() {
	if uf.fileData == nil {
		uf.showMessage(uf.localization.GetText(KeyNoFileSelected))
		return
	}
	if uf.onSubmit == nil {
		log.Printf("Warning: upload submitted with no onSubmit callback")
		return
	}

	uf.uploadBtn.Disable()
	uf.onSubmit(uf.fileName, uf.fileData)
}

// FinishUpload is called by the root after the request completes. On
// success the selection is cleared; on failure it is kept for a retry.
func (uf *UploadForm) FinishUpload(uploaded *model.Font) {
	if uploaded != nil {
		uf.fileName = ""
		uf.fileData = nil
		uf.fileLabel.SetText(uf.localization.GetText(KeyNoFileSelected))
		uf.uploadBtn.Disable()
		return
	}
	uf.uploadBtn.Enable()
}

func (uf *UploadForm) showMessage(message string) {
	widget.ShowPopUp(widget.NewLabel(message), uf.window.Canvas())
}

// RefreshTexts updates labels after a language change.
func (uf *UploadForm) RefreshTexts() {
	uf.chooseBtn.SetText(uf.localization.GetText(KeyChooseFile))
	uf.uploadBtn.SetText(uf.localization.GetText(KeyUploadFont))
	if uf.fileData == nil {
		uf.fileLabel.SetText(uf.localization.GetText(KeyNoFileSelected))
	}
}

// CreateRenderer creates the widget renderer
func (uf *UploadForm) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(uf.content)
}
