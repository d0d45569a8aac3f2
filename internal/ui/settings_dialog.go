package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fontdeck/fontdeck/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry     *widget.Entry
	timeoutEntry       *widget.Entry
	languageSelect     *widget.Select
	confirmDeleteCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog in one step.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(window, settings, localization, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Server origin
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	// Request timeout in seconds
	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.DefaultTimeoutSeconds))

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	sd.confirmDeleteCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmDelete), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServerURL)),
		sd.serverURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,

		sd.confirmDeleteCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.confirmDeleteCheck.SetChecked(sd.settings.GetConfirmDelete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if url := sd.serverURLEntry.Text; url != "" {
		sd.settings.SetAPIBaseURL(url)
	}

	// Out-of-range values are clamped by the setter; garbage is ignored.
	if timeoutStr := sd.timeoutEntry.Text; timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeoutSeconds(seconds)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetConfirmDelete(sd.confirmDeleteCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
