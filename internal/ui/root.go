package ui

import (
	"bytes"
	"context"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fontdeck/fontdeck/internal/api"
	"github.com/fontdeck/fontdeck/internal/catalog"
	"github.com/fontdeck/fontdeck/internal/config"
	"github.com/fontdeck/fontdeck/internal/fontfile"
)

// RootUI owns the main window and coordinates the child components. The
// catalog store holds the canonical collections; children mutate server
// state through the API and the root folds the confirmed deltas back in.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	remote       api.Remote
	store        catalog.Cataloger
	settings     *config.Settings
	localization *Localization

	uploadForm *UploadForm
	fontList   *FontList
	composer   *GroupComposer
	groupList  *GroupList

	// Notification panel shown during the initial catalog load
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI and starts the initial
// catalog load.
func NewRootUI(window fyne.Window, app fyne.App, remote api.Remote, store catalog.Cataloger, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		remote:       remote,
		store:        store,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Re-render children whenever a delta lands in the store. Deltas are
	// applied in response-arrival order; rendering happens on the UI thread.
	ui.store.SetUpdateCallback(ui.onCatalogUpdate)

	ui.setupUI()
	ui.loadCatalog()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.uploadForm = NewUploadForm(ui.window, ui.localization, ui.onUploadSubmit)

	ui.fontList = NewFontList(ui.localization, ui.previewURL, ui.onDeleteFont)

	ui.composer = NewGroupComposer(ui.window, ui.localization, ui.onComposerSubmit)

	ui.groupList = NewGroupList(ui.localization, ui.store.FontByID, ui.onEditGroup, ui.onDeleteGroup)

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	fontsHeader := widget.NewLabel(ui.localization.GetText(KeyUploadedFonts))
	fontsHeader.TextStyle = fyne.TextStyle{Bold: true}
	groupsHeader := widget.NewLabel(ui.localization.GetText(KeyFontGroups))
	groupsHeader.TextStyle = fyne.TextStyle{Bold: true}

	content := container.NewVBox(
		ui.notificationContainer,
		ui.uploadForm,
		widget.NewSeparator(),
		fontsHeader,
		ui.fontList,
		widget.NewSeparator(),
		ui.composer,
		widget.NewSeparator(),
		groupsHeader,
		ui.groupList,
	)

	ui.window.SetContent(container.NewVScroll(content))
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.uploadForm.RefreshTexts()
	ui.composer.RefreshTexts()
	// List row texts are set on update; a refresh is enough.
	ui.renderCatalog()
}

// loadCatalog fetches fonts and groups concurrently in the background and
// shows a spinner until both requests complete.
func (ui *RootUI) loadCatalog() {
	ui.showNotification(ui.localization.GetText(KeyLoadingCatalog), true)

	go func() {
		// The initial load issues two requests; give it twice the
		// per-request budget.
		ctx, cancel := context.WithTimeout(context.Background(), 2*ui.settings.GetRequestTimeout())
		defer cancel()

		err := ui.store.Load(ctx)

		fyne.Do(func() {
			ui.hideNotification()
			if err != nil {
				log.Printf("Initial catalog load failed: %v", err)
				ui.showToast(ui.localization.GetText(KeyLoadFailed), err.Error(), true)
			}
		})
	}()
}

// onCatalogUpdate re-renders all children from the canonical collections.
// Called by the store after every applied delta, possibly off the UI thread.
func (ui *RootUI) onCatalogUpdate() {
	fyne.Do(ui.renderCatalog)
}

// renderCatalog pushes fresh snapshots into the child components.
func (ui *RootUI) renderCatalog() {
	fonts := ui.store.Fonts()
	ui.fontList.SetFonts(fonts)
	ui.composer.SetFonts(fonts)
	ui.groupList.SetGroups(ui.store.Groups())
}

// previewURL resolves a server-relative font path against the configured
// origin.
func (ui *RootUI) previewURL(filePath string) string {
	return fontfile.PreviewURL(ui.settings.GetAPIBaseURL(), filePath)
}

// requestContext returns the context for one user-triggered request.
func (ui *RootUI) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ui.settings.GetRequestTimeout())
}

// onUploadSubmit uploads the picked font file. The catalog gains the font
// only after the server confirms and returns the created record.
func (ui *RootUI) onUploadSubmit(fileName string, data []byte) {
	go func() {
		ctx, cancel := ui.requestContext()
		defer cancel()

		font, err := ui.remote.UploadFont(ctx, fileName, bytes.NewReader(data))

		fyne.Do(func() {
			if err != nil {
				log.Printf("Font upload failed: %v", err)
				ui.uploadForm.FinishUpload(nil)
				ui.showToast(ui.localization.GetText(KeyUploadFailed), err.Error(), true)
				return
			}

			ui.store.AppendFont(font)
			ui.uploadForm.FinishUpload(&font)
			ui.showToast(ui.localization.GetText(KeyFontUploaded), font.DisplayName(), false)
		})
	}()
}

// onDeleteFont deletes a font after optional confirmation. On failure the
// catalog is left untouched.
func (ui *RootUI) onDeleteFont(fontID string) {
	ui.confirmDelete(KeyDeleteFontTitle, func() {
		go func() {
			ctx, cancel := ui.requestContext()
			defer cancel()

			message, err := ui.remote.DeleteFont(ctx, fontID)

			fyne.Do(func() {
				if err != nil {
					log.Printf("Font delete failed for id=%s: %v", fontID, err)
					ui.showToast(ui.localization.GetText(KeyRequestFailed), err.Error(), true)
					return
				}

				ui.store.RemoveFont(fontID)
				if message == "" {
					message = ui.localization.GetText(KeyFontDeleted)
				}
				ui.showToast(ui.localization.GetText(KeyFontDeleted), message, false)
			})
		}()
	})
}

// onComposerSubmit creates a group from an already validated draft.
func (ui *RootUI) onComposerSubmit(title string, fontIDs []string) {
	go func() {
		ctx, cancel := ui.requestContext()
		defer cancel()

		group, err := ui.remote.CreateGroup(ctx, title, fontIDs)

		fyne.Do(func() {
			if err != nil {
				log.Printf("Group create failed: %v", err)
				ui.composer.FinishSubmit(false)
				ui.showToast(ui.localization.GetText(KeyRequestFailed), err.Error(), true)
				return
			}

			ui.store.AppendGroup(group)
			ui.composer.FinishSubmit(true)
			ui.showToast(ui.localization.GetText(KeyGroupCreated), group.Title, false)
		})
	}()
}

// onEditGroup opens the modal editor for one group.
func (ui *RootUI) onEditGroup(groupID string) {
	group, ok := ui.store.GroupByID(groupID)
	if !ok {
		log.Printf("Edit requested for unknown group id=%s", groupID)
		return
	}

	editor := NewGroupEditor(ui.window, ui.localization, group, ui.store.Fonts(), ui.onEditorSubmit)
	editor.Show()
}

// onEditorSubmit sends the full membership replacement for a group. The
// canonical group is replaced only with the server's response payload.
func (ui *RootUI) onEditorSubmit(editor *GroupEditor, groupID, title string, fontIDs []string) {
	go func() {
		ctx, cancel := ui.requestContext()
		defer cancel()

		group, err := ui.remote.UpdateGroup(ctx, groupID, title, fontIDs)

		fyne.Do(func() {
			if err != nil {
				log.Printf("Group update failed for id=%s: %v", groupID, err)
				editor.FinishSubmit(false)
				ui.showToast(ui.localization.GetText(KeyRequestFailed), err.Error(), true)
				return
			}

			ui.store.ReplaceGroup(group)
			editor.FinishSubmit(true)
			ui.showToast(ui.localization.GetText(KeyGroupUpdated), group.Title, false)
		})
	}()
}

// onDeleteGroup deletes a group after optional confirmation.
func (ui *RootUI) onDeleteGroup(groupID string) {
	ui.confirmDelete(KeyDeleteGroupTitle, func() {
		go func() {
			ctx, cancel := ui.requestContext()
			defer cancel()

			message, err := ui.remote.DeleteGroup(ctx, groupID)

			fyne.Do(func() {
				if err != nil {
					log.Printf("Group delete failed for id=%s: %v", groupID, err)
					ui.showToast(ui.localization.GetText(KeyRequestFailed), err.Error(), true)
					return
				}

				ui.store.RemoveGroup(groupID)
				if message == "" {
					message = ui.localization.GetText(KeyGroupDeleted)
				}
				ui.showToast(ui.localization.GetText(KeyGroupDeleted), message, false)
			})
		}()
	})
}

// confirmDelete runs action directly, or behind a confirmation dialog when
// the corresponding setting is enabled.
func (ui *RootUI) confirmDelete(titleKey string, action func()) {
	if !ui.settings.GetConfirmDelete() {
		action()
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(titleKey),
		ui.localization.GetText(KeyDeleteQuestion),
		func(confirmed bool) {
			if confirmed {
				action()
			}
		},
		ui.window,
	)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// showNotification displays a message in the notification panel. When
// spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// showToast shows an auto-hiding toast in the top-right corner.
func (ui *RootUI) showToast(title, message string, isError bool) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	if isError {
		titleLabel.SetText(IconError + " " + title)
	}

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
	)

	toast = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toast.Resize(toastSize)
	toast.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toast.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toast.Hide)
	}()
}
