package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyUploadFont       = "upload_font"
	KeyChooseFile       = "choose_file"
	KeyNoFileSelected   = "no_file_selected"
	KeyUploadedFonts    = "uploaded_fonts"
	KeyCreateGroup      = "create_group"
	KeyFontGroups       = "font_groups"
	KeyGroupTitle       = "group_title"
	KeyDisplayName      = "display_name"
	KeySelectFont       = "select_font"
	KeyAddRow           = "add_row"
	KeyEdit             = "edit"
	KeyDelete           = "delete"
	KeyUpdate           = "update"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyServerURL        = "server_url"
	KeyRequestTimeout   = "request_timeout"
	KeyConfirmDelete    = "confirm_delete"
	KeySettingsSaved    = "settings_saved"
	KeyLoadingCatalog   = "loading_catalog"
	KeyLoadFailed       = "load_failed"
	KeyFontUploaded     = "font_uploaded"
	KeyUploadFailed     = "upload_failed"
	KeyFontDeleted      = "font_deleted"
	KeyGroupCreated     = "group_created"
	KeyGroupUpdated     = "group_updated"
	KeyGroupDeleted     = "group_deleted"
	KeyRequestFailed    = "request_failed"
	KeyNeedTwoFonts     = "need_two_fonts"
	KeyDuplicateFonts   = "duplicate_fonts"
	KeyNoFonts          = "no_fonts"
	KeyEditGroup        = "edit_group"
	KeyDeleteFontTitle  = "delete_font_title"
	KeyDeleteGroupTitle = "delete_group_title"
	KeyDeleteQuestion   = "delete_question"
	KeyError            = "error"
	KeySuccess          = "success"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "FontDeck",
		KeyUploadFont:       "Upload Font (only TTF allowed)",
		KeyChooseFile:       "Choose TTF file",
		KeyNoFileSelected:   "No file selected",
		KeyUploadedFonts:    "Uploaded Fonts",
		KeyCreateGroup:      "Create Font Group",
		KeyFontGroups:       "Font Groups",
		KeyGroupTitle:       "Group Title",
		KeyDisplayName:      "Display name",
		KeySelectFont:       "Select a font",
		KeyAddRow:           "Add Row",
		KeyEdit:             "Edit",
		KeyDelete:           "Delete",
		KeyUpdate:           "Update",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyServerURL:        "Server URL",
		KeyRequestTimeout:   "Request timeout (seconds)",
		KeyConfirmDelete:    "Ask before deleting",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyLoadingCatalog:   "Loading fonts and groups...",
		KeyLoadFailed:       "Failed to load catalog",
		KeyFontUploaded:     "Font uploaded",
		KeyUploadFailed:     "Font upload failed",
		KeyFontDeleted:      "Font deleted",
		KeyGroupCreated:     "Font group created",
		KeyGroupUpdated:     "Font group updated",
		KeyGroupDeleted:     "Font group deleted",
		KeyRequestFailed:    "Request failed",
		KeyNeedTwoFonts:     "Select at least two fonts",
		KeyDuplicateFonts:   "The same font is selected more than once",
		KeyNoFonts:          "No fonts",
		KeyEditGroup:        "Edit Font Group",
		KeyDeleteFontTitle:  "Delete font",
		KeyDeleteGroupTitle: "Delete group",
		KeyDeleteQuestion:   "This cannot be undone. Continue?",
		KeyError:            "Error",
		KeySuccess:          "Success",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "FontDeck",
		KeyUploadFont:       "Загрузка шрифта (только TTF)",
		KeyChooseFile:       "Выбрать файл TTF",
		KeyNoFileSelected:   "Файл не выбран",
		KeyUploadedFonts:    "Загруженные шрифты",
		KeyCreateGroup:      "Создать группу шрифтов",
		KeyFontGroups:       "Группы шрифтов",
		KeyGroupTitle:       "Название группы",
		KeyDisplayName:      "Отображаемое имя",
		KeySelectFont:       "Выберите шрифт",
		KeyAddRow:           "Добавить строку",
		KeyEdit:             "Изменить",
		KeyDelete:           "Удалить",
		KeyUpdate:           "Обновить",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyServerURL:        "Адрес сервера",
		KeyRequestTimeout:   "Таймаут запроса (сек.)",
		KeyConfirmDelete:    "Спрашивать перед удалением",
		KeySettingsSaved:    "Настройки сохранены!",
		KeyLoadingCatalog:   "Загрузка шрифтов и групп...",
		KeyLoadFailed:       "Не удалось загрузить каталог",
		KeyFontUploaded:     "Шрифт загружен",
		KeyUploadFailed:     "Ошибка загрузки шрифта",
		KeyFontDeleted:      "Шрифт удалён",
		KeyGroupCreated:     "Группа шрифтов создана",
		KeyGroupUpdated:     "Группа шрифтов обновлена",
		KeyGroupDeleted:     "Группа шрифтов удалена",
		KeyRequestFailed:    "Ошибка запроса",
		KeyNeedTwoFonts:     "Выберите минимум два шрифта",
		KeyDuplicateFonts:   "Один и тот же шрифт выбран несколько раз",
		KeyNoFonts:          "Нет шрифтов",
		KeyEditGroup:        "Изменить группу шрифтов",
		KeyDeleteFontTitle:  "Удалить шрифт",
		KeyDeleteGroupTitle: "Удалить группу",
		KeyDeleteQuestion:   "Это действие необратимо. Продолжить?",
		KeyError:            "Ошибка",
		KeySuccess:          "Успешно",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "FontDeck",
		KeyUploadFont:       "Enviar fonte (somente TTF)",
		KeyChooseFile:       "Escolher arquivo TTF",
		KeyNoFileSelected:   "Nenhum arquivo selecionado",
		KeyUploadedFonts:    "Fontes enviadas",
		KeyCreateGroup:      "Criar grupo de fontes",
		KeyFontGroups:       "Grupos de fontes",
		KeyGroupTitle:       "Título do grupo",
		KeyDisplayName:      "Nome de exibição",
		KeySelectFont:       "Selecione uma fonte",
		KeyAddRow:           "Adicionar linha",
		KeyEdit:             "Editar",
		KeyDelete:           "Excluir",
		KeyUpdate:           "Atualizar",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyServerURL:        "URL do servidor",
		KeyRequestTimeout:   "Tempo limite (segundos)",
		KeyConfirmDelete:    "Perguntar antes de excluir",
		KeySettingsSaved:    "Configurações salvas!",
		KeyLoadingCatalog:   "Carregando fontes e grupos...",
		KeyLoadFailed:       "Falha ao carregar o catálogo",
		KeyFontUploaded:     "Fonte enviada",
		KeyUploadFailed:     "Falha no envio da fonte",
		KeyFontDeleted:      "Fonte excluída",
		KeyGroupCreated:     "Grupo de fontes criado",
		KeyGroupUpdated:     "Grupo de fontes atualizado",
		KeyGroupDeleted:     "Grupo de fontes excluído",
		KeyRequestFailed:    "Falha na solicitação",
		KeyNeedTwoFonts:     "Selecione pelo menos duas fontes",
		KeyDuplicateFonts:   "A mesma fonte foi selecionada mais de uma vez",
		KeyNoFonts:          "Sem fontes",
		KeyEditGroup:        "Editar grupo de fontes",
		KeyDeleteFontTitle:  "Excluir fonte",
		KeyDeleteGroupTitle: "Excluir grupo",
		KeyDeleteQuestion:   "Isso não pode ser desfeito. Continuar?",
		KeyError:            "Erro",
		KeySuccess:          "Sucesso",
	}
}
