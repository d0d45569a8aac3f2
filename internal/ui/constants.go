package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconRemove   = "−"
	IconDelete   = "🗑"
	IconEdit     = "✎"
	IconClose    = "×"
	IconError    = "❌"
	IconFont     = "🔤"
)

// Text fragments
const (
	FontNameSeparator = ", "
	DashPlaceholder   = "—"
	CountLabelFormat  = "%d"
)

// Layout sizing (list rows)
const (
	FontNameLabelWidth float32 = 180
	GroupCountWidth    float32 = 48

	ListMinWidth  float32 = 420
	ListMinHeight float32 = 160
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)

// Editor dialog sizing
const (
	EditorDialogWidth  float32 = 420
	EditorDialogHeight float32 = 440
)
