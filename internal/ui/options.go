package ui

import (
	"fmt"

	"github.com/fontdeck/fontdeck/internal/model"
)

// formatFontOption renders a catalog font as a selectable option string.
// The ID is included because display names are not guaranteed unique.
func formatFontOption(f model.Font) string {
	return fmt.Sprintf("%s (%s)", f.DisplayName(), f.ID)
}

// fontOptions builds the option list for selection widgets plus the reverse
// mapping from option string back to the font.
func fontOptions(fonts []model.Font) ([]string, map[string]model.Font) {
	options := make([]string, 0, len(fonts))
	byOption := make(map[string]model.Font, len(fonts))
	for _, f := range fonts {
		option := formatFontOption(f)
		options = append(options, option)
		byOption[option] = f
	}
	return options, byOption
}
