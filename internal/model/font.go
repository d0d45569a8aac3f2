package model

import "strings"

// MissingFontPlaceholder is rendered when a group references a font that is
// no longer present in the catalog. The server performs no cascade on font
// deletion, so dangling references are expected and must not crash the UI.
const MissingFontPlaceholder = "(missing font)"

// Font represents a server-stored font resource. Fonts are created by the
// upload flow and immutable afterwards; the server assigns the ID.
type Font struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FilePath string `json:"file_path"`
}

// DisplayName returns the font name, falling back to the storage file name
// when the server stored an empty name.
func (f Font) DisplayName() string {
	if strings.TrimSpace(f.Name) != "" {
		return f.Name
	}
	if f.FilePath != "" {
		parts := strings.Split(f.FilePath, "/")
		return parts[len(parts)-1]
	}
	return f.ID
}

// Group represents a named, ordered collection of fonts. Membership is
// replaced wholesale on update, never patched incrementally.
type Group struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Fonts []Font `json:"fonts"`
}

// FontIDs projects the group's membership to identifiers, preserving order.
func (g Group) FontIDs() []string {
	ids := make([]string, 0, len(g.Fonts))
	for _, f := range g.Fonts {
		ids = append(ids, f.ID)
	}
	return ids
}

// FontNames resolves each member against the canonical catalog and joins
// the display names. Members whose font was deleted resolve to the missing
// placeholder instead of being dropped, so counts stay honest.
func (g Group) FontNames(resolve func(id string) (Font, bool)) []string {
	names := make([]string, 0, len(g.Fonts))
	for _, member := range g.Fonts {
		if resolve != nil {
			if f, ok := resolve(member.ID); ok {
				names = append(names, f.DisplayName())
				continue
			}
		}
		// Fall back to the name embedded in the group payload; it may be
		// stale but is better than nothing.
		if strings.TrimSpace(member.Name) != "" {
			names = append(names, member.Name)
			continue
		}
		names = append(names, MissingFontPlaceholder)
	}
	return names
}

// FontReference is a client-side composer row pairing a selected font
// identifier with an independently editable display label. Key identifies
// the row itself (not the font) so widgets stay stable across reorders.
// FontName is advisory UI state only and is never sent to the server.
type FontReference struct {
	Key      string
	FontID   string
	FontName string
}

// IsSelected reports whether the row has a font chosen.
func (r FontReference) IsSelected() bool {
	return r.FontID != ""
}
