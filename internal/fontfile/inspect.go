package fontfile

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/font"
)

// AllowedExtension is the only font format the upload form accepts. The
// server stores whatever it receives, so the gate lives on the client.
const AllowedExtension = ".ttf"

// UploadPathPrefix is the server-relative directory where uploaded fonts
// are stored and served from.
const UploadPathPrefix = "/uploads/fonts/"

// Info describes an inspected font file.
type Info struct {
	Family string // family name from the font's name table
}

// ValidateExtension checks that the file name carries the allowed font
// extension. Matching is case-insensitive.
func ValidateExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != AllowedExtension {
		return fmt.Errorf("unsupported font file %q: only %s files are accepted", filepath.Base(name), AllowedExtension)
	}
	return nil
}

// Inspect parses the raw TTF data and extracts the font family name, used
// to prefill the display name before upload. Unparseable data blocks the
// upload rather than sending junk to the server.
func Inspect(data []byte) (Info, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("parse ttf: %w", err)
	}

	desc := face.Describe()
	family := strings.TrimSpace(desc.Family)
	if family == "" {
		return Info{}, fmt.Errorf("font has no family name")
	}
	return Info{Family: family}, nil
}

// PreviewURL joins the configured server origin with a font's
// server-relative storage path, for previewing an uploaded font.
func PreviewURL(origin, filePath string) string {
	return strings.TrimRight(origin, "/") + UploadPathPrefix + strings.TrimLeft(filePath, "/")
}
