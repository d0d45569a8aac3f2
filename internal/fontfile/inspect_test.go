package fontfile

import (
	"strings"
	"testing"
)

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"roboto.ttf", false},
		{"ROBOTO.TTF", false},
		{"/home/user/fonts/roboto.ttf", false},
		{"roboto.otf", true},
		{"roboto.woff2", true},
		{"roboto", true},
		{"", true},
	}

	for _, test := range tests {
		err := ValidateExtension(test.name)
		if test.wantErr && err == nil {
			t.Errorf("ValidateExtension(%q) expected error, got nil", test.name)
		}
		if !test.wantErr && err != nil {
			t.Errorf("ValidateExtension(%q) expected no error, got %v", test.name, err)
		}
	}
}

func TestInspect_RejectsGarbage(t *testing.T) {
	_, err := Inspect([]byte("definitely not a font"))
	if err == nil {
		t.Error("Expected error for non-TTF data, got nil")
	}
}

func TestInspect_RejectsEmptyData(t *testing.T) {
	_, err := Inspect(nil)
	if err == nil {
		t.Error("Expected error for empty data, got nil")
	}
}

func TestPreviewURL(t *testing.T) {
	tests := []struct {
		origin   string
		filePath string
		expected string
	}{
		{"http://localhost:8000", "roboto.ttf", "http://localhost:8000/uploads/fonts/roboto.ttf"},
		{"http://localhost:8000/", "roboto.ttf", "http://localhost:8000/uploads/fonts/roboto.ttf"},
		{"http://localhost:8000", "/roboto.ttf", "http://localhost:8000/uploads/fonts/roboto.ttf"},
	}

	for _, test := range tests {
		result := PreviewURL(test.origin, test.filePath)
		if result != test.expected {
			t.Errorf("PreviewURL(%q, %q) = %q, expected %q", test.origin, test.filePath, result, test.expected)
		}
	}

	if !strings.HasPrefix(PreviewURL("http://x", "f.ttf"), "http://x/uploads/fonts/") {
		t.Error("Preview URLs must point into the uploads directory")
	}
}
