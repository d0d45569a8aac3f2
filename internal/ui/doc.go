package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the remote font-group API and
// the catalog store, and renders the upload form, font list, group composer,
// group list, notifications, and settings. All UI strings are localized via
// Localization.
