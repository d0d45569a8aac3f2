package catalog

// Package catalog owns the canonical in-memory collections of fonts and
// groups. Child UI components never mutate these directly; they report
// deltas (append/remove/replace by ID) which the store folds in and then
// notifies the UI. State changes only on confirmed server success.
