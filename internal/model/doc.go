package model

// Package model defines domain data structures used across the app: fonts,
// font groups, and composer rows. Structures mirror the server's JSON
// payloads and are designed for direct rendering in the UI.
