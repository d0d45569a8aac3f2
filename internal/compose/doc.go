package compose

// Package compose holds the client-side group editing state machines: the
// draft used to create a group from ordered font rows, and the edit session
// used to replace an existing group's title and membership wholesale. Both
// are pure state; network submission and rendering live elsewhere.
