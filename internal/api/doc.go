package api

// Package api implements the HTTP client for the remote font-group server.
// Every endpoint answers a {"status","data"} envelope; "data" carries the
// payload on success and a message string otherwise. The client performs no
// retries: each failure is terminal for that attempt and surfaced to the
// caller.
