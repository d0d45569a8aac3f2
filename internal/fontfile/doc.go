package fontfile

// Package fontfile holds local helpers for font files: the upload extension
// gate, TTF inspection for a display name, and preview URL construction for
// fonts already stored on the server.
