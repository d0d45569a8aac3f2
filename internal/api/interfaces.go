package api

import (
	"context"
	"io"

	"github.com/fontdeck/fontdeck/internal/model"
)

// Remote defines the interface for the remote font-group service.
type Remote interface {
	ListFonts(ctx context.Context) ([]model.Font, error)
	GetFont(ctx context.Context, id string) (model.Font, error)
	UploadFont(ctx context.Context, filename string, data io.Reader) (model.Font, error)
	DeleteFont(ctx context.Context, id string) (string, error)

	ListGroups(ctx context.Context) ([]model.Group, error)
	CreateGroup(ctx context.Context, title string, fontIDs []string) (model.Group, error)
	UpdateGroup(ctx context.Context, id, title string, fontIDs []string) (model.Group, error)
	DeleteGroup(ctx context.Context, id string) (string, error)
}
