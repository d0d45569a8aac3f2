package catalog

import (
	"context"

	"github.com/fontdeck/fontdeck/internal/model"
)

// Cataloger defines the interface for the canonical font/group collections.
type Cataloger interface {
	SetUpdateCallback(func())
	Load(ctx context.Context) error

	Fonts() []model.Font
	FontByID(id string) (model.Font, bool)
	AppendFont(font model.Font)
	RemoveFont(id string)

	Groups() []model.Group
	GroupByID(id string) (model.Group, bool)
	AppendGroup(group model.Group)
	RemoveGroup(id string)
	ReplaceGroup(group model.Group)
}
