package catalog

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fontdeck/fontdeck/internal/model"
)

// fakeRemote implements api.Remote for store tests.
type fakeRemote struct {
	fonts     []model.Font
	groups    []model.Group
	fontsErr  error
	groupsErr error
}

func (f *fakeRemote) ListFonts(ctx context.Context) ([]model.Font, error) {
	return f.fonts, f.fontsErr
}

func (f *fakeRemote) GetFont(ctx context.Context, id string) (model.Font, error) {
	for _, font := range f.fonts {
		if font.ID == id {
			return font, nil
		}
	}
	return model.Font{}, errors.New("not found")
}

func (f *fakeRemote) UploadFont(ctx context.Context, filename string, data io.Reader) (model.Font, error) {
	return model.Font{}, errors.New("not implemented")
}

func (f *fakeRemote) DeleteFont(ctx context.Context, id string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeRemote) ListGroups(ctx context.Context) ([]model.Group, error) {
	return f.groups, f.groupsErr
}

func (f *fakeRemote) CreateGroup(ctx context.Context, title string, fontIDs []string) (model.Group, error) {
	return model.Group{}, errors.New("not implemented")
}

func (f *fakeRemote) UpdateGroup(ctx context.Context, id, title string, fontIDs []string) (model.Group, error) {
	return model.Group{}, errors.New("not implemented")
}

func (f *fakeRemote) DeleteGroup(ctx context.Context, id string) (string, error) {
	return "", errors.New("not implemented")
}

func TestLoad_FetchesBothCollections(t *testing.T) {
	remote := &fakeRemote{
		fonts:  []model.Font{{ID: "1", Name: "Sans"}, {ID: "2", Name: "Serif"}},
		groups: []model.Group{{ID: "10", Title: "Body Text"}},
	}
	store := NewStore(remote)

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(store.Fonts()) != 2 {
		t.Errorf("Expected 2 fonts after load, got %d", len(store.Fonts()))
	}

	if len(store.Groups()) != 1 {
		t.Errorf("Expected 1 group after load, got %d", len(store.Groups()))
	}
}

func TestLoad_PartialFailureKeepsOtherCollection(t *testing.T) {
	remote := &fakeRemote{
		fonts:     []model.Font{{ID: "1", Name: "Sans"}},
		groupsErr: errors.New("boom"),
	}
	store := NewStore(remote)

	err := store.Load(context.Background())
	if err == nil {
		t.Fatal("Expected error when group fetch fails")
	}

	if len(store.Fonts()) != 1 {
		t.Errorf("Expected fonts to survive group fetch failure, got %d", len(store.Fonts()))
	}

	if len(store.Groups()) != 0 {
		t.Errorf("Expected no groups after failed fetch, got %d", len(store.Groups()))
	}
}

func TestAppendAndRemoveFont(t *testing.T) {
	store := NewStore(&fakeRemote{})

	store.AppendFont(model.Font{ID: "1", Name: "Sans"})
	store.AppendFont(model.Font{ID: "2", Name: "Serif"})

	if _, ok := store.FontByID("1"); !ok {
		t.Error("Expected font 1 to exist after append")
	}

	store.RemoveFont("1")

	if _, ok := store.FontByID("1"); ok {
		t.Error("Expected font 1 to be gone after remove")
	}

	fonts := store.Fonts()
	if len(fonts) != 1 || fonts[0].ID != "2" {
		t.Errorf("Expected only font 2 to remain, got %+v", fonts)
	}
}

func TestRemoveFont_AbsentIDIsNoOp(t *testing.T) {
	store := NewStore(&fakeRemote{})
	store.AppendFont(model.Font{ID: "1", Name: "Sans"})

	updates := 0
	store.SetUpdateCallback(func() { updates++ })

	store.RemoveFont("missing")

	if updates != 0 {
		t.Errorf("Expected no update notification for absent id, got %d", updates)
	}

	if len(store.Fonts()) != 1 {
		t.Errorf("Expected catalog unchanged, got %d fonts", len(store.Fonts()))
	}
}

func TestReplaceGroup(t *testing.T) {
	store := NewStore(&fakeRemote{})
	store.AppendGroup(model.Group{ID: "10", Title: "Body Text", Fonts: []model.Font{{ID: "1"}, {ID: "2"}}})
	store.AppendGroup(model.Group{ID: "11", Title: "Headers"})

	updated := model.Group{ID: "10", Title: "Body Copy", Fonts: []model.Font{{ID: "2"}, {ID: "3"}}}
	store.ReplaceGroup(updated)

	groups := store.Groups()
	if len(groups) != 2 {
		t.Fatalf("Expected exactly 2 groups after replace, got %d", len(groups))
	}

	// Replacement keeps position.
	if groups[0].ID != "10" || groups[0].Title != "Body Copy" {
		t.Errorf("Expected group 10 updated in place, got %+v", groups[0])
	}

	if len(groups[0].Fonts) != 2 || groups[0].Fonts[0].ID != "2" || groups[0].Fonts[1].ID != "3" {
		t.Errorf("Expected membership [2 3], got %+v", groups[0].Fonts)
	}
}

func TestReplaceGroup_AbsentIDIsNoOp(t *testing.T) {
	store := NewStore(&fakeRemote{})
	store.AppendGroup(model.Group{ID: "10", Title: "Body Text"})

	store.ReplaceGroup(model.Group{ID: "99", Title: "Ghost"})

	groups := store.Groups()
	if len(groups) != 1 || groups[0].Title != "Body Text" {
		t.Errorf("Expected catalog unchanged, got %+v", groups)
	}
}

func TestUpdateCallback_FiresOnDeltas(t *testing.T) {
	store := NewStore(&fakeRemote{})

	updates := 0
	store.SetUpdateCallback(func() { updates++ })

	store.AppendFont(model.Font{ID: "1"})
	store.AppendGroup(model.Group{ID: "10"})
	store.RemoveFont("1")
	store.RemoveGroup("10")

	if updates != 4 {
		t.Errorf("Expected 4 update notifications, got %d", updates)
	}
}

func TestCollectionsReturnCopies(t *testing.T) {
	store := NewStore(&fakeRemote{})
	store.AppendFont(model.Font{ID: "1", Name: "Sans"})

	fonts := store.Fonts()
	fonts[0].Name = "Mutated"

	if f, _ := store.FontByID("1"); f.Name != "Sans" {
		t.Error("Mutating a returned slice must not affect the store")
	}
}
