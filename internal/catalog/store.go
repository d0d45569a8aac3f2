package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/fontdeck/fontdeck/internal/api"
	"github.com/fontdeck/fontdeck/internal/model"
)

// Store holds the canonical font and group collections as insertion-ordered
// slices keyed by ID. All mutation happens through explicit delta methods.
type Store struct {
	mu       sync.RWMutex
	fonts    []model.Font
	groups   []model.Group
	remote   api.Remote
	onUpdate func() // callback for UI updates
}

// NewStore creates a store backed by the given remote API.
func NewStore(remote api.Remote) *Store {
	return &Store{remote: remote}
}

// SetUpdateCallback sets the callback invoked after every applied delta.
func (s *Store) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// Load fetches the full font and group catalogs with two concurrent
// requests; neither depends on the other. A failure of one fetch does not
// discard the result of the other.
func (s *Store) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	var fontsErr, groupsErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		fonts, err := s.remote.ListFonts(ctx)
		if err != nil {
			fontsErr = fmt.Errorf("load fonts: %w", err)
			return
		}
		s.SetFonts(fonts)
	}()
	go func() {
		defer wg.Done()
		groups, err := s.remote.ListGroups(ctx)
		if err != nil {
			groupsErr = fmt.Errorf("load groups: %w", err)
			return
		}
		s.SetGroups(groups)
	}()
	wg.Wait()

	return errors.Join(fontsErr, groupsErr)
}

// Fonts returns a copy of the font collection in insertion order.
func (s *Store) Fonts() []model.Font {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fonts := make([]model.Font, len(s.fonts))
	copy(fonts, s.fonts)
	return fonts
}

// FontByID looks up a font in the canonical catalog.
func (s *Store) FontByID(id string) (model.Font, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.fonts {
		if f.ID == id {
			return f, true
		}
	}
	return model.Font{}, false
}

// SetFonts replaces the whole font collection (initial load).
func (s *Store) SetFonts(fonts []model.Font) {
	s.mu.Lock()
	s.fonts = make([]model.Font, len(fonts))
	copy(s.fonts, fonts)
	s.mu.Unlock()

	s.notifyUpdate()
}

// AppendFont folds a confirmed font creation into the catalog.
func (s *Store) AppendFont(font model.Font) {
	s.mu.Lock()
	s.fonts = append(s.fonts, font)
	s.mu.Unlock()

	log.Printf("Catalog: appended font id=%s name=%q", font.ID, font.Name)
	s.notifyUpdate()
}

// RemoveFont folds a confirmed font deletion into the catalog. Removing an
// absent ID is a no-op, which keeps concurrent deletes conflict-free.
func (s *Store) RemoveFont(id string) {
	s.mu.Lock()
	removed := false
	for i, f := range s.fonts {
		if f.ID == id {
			s.fonts = append(s.fonts[:i], s.fonts[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if !removed {
		log.Printf("Catalog: remove of unknown font id=%s ignored", id)
		return
	}
	s.notifyUpdate()
}

// Groups returns a copy of the group collection in insertion order.
func (s *Store) Groups() []model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]model.Group, len(s.groups))
	copy(groups, s.groups)
	return groups
}

// GroupByID looks up a group in the canonical catalog.
func (s *Store) GroupByID(id string) (model.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.groups {
		if g.ID == id {
			return g, true
		}
	}
	return model.Group{}, false
}

// SetGroups replaces the whole group collection (initial load).
func (s *Store) SetGroups(groups []model.Group) {
	s.mu.Lock()
	s.groups = make([]model.Group, len(groups))
	copy(s.groups, groups)
	s.mu.Unlock()

	s.notifyUpdate()
}

// AppendGroup folds a confirmed group creation into the catalog.
func (s *Store) AppendGroup(group model.Group) {
	s.mu.Lock()
	s.groups = append(s.groups, group)
	s.mu.Unlock()

	log.Printf("Catalog: appended group id=%s title=%q fonts=%d", group.ID, group.Title, len(group.Fonts))
	s.notifyUpdate()
}

// RemoveGroup folds a confirmed group deletion into the catalog. Removing
// an absent ID is a no-op.
func (s *Store) RemoveGroup(id string) {
	s.mu.Lock()
	removed := false
	for i, g := range s.groups {
		if g.ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if !removed {
		log.Printf("Catalog: remove of unknown group id=%s ignored", id)
		return
	}
	s.notifyUpdate()
}

// ReplaceGroup folds a confirmed group update into the catalog, matching by
// ID and keeping the group's position. Replacing an absent ID is a no-op.
func (s *Store) ReplaceGroup(group model.Group) {
	s.mu.Lock()
	replaced := false
	for i, g := range s.groups {
		if g.ID == group.ID {
			s.groups[i] = group
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if !replaced {
		log.Printf("Catalog: replace of unknown group id=%s ignored", group.ID)
		return
	}
	s.notifyUpdate()
}

// notifyUpdate invokes the UI callback if one is set.
func (s *Store) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
