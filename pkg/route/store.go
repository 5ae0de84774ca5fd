package route

import (
	"errors"
	"fmt"
)

// Store errors.
var (
	ErrDuplicateName = errors.New("path name already exists")
)

// Store is an append-only, name-indexed collection of paths. Insertion
// order is preserved; names are unique. Path counts are small (tens, not
// thousands), so nothing here is tuned for scale.
type Store struct {
	paths []*Path
	index map[string]int
}

// NewStore creates an empty path store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Create allocates an empty path under name and returns it for
// population. Creating a name that already exists fails with
// ErrDuplicateName. The returned handle stays valid for the life of the
// store.
func (s *Store) Create(name string) (*Path, error) {
	if _, ok := s.index[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	p := &Path{name: name}
	s.index[name] = len(s.paths)
	s.paths = append(s.paths, p)
	return p, nil
}

// ByName returns the named path and whether it exists.
func (s *Store) ByName(name string) (*Path, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.paths[i], true
}

// Len returns the number of paths.
func (s *Store) Len() int { return len(s.paths) }

// Names returns all path names in definition order.
func (s *Store) Names() []string {
	names := make([]string, len(s.paths))
	for i, p := range s.paths {
		names[i] = p.name
	}
	return names
}
