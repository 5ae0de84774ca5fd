package route

import (
	"errors"
	"fmt"

	"github.com/alsaroute/alsaroute-go/pkg/mixer"
)

// Path authoring errors.
var (
	ErrDuplicateControl = errors.New("control already set in path")
	ErrRecursiveInclude = errors.New("path cannot include itself")
)

// Setting is a single desired value for one control.
type Setting struct {
	Ctl   mixer.Control
	Value int
}

// Path is a named, ordered list of control settings describing one audio
// routing configuration. Within a path every control appears at most
// once. Paths are mutable only while definitions are being loaded; after
// that they are fully flattened and read-only.
type Path struct {
	name     string
	settings []Setting
}

// Name returns the path's unique name.
func (p *Path) Name() string { return p.name }

// Len returns the number of settings in the path.
func (p *Path) Len() int { return len(p.settings) }

// Settings returns a copy of the path's settings in insertion order.
func (p *Path) Settings() []Setting {
	out := make([]Setting, len(p.settings))
	copy(out, p.settings)
	return out
}

func (p *Path) contains(ctl mixer.Control) bool {
	for i := range p.settings {
		if p.settings[i].Ctl == ctl {
			return true
		}
	}
	return false
}

// Add appends a setting for ctl. A second setting for the same control
// in the same path is rejected with ErrDuplicateControl, never silently
// overwritten.
func (p *Path) Add(ctl mixer.Control, value int) error {
	if p.contains(ctl) {
		return fmt.Errorf("%w: %q", ErrDuplicateControl, ctl.Name())
	}
	p.settings = append(p.settings, Setting{Ctl: ctl, Value: value})
	return nil
}

// Include copies every setting of sub into p, flattening the inclusion
// at definition time; there is no runtime path graph. sub must itself be
// fully flattened already - Include does not recurse.
//
// Inclusion is best effort: a duplicate control stops the copy and is
// returned as an error, but settings added before it remain in p.
// A path including itself is rejected with ErrRecursiveInclude.
func (p *Path) Include(sub *Path) error {
	if sub == p {
		return fmt.Errorf("%w: %q", ErrRecursiveInclude, p.name)
	}
	for i := range sub.settings {
		if err := p.Add(sub.settings[i].Ctl, sub.settings[i].Value); err != nil {
			return fmt.Errorf("including %q in %q: %w", sub.name, p.name, err)
		}
	}
	return nil
}
