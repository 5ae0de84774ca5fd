package route

import (
	"errors"
	"io"
	"strconv"

	"github.com/alsaroute/alsaroute-go/pkg/mixer"
	"github.com/alsaroute/alsaroute-go/pkg/pathdef"
)

// loader drives a definition tag stream through a depth-tracking state
// machine. Depth 0 is the document root element; its direct children
// (depth 1) are top-level paths and initializer ctls; anything deeper
// belongs to the body of the path currently being built.
//
// Authoring errors (unnamed tags, duplicate or unknown names) are
// logged, counted and skipped so the rest of the file still loads.
// A broken stream aborts the whole load.
type loader struct {
	rt      *Router
	current *Path
	depth   int
	skipped int
}

func (l *loader) run(src pathdef.Source) error {
	for {
		tag, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch tag.Kind {
		case pathdef.Start:
			l.startTag(tag)
			l.depth++
		case pathdef.End:
			l.depth--
		}
	}
}

func (l *loader) startTag(tag pathdef.Tag) {
	switch tag.Name {
	case "path":
		l.pathTag(tag)
	case "ctl":
		l.ctlTag(tag)
	}
	// unknown tags are ignored
}

func (l *loader) pathTag(tag pathdef.Tag) {
	name, ok := tag.Attr("name")
	if !ok {
		if l.depth == 1 {
			// drop the body of the rejected path too
			l.current = nil
		}
		l.skip("load", "", errors.New("unnamed path"))
		return
	}

	if l.depth == 1 {
		// top-level path: create and stash it
		p, err := l.rt.store.Create(name)
		if err != nil {
			l.current = nil
			l.skip("load", name, err)
			return
		}
		l.current = p
		return
	}

	// nested path: flatten the referenced path into the current one
	if l.current == nil {
		l.skip("load", name, errors.New("nested path outside a path body"))
		return
	}
	sub, ok := l.rt.store.ByName(name)
	if !ok {
		l.skip("load", name, ErrUnknownPath)
		return
	}
	if err := l.current.Include(sub); err != nil {
		// settings added before the failure stay in place
		l.skip("load", name, err)
	}
}

func (l *loader) ctlTag(tag pathdef.Tag) {
	name, ok := tag.Attr("name")
	if !ok {
		l.skip("load", "", errors.New("unnamed ctl"))
		return
	}

	ctl, ok := l.rt.dev.ControlByName(name)
	if !ok {
		l.skip("load", name, errors.New("unknown control"))
		return
	}

	raw, _ := tag.Attr("value")
	value := controlValue(ctl, raw)

	if l.depth == 1 {
		// top-level ctl: initializer, staged directly on the registry
		l.rt.reg.Stage(ctl, value)
		return
	}

	if l.current == nil {
		l.skip("load", name, errors.New("ctl outside a path body"))
		return
	}
	if err := l.current.Add(ctl, value); err != nil {
		l.skip("load", name, err)
	}
}

// controlValue converts a raw attribute value using the control's type.
// Boolean and integer controls parse numerically; enum controls resolve
// the item name to its index. Anything unparsable or unmatched is 0.
func controlValue(ctl mixer.Control, raw string) int {
	switch ctl.Type() {
	case mixer.CtlTypeBool, mixer.CtlTypeInt:
		v, _ := strconv.Atoi(raw)
		return v
	case mixer.CtlTypeEnum:
		return mixer.EnumIndex(ctl, raw)
	default:
		return 0
	}
}

func (l *loader) skip(op, name string, err error) {
	l.skipped++
	l.rt.emitError(op, name, err)
}
