package route

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alsaroute/alsaroute-go/pkg/log"
	"github.com/alsaroute/alsaroute-go/pkg/mixer"
	"github.com/alsaroute/alsaroute-go/pkg/pathdef"
)

// Router errors.
var (
	ErrUnknownPath  = errors.New("no path with that name")
	ErrParseAborted = errors.New("definition stream aborted")
)

// CommitError reports a partial commit failure: some backing values
// rejected their write while the rest of the batch went through.
type CommitError struct {
	// Changed is the number of controls written.
	Changed int

	// Failed is the number of backing values that failed.
	Failed int
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit wrote %d controls, %d backing values failed", e.Changed, e.Failed)
}

// Router is one mixer-path configuration engine instance for a card. It
// stages path applies and resets in memory and commits only the deltas
// to the hardware.
//
// A Router is not safe for concurrent use; embedders running multiple
// streams against one card must serialize access with their own lock.
type Router struct {
	dev     mixer.Device
	reg     *Registry
	store   *Store
	logger  log.Logger
	session string
	card    int
	source  string
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the event logger. The default discards all events.
func WithLogger(l log.Logger) Option {
	return func(rt *Router) {
		if l != nil {
			rt.logger = l
		}
	}
}

// WithCard records the card number on emitted events.
func WithCard(card int) Option {
	return func(rt *Router) { rt.card = card }
}

// WithSourceName records the definitions file name on the load event.
func WithSourceName(name string) Option {
	return func(rt *Router) { rt.source = name }
}

// Open builds a Router for dev from the definition stream src: it
// enumerates the card's controls, loads the path definitions, commits
// the top-level initializer values and snapshots the result as the
// reset state.
//
// On success the Router takes ownership of dev and will close it in
// Close. On failure every partially built structure is discarded and
// dev stays with the caller; a stream-level failure is reported as
// ErrParseAborted.
func Open(dev mixer.Device, src pathdef.Source, opts ...Option) (*Router, error) {
	rt := &Router{
		dev:     dev,
		logger:  log.NoopLogger{},
		session: uuid.NewString(),
	}
	for _, o := range opts {
		o(rt)
	}

	reg, err := NewRegistry(dev)
	if err != nil {
		return nil, err
	}
	rt.reg = reg
	rt.store = NewStore()

	reg.OnWrite = func(ctl mixer.Control, value int, failedValues uint) {
		rt.emit(log.Event{
			Category: log.CategoryWrite,
			Write: &log.WriteEvent{
				Control:   ctl.Name(),
				Value:     value,
				NumValues: ctl.NumValues(),
				Failed:    failedValues,
			},
		})
	}

	ld := &loader{rt: rt}
	if err := ld.run(src); err != nil {
		rt.emitError("load", rt.source, err)
		return nil, fmt.Errorf("%w: %v", ErrParseAborted, err)
	}

	// apply the initial values, then save them for reset
	changed, failed := reg.Commit()
	reg.SnapshotReset()

	rt.emit(log.Event{
		Category: log.CategoryCommit,
		Commit:   &log.CommitEvent{Changed: changed, Failed: failed},
	})
	rt.emit(log.Event{
		Category: log.CategoryLoad,
		Load: &log.LoadEvent{
			File:     rt.source,
			Paths:    rt.store.Len(),
			Controls: reg.Len(),
			Skipped:  ld.skipped,
		},
	})
	return rt, nil
}

// Session returns the engine instance's session ID, as stamped on every
// emitted log event.
func (rt *Router) Session() string { return rt.session }

// Paths returns the loaded path names in definition order.
func (rt *Router) Paths() []string { return rt.store.Names() }

// Registry returns the control registry, for inspection.
func (rt *Router) Registry() *Registry { return rt.reg }

// ApplyPath stages every setting of the named path. Nothing is written
// until Update; several paths can be staged and committed as one
// transition. An unknown name fails with ErrUnknownPath and leaves all
// staged values unchanged.
func (rt *Router) ApplyPath(name string) error {
	p, ok := rt.store.ByName(name)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownPath, name)
		rt.emitError("apply", name, err)
		return err
	}

	for i := range p.settings {
		rt.reg.Stage(p.settings[i].Ctl, p.settings[i].Value)
	}
	rt.emit(log.Event{
		Category: log.CategoryApply,
		Apply:    &log.ApplyEvent{Path: name, Settings: p.Len()},
	})
	return nil
}

// Reset stages the saved boot state on every control, restoring the
// card to where it was right after the initial load once committed.
func (rt *Router) Reset() {
	rt.reg.Reset()
	rt.emit(log.Event{
		Category: log.CategoryApply,
		Apply:    &log.ApplyEvent{Reset: true, Settings: rt.reg.Len()},
	})
}

// Update commits all staged changes to the hardware, touching only
// controls whose value actually changed. Per-control write failures do
// not abort the batch; if any backing value failed the aggregate is
// returned as a CommitError.
func (rt *Router) Update() error {
	changed, failed := rt.reg.Commit()
	rt.emit(log.Event{
		Category: log.CategoryCommit,
		Commit:   &log.CommitEvent{Changed: changed, Failed: failed},
	})

	if failed > 0 {
		return &CommitError{Changed: changed, Failed: failed}
	}
	return nil
}

// Close releases the underlying device. The Router is unusable
// afterwards.
func (rt *Router) Close() error {
	return rt.dev.Close()
}

func (rt *Router) emit(ev log.Event) {
	ev.Timestamp = time.Now()
	ev.SessionID = rt.session
	ev.Card = rt.card
	rt.logger.Log(ev)
}

func (rt *Router) emitError(op, name string, err error) {
	rt.emit(log.Event{
		Category: log.CategoryError,
		Error:    &log.ErrorEventData{Op: op, Name: name, Message: err.Error()},
	})
}
