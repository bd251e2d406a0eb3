package htmx

import (
	"context"
	"sync/atomic"
)

type cellState uint32

const (
	cellArmed cellState = iota
	cellFired
	// cellSealed: observed before anything fired.
	cellSealed
	// cellSealedFired: observed after firing.
	cellSealedFired
	// cellLate: fired after being sealed as unused.
	cellLate
)

// signalCell records whether one header kind was read during a request.
// Any number of goroutines may fire it; the aggregator observes it once.
// State only moves forward, so every transition is a single CAS.
type signalCell struct {
	state atomic.Uint32
}

func (c *signalCell) fire() {
	for {
		cur := cellState(c.state.Load())
		var next cellState
		switch cur {
		case cellArmed:
			next = cellFired
		case cellSealed:
			next = cellLate
		default:
			return
		}
		if c.state.CompareAndSwap(uint32(cur), uint32(next)) {
			return
		}
	}
}

// observe seals the cell and reports whether it fired before being sealed.
// Calling it again returns the sealed answer.
func (c *signalCell) observe() bool {
	for {
		cur := cellState(c.state.Load())
		switch cur {
		case cellArmed:
			if c.state.CompareAndSwap(uint32(cur), uint32(cellSealed)) {
				return false
			}
		case cellFired:
			if c.state.CompareAndSwap(uint32(cur), uint32(cellSealedFired)) {
				return true
			}
		case cellSealedFired:
			return true
		default:
			return false
		}
	}
}

func (c *signalCell) late() bool {
	return cellState(c.state.Load()) == cellLate
}

// signalSetKey is the typed context key that identifies an installed set.
type signalSetKey struct{}

// signalSet holds one cell per tracked kind, indexed by Kind so that
// iteration is always canonical order.
type signalSet struct {
	tracked [kindCount]bool
	cells   [kindCount]signalCell
}

func newSignalSet(kinds []Kind) *signalSet {
	s := &signalSet{}
	for _, k := range kinds {
		if k.valid() {
			s.tracked[k] = true
		}
	}
	return s
}

// installSignals stores a fresh signal set in ctx. It panics with
// ErrAutoVaryInstalledTwice when ctx already carries one, since replacing it
// would silently starve the outer aggregator.
func installSignals(ctx context.Context, kinds []Kind) (context.Context, *signalSet) {
	if _, ok := ctx.Value(signalSetKey{}).(*signalSet); ok {
		panic(ErrAutoVaryInstalledTwice)
	}
	set := newSignalSet(kinds)
	return context.WithValue(ctx, signalSetKey{}, set), set
}

func (s *signalSet) fire(k Kind) {
	if !k.valid() || !s.tracked[k] {
		return
	}
	s.cells[k].fire()
}

// drain observes every tracked cell and returns the kinds that fired,
// in canonical order.
func (s *signalSet) drain() []Kind {
	var used []Kind
	for k := range kindCount {
		if s.tracked[k] && s.cells[k].observe() {
			used = append(used, k)
		}
	}
	return used
}

// lateKinds returns the kinds that fired after drain.
func (s *signalSet) lateKinds() []Kind {
	var late []Kind
	for k := range kindCount {
		if s.tracked[k] && s.cells[k].late() {
			late = append(late, k)
		}
	}
	return late
}

// TryMark records that the header for kind k was read while handling the
// request that owns ctx. It is a no-op when AutoVary is not installed or does
// not track k.
func TryMark(ctx context.Context, k Kind) {
	if ctx == nil {
		return
	}
	if set, ok := ctx.Value(signalSetKey{}).(*signalSet); ok {
		set.fire(k)
	}
}
