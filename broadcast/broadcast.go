// Package broadcast implements C3, the event broadcaster: it keeps a
// short per-container history and derives semantic notifications
// (started, became_healthy, became_unhealthy, container_dead,
// stopped_by_hand) from the raw classified event stream, delivering
// them to registered listeners synchronously and in registration
// order.
package broadcast

import (
	"github.com/netresearch/dockwatch/core"
)

// Correlation windows from spec section 4.3, grounded on
// original_source/eventbroadcaster.py (die window) and spec.md's
// resolution of the 12s-vs-30s open question (stop/kill window).
const (
	dieWindowSeconds      = 5
	stopKillWindowSeconds = 12
)

// Kind identifies a semantic notification.
type Kind int

const (
	ContainerStarted Kind = iota
	BecameHealthy
	BecameUnhealthy
	ContainerDead
	StoppedByHand
)

func (k Kind) String() string {
	switch k {
	case ContainerStarted:
		return "container_started"
	case BecameHealthy:
		return "became_healthy"
	case BecameUnhealthy:
		return "became_unhealthy"
	case ContainerDead:
		return "container_dead"
	case StoppedByHand:
		return "stopped_by_hand"
	default:
		return "unknown"
	}
}

// Notification is the higher-level event C3 emits, carrying the
// triggering ContainerEvent for logging/mail bodies.
type Notification struct {
	Kind  Kind
	Event core.ContainerEvent
}

// Listener receives semantic notifications in registration order. A
// slow listener backpressures the whole pipeline (spec section 4.3:
// acceptable at this system's event rate).
type Listener interface {
	Notify(Notification)
}

// Broadcaster holds per-container history and the listener list.
type Broadcaster struct {
	clock     core.Clock
	listeners []Listener
	history   map[string]*core.ContainerHistory
}

// New returns a Broadcaster using clock for window math.
func New(clock core.Clock) *Broadcaster {
	if clock == nil {
		clock = core.GetDefaultClock()
	}
	return &Broadcaster{
		clock:   clock,
		history: make(map[string]*core.ContainerHistory),
	}
}

// Register adds a listener. Registration order is delivery order.
func (b *Broadcaster) Register(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Dispatch processes one classified event: appends it to history and,
// if warranted, emits one semantic notification to every listener.
func (b *Broadcaster) Dispatch(ev core.ContainerEvent) {
	if !core.Watched(ev.Type) {
		return
	}

	h, ok := b.history[ev.ContainerName]
	if !ok {
		h = &core.ContainerHistory{Name: ev.ContainerName}
		b.history[ev.ContainerName] = h
	}
	h.Append(ev)

	now := b.clock.Now().Unix()
	h.Prune(now)

	switch ev.Type {
	case core.EventStart:
		b.emit(Notification{Kind: ContainerStarted, Event: ev})
	case core.EventHealthHealthy:
		b.emit(Notification{Kind: BecameHealthy, Event: ev})
	case core.EventHealthUnhealthy:
		b.dispatchWarranted(ev, BecameUnhealthy)
	case core.EventDie:
		b.dispatchWarranted(ev, ContainerDead)
	case core.EventStop, core.EventKill:
		// No notification on their own; they only influence the
		// warrant rule for a subsequent die/became_unhealthy.
	}
}

// dispatchWarranted applies the warrant rule: a die/became_unhealthy
// notification requires a recent die and no recent stop/kill; if a
// recent stop/kill is present it is reclassified as stopped_by_hand.
func (b *Broadcaster) dispatchWarranted(ev core.ContainerEvent, kind Kind) {
	h := b.history[ev.ContainerName]
	now := b.clock.Now().Unix()

	if !h.HasWithin(core.EventDie, dieWindowSeconds, now) {
		return
	}
	if h.HasAnyWithin([]string{core.EventStop, core.EventKill}, stopKillWindowSeconds, now) {
		b.emit(Notification{Kind: StoppedByHand, Event: ev})
		return
	}
	b.emit(Notification{Kind: kind, Event: ev})
}

func (b *Broadcaster) emit(n Notification) {
	for _, l := range b.listeners {
		l.Notify(n)
	}
}
