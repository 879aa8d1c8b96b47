package notify

import (
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Event identifies the property a notification is about.
type Event struct {
	Property string
}

type subscription struct {
	id string
	fn func(Event)
}

// newSubscriptionID tags a subscription so panic reports can point at the
// offending callback.
func newSubscriptionID() string {
	return uuid.New().String()
}

// Source is a property-keyed change-notification channel owned by a single
// subscribable object. A Source starts silent: until the first subscriber
// attaches, publishes are dropped outright, so assignments made while the
// owning object is still being constructed are never announced. The
// transition is one-way; removing every subscriber later does not bring the
// silence back.
//
// All mutation and dispatch are meant to happen on the goroutine that owns
// the object. Subscription bookkeeping is guarded so a binding layer may
// attach and detach safely; callbacks always run outside the lock.
type Source struct {
	mu      sync.Mutex
	subs    map[string][]subscription
	exposed bool
	depth   int
	pending []string
	seen    map[string]struct{}
	log     *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used to report subscriber panics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Source) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSource creates a silent Source.
func NewSource(opts ...Option) *Source {
	s := &Source{
		subs: make(map[string][]subscription),
		seen: make(map[string]struct{}),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn for the given property and returns a func that
// removes the subscription. Subscribers of one property are invoked
// synchronously in subscription order. The first subscription, for any
// property, exposes the Source: from then on publishes are delivered.
// A nil callback is a programming error and panics.
func (s *Source) Subscribe(property string, fn func(Event)) func() {
	if fn == nil {
		panic("notify: nil subscriber callback")
	}

	sub := subscription{id: newSubscriptionID(), fn: fn}

	s.mu.Lock()
	s.exposed = true
	s.subs[property] = append(s.subs[property], sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.subs[property]
		for i := range list {
			if list[i].id == sub.id {
				s.subs[property] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// Exposed reports whether a subscriber has ever attached. Owning objects use
// it to seal configuration that must not change after binding.
func (s *Source) Exposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exposed
}

// Publish announces a change of the given property. The publisher is
// responsible for equality suppression: Publish must only be called for a
// real change. Inside a Batch the announcement is deferred and coalesced;
// otherwise subscribers run before Publish returns.
func (s *Source) Publish(property string) {
	s.mu.Lock()
	if !s.exposed {
		s.mu.Unlock()
		return
	}
	if s.depth > 0 {
		if _, queued := s.seen[property]; !queued {
			s.seen[property] = struct{}{}
			s.pending = append(s.pending, property)
		}
		s.mu.Unlock()
		return
	}
	subs := slices.Clone(s.subs[property])
	s.mu.Unlock()

	s.dispatch(property, subs)
}

// Batch runs fn as one synchronous unit of work: publishes inside it collapse
// to at most one notification per property, delivered when the outermost
// Batch exits. Properties flush in first-publish order. Batches nest; only
// the outermost exit flushes. Each synchronous segment of an asynchronous
// operation must run under its own Batch so that segments never share a
// coalescing window.
func (s *Source) Batch(fn func()) {
	s.mu.Lock()
	s.depth++
	s.mu.Unlock()

	defer s.flush()

	fn()
}

func (s *Source) flush() {
	type delivery struct {
		property string
		subs     []subscription
	}

	s.mu.Lock()
	s.depth--
	var deliveries []delivery
	if s.depth == 0 && len(s.pending) > 0 {
		deliveries = make([]delivery, 0, len(s.pending))
		for _, property := range s.pending {
			deliveries = append(deliveries, delivery{
				property: property,
				subs:     slices.Clone(s.subs[property]),
			})
		}
		s.pending = nil
		clear(s.seen)
	}
	s.mu.Unlock()

	for _, d := range deliveries {
		s.dispatch(d.property, d.subs)
	}
}

func (s *Source) dispatch(property string, subs []subscription) {
	e := Event{Property: property}
	for _, sub := range subs {
		s.invoke(sub, e)
	}
}

// invoke isolates a single subscriber: a panicking callback is recovered and
// reported, and the remaining subscribers for the same event still run.
func (s *Source) invoke(sub subscription, e Event) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("notify: subscriber panicked",
				slog.String("property", e.Property),
				slog.String("subscription", sub.id),
				slog.Any("panic", r),
			)
		}
	}()
	sub.fn(e)
}
