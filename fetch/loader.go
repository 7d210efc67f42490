// Package fetch holds Loader, the building block of every view in the dashboard.
//
// A Loader owns one asynchronous value. It fetches on first use, can be refreshed,
// and hands out snapshots of {Data, IsFetching, Err}. Loaders built with After and
// After2 only run once their dependencies have settled and run again whenever a
// dependency completes a new cycle.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
)

var (
	ErrDependency = errors.New("dependency failed")
	ErrClosed     = errors.New("loader closed")
)

// State is a snapshot of a Loader. Data is only complete when IsFetching is false.
type State[T any] struct {
	Data       T
	IsFetching bool
	// Error of the last completed cycle. Data still holds the last successful value.
	Err       error
	FetchedAt time.Time
	// Number of completed cycles.
	Version uint64
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

type Option func(*options)

type options struct {
	name  string
	clock clock.Clock
}

func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

type Loader[T any] struct {
	name   string
	fetch  FetchFunc[T]
	clock  clock.Clock
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	state       State[T]
	started     bool
	inflight    bool
	done        chan struct{}
	subscribers map[int]func()
	nextSub     int
	// Set on dependent loaders. Called with mu held at the end of a cycle, returns
	// true when a dependency completed a cycle the result was not computed from.
	stale         func() bool
	unsubscribers []func()
}

// New creates a loader that is bound to ctx. Nothing is fetched until Start,
// Refresh or Wait is called. Cancelling ctx has the same effect as Close.
func New[T any](ctx context.Context, fetch FetchFunc[T], opts ...Option) *Loader[T] {
	o := options{name: "loader", clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)
	return &Loader[T]{
		name:        o.name,
		fetch:       fetch,
		clock:       o.clock,
		ctx:         ctx,
		cancel:      cancel,
		state:       State[T]{IsFetching: true},
		done:        make(chan struct{}),
		subscribers: make(map[int]func()),
	}
}

func (l *Loader[T]) Name() string {
	return l.name
}

// Start runs the first fetch cycle. Calling it again has no effect.
func (l *Loader[T]) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.begin()
}

// Refresh starts a new fetch cycle. A call while a cycle is in flight is
// coalesced into that cycle.
func (l *Loader[T]) Refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.begin()
}

// dependencyChanged is called after a dependency completed a cycle. A loader that
// is fetching checks its dependencies when the cycle ends, an idle one only runs
// again if it has not seen that cycle yet.
func (l *Loader[T]) dependencyChanged() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started || l.inflight {
		return
	}
	if l.stale != nil && !l.stale() {
		return
	}
	l.begin()
}

// begin must be called with mu held.
func (l *Loader[T]) begin() {
	l.started = true
	if l.inflight || l.ctx.Err() != nil {
		return
	}
	l.inflight = true
	l.state.IsFetching = true
	go l.run()
}

func (l *Loader[T]) run() {
	for {
		data, err := l.call()

		l.mu.Lock()
		if l.ctx.Err() != nil {
			// Closed while fetching, the result is dropped.
			l.inflight = false
			l.state.IsFetching = false
			l.settle()
			l.mu.Unlock()
			return
		}
		if l.stale != nil && l.stale() {
			l.mu.Unlock()
			zerolog.Ctx(l.ctx).Debug().Str("loader", l.name).Msg("dependency changed while fetching, fetching again")
			continue
		}

		l.inflight = false
		l.state.IsFetching = false
		l.state.Version++
		l.state.FetchedAt = l.clock.Now()
		if err != nil {
			l.state.Err = err
		} else {
			l.state.Data = data
			l.state.Err = nil
		}
		l.settle()
		subs := make([]func(), 0, len(l.subscribers))
		for _, s := range l.subscribers {
			subs = append(subs, s)
		}
		l.mu.Unlock()

		l.log(err)
		for _, s := range subs {
			s()
		}
		return
	}
}

// call runs the fetch function and turns a panic into an error so that the cycle
// always completes.
func (l *Loader[T]) call() (data T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in loader %s: %v", l.name, r)
		}
	}()
	return l.fetch(l.ctx)
}

// settle wakes everyone waiting on the current cycle. Must be called with mu held.
func (l *Loader[T]) settle() {
	close(l.done)
	l.done = make(chan struct{})
}

func (l *Loader[T]) log(err error) {
	logger := zerolog.Ctx(l.ctx)
	switch {
	case err == nil:
		logger.Debug().Str("loader", l.name).Msg("fetched")
	case errors.Is(err, ErrDependency):
		logger.Warn().Err(err).Str("loader", l.name).Msg("fetch skipped")
	default:
		logger.Error().Err(err).Str("loader", l.name).Msg("fetch failed")
	}
}

// State returns a snapshot of the loader.
func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Wait starts the loader if needed and blocks until no cycle is in flight. The
// returned error is only about waiting: ctx.Err() or ErrClosed. A failed fetch is
// reported in State.Err.
func (l *Loader[T]) Wait(ctx context.Context) (State[T], error) {
	l.Start()
	for {
		l.mu.Lock()
		s, done := l.state, l.done
		inflight := l.inflight
		l.mu.Unlock()

		if l.ctx.Err() != nil {
			return s, ErrClosed
		}
		if !inflight {
			return s, nil
		}

		select {
		case <-done:
		case <-ctx.Done():
			return s, ctx.Err()
		case <-l.ctx.Done():
			return s, ErrClosed
		}
	}
}

// Settle is Wait without the snapshot.
func (l *Loader[T]) Settle(ctx context.Context) error {
	_, err := l.Wait(ctx)
	return err
}

// Close abandons any fetch in flight and detaches the loader from its dependencies.
// Waiters return ErrClosed.
func (l *Loader[T]) Close() {
	l.cancel()

	l.mu.Lock()
	unsubs := l.unsubscribers
	l.unsubscribers = nil
	l.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

// Subscribe registers fn to be called after every completed cycle. The returned
// function removes it.
func (l *Loader[T]) Subscribe(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextSub
	l.nextSub++
	l.subscribers[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subscribers, id)
	}
}

func (l *Loader[T]) version() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Version
}

// Settler is implemented by every Loader regardless of its data type.
type Settler interface {
	Settle(ctx context.Context) error
}

// Settled waits for all loaders and joins the waiting errors.
func Settled(ctx context.Context, loaders ...Settler) error {
	errs := make([]error, 0)
	for _, l := range loaders {
		if err := l.Settle(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
