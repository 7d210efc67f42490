package fetch

import (
	"context"
	"fmt"
)

type dependency interface {
	Name() string
	version() uint64
	Subscribe(fn func()) func()
}

// After creates a loader whose fetch runs once dep has settled and receives dep's
// data. A failed dependency fails the loader with ErrDependency. Every cycle dep
// completes afterwards runs the loader again.
func After[D, T any](ctx context.Context, dep *Loader[D], fetch func(ctx context.Context, d D) (T, error), opts ...Option) *Loader[T] {
	var consumed uint64
	l := New(ctx, func(ctx context.Context) (T, error) {
		var zero T
		d, err := await(ctx, dep)
		consumed = d.Version
		if err != nil {
			return zero, err
		}
		return fetch(ctx, d.Data)
	}, opts...)

	l.watch(func() bool { return dep.version() != consumed }, dep)
	return l
}

// After2 is After with two dependencies. Both have to settle before fetch runs.
func After2[D1, D2, T any](ctx context.Context, dep1 *Loader[D1], dep2 *Loader[D2], fetch func(ctx context.Context, d1 D1, d2 D2) (T, error), opts ...Option) *Loader[T] {
	var consumed1, consumed2 uint64
	l := New(ctx, func(ctx context.Context) (T, error) {
		var zero T
		// Start both before waiting on either.
		dep1.Start()
		dep2.Start()

		d1, err1 := await(ctx, dep1)
		d2, err2 := await(ctx, dep2)
		consumed1, consumed2 = d1.Version, d2.Version
		if err1 != nil {
			return zero, err1
		}
		if err2 != nil {
			return zero, err2
		}
		return fetch(ctx, d1.Data, d2.Data)
	}, opts...)

	l.watch(func() bool {
		return dep1.version() != consumed1 || dep2.version() != consumed2
	}, dep1, dep2)
	return l
}

func (l *Loader[T]) watch(stale func() bool, deps ...dependency) {
	unsubs := make([]func(), 0, len(deps))
	for _, d := range deps {
		unsubs = append(unsubs, d.Subscribe(l.dependencyChanged))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.stale = stale
	l.unsubscribers = unsubs
}

func await[D any](ctx context.Context, dep *Loader[D]) (State[D], error) {
	s, err := dep.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return s, ctx.Err()
		}
		return s, fmt.Errorf("%w: %s: %w", ErrDependency, dep.Name(), err)
	}
	if s.Err != nil {
		return s, fmt.Errorf("%w: %s: %w", ErrDependency, dep.Name(), s.Err)
	}
	return s, nil
}
