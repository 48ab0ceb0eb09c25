package pipeline

import "context"

// Iterator is pull-based sequential access to a stream of values.
// Next returns (zero, false, nil) once the stream is exhausted.
type Iterator[T any] interface {
	Next(ctx context.Context) (T, bool, error)
	Close() error
}

// Pipeline is a lazy value stream. Building one performs no work; values
// are only produced when a terminal such as Collect pulls them, so a
// failed element stops the stream without computing the rest.
type Pipeline[T any] struct {
	open func(ctx context.Context) Iterator[T]
}

// FromSlice streams the elements of items in order.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		open: func(context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// Filter keeps the values that satisfy keep.
func Filter[T any](p *Pipeline[T], keep func(T) bool) *Pipeline[T] {
	return &Pipeline[T]{
		open: func(ctx context.Context) Iterator[T] {
			return &filterIter[T]{source: p.open(ctx), keep: keep}
		},
	}
}

// Map transforms each value with fn. An error from fn ends the stream.
func Map[I, O any](p *Pipeline[I], fn func(context.Context, I) (O, error)) *Pipeline[O] {
	return &Pipeline[O]{
		open: func(ctx context.Context) Iterator[O] {
			return &mapIter[I, O]{source: p.open(ctx), fn: fn}
		},
	}
}

// Collect pulls the whole stream into a slice. On error it returns the
// values produced so far alongside the error.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	iter := p.open(ctx)
	defer iter.Close()

	var out []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, val)
	}
}

type sliceIter[T any] struct {
	items []T
	pos   int
}

func (it *sliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	if it.pos >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.pos]
	it.pos++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type filterIter[T any] struct {
	source Iterator[T]
	keep   func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.keep(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }
