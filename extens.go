package eventual

// Pair holds the two values produced by Zip and ZipMap.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Zip returns a Cell that completes with the pair of both values, once both
// a and b have completed. Its completion time is the later of the two.
//
// It's built as a nested FlatMap, so neither side is waited on with a
// blocked goroutine.
func Zip[T, U any](ctx ExecutionContext, a *Cell[T], b *Cell[U]) *Cell[Pair[T, U]] {
	return FlatMap(ctx, a, func(va T) *Cell[Pair[T, U]] {
		return Map(ctx, b, func(vb U) Pair[T, U] {
			return Pair[T, U]{First: va, Second: vb}
		})
	})
}

// Flatten removes one level of cell nesting: the returned Cell completes
// with the value that c's inner cell eventually completes with.
func Flatten[T any](ctx ExecutionContext, c *Cell[*Cell[T]]) *Cell[T] {
	return FlatMap(ctx, c, func(inner *Cell[T]) *Cell[T] {
		return inner
	})
}

// Reduce left-folds the eventual values of cells into an accumulator,
// starting from initial. The fold follows slice order, not completion
// order, and the returned Cell completes only after every element has.
//
// An empty slice completes the fold immediately with initial.
//
// It's driven by chaining FlatMap calls off an already-completed
// accumulator cell, so each element joins the fold as it completes.
//
// It will panic if a nil context or a nil combine function is passed.
func Reduce[T, U any](ctx ExecutionContext, cells []*Cell[T], initial U, combine func(U, T) U) *Cell[U] {
	if combine == nil {
		panic(nilReactionPanicMsg)
	}

	accCell := Completed(initial)
	for _, c := range cells {
		accCell = FlatMap(ctx, accCell, func(acc U) *Cell[U] {
			return Map(ctx, c, func(val T) U {
				return combine(acc, val)
			})
		})
	}
	return accCell
}

// Traverse maps f over in, producing one cell per element, then gathers the
// cells' eventual values back into a slice preserving input order.
//
// All cells are created up front, so any concurrency lives in f's cells,
// not in the gathering, which is a Reduce in input order.
//
// An empty input completes immediately with an empty slice.
//
// It will panic if a nil context or a nil function is passed.
func Traverse[A, B any](ctx ExecutionContext, in []A, f func(A) *Cell[B]) *Cell[[]B] {
	if f == nil {
		panic(nilReactionPanicMsg)
	}

	cells := make([]*Cell[B], len(in))
	for i, a := range in {
		cells[i] = f(a)
	}

	return Reduce(ctx, cells, make([]B, 0, len(in)), func(acc []B, val B) []B {
		return append(acc, val)
	})
}

// Sequence gathers the eventual values of cells into a slice preserving
// slice order. It's Traverse with the identity function.
//
// An empty slice completes immediately with an empty slice.
func Sequence[T any](ctx ExecutionContext, cells []*Cell[T]) *Cell[[]T] {
	return Traverse(ctx, cells, func(c *Cell[T]) *Cell[T] {
		return c
	})
}
