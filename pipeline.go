package eventual

// AndThen registers reaction as a side-effecting observer of the cell, and
// returns a new Cell that completes with the same value once the reaction
// has run.
//
// It's meant for sequencing observation without consuming the value: the
// returned cell carries the original value onward, so further combinators
// (or more AndThen calls) can be chained after the observation.
//
// It will panic if a nil context or a nil reaction is passed.
func (c *Cell[T]) AndThen(ctx ExecutionContext, reaction func(T)) *Cell[T] {
	if reaction == nil {
		panic(nilReactionPanicMsg)
	}

	nextCell := newCell[T]()
	c.OnComplete(ctx, func(val T) {
		reaction(val)
		nextCell.complete(val)
	})
	return nextCell
}

// Map returns a Cell that completes with f(val), once c completes with val.
// f is dispatched through ctx.
//
// It will panic if a nil context or a nil function is passed.
func Map[T, U any](ctx ExecutionContext, c *Cell[T], f func(T) U) *Cell[U] {
	if f == nil {
		panic(nilReactionPanicMsg)
	}

	nextCell := newCell[U]()
	c.OnComplete(ctx, func(val T) {
		nextCell.complete(f(val))
	})
	return nextCell
}

// FlatMap returns a Cell that completes with whatever the inner cell f(val)
// eventually completes with, once c completes with val. The one level of
// nesting introduced by f is removed automatically.
//
// The returned cell holds no reference back to c, nor to the inner cell,
// once it's completed.
//
// It will panic if a nil context or a nil function is passed.
func FlatMap[T, U any](ctx ExecutionContext, c *Cell[T], f func(T) *Cell[U]) *Cell[U] {
	if f == nil {
		panic(nilReactionPanicMsg)
	}

	nextCell := newCell[U]()
	c.OnComplete(ctx, func(val T) {
		// complete with the inner cell, not a bare value, forwarding its
		// eventual completion.
		nextCell.completeWith(ctx, f(val))
	})
	return nextCell
}

// Filter returns a Cell that completes with Some(val) if p(val) holds, and
// with None otherwise. It never fails and never stalls: a miss is an
// ordinary value, not an error, and the returned cell always completes
// once c does.
//
// It will panic if a nil context or a nil predicate is passed.
func Filter[T any](ctx ExecutionContext, c *Cell[T], p func(T) bool) *Cell[Option[T]] {
	if p == nil {
		panic(nilReactionPanicMsg)
	}

	return Map(ctx, c, func(val T) Option[T] {
		if p(val) {
			return Some(val)
		}
		return None[T]()
	})
}

// ZipMap returns a Cell that completes with the pair of c's value and f
// applied to it. It's a convenience for Zip(ctx, c, Map(ctx, c, f)).
func ZipMap[T, U any](ctx ExecutionContext, c *Cell[T], f func(T) U) *Cell[Pair[T, U]] {
	return Zip(ctx, c, Map(ctx, c, f))
}
