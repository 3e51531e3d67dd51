// Copyright 2025 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eventual

import (
	"sync"
	"time"
)

// callback holds a registered reaction, together with the ExecutionContext
// that was captured at registration time.
type callback[T any] struct {
	ctx      ExecutionContext
	reaction func(T)
}

// Cell is a single-assignment value container.
//
// A Cell starts empty and is completed, at most once, by the Promise that
// owns it, or by one of the combinators that constructed it. Once completed,
// its value never changes, and it's the value every reaction sees.
//
// Reactions are registered through OnComplete, each with its own
// ExecutionContext, and are dispatched in registration order, whether they
// were registered before or after the completion event.
//
// The zero value is not usable; Cell values are created through NewPromise,
// Completed, or the combinators.
type Cell[T any] struct {
	// mu guards the (val, ok, callbacks) fields below.
	// reaction execution never happens while holding it.
	mu sync.Mutex

	// val holds the completion value.
	// written once, before the done channel is closed.
	// don't read it unless done is known to be closed, or mu is held.
	val T
	ok  bool

	// callbacks holds the reactions registered before completion, in
	// registration order. it's cleared once they are dispatched, so no
	// reaction is retained after completion.
	callbacks []callback[T]

	// set while the completion call is draining callbacks.
	// reactions registered during the drain are appended to callbacks,
	// behind the earlier-registered ones, instead of being dispatched
	// directly, preserving registration order even for registrars that
	// observed the done channel before the drain finished.
	draining bool

	// closed when the cell is completed.
	// this channel has one closer, which is the completing producer, but
	// can have multiple readers (Forced calls and Done channel holders).
	done chan struct{}
}

var closedChan = make(chan struct{})

func init() {
	close(closedChan)
}

// newCell creates a new, empty Cell, which will be completed later.
func newCell[T any]() *Cell[T] {
	return &Cell[T]{done: make(chan struct{})}
}

// Completed returns a Cell that's already completed with val.
//
// Reactions registered on it are dispatched immediately, through the
// ExecutionContext they are registered with.
func Completed[T any](val T) *Cell[T] {
	// no completion event will ever run for this cell, so share the
	// process-wide closed channel instead of allocating one.
	return &Cell[T]{val: val, ok: true, done: closedChan}
}

// OnComplete registers reaction to run with the cell's value, dispatched
// through ctx, once the cell is completed.
//
// If the cell is already completed, the reaction is dispatched immediately.
// Otherwise it's appended to the pending reactions, which are dispatched in
// registration order by the completion event.
//
// It returns the same cell, to allow chaining registrations.
//
// It will panic if a nil context or a nil reaction is passed.
func (c *Cell[T]) OnComplete(ctx ExecutionContext, reaction func(T)) *Cell[T] {
	if ctx == nil {
		panic(nilContextPanicMsg)
	}
	if reaction == nil {
		panic(nilReactionPanicMsg)
	}

	c.mu.Lock()
	if !c.ok || c.draining {
		// not completed yet, or the completion call is still dispatching
		// earlier-registered reactions; join the pending list behind them.
		c.callbacks = append(c.callbacks, callback[T]{ctx: ctx, reaction: reaction})
		c.mu.Unlock()
		return c
	}
	val := c.val
	c.mu.Unlock()

	// the cell is already completed, and fully drained.
	// dispatch immediately, outside the critical section.
	ctx.Execute(func() { reaction(val) })
	return c
}

// complete sets the cell's value and dispatches every pending reaction, in
// registration order, each through the ExecutionContext captured when it
// was registered.
//
// It must be called at most once per cell. A second call is a caller bug,
// and it panics, as continuing would hand a different value to downstream
// reactions that already fired with the first one.
func (c *Cell[T]) complete(val T) {
	c.mu.Lock()
	if c.ok {
		c.mu.Unlock()
		panic(completedTwicePanicMsg)
	}
	c.val = val
	c.ok = true
	c.draining = true
	// unblock all Forced calls and Done readers.
	// the value is written above, before this close, so any goroutine that
	// observed the close can read it without holding mu.
	close(c.done)

	// dispatch in registration order, releasing mu around each dispatch,
	// so a slow reaction can't stall registration, nor the completion
	// path of other cells.
	// a registration that observed the done channel mid-drain lands in
	// callbacks, behind the earlier-registered reactions, and is picked
	// up here; dispatching it directly would let it overtake them.
	for len(c.callbacks) > 0 {
		cb := c.callbacks[0]
		c.callbacks = c.callbacks[1:]
		c.mu.Unlock()
		cb.ctx.Execute(func() { cb.reaction(val) })
		c.mu.Lock()
	}
	c.callbacks = nil
	c.draining = false
	c.mu.Unlock()
}

// completeWith completes the cell with the eventual value of src, once src
// completes. It's how FlatMap forwards a nested cell's value, one level
// flattened, without holding a back-reference after completion.
func (c *Cell[T]) completeWith(ctx ExecutionContext, src *Cell[T]) {
	src.OnComplete(ctx, c.complete)
}

// Forced blocks the calling goroutine until the cell is completed, or until
// timeout elapses, whichever happens first, and returns the cell's value,
// or None on timeout expiry.
//
// A negative timeout blocks indefinitely, like ForcedWait.
//
// If the cell is already completed, it returns immediately. None is never
// returned for any reason other than timeout expiry.
//
// It's the only blocking call in the package, meant for bridging into
// synchronous call sites. Inside reactions, prefer the combinators.
func (c *Cell[T]) Forced(timeout time.Duration) Option[T] {
	select {
	case <-c.done:
		return Some(c.val)
	default:
	}

	if timeout < 0 {
		<-c.done
		return Some(c.val)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-c.done:
		return Some(c.val)
	case <-timer.C:
		return None[T]()
	}
}

// ForcedWait blocks the calling goroutine until the cell is completed, and
// returns its value. A cell that's never completed blocks it forever.
func (c *Cell[T]) ForcedWait() T {
	<-c.done
	return c.val
}

// Done returns a channel that's closed once the cell is completed, for
// integrating with select statements. After it's closed, Value is
// guaranteed to return the cell's value.
func (c *Cell[T]) Done() <-chan struct{} {
	return c.done
}

// Value returns the cell's value without blocking, or None if the cell
// hasn't been completed yet.
func (c *Cell[T]) Value() Option[T] {
	select {
	case <-c.done:
		return Some(c.val)
	default:
		return None[T]()
	}
}
