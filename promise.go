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

// Promise is the producer-side handle of a Cell.
//
// It's single-use: exactly one Complete (or CompleteWith-forwarded
// completion) may ever succeed. Multiple goroutines may race to complete
// the same Promise, but only one can win; the rest panic, loudly, since a
// silent last-write-wins would hand different values to reactions that
// already fired.
//
// Holders of the paired Cell can only register reactions and read; they
// can't complete it.
type Promise[T any] struct {
	cell *Cell[T]
}

// NewPromise creates a new, empty Cell, and returns the Promise that owns
// its completion, together with the Cell itself.
//
// The Cell may be shared freely with any number of observers; the Promise
// should stay with the single producer.
func NewPromise[T any]() (*Promise[T], *Cell[T]) {
	c := newCell[T]()
	return &Promise[T]{cell: c}, c
}

// Complete completes the paired Cell with val, dispatching all pending
// reactions in registration order.
//
// It will panic if the Cell is already completed.
func (p *Promise[T]) Complete(val T) {
	p.cell.complete(val)
}

// CompleteWith arranges for the paired Cell to complete with the eventual
// value of src, once src completes. The forwarding reaction is dispatched
// through ctx.
//
// The usual single-completion rule still holds: if the Cell ends up
// completed twice, through any mix of Complete and CompleteWith, the
// second completion panics.
func (p *Promise[T]) CompleteWith(ctx ExecutionContext, src *Cell[T]) {
	if src == nil {
		panic(nilCellPanicMsg)
	}
	p.cell.completeWith(ctx, src)
}

// Cell returns the paired Cell.
func (p *Promise[T]) Cell() *Cell[T] {
	return p.cell
}
