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

	"github.com/alitto/pond/v2"
)

// ExecutionContext decides where, and when, a unit of work runs.
//
// It's a stateless policy from the Cell's point of view: every reaction is
// handed to the ExecutionContext captured at its registration, and the Cell
// itself never runs reactions while holding its internal lock.
type ExecutionContext interface {
	// Execute schedules work to run at some point, possibly on another
	// goroutine, and returns without waiting for it to run.
	Execute(work func())

	// ExecuteSync schedules work and blocks the caller until work has run.
	ExecuteSync(work func())
}

// Inline is an ExecutionContext that runs work immediately, in the calling
// goroutine, for both variants.
//
// Reactions dispatched through it run inside the completion call (or the
// OnComplete call, for already-completed cells), so they should be short
// and must not block.
var Inline ExecutionContext = inlineCtx{}

type inlineCtx struct{}

func (inlineCtx) Execute(work func())     { work() }
func (inlineCtx) ExecuteSync(work func()) { work() }

// Background is an ExecutionContext that runs each unit of work on its own
// new goroutine. It provides no ordering between separate units of work.
var Background ExecutionContext = backgroundCtx{}

type backgroundCtx struct{}

func (backgroundCtx) Execute(work func()) { go work() }

func (backgroundCtx) ExecuteSync(work func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		work()
	}()
	<-done
}

// serialQueueCap is the submission buffer of a SerialContext.
// Execute blocks once this many units of work are pending.
const serialQueueCap = 64

// SerialContext is an ExecutionContext backed by a single worker goroutine
// draining a FIFO queue, so work runs one unit at a time, in submission
// order. It plays the role of the designated "main"/serial queue: reactions
// dispatched through the same SerialContext never run concurrently with
// each other.
type SerialContext struct {
	workChan  chan func()
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewSerial creates a SerialContext and starts its worker goroutine.
// Close must be called once the context is no longer needed.
func NewSerial() *SerialContext {
	sc := &SerialContext{workChan: make(chan func(), serialQueueCap)}
	sc.wg.Add(1)
	go sc.drain()
	return sc
}

func (sc *SerialContext) drain() {
	defer sc.wg.Done()
	for work := range sc.workChan {
		work()
	}
}

// Execute enqueues work to run on the worker goroutine, in submission order.
// It blocks only if the submission buffer is full.
//
// Work running on the worker may itself call Execute, but if it fills the
// submission buffer doing so, it blocks the worker on its own queue and
// deadlocks the context.
func (sc *SerialContext) Execute(work func()) {
	sc.workChan <- work
}

// ExecuteSync enqueues work and blocks until the worker has run it.
//
// It must not be called from inside work running on the same SerialContext;
// the worker would be waiting on itself.
func (sc *SerialContext) ExecuteSync(work func()) {
	done := make(chan struct{})
	sc.workChan <- func() {
		defer close(done)
		work()
	}
	<-done
}

// Close stops the worker goroutine after the already-submitted work drains,
// and waits for it to exit. Submitting work after Close panics.
func (sc *SerialContext) Close() {
	sc.closeOnce.Do(func() { close(sc.workChan) })
	sc.wg.Wait()
}

// PoolContext is an ExecutionContext that dispatches work onto a bounded
// worker pool. With maxWorkers > 1 it provides no ordering between separate
// units of work; with maxWorkers = 1 it behaves like a serial queue with an
// unbounded submission buffer.
type PoolContext struct {
	pool pond.Pool
}

// NewPool creates a PoolContext running at most maxWorkers units of work
// concurrently. Stop must be called once the context is no longer needed.
func NewPool(maxWorkers int) *PoolContext {
	return &PoolContext{pool: pond.NewPool(maxWorkers)}
}

// Execute submits work to the pool and returns without waiting for it.
func (pc *PoolContext) Execute(work func()) {
	pc.pool.Submit(work)
}

// ExecuteSync submits work to the pool and blocks until it has run.
func (pc *PoolContext) ExecuteSync(work func()) {
	pc.pool.Submit(work).Wait()
}

// Stop stops the pool, after waiting for all submitted work to finish.
func (pc *PoolContext) Stop() {
	pc.pool.StopAndWait()
}

// Defaults names the two contexts call sites conventionally pick between:
// Transform for value transformation (Map, FlatMap, Filter...), and Observe
// for side-effecting observation (OnComplete, AndThen).
//
// It replaces the process-wide ambient defaults found in similar designs;
// construct one where the composition starts and pass its fields explicitly,
// so tests can substitute Inline and stay deterministic.
type Defaults struct {
	Transform ExecutionContext
	Observe   ExecutionContext
}

// NewDefaults builds the conventional pair: a bounded pool of maxWorkers for
// transforms, and a single serial queue for observation. The returned stop
// function releases both, after pending work drains.
func NewDefaults(maxWorkers int) (Defaults, func()) {
	pool := NewPool(maxWorkers)
	serial := NewSerial()
	stop := func() {
		serial.Close()
		pool.Stop()
	}
	return Defaults{Transform: pool, Observe: serial}, stop
}
