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

// Package result provides a two-case success/failure value container.
//
// A Result holds exactly one of a success value of type T or a failure
// value of type E, is immutable once constructed, and is the element type
// used for error-aware cells in the parent package.
package result

import "fmt"

// panic messages
const (
	noBranchPanicMsg    = "result: the source invoked no analysis branch"
	multiBranchPanicMsg = "result: the source invoked more than one analysis branch"
)

// Result is a container for exactly one of two cases, a success value of
// type T, or a failure value of type E.
//
// The zero value is a failure holding E's zero value.
type Result[T, E any] struct {
	val     T
	failure E
	success bool
}

// Success returns a Result holding the success value val.
func Success[T, E any](val T) Result[T, E] {
	return Result[T, E]{val: val, success: true}
}

// Failure returns a Result holding the failure value failure.
func Failure[T, E any](failure E) Result[T, E] {
	return Result[T, E]{failure: failure}
}

// IsSuccess reports whether the Result holds the success case.
func (r Result[T, E]) IsSuccess() bool {
	return r.success
}

// Val returns the success value and true, or T's zero value and false if
// the Result holds the failure case.
func (r Result[T, E]) Val() (T, bool) {
	return r.val, r.success
}

// Err returns the failure value and true, or E's zero value and false if
// the Result holds the success case.
func (r Result[T, E]) Err() (E, bool) {
	return r.failure, !r.success
}

// Analyze invokes exactly one of the two branches, exactly once, with the
// held case's value.
//
// It's the Result's own Analyzable implementation, so a Result can be fed
// back through From unchanged.
func (r Result[T, E]) Analyze(onSuccess func(T), onFailure func(E)) {
	if r.success {
		onSuccess(r.val)
		return
	}
	onFailure(r.failure)
}

func (r Result[T, E]) String() string {
	if r.success {
		return fmt.Sprintf("success: %v", r.val)
	}
	return fmt.Sprintf("failure: %v", r.failure)
}

// Analyzable is any two-case value that can present itself as either a
// success or a failure by invoking exactly one of two supplied callbacks.
// Sources sharing a Result's success/failure element types can be adapted
// into the canonical Result shape through From.
type Analyzable[T, E any] interface {
	Analyze(onSuccess func(T), onFailure func(E))
}

// From adapts src into the canonical Result shape.
//
// The source's Analyze must invoke exactly one branch, exactly once; a
// source that invokes neither, or more than one in total, is a caller bug,
// and From panics, as either would produce an ill-formed value for every
// downstream reaction.
func From[T, E any](src Analyzable[T, E]) Result[T, E] {
	var res Result[T, E]
	calls := 0

	src.Analyze(
		func(val T) {
			calls++
			res = Success[T, E](val)
		},
		func(failure E) {
			calls++
			res = Failure[T, E](failure)
		},
	)

	switch {
	case calls == 0:
		panic(noBranchPanicMsg)
	case calls > 1:
		panic(multiBranchPanicMsg)
	}
	return res
}
