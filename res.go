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

import "github.com/asmsh/eventual/result"

// This file binds the combinator algebra to the two-case result.Result
// element type. Cells of result.Result values behave like any other cells;
// the algebra applies unchanged, and short-circuiting on failures, when
// wanted, is an ordinary FlatMap that branches on the case.

// Succeed returns a Cell that's already completed with a success Result
// holding val.
func Succeed[T, E any](val T) *Cell[result.Result[T, E]] {
	return Completed(result.Success[T, E](val))
}

// Failed returns a Cell that's already completed with a failure Result
// holding failure.
func Failed[T, E any](failure E) *Cell[result.Result[T, E]] {
	return Completed(result.Failure[T, E](failure))
}

// Adapted converts any externally-supplied two-case value, sharing the same
// success/failure element types, into a Cell already completed with the
// canonical Result shape.
//
// The source must invoke exactly one analysis branch, exactly once;
// anything else panics, as documented on result.From.
func Adapted[T, E any](src result.Analyzable[T, E]) *Cell[result.Result[T, E]] {
	return Completed(result.From(src))
}
