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

import "fmt"

// Option is a container for a value that may be absent.
//
// It's how the package represents expected empty outcomes as plain data:
// a Filter whose predicate didn't hold, or a Forced call that timed out.
// It's never used to smuggle failures; see the result package for those.
type Option[T any] struct {
	val T
	ok  bool
}

// Some returns an Option holding val.
func Some[T any](val T) Option[T] {
	return Option[T]{val: val, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the held value and true, or the zero value and false if the
// Option is empty.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// Val returns the held value, or the zero value if the Option is empty.
func (o Option[T]) Val() T {
	return o.val
}

func (o Option[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("some: %v", o.val)
}
