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
	"strconv"
	"testing"
	"time"
)

func TestAndThen(t *testing.T) {
	t.Run("forwards the same value", func(t *testing.T) {
		observed := 0
		next := Completed(42).AndThen(Inline, func(val int) { observed = val })

		if observed != 42 {
			t.Fatalf("reaction got %v, want: 42", observed)
		}
		if got := next.ForcedWait(); got != 42 {
			t.Fatalf("ForcedWait() = %v, want: 42", got)
		}
	})

	t.Run("observation runs before the next cell completes", func(t *testing.T) {
		var order []string
		next := Completed(1).AndThen(Inline, func(int) {
			order = append(order, "observe")
		})
		next.OnComplete(Inline, func(int) {
			order = append(order, "next")
		})

		if len(order) != 2 || order[0] != "observe" || order[1] != "next" {
			t.Fatalf("got order %v, want: [observe next]", order)
		}
	})

	t.Run("chains over a pending cell", func(t *testing.T) {
		p, c := NewPromise[int]()

		var observations []int
		next := c.AndThen(Inline, func(val int) {
			observations = append(observations, val)
		}).AndThen(Inline, func(val int) {
			observations = append(observations, val*10)
		})

		p.Complete(3)

		if got := next.ForcedWait(); got != 3 {
			t.Fatalf("ForcedWait() = %v, want: 3", got)
		}
		if len(observations) != 2 || observations[0] != 3 || observations[1] != 30 {
			t.Fatalf("got observations %v, want: [3 30]", observations)
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("transforms the value", func(t *testing.T) {
		got := Map(Inline, Completed(42), strconv.Itoa).ForcedWait()
		if got != "42" {
			t.Fatalf(`ForcedWait() = %q, want: "42"`, got)
		}
	})

	t.Run("identity law", func(t *testing.T) {
		c := Completed(42)
		mapped := Map(Inline, c, func(val int) int { return val })

		if got, want := mapped.ForcedWait(), c.ForcedWait(); got != want {
			t.Fatalf("map(id) produced %v, want: %v", got, want)
		}
	})

	t.Run("composition law", func(t *testing.T) {
		f := func(val int) int { return val + 1 }
		g := strconv.Itoa

		composed := Map(Inline, Completed(41), func(val int) string { return g(f(val)) })
		chained := Map(Inline, Map(Inline, Completed(41), f), g)

		if got, want := chained.ForcedWait(), composed.ForcedWait(); got != want {
			t.Fatalf("map(f).map(g) produced %q, composed map produced %q", got, want)
		}
	})

	t.Run("pending source", func(t *testing.T) {
		p, c := NewPromise[int]()
		mapped := Map(Inline, c, func(val int) int { return val * 2 })

		if got := mapped.Value(); got.IsSome() {
			t.Fatalf("Value() = %v before the source completed, want: none", got)
		}

		p.Complete(21)
		if got := mapped.ForcedWait(); got != 42 {
			t.Fatalf("ForcedWait() = %v, want: 42", got)
		}
	})
}

func TestFlatMap(t *testing.T) {
	t.Run("flattens one level", func(t *testing.T) {
		got := FlatMap(Inline, Completed(6), func(val int) *Cell[int] {
			return Completed(val * 7)
		}).ForcedWait()

		if got != 42 {
			t.Fatalf("ForcedWait() = %v, want: 42", got)
		}
	})

	t.Run("waits for the inner cell", func(t *testing.T) {
		innerProm, inner := NewPromise[int]()
		outer := FlatMap(Inline, Completed(0), func(int) *Cell[int] { return inner })

		if got := outer.Value(); got.IsSome() {
			t.Fatalf("Value() = %v before the inner cell completed, want: none", got)
		}

		innerProm.Complete(8)
		if got := outer.ForcedWait(); got != 8 {
			t.Fatalf("ForcedWait() = %v, want: 8", got)
		}
	})

	t.Run("associativity law", func(t *testing.T) {
		f := func(val int) *Cell[int] { return Completed(val + 1) }
		g := func(val int) *Cell[int] { return Completed(val * 2) }

		left := FlatMap(Inline, FlatMap(Inline, Completed(20), f), g)
		right := FlatMap(Inline, Completed(20), func(val int) *Cell[int] {
			return FlatMap(Inline, f(val), g)
		})

		if lv, rv := left.ForcedWait(), right.ForcedWait(); lv != rv {
			t.Fatalf("flatMap(f).flatMap(g) = %v, flatMap(x => f(x).flatMap(g)) = %v", lv, rv)
		}
	})
}

func TestFilter(t *testing.T) {
	isEven := func(val int) bool { return val%2 == 0 }
	isOdd := func(val int) bool { return val%2 != 0 }

	t.Run("predicate holds", func(t *testing.T) {
		got := Filter(Inline, Completed(42), isEven).ForcedWait()
		if !got.IsSome() || got.Val() != 42 {
			t.Fatalf("ForcedWait() = %v, want: some: 42", got)
		}
	})

	t.Run("predicate misses", func(t *testing.T) {
		got := Filter(Inline, Completed(42), isOdd).ForcedWait()
		if got.IsSome() {
			t.Fatalf("ForcedWait() = %v, want: none", got)
		}
	})

	t.Run("a miss still completes", func(t *testing.T) {
		p, c := NewPromise[int]()
		filtered := Filter(Inline, c, isOdd)

		p.Complete(2)

		// the cell must complete with none, not stall.
		got := filtered.Forced(time.Second)
		if !got.IsSome() {
			t.Fatal("the filtered cell never completed")
		}
		if inner := got.Val(); inner.IsSome() {
			t.Fatalf("Forced() = %v, want: some: none", got)
		}
	})
}

func TestZipMap(t *testing.T) {
	got := ZipMap(Inline, Completed(21), func(val int) int { return val * 2 }).ForcedWait()

	if got.First != 21 || got.Second != 42 {
		t.Fatalf("ForcedWait() = %v, want: {21 42}", got)
	}
}
