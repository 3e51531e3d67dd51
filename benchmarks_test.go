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

package eventual_test

import (
	"testing"

	"github.com/asmsh/eventual"
)

func BenchmarkNewPromise(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		eventual.NewPromise[int]()
	}
}

func BenchmarkComplete(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p, _ := eventual.NewPromise[int]()
		p.Complete(i)
	}
}

func BenchmarkOnComplete(b *testing.B) {
	b.Run("pending", func(b *testing.B) {
		_, c := eventual.NewPromise[int]()

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			c.OnComplete(eventual.Inline, func(int) {})
		}
	})

	b.Run("completed", func(b *testing.B) {
		c := eventual.Completed(0)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			c.OnComplete(eventual.Inline, func(int) {})
		}
	})
}

func BenchmarkForced(b *testing.B) {
	c := eventual.Completed(0)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Forced(0)
	}
}

func BenchmarkMapChain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := eventual.Completed(i)
		for j := 0; j < 4; j++ {
			c = eventual.Map(eventual.Inline, c, func(val int) int { return val + 1 })
		}
	}
}
