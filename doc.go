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

// Package eventual provides single-assignment cells with a composable
// combinator algebra on top of them.
//
// A Cell is a container that starts empty and is populated exactly once,
// later, by the producer holding its Promise. Observers register reactions
// on the Cell, each with an ExecutionContext deciding where the reaction
// runs, and every reaction fires exactly once with the final value, in
// registration order.
//
// A Cell has two states, and it moves between them at most once, ever:
// Empty: no value yet; reactions registered now are held pending.
// Completed: the value is known, final, and the same for every observer;
// reactions registered now are dispatched immediately.
//
//
// General Notes:-
//
// * Completing a Cell twice is a caller bug, and it panics. A Promise is
// single-use, and when multiple goroutines race to complete one, exactly
// one wins and the rest panic.
//
// * Reactions never run while the Cell's internal lock is held; they are
// handed to their ExecutionContext, so a slow reaction can't stall other
// registrations or the completion path.
//
// * Forced is the only call that blocks the calling goroutine. Everything
// else in the package is non-blocking by construction.
//
// * Cancellation is out of scope: a Cell that's never completed leaves its
// pending reactions unfired, and an unbounded Forced call blocked.
//
//
// Combinators:-
//
// * Every combinator is defined purely in terms of registering a reaction
// on the source cell(s) and completing a newly constructed cell, so all of
// them apply uniformly to any element type, including result.Result.
//
// * Transformation (Map, FlatMap, Filter, Zip, ZipMap, Flatten) and
// gathering (Reduce, Traverse, Sequence) take their ExecutionContext
// explicitly; there are no ambient process-wide defaults. The Defaults
// struct names a conventional pair for call sites that want one.
//
// * Reduce, Traverse, and Sequence over empty inputs complete immediately;
// they never block.
//
//
// Error-aware cells:-
//
// * The result subpackage provides the two-case success/failure container.
// Succeed, Failed, and Adapted construct already-completed cells of it.
//
// * The algebra doesn't auto-short-circuit on failures; downstream code
// branches on the case explicitly, through Map or FlatMap.
package eventual
