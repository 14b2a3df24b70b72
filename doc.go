// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package act provides a deferred-effect algebra in Go.
//
// The core type [Action] represents a computation that, when explicitly run,
// performs its effects and produces a value. Constructing or composing
// Actions never performs effects; only [Run] does. Each run re-executes the
// underlying effects — there is no memoization.
//
// # Design Philosophy
//
// act provides:
//   - A single generic Action type with the combinators defined once,
//     package-level, rather than per-effect subtypes with overridden call
//     methods
//   - Explicit error returns instead of exceptions: a primitive thunk
//     reports failure as (zero, error), and every combinator propagates
//     it unchanged
//   - A capability-gated execution boundary so composition code cannot
//     trigger effects
//
// # Core Operations
//
// Minimal definition:
//
//   - [Pure]: Lift a pure value into an Action
//   - [Suspend]: Wrap a raw effectful thunk — the only way real effects
//     enter the algebra
//   - [Bind]: Sequence an Action into a continuation chosen from its result
//
// Derived operations:
//
//   - [Map]: Apply a pure function to the result
//   - [Apply]: Apply a deferred function to a deferred argument,
//     left-to-right
//   - [Then]: Sequence, discarding the first result
//   - [Lift2], [Sequence], [Traverse], [Void]: bulk composition
//
// Execution:
//
//   - [MintToken]: Mint the process-unique run capability
//   - [Run]: Execute an Action to obtain its result
//   - [Main]: Run the designated top-level program, at most once
//
// # Laws
//
// The combinators satisfy the functor, applicative, and monad laws,
// observably (running both sides yields the same result and the same
// effect order):
//
//   - Map(Pure(x), f) ≡ Pure(f(x))
//   - Map(Map(m, f), g) ≡ Map(m, g∘f)
//   - Apply(Pure(f), Pure(x)) ≡ Pure(f(x))
//   - Bind(Pure(x), f) ≡ f(x)
//   - Bind(m, Pure) ≡ m
//   - Bind(Bind(m, f), g) ≡ Bind(m, func(x) { return Bind(f(x), g) })
//
// # Effect Order
//
// Execution is single-threaded, synchronous, and strictly left-to-right:
// [Apply] runs the function Action before the argument Action, [Lift2],
// [Sequence], and [Traverse] run their operands in argument order. Callers
// may rely on this — effects such as opening handles are order-sensitive.
//
// # Failure
//
// The only failure source is a primitive's thunk. No combinator catches or
// suppresses an error: the first failure aborts the run, no Action sequenced
// after the failure point executes, and the error surfaces unchanged to the
// caller of [Run]. Panics inside thunks are not converted to errors and
// escape the run.
//
// # Execution Boundary
//
// [Run] requires a [Token], minted at most once per process by [MintToken].
// The host's top-level driver mints the token at startup and owns the sole
// right to run Actions; composition code holding only Action values cannot
// execute them. [Main] packages the common case: it runs one designated
// program Action exactly once, replacing the global mutable entry-point
// binding some hosts use with an explicitly passed value.
//
// # Resource Safety
//
// Exception-safe resource management:
//
//   - [Bracket]: Acquire-use-release with release guaranteed on both the
//     success and failure paths of use
//   - [OnError]: Run cleanup only on failure, then re-propagate
//
// # Example
//
//	greet := act.Suspend(func() (string, error) {
//		return "hello", nil
//	})
//	program := act.Bind(greet, func(s string) act.Action[act.Unit] {
//		return act.Effect(func() error {
//			_, err := fmt.Println(s)
//			return err
//		})
//	})
//
//	// Host entry point — the only place effects are released.
//	if err := act.Main(program); err != nil {
//		log.Fatal(err)
//	}
package act
