// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package act

// Action represents a deferred computation that, when run, performs its
// effects and yields a value of type A or fails with an error.
//
// An Action is an opaque, immutable description: constructing one — whether
// via [Pure], [Suspend], or any combinator — performs no effect. Effects
// happen only when the Action is passed to [Run], and every run re-executes
// them from scratch.
type Action[A any] struct {
	step func() (A, error)
}

// Unit is a type alias for the empty struct to make it a bit less noisy to
// communicate the informationless result of effect-only Actions.
type Unit = struct{}

// Pure lifts a value into an Action that performs no effect and returns the
// value unchanged. It is the identity element for composition.
func Pure[A any](a A) Action[A] {
	return Action[A]{step: func() (A, error) {
		return a, nil
	}}
}

// Suspend wraps a raw effectful thunk as an Action. This is the primitive
// constructor: the only way new real effects enter the algebra. The thunk is
// not invoked until the Action is run, and is invoked again on every run.
//
// The thunk's error is the only failure source in the algebra; it propagates
// unchanged through every combinator to the caller of [Run].
func Suspend[A any](thunk func() (A, error)) Action[A] {
	return Action[A]{step: thunk}
}

// Effect wraps an effect-only thunk as an Action producing Unit.
// Effect(f) is equivalent to Suspend(func() (Unit, error) { return Unit{}, f() }).
func Effect(thunk func() error) Action[Unit] {
	return Action[Unit]{step: func() (Unit, error) {
		return Unit{}, thunk()
	}}
}
