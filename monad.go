// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package act

// Monad operations for Actions.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as direct implementations to
// avoid intermediate closure allocations.
//
// None of these operations runs its operands at call time, and none catches
// an error: the first failure aborts the run and surfaces unchanged.

// Bind sequences an Action into a continuation chosen from its result
// (monadic bind). Running the result runs m, passes the value to f to obtain
// a new Action, and runs that. The continuation is chosen dynamically, so
// later effects may depend on earlier results.
func Bind[A, B any](m Action[A], f func(A) Action[B]) Action[B] {
	return Action[B]{step: func() (B, error) {
		a, err := m.step()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).step()
	}}
}

// Map applies a pure function to the result of an Action.
//
// Allocation note: Map is equivalent to Bind(m, compose(Pure, f)) but avoids
// the intermediate Pure closure, making it the preferred choice when the
// transformation is pure (does not produce effects).
func Map[A, B any](m Action[A], f func(A) B) Action[B] {
	return Action[B]{step: func() (B, error) {
		a, err := m.step()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}}
}

// Then sequences two Actions, discarding the first result. This is more
// efficient than Bind when the second computation does not depend on the
// first result. An error from m still aborts the run before n executes.
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[A, B any](m Action[A], n Action[B]) Action[B] {
	return Action[B]{step: func() (B, error) {
		if _, err := m.step(); err != nil {
			var zero B
			return zero, err
		}
		return n.step()
	}}
}

// Void discards the result of an Action, keeping only its effects.
func Void[A any](m Action[A]) Action[Unit] {
	return Action[Unit]{step: func() (Unit, error) {
		_, err := m.step()
		return Unit{}, err
	}}
}
