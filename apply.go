// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package act

// Applicative operations for Actions.
//
// Effect order is fixed and left-to-right throughout: the function side
// runs before the argument side, slice elements run in index order. Callers
// rely on this because effects are order-sensitive (which handle opens
// first matters).

// Apply applies a deferred function to a deferred argument. Running the
// result runs mf to obtain the function, then runs ma to obtain the
// argument, then applies one to the other. An error from mf aborts the run
// before ma executes.
//
// Law: Apply(Pure(f), Pure(x)) is observably equivalent to Pure(f(x)).
func Apply[A, B any](mf Action[func(A) B], ma Action[A]) Action[B] {
	return Action[B]{step: func() (B, error) {
		var zero B
		f, err := mf.step()
		if err != nil {
			return zero, err
		}
		a, err := ma.step()
		if err != nil {
			return zero, err
		}
		return f(a), nil
	}}
}

// Lift2 lifts a binary function over two Actions. ma runs before mb.
// Lift2 is equivalent to Apply(Map(ma, curry(f)), mb) without the
// intermediate curried closure chain.
func Lift2[A, B, C any](f func(A, B) C, ma Action[A], mb Action[B]) Action[C] {
	return Action[C]{step: func() (C, error) {
		var zero C
		a, err := ma.step()
		if err != nil {
			return zero, err
		}
		b, err := mb.step()
		if err != nil {
			return zero, err
		}
		return f(a, b), nil
	}}
}

// Sequence runs a slice of Actions in index order and collects their
// results. The first failure aborts the run; Actions after the failure
// point do not execute and no partial result is returned.
func Sequence[A any](ms []Action[A]) Action[[]A] {
	return Action[[]A]{step: func() ([]A, error) {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			a, err := m.step()
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return out, nil
	}}
}

// Traverse maps each element of a slice to an Action and runs them in index
// order, collecting the results. Traverse(xs, f) is equivalent to
// Sequence(map f xs) without materializing the intermediate slice of Actions.
func Traverse[A, B any](xs []A, f func(A) Action[B]) Action[[]B] {
	return Action[[]B]{step: func() ([]B, error) {
		out := make([]B, 0, len(xs))
		for _, x := range xs {
			b, err := f(x).step()
			if err != nil {
				return nil, err
			}
			out = append(out, b)
		}
		return out, nil
	}}
}
