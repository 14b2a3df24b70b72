// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package act

// Plain function helpers used when stating composition laws and building
// Apply chains.

// Comp is left to right function composition. Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument. It is the left and right identity of Comp.
func Iden[A any](a A) A { return a }

// Const returns a function that ignores its argument and returns a.
func Const[A, B any](a A) func(B) A {
	return func(B) A { return a }
}
