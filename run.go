// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package act

import (
	"sync/atomic"
)

// Execution boundary.
//
// Run is the only operation that performs effects, and it is gated behind a
// capability Token minted at most once per process. The host's top-level
// driver mints the token at startup; composition code holding only Action
// values cannot execute them. This replaces enforcement-by-discipline with
// enforcement by API surface.

// Token is the capability to run Actions. The zero Token is invalid; the
// only valid Token is the one returned by the first [MintToken] call.
type Token struct {
	valid bool
}

var tokenMinted atomic.Uintptr

// MintToken mints the process-unique run capability. The first call returns
// (token, true); every later call returns (zero, false). The host driver
// mints the token once at program start and threads it to wherever Actions
// must be run.
func MintToken() (Token, bool) {
	if tokenMinted.Add(1) != 1 {
		return Token{}, false
	}
	return Token{valid: true}, true
}

// Run executes an Action: it invokes, in order, every primitive thunk the
// Action was composed from, blocking until the composition completes or a
// thunk fails. The first failure aborts the run and is returned unchanged;
// thunks sequenced after the failure point do not execute.
//
// Run may be called any number of times with a valid token; each call
// re-executes the Action's effects. Panics if tok is not the minted token.
func Run[A any](tok Token, m Action[A]) (A, error) {
	if !tok.valid {
		panic("act: Run without the minted Token")
	}
	return m.step()
}

var mainEntered atomic.Uintptr

// Main runs the designated top-level program Action and returns its error.
// This is the host runtime entry point: the surrounding program constructs
// its whole effect graph as one Action[Unit] and hands it to Main, which is
// the single place execution is triggered.
//
// Main may be called at most once per process; a second call panics. Main
// does not consume the [MintToken] capability, so a host that needs
// finer-grained control can mint the token itself and call [Run] directly
// instead.
func Main(program Action[Unit]) error {
	if mainEntered.Add(1) != 1 {
		panic("act: Main entered twice")
	}
	_, err := program.step()
	return err
}
