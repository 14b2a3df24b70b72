// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package act

import "errors"

// Resource safety primitives for exception-safe resource management.
// These provide the minimal interface for bracketed resource handling.
//
// When a resource produced by one primitive is consumed by a later one via
// Bind, the handle stays valid through the chained value but nothing
// releases it. Bracket is the scoped alternative: release is guaranteed on
// both the success and failure paths of use.

// Bracket provides exception-safe resource acquisition and release.
// This follows the bracket pattern: acquire → use → release, where release
// is guaranteed to run whether use succeeds or fails. If acquire fails,
// neither use nor release runs.
//
// A failure from use propagates after release completes; if release also
// fails, the two errors are joined. Panics inside thunks escape without
// running release.
func Bracket[R, A any](
	acquire Action[R],
	use func(R) Action[A],
	release func(R) Action[Unit],
) Action[A] {
	return Action[A]{step: func() (A, error) {
		var zero A
		r, err := acquire.step()
		if err != nil {
			return zero, err
		}
		a, useErr := use(r).step()
		_, relErr := release(r).step()
		switch {
		case useErr != nil && relErr != nil:
			return zero, errors.Join(useErr, relErr)
		case useErr != nil:
			return zero, useErr
		case relErr != nil:
			return zero, relErr
		}
		return a, nil
	}}
}

// OnError runs cleanup only if the computation fails, then re-propagates
// the original error. A cleanup failure is joined onto the original error
// rather than replacing it.
func OnError[A any](
	body Action[A],
	cleanup func(error) Action[Unit],
) Action[A] {
	return Action[A]{step: func() (A, error) {
		a, err := body.step()
		if err == nil {
			return a, nil
		}
		var zero A
		if _, cerr := cleanup(err).step(); cerr != nil {
			return zero, errors.Join(err, cerr)
		}
		return zero, err
	}}
}
