// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package act_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/act"
)

// The process-unique token was already minted by testToken; every further
// mint must fail.
func TestMintTokenSecondMintFails(t *testing.T) {
	if _, ok := act.MintToken(); ok {
		t.Fatal("second mint succeeded")
	}
	if _, ok := act.MintToken(); ok {
		t.Fatal("third mint succeeded")
	}
}

func TestRunRejectsZeroToken(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Run with zero token did not panic")
		}
	}()
	_, _ = act.Run(act.Token{}, act.Pure(1))
}

func TestRunRepeatable(t *testing.T) {
	calls := 0
	m := act.Effect(func() error {
		calls++
		return nil
	})
	for range 3 {
		if _, err := act.Run(testToken, m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 3 {
		t.Fatalf("effect ran %d times, want 3", calls)
	}
}

// Main runs the designated program once, returns its error, and panics on
// reentry. Both behaviors are checked in one test because Main is
// at-most-once per process.
func TestMainRunsProgramOnce(t *testing.T) {
	ran := 0
	wantErr := errors.New("program failed")
	program := act.Effect(func() error {
		ran++
		return wantErr
	})

	if err := act.Main(program); !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want program error", err)
	}
	if ran != 1 {
		t.Fatalf("program ran %d times, want 1", ran)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("second Main call did not panic")
		}
	}()
	_ = act.Main(act.Pure(act.Unit{}))
}
