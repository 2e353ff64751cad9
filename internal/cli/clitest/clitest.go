// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package clitest provides a table-driven harness for testing [cli.App]
// implementations with fully controlled I/O streams.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/kars1996/credit/internal/cli"
)

// Case describes a single invocation of an application.
type Case[App cli.App] struct {
	// Args are passed to the application as command-line arguments.
	Args []string
	// Stdin is the application's standard input. Defaults to an empty
	// reader.
	Stdin io.Reader
	// Env supplies values returned by the environment's Getenv.
	Env map[string]string

	// WantErr asserts that running the app returns an error matching this
	// one with [errors.Is].
	WantErr error
	// WantErrType asserts that the returned error matches this error's type
	// with [errors.As].
	WantErrType error
	// WantInStdout and WantInStderr assert that the respective stream
	// contains the given substring.
	WantInStdout string
	WantInStderr string
	// WantNothingPrinted asserts that both streams stay empty.
	WantNothingPrinted bool

	// CheckFunc runs after the invocation for additional assertions.
	CheckFunc func(t *testing.T, app App)
}

// Run executes every case as a subtest. setup constructs a fresh application
// for each case.
func Run[App cli.App](t *testing.T, setup func(t *testing.T) App, cases map[string]Case[App]) {
	t.Helper()

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)

			if tc.WantErr != nil {
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("got error %v, want %v", err, tc.WantErr)
				}
			} else if tc.WantErrType != nil {
				target := reflect.New(reflect.TypeOf(tc.WantErrType))
				if !errors.As(err, target.Interface()) {
					t.Fatalf("got error %v (%T), want type %T", err, err, tc.WantErrType)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("stdout is not empty: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("stderr is not empty: %q", stderr.String())
				}
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout %q does not contain %q", stdout.String(), tc.WantInStdout)
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tc.WantInStderr)
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
