// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kars1996/credit/internal/testutil"
)

func TestInputFallback(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("Alice\n"), &out)

	got, err := p.Input("Enter your name", "Kars")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "Alice")
	testutil.AssertEqual(t, strings.Contains(out.String(), "[Kars]"), true)
}

func TestInputFallbackDefault(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	got, err := p.Input("Enter your name", "Kars")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "Kars")
}

func TestInputSequence(t *testing.T) {
	// Consecutive questions must not lose buffered input.
	var out bytes.Buffer
	p := New(strings.NewReader("Alice\nalice1996\n"), &out)

	first, err := p.Input("Enter your name", "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Input("Enter your GitHub handle", "")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, first, "Alice")
	testutil.AssertEqual(t, second, "alice1996")
}

func TestConfirmFallback(t *testing.T) {
	for in, want := range map[string]bool{
		"y\n":   true,
		"yes\n": true,
		"n\n":   false,
		"\n":    false,
	} {
		var out bytes.Buffer
		got, err := New(strings.NewReader(in), &out).Confirm("Proceed?")
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, got, want)
	}
}
