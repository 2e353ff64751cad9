// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/kars1996/credit/internal/cli"
	"github.com/kars1996/credit/internal/cli/clitest"
	"github.com/kars1996/credit/internal/config"
	"github.com/kars1996/credit/internal/testutil"
)

func newApp(t *testing.T) *app { return new(app) }

// writeConfig stores a test configuration and returns its path, to be
// passed to the app via the CREDIT_CONFIG environment variable.
func writeConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

var kars = &config.Config{Owner: "Kars", GitHub: "github.com/kars1996"}

func TestModes(t *testing.T) {
	cfgPath := writeConfig(t, kars)
	emptyCfg := filepath.Join(t.TempDir(), "config.toml")
	dir := writeTree(t, map[string]string{"a.js": "let x = 1;\n"})

	clitest.Run(t, newApp, map[string]clitest.Case[*app]{
		"info lists languages": {
			Args:         []string{"--info"},
			Env:          map[string]string{"CREDIT_CONFIG": cfgPath},
			WantInStdout: "typescript",
		},
		"detailed help": {
			Args:         []string{"--detailed-help"},
			Env:          map[string]string{"CREDIT_CONFIG": emptyCfg},
			WantInStdout: "credit-ignore",
		},
		"config shows settings": {
			Args:         []string{"--config"},
			Env:          map[string]string{"CREDIT_CONFIG": cfgPath},
			WantInStdout: "Kars",
		},
		"missing owner is fatal": {
			Args:    []string{"-y", dir},
			Env:     map[string]string{"CREDIT_CONFIG": emptyCfg},
			WantErr: config.ErrMissing,
		},
		"username flag satisfies config": {
			Args:         []string{"-y", "--username", "Alice", "--github", "alice1996", dir},
			Env:          map[string]string{"CREDIT_CONFIG": emptyCfg},
			WantInStdout: "added:",
		},
		"unknown language": {
			Args:    []string{"-l", "cobol", "-y", dir},
			Env:     map[string]string{"CREDIT_CONFIG": cfgPath},
			WantErr: cli.ErrInvalidArgs,
		},
		"invalid directory": {
			Args:    []string{"-y", filepath.Join(dir, "missing")},
			Env:     map[string]string{"CREDIT_CONFIG": cfgPath},
			WantErr: cli.ErrInvalidArgs,
		},
	})
}

func TestProcessDirectory(t *testing.T) {
	cfgPath := writeConfig(t, kars)
	dir := writeTree(t, map[string]string{
		"a.js":       "let x = 1;\n",
		"b.py":       "#!/usr/bin/env python\nprint('hi')\n",
		"ignored.js": "// credit-ignore\nlet y = 2;\n",
		"notes.txt":  "not code\n",
	})

	clitest.Run(t, newApp, map[string]clitest.Case[*app]{
		"process": {
			Args:         []string{"-y", dir},
			Env:          map[string]string{"CREDIT_CONFIG": cfgPath},
			WantInStdout: "Processed 3 files",
			CheckFunc: func(t *testing.T, _ *app) {
				year := strconv.Itoa(time.Now().Year())

				a := readFile(t, filepath.Join(dir, "a.js"))
				testutil.AssertEqual(t, strings.Contains(a, "Copyright © "+year+" Kars (github.com/kars1996)"), true)
				testutil.AssertEqual(t, strings.HasSuffix(a, "let x = 1;\n"), true)

				b := readFile(t, filepath.Join(dir, "b.py"))
				testutil.AssertEqual(t, strings.HasPrefix(b, "#!/usr/bin/env python\n\"\"\"\n"), true)

				testutil.AssertEqual(t, readFile(t, filepath.Join(dir, "ignored.js")), "// credit-ignore\nlet y = 2;\n")
				testutil.AssertEqual(t, readFile(t, filepath.Join(dir, "notes.txt")), "not code\n")
			},
		},
	})
}

func TestProcessIsIdempotent(t *testing.T) {
	cfgPath := writeConfig(t, kars)
	dir := writeTree(t, map[string]string{"a.js": "let x = 1;\n"})

	run := func() string {
		var stdout, stderr strings.Builder
		env := &cli.Env{
			Args:   []string{"-y", dir},
			Stdin:  strings.NewReader(""),
			Stdout: &stdout,
			Stderr: &stderr,
			Getenv: func(key string) string {
				if key == "CREDIT_CONFIG" {
					return cfgPath
				}
				return ""
			},
		}
		if err := cli.Run(cli.WithEnv(context.Background(), env), new(app)); err != nil {
			t.Fatal(err)
		}
		return stdout.String()
	}

	first := run()
	testutil.AssertEqual(t, strings.Contains(first, "added:   1"), true)

	content := readFile(t, filepath.Join(dir, "a.js"))

	second := run()
	testutil.AssertEqual(t, strings.Contains(second, "skipped: 1"), true)
	testutil.AssertEqual(t, readFile(t, filepath.Join(dir, "a.js")), content)
}

func TestProcessContinuesPastErrors(t *testing.T) {
	cfgPath := writeConfig(t, kars)
	dir := writeTree(t, map[string]string{
		"good.js": "let x = 1;\n",
		"bad.js":  "let y = \xff\xfe;\n",
	})

	var stdout, stderr strings.Builder
	env := &cli.Env{
		Args:   []string{"-y", dir},
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(key string) string {
			if key == "CREDIT_CONFIG" {
				return cfgPath
			}
			return ""
		},
	}
	if err := cli.Run(cli.WithEnv(context.Background(), env), new(app)); err != nil {
		t.Fatal(err)
	}

	// The failing file is counted, and the rest of the batch still runs.
	testutil.AssertEqual(t, strings.Contains(stdout.String(), "Processed 2 files"), true)
	testutil.AssertEqual(t, strings.Contains(stdout.String(), "added:   1"), true)
	testutil.AssertEqual(t, strings.Contains(stdout.String(), "errors:  1"), true)
	testutil.AssertEqual(t, strings.Contains(stderr.String(), "processing failed"), true)

	good := readFile(t, filepath.Join(dir, "good.js"))
	testutil.AssertEqual(t, strings.Contains(good, "Copyright ©"), true)
	testutil.AssertEqual(t, readFile(t, filepath.Join(dir, "bad.js")), "let y = \xff\xfe;\n")
}

func TestPreviewDoesNotModify(t *testing.T) {
	cfgPath := writeConfig(t, kars)
	dir := writeTree(t, map[string]string{"a.js": "let x = 1;\n"})

	clitest.Run(t, newApp, map[string]clitest.Case[*app]{
		"preview": {
			Args:         []string{"--preview", dir},
			Env:          map[string]string{"CREDIT_CONFIG": cfgPath},
			WantInStdout: "would add:",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, readFile(t, filepath.Join(dir, "a.js")), "let x = 1;\n")
			},
		},
	})
}

func TestConfirmCancels(t *testing.T) {
	cfgPath := writeConfig(t, kars)
	dir := writeTree(t, map[string]string{"a.js": "let x = 1;\n"})

	clitest.Run(t, newApp, map[string]clitest.Case[*app]{
		"declined": {
			Args:         []string{dir},
			Stdin:        strings.NewReader("n\n"),
			Env:          map[string]string{"CREDIT_CONFIG": cfgPath},
			WantInStderr: "cancelled",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, readFile(t, filepath.Join(dir, "a.js")), "let x = 1;\n")
			},
		},
	})
}

func TestSingleFile(t *testing.T) {
	cfgPath := writeConfig(t, kars)
	dir := writeTree(t, map[string]string{
		"a.js":      "let x = 1;\n",
		"other.js":  "let y = 2;\n",
		"notes.txt": "not code\n",
	})

	clitest.Run(t, newApp, map[string]clitest.Case[*app]{
		"processes only the named file": {
			Args:         []string{"-y", "--file", filepath.Join(dir, "a.js")},
			Env:          map[string]string{"CREDIT_CONFIG": cfgPath},
			WantInStdout: "Processed 1 files",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, readFile(t, filepath.Join(dir, "other.js")), "let y = 2;\n")
			},
		},
		"unsupported extension": {
			Args:    []string{"-y", "--file", filepath.Join(dir, "notes.txt")},
			Env:     map[string]string{"CREDIT_CONFIG": cfgPath},
			WantErr: cli.ErrInvalidArgs,
		},
		"missing file": {
			Args:    []string{"-y", "--file", filepath.Join(dir, "nope.js")},
			Env:     map[string]string{"CREDIT_CONFIG": cfgPath},
			WantErr: cli.ErrInvalidArgs,
		},
	})
}

func TestSetup(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	clitest.Run(t, newApp, map[string]clitest.Case[*app]{
		"stores answers": {
			Args:         []string{"--setup"},
			Stdin:        strings.NewReader("Alice\nalice1996\n./lib\n"),
			Env:          map[string]string{"CREDIT_CONFIG": cfgPath},
			WantInStdout: "Configuration saved",
			CheckFunc: func(t *testing.T, _ *app) {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					t.Fatal(err)
				}
				testutil.AssertEqual(t, cfg, &config.Config{
					Owner:     "Alice",
					GitHub:    "alice1996",
					Directory: "./lib",
				})
			},
		},
	})
}
