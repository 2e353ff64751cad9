// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

/*
Credit adds or updates copyright notices in source code files.

It scans a directory tree for files of supported languages and inserts a
copyright notice at the top of each file, formatted in the language's
comment syntax. Existing notices are kept and only their year field is
rewritten to a range ending in the current year; with --force, the owner
name and GitHub handle are re-stamped from the configuration as well.

Usage:

	credit [directory] [flags]

Shebang and encoding-declaration lines always stay first in the file; the
notice is inserted after them, separated from the rest of the file by one
blank line. A file whose first non-blank line is the comment

	// credit-ignore

(in the comment syntax of its language) is never modified.

Run credit --setup once to store your name, GitHub handle and default
directory; credit --config shows the stored settings and credit --info
lists the supported languages. Use --preview to see what would change
without touching any file.
*/
package main

import (
	_ "embed"

	"github.com/kars1996/credit/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
