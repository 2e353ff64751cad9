// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/kars1996/credit/internal/cli"
	"github.com/kars1996/credit/internal/header"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// previewFiles prints the action each file would receive, plus a patch of
// the change, without touching anything on disk.
func (a *app) previewFiles(env *cli.Env, files []string, fields header.Fields, year int) error {
	dmp := diffmatchpatch.New()

	for _, path := range files {
		rel := relPath(path)

		lang, ok := header.ByExt(filepath.Ext(path))
		if !ok {
			continue
		}
		b, err := os.ReadFile(path)
		if err != nil || !utf8.Valid(b) {
			fmt.Fprintf(env.Stdout, "%s %s\n", color.RedString("cannot read:"), rel)
			continue
		}

		content, action := header.Process(string(b), lang, fields, year, a.force)
		switch action {
		case header.Added:
			fmt.Fprintf(env.Stdout, "%s %s\n", color.GreenString("would add:"), rel)
		case header.Updated:
			fmt.Fprintf(env.Stdout, "%s %s\n", color.BlueString("would update:"), rel)
		case header.Skipped:
			fmt.Fprintf(env.Stdout, "%s %s\n", color.CyanString("up to date:"), rel)
		case header.Ignored:
			fmt.Fprintf(env.Stdout, "%s %s\n", color.YellowString("ignored:"), rel)
		}

		if action == header.Added || action == header.Updated {
			patches := dmp.PatchMake(string(b), content)
			fmt.Fprint(env.Stdout, dmp.PatchToText(patches))
		}
	}
	return nil
}
