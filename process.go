// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kars1996/credit/internal/cli"
	"github.com/kars1996/credit/internal/header"
	"github.com/kars1996/credit/internal/logger"

	"github.com/fatih/color"
	"github.com/natefinch/atomic"
)

type summary struct {
	total, added, updated, skipped, ignored, errors int
}

func (s *summary) record(a header.Action) {
	switch a {
	case header.Added:
		s.added++
	case header.Updated:
		s.updated++
	case header.Skipped:
		s.skipped++
	case header.Ignored:
		s.ignored++
	case header.Errored:
		s.errors++
	}
}

// processFiles runs the read-modify-write loop over the candidate set. Each
// file is independent: a per-file failure is recorded and the batch
// continues. Cancellation is honored between files only, so a file is
// either fully rewritten or left untouched.
func (a *app) processFiles(ctx context.Context, env *cli.Env, files []string, fields header.Fields, year int) error {
	sum := summary{total: len(files)}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := processFile(path, fields, year, a.force)
		sum.record(res.Action)

		rel := relPath(path)
		switch res.Action {
		case header.Errored:
			logger.Error(ctx, "processing failed",
				slog.String("file", rel), slog.Any("error", res.Err))
		case header.Added, header.Updated:
			logger.Info(ctx, "notice "+res.Action.String(), slog.String("file", rel))
		default:
			logger.Debug(ctx, res.Action.String(), slog.String("file", rel))
		}
	}

	printSummary(env, sum)
	return nil
}

// processFile applies the header decision to a single file, writing the new
// content back atomically so a failed write never truncates the original.
func processFile(path string, fields header.Fields, year int, force bool) header.Result {
	lang, ok := header.ByExt(filepath.Ext(path))
	if !ok {
		return header.Result{Path: path, Action: header.Errored,
			Err: fmt.Errorf("unsupported file type %q", filepath.Ext(path))}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return header.Result{Path: path, Action: header.Errored, Err: err}
	}
	if !utf8.Valid(b) {
		return header.Result{Path: path, Action: header.Errored,
			Err: errors.New("file is not valid UTF-8")}
	}

	content, action := header.Process(string(b), lang, fields, year, force)
	if action == header.Added || action == header.Updated {
		if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
			return header.Result{Path: path, Action: header.Errored, Err: err}
		}
	}
	return header.Result{Path: path, Action: action}
}

func printSummary(env *cli.Env, sum summary) {
	fmt.Fprintf(env.Stdout, "\nProcessed %d files:\n", sum.total)
	fmt.Fprintf(env.Stdout, "  %s %d\n", color.GreenString("added:  "), sum.added)
	fmt.Fprintf(env.Stdout, "  %s %d\n", color.BlueString("updated:"), sum.updated)
	fmt.Fprintf(env.Stdout, "  %s %d\n", color.CyanString("skipped:"), sum.skipped)
	fmt.Fprintf(env.Stdout, "  %s %d\n", color.YellowString("ignored:"), sum.ignored)
	fmt.Fprintf(env.Stdout, "  %s %d\n", color.RedString("errors: "), sum.errors)
}

func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
