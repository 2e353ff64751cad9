// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kars1996/credit/internal/cli"
	"github.com/kars1996/credit/internal/config"
	"github.com/kars1996/credit/internal/header"
	"github.com/kars1996/credit/internal/logger"
	"github.com/kars1996/credit/internal/prompt"
	"github.com/kars1996/credit/internal/scan"
	"github.com/kars1996/credit/internal/version"

	"github.com/spf13/pflag"
)

type app struct {
	dir          string
	force        bool
	yes          bool
	language     string
	noRecursive  bool
	info         bool
	preview      bool
	file         string
	setup        bool
	showConfig   bool
	username     string
	github       string
	detailedHelp bool
	verbose      bool
}

func (a *app) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&a.dir, "directory", "d", "", "Directory to process.")
	fs.BoolVarP(&a.force, "force", "f", false, "Re-stamp owner and handle of existing notices.")
	fs.BoolVarP(&a.yes, "yes", "y", false, "Skip the confirmation prompt.")
	fs.StringVarP(&a.language, "language", "l", "", "Only process files of this language.")
	fs.BoolVar(&a.noRecursive, "no-recursive", false, "Don't search subdirectories.")
	fs.BoolVar(&a.info, "info", false, "Show supported languages and extensions.")
	fs.BoolVar(&a.preview, "preview", false, "Show planned changes without applying them.")
	fs.StringVar(&a.file, "file", "", "Process a single file.")
	fs.BoolVar(&a.setup, "setup", false, "Set up your configuration interactively.")
	fs.BoolVar(&a.showConfig, "config", false, "Show the current configuration.")
	fs.StringVar(&a.username, "username", "", "Override the owner name for this run.")
	fs.StringVar(&a.github, "github", "", "Override the GitHub handle for this run.")
	fs.BoolVar(&a.detailedHelp, "detailed-help", false, "Show detailed help.")
	fs.BoolVar(&a.verbose, "verbose", false, "Log every processed file.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	log := logger.New(nil)
	if a.verbose {
		log.Level.Set(slog.LevelDebug)
	}
	log.Attach(logger.ConsoleHandler(env.Stderr, log.Level))
	ctx = logger.Put(ctx, log)

	if a.detailedHelp {
		fmt.Fprint(env.Stdout, cli.DocComment())
		return nil
	}

	cfgPath := env.Getenv("CREDIT_CONFIG")
	if cfgPath == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		cfgPath = p
	}

	if a.setup {
		return a.runSetup(env, cfgPath)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	switch {
	case a.showConfig:
		return printConfig(env, cfg, cfgPath)
	case a.info:
		return printInfo(env)
	}

	if a.username != "" {
		cfg.Owner = a.username
	}
	if a.github != "" {
		cfg.GitHub = a.github
	}
	if cfg.Owner == "" {
		return fmt.Errorf("%w: run %s --setup first", config.ErrMissing, version.CmdName())
	}

	files, err := a.collectFiles(env, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		env.Logf("No matching files found.")
		return nil
	}

	fields := header.Fields{Owner: cfg.Owner, Handle: cfg.GitHub}
	year := time.Now().Year()

	if a.preview {
		return a.previewFiles(env, files, fields, year)
	}

	if !a.yes {
		ok, err := prompt.New(env.Stdin, env.Stdout).
			Confirm(fmt.Sprintf("Process %d files?", len(files)))
		if err != nil {
			return err
		}
		if !ok {
			env.Logf("Operation cancelled.")
			return nil
		}
	}

	return a.processFiles(ctx, env, files, fields, year)
}

// collectFiles resolves the candidate file set from the flags, the
// positional directory argument and the configuration.
func (a *app) collectFiles(env *cli.Env, cfg *config.Config) ([]string, error) {
	if a.file != "" {
		if !scan.IsFile(a.file) {
			return nil, fmt.Errorf("%w: %s is not a valid file", cli.ErrInvalidArgs, a.file)
		}
		if _, ok := header.ByExt(filepath.Ext(a.file)); !ok {
			return nil, fmt.Errorf("%w: unsupported file type %q", cli.ErrInvalidArgs, filepath.Ext(a.file))
		}
		return []string{a.file}, nil
	}

	exts := header.AllExtensions()
	if a.language != "" {
		lang, ok := header.ByName(a.language)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported language %q", cli.ErrInvalidArgs, a.language)
		}
		exts = lang.Extensions
	}

	dir := cfg.Directory
	if dir == "" {
		dir = config.DefaultDirectory
	}
	if a.dir != "" {
		dir = a.dir
	}
	if len(env.Args) > 0 {
		dir = env.Args[0]
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a valid directory", cli.ErrInvalidArgs, dir)
	}

	return scan.Files(dir, exts, !a.noRecursive)
}

func (a *app) runSetup(env *cli.Env, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	p := prompt.New(env.Stdin, env.Stdout)

	if cfg.Owner, err = p.Input("Enter your name", cfg.Owner); err != nil {
		return err
	}
	if cfg.GitHub, err = p.Input("Enter your GitHub handle", cfg.GitHub); err != nil {
		return err
	}
	dir := cfg.Directory
	if dir == "" {
		dir = config.DefaultDirectory
	}
	if cfg.Directory, err = p.Input("Enter default directory", dir); err != nil {
		return err
	}

	if err := cfg.Save(cfgPath); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Configuration saved to %s\n", cfgPath)
	return nil
}

func printConfig(env *cli.Env, cfg *config.Config, cfgPath string) error {
	fmt.Fprintf(env.Stdout, "Owner:     %s\n", cfg.Owner)
	fmt.Fprintf(env.Stdout, "GitHub:    %s\n", cfg.GitHub)
	fmt.Fprintf(env.Stdout, "Directory: %s\n", cfg.Directory)
	fmt.Fprintf(env.Stdout, "File:      %s\n", cfgPath)
	return nil
}

func printInfo(env *cli.Env) error {
	fmt.Fprintln(env.Stdout, "Supported languages:")
	for _, l := range header.Languages {
		fmt.Fprintf(env.Stdout, "  %-11s %s\n", l.Name, strings.Join(l.Extensions, ", "))
	}
	return nil
}
