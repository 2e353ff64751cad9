// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package header

import (
	"regexp"
	"sort"
	"strings"
)

// Language describes the comment syntax of a supported language and the
// file extensions that map to it.
type Language struct {
	Name       string
	Extensions []string
	BlockOpen  string
	BlockClose string
	Line       string

	notice *regexp.Regexp
}

// Languages is the static table of supported languages.
var Languages = []*Language{
	{Name: "javascript", Extensions: []string{".js", ".jsx"}, BlockOpen: "/*", BlockClose: "*/", Line: "//"},
	{Name: "typescript", Extensions: []string{".ts", ".tsx"}, BlockOpen: "/*", BlockClose: "*/", Line: "//"},
	{Name: "golang", Extensions: []string{".go"}, BlockOpen: "/*", BlockClose: "*/", Line: "//"},
	{Name: "python", Extensions: []string{".py"}, BlockOpen: `"""`, BlockClose: `"""`, Line: "#"},
	{Name: "c", Extensions: []string{".c", ".h"}, BlockOpen: "/*", BlockClose: "*/", Line: "//"},
	{Name: "cpp", Extensions: []string{".cpp", ".hpp", ".cc", ".hh"}, BlockOpen: "/*", BlockClose: "*/", Line: "//"},
	{Name: "java", Extensions: []string{".java"}, BlockOpen: "/*", BlockClose: "*/", Line: "//"},
	{Name: "csharp", Extensions: []string{".cs"}, BlockOpen: "/*", BlockClose: "*/", Line: "//"},
	{Name: "ruby", Extensions: []string{".rb"}, BlockOpen: "=begin", BlockClose: "=end", Line: "#"},
	{Name: "php", Extensions: []string{".php"}, BlockOpen: "/*", BlockClose: "*/", Line: "//"},
}

var (
	byName = make(map[string]*Language)
	byExt  = make(map[string]*Language)
)

func init() {
	for _, l := range Languages {
		l.notice = regexp.MustCompile(
			`(?m)^([ \t]*(?:` + regexp.QuoteMeta(l.Line) + `[ \t]*)?)` +
				`Copyright (©|\(c\)) (\d{4})(?:-(\d{4}))? ([^(\n]+?) \(([^)\n]*)\)`,
		)
		byName[l.Name] = l
		for _, ext := range l.Extensions {
			byExt[ext] = l
		}
	}
}

// ByName looks up a language by its name.
func ByName(name string) (*Language, bool) {
	l, ok := byName[strings.ToLower(name)]
	return l, ok
}

// ByExt looks up a language by a file extension (including the leading dot).
func ByExt(ext string) (*Language, bool) {
	l, ok := byExt[strings.ToLower(ext)]
	return l, ok
}

// AllExtensions returns the extensions of every supported language, sorted.
func AllExtensions() []string {
	exts := make([]string, 0, len(byExt))
	for ext := range byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

var encodingRE = regexp.MustCompile(`^#.*coding[:=][ \t]*[-\w.]+`)

// isPragmaLine reports whether a line at the given index must stay at the
// top of the file, before any inserted notice.
func (l *Language) isPragmaLine(line string, index int) bool {
	if index == 0 && strings.HasPrefix(line, "#!") {
		return true
	}
	switch l.Name {
	case "python", "ruby":
		// Encoding declarations are only honored on the first two lines.
		return index <= 1 && encodingRE.MatchString(line)
	case "php":
		// The opening tag may follow a shebang in CLI scripts; line 1 is
		// only reached here when line 0 was itself a pragma.
		return index <= 1 && strings.HasPrefix(strings.TrimSpace(line), "<?php")
	}
	return false
}

// isIgnoreLine reports whether a line is the ignore marker in this
// language's comment syntax.
func (l *Language) isIgnoreLine(line string) bool {
	s := strings.TrimSpace(line)
	for _, open := range []string{l.Line, l.BlockOpen} {
		rest, ok := strings.CutPrefix(s, open)
		if !ok {
			continue
		}
		rest = strings.TrimSuffix(strings.TrimSpace(rest), l.BlockClose)
		if strings.TrimSpace(rest) == IgnoreMarker {
			return true
		}
	}
	return false
}
