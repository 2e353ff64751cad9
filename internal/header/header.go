// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package header decides whether a source file already carries a copyright
// notice, whether that notice is stale, and where a new one belongs.
//
// It works on line and text pattern heuristics only; files are never parsed
// into a syntax tree.
package header

import (
	"regexp"
	"strconv"
	"strings"
)

// IgnoreMarker is the literal comment text that opts a file out of all
// processing. A file whose first non-blank line (after any pragma lines) is
// this marker in the language's comment syntax is never modified.
const IgnoreMarker = "credit-ignore"

const disclaimer = "Not to be shared, replicated, or used without prior consent.\nContact me for any enquiries"

// Fields is the identity stamped into a notice.
type Fields struct {
	Owner  string
	Handle string
}

// Action classifies what processing did to a file.
type Action int

const (
	Added Action = iota
	Updated
	Skipped
	Ignored
	Errored
)

func (a Action) String() string {
	switch a {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Skipped:
		return "skipped"
	case Ignored:
		return "ignored"
	case Errored:
		return "error"
	}
	return "unknown"
}

// Result records the outcome of processing a single file.
type Result struct {
	Path   string
	Action Action
	Err    error
}

// Notice renders a fresh copyright notice for the language.
func (l *Language) Notice(f Fields, years string) string {
	return l.BlockOpen + "\nCopyright © " + years + " " + f.Owner + " (" + f.Handle + ")\n\n" +
		disclaimer + "\n" + l.BlockClose
}

// Process determines the new content of a file and the action taken.
//
// Pragma lines (shebangs, encoding declarations) are preserved in place; a
// new notice is inserted after them and separated from the following content
// by exactly one blank line. An existing notice has its year field rewritten
// to a range ending in year when stale, keeping the original start year.
// With force, the owner and handle fields are re-stamped from f as well.
//
// The returned content equals the input unless the action is Added or
// Updated.
func Process(content string, lang *Language, f Fields, year int, force bool) (string, Action) {
	pragmas, rest := splitPragmas(content, lang)

	if line, ok := firstNonBlankLine(rest); ok && lang.isIgnoreLine(line) {
		return content, Ignored
	}

	lead := rest[:leadingBlock(rest, lang)]
	if m := lang.notice.FindStringSubmatchIndex(lead); m != nil {
		updated, changed := rewriteNotice(rest, m, f, year, force)
		if !changed {
			return content, Skipped
		}
		return pragmas + updated, Updated
	}

	notice := lang.Notice(f, strconv.Itoa(year))
	body := strings.TrimLeft(rest, "\r\n")
	return pragmas + notice + "\n\n" + body, Added
}

// parenLabel matches a word label at the start of the handle parenthetical,
// e.g. the "github: " in "(github: alice)".
var parenLabel = regexp.MustCompile(`^\w+:[ \t]`)

// rewriteNotice rebuilds the matched copyright line of an existing notice.
// m holds submatch indices into rest from the language's notice pattern.
func rewriteNotice(rest string, m []int, f Fields, year int, force bool) (updated string, changed bool) {
	var (
		lead   = rest[m[2]:m[3]]
		symbol = rest[m[4]:m[5]]
		start  = rest[m[6]:m[7]]
		owner  = rest[m[10]:m[11]]
		paren  = rest[m[12]:m[13]]
	)

	// The start year of an existing range never changes; the trailing year
	// moves to the current one.
	years := start
	if current := strconv.Itoa(year); start != current {
		years = start + "-" + current
	}

	if force {
		owner = f.Owner
		// Keep a word label such as "github: " inside the parenthetical,
		// replacing only the handle after it. Anything else, including URL
		// handles with their colons, is replaced wholesale.
		if label := parenLabel.FindString(paren); label != "" {
			paren = strings.TrimSpace(label) + " " + f.Handle
		} else {
			paren = f.Handle
		}
	}

	line := lead + "Copyright " + symbol + " " + years + " " + owner + " (" + paren + ")"
	if line == rest[m[0]:m[1]] {
		return rest, false
	}
	return rest[:m[0]] + line + rest[m[1]:], true
}

// splitPragmas splits content into the pragma lines that must stay first in
// the file and everything after them.
func splitPragmas(content string, lang *Language) (pragmas, rest string) {
	offset := 0
	for index := 0; offset < len(content); index++ {
		line, next := nextLine(content, offset)
		if !lang.isPragmaLine(line, index) {
			break
		}
		offset = next
	}
	return content[:offset], content[offset:]
}

// firstNonBlankLine returns the first line of s that is not blank.
func firstNonBlankLine(s string) (string, bool) {
	for offset := 0; offset < len(s); {
		line, next := nextLine(s, offset)
		if strings.TrimSpace(line) != "" {
			return line, true
		}
		offset = next
	}
	return "", false
}

// leadingBlock returns the length of the leading run of s that consists only
// of blank lines and comments. An existing notice can only live inside this
// region; anything past it is code.
func leadingBlock(s string, l *Language) int {
	var (
		offset  int
		inBlock bool
	)
	for offset < len(s) {
		line, next := nextLine(s, offset)
		t := strings.TrimSpace(line)
		switch {
		case inBlock:
			if strings.Contains(line, l.BlockClose) {
				inBlock = false
			}
		case t == "":
		case strings.HasPrefix(t, l.Line):
		case strings.HasPrefix(t, l.BlockOpen):
			if !strings.Contains(t[len(l.BlockOpen):], l.BlockClose) {
				inBlock = true
			}
		default:
			return offset
		}
		offset = next
	}
	return offset
}

// nextLine returns the line starting at offset (without its terminator) and
// the offset of the following line.
func nextLine(s string, offset int) (line string, next int) {
	if nl := strings.IndexByte(s[offset:], '\n'); nl >= 0 {
		return s[offset : offset+nl], offset + nl + 1
	}
	return s[offset:], len(s)
}
