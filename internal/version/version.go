// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package version provides the name and build information of this program.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// CmdName returns the base name of the currently running binary.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return "credit"
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

// Version returns a human-readable version string, derived from the build
// information embedded in the binary.
func Version() string { return version() }

var version = sync.OnceValue(func() string {
	var sb strings.Builder

	ver := "devel"
	commit := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			ver = info.Main.Version
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 8 {
				commit = s.Value[:8]
			}
		}
	}

	fmt.Fprintf(&sb, "%s %s", CmdName(), ver)
	if commit != "" {
		fmt.Fprintf(&sb, " (%s)", commit)
	}
	fmt.Fprintf(&sb, "\n%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return sb.String()
})
