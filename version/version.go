// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides the version information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Info holds version information.
type Info struct {
	Name      string    // command name
	Version   string    // module version, "(devel)" for local builds
	Commit    string    // VCS revision, if known
	Modified  bool      // whether the working tree had uncommitted changes
	BuildTime time.Time // VCS commit time, if known
	Go        string    // Go version used to build the binary
}

// String returns a human-readable, multiline representation of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", i.Commit)
		if i.Modified {
			sb.WriteString(", modified")
		}
		if !i.BuildTime.IsZero() {
			fmt.Fprintf(&sb, ", %s", i.BuildTime.Format(time.DateOnly))
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, "\nbuilt with %s\n", i.Go)
	return sb.String()
}

var info = sync.OnceValue(func() Info {
	i := Info{
		Name:    CmdName(),
		Version: "(devel)",
		Go:      runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if v := bi.Main.Version; v != "" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Modified = s.Value == "true"
		case "vcs.time":
			i.BuildTime, _ = time.Parse(time.RFC3339, s.Value)
		}
	}
	return i
})

// Version returns the version information of the running binary.
func Version() Info { return info() }

// CmdName returns the base name of the running command.
func CmdName() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Path != "" {
		return filepath.Base(bi.Path)
	}
	exe, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}
