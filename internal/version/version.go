// Package version reports the siteconfig build.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/version.Version=v0.3.0".
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

// String renders the line printed by --version. Values not injected at link
// time fall back to the module build info, then to "unknown".
func String() string {
	version, commit, built := Version, GitCommit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, orUnknown(shortCommit(commit)), orUnknown(built))
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
