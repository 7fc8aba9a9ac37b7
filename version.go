package main

import (
	"strings"
)

// Version stores the version tag - Should include leading 'v' - Update before tagging new versions.
//
var Version = "v0.1.0"

// Build metadata, optionally set with '-ldflags "-X 'main.<Name>=..."'.
// GitSummary generally holds the output of `git describe --tags --dirty --always`.
//
var (
	BuildDate  string
	GitSummary string
	BuildTool  string
)

// versionString renders Version followed by whichever build metadata is set,
// e.g. "v0.1.0 (build=v0.1.0-3-gabc date=2024-01-01)".
//
func versionString() string {
	var extras []string
	for _, kv := range [][2]string{
		{"build", GitSummary},
		{"date", BuildDate},
		{"builder", BuildTool},
	} {
		if len(kv[1]) > 0 {
			extras = append(extras, kv[0]+"="+kv[1])
		}
	}
	if len(extras) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(extras, " ") + ")"
}
