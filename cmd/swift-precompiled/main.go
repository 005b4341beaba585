package main

import (
	"github.com/tacogips/swift-precompiled/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version   = ""
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	if version != "" {
		cli.Version = version
	}
	cli.GitCommit = gitCommit
	cli.BuildDate = buildDate

	cli.Execute()
}
