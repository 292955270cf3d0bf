package main

import (
	"os"
	"runtime/debug"

	"github.com/redline-cli/redline/internal/cli"
)

// version is populated at build time via -ldflags. When installed with
// `go install module@version`, ldflags aren't set and build() falls
// back to runtime/debug.BuildInfo instead.
var version = "dev"

func build() string {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
		}
	}
	return v
}

func main() {
	os.Exit(cli.Run(build()))
}
