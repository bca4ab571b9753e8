package main

import (
	"log"
	"os"

	"github.com/perfgo/tracebench/cli"
)

// Version information, set by goreleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	c := cli.New()
	c.SetVersion(version, commit, date)
	if err := c.Run(os.Args); err != nil {
		log.SetFlags(0)
		log.Printf("%s: %v", cli.AppName, err)
		os.Exit(1)
	}
}
