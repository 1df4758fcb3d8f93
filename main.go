// Package main implements a CLI tool that prints the semantic version of a
// git work tree, or the next major, minor or patch release.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	gitsemver "github.com/bcomnes/gitsemver/pkg"
)

func usage() {
	msg := `Usage:
  gitsemver [options]

Prints the semantic version of the current git work tree, derived from the nearest tag
(a leading "v" is stripped). Commits since the tag and the abbreviated sha are appended,
and "-dirty" is added when tracked files have uncommitted changes.

Examples:
  gitsemver                 # 1.0.2, 1.0.2-3.gdeadbeef, 1.0.2-alpha.3.gdeadbeef-dirty
  gitsemver --next minor    # 1.1.0
  gitsemver -C ../other --next patch

Options:
`
	fmt.Fprint(os.Stderr, msg)
	flag.PrintDefaults()
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func main() {
	next := flag.String("next", "", "Print the next version instead: one of major, minor, patch")
	dir := flag.StringP("dir", "C", ".", "Run git in this directory")
	verbose := flag.Bool("verbose", false, "Log git invocations to stderr")
	showVersion := flag.Bool("version", false, "Show CLI version and exit")
	help := flag.BoolP("help", "h", false, "Show help message and exit")

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("gitsemver CLI version", Version)
		os.Exit(0)
	}
	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		usage()
		os.Exit(1)
	}

	var part gitsemver.Part
	if *next != "" {
		p, err := gitsemver.ParsePart(*next)
		if err != nil {
			fail(err)
		}
		part = p
	}

	log := newLogger(*verbose)
	current, err := gitsemver.NewDescriber(*dir, log).CurrentVersion()
	if err != nil {
		fail(err)
	}

	if part == "" {
		fmt.Println(current)
		return
	}
	bumped, err := gitsemver.Next(current, part)
	if err != nil {
		fail(err)
	}
	log.Debug().Str("current", current).Str("part", string(part)).Str("next", bumped).Msg("bumped")
	fmt.Println(bumped)
}
