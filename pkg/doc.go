// Package gitsemver derives semantic version strings from git tags.
//
// It provides functionalities for:
//   - Running `git describe` against a work tree and parsing the nearest tag,
//     commit distance, abbreviated sha and dirty state into a SemanticVersion.
//   - Validating tags as MAJOR.MINOR.PATCH[-PRERELEASE] semver. Build metadata
//     ("+...") is rejected.
//   - Formatting the result as <major>.<minor>.<patch>[-<pre>][.<n>.g<sha>][-dirty].
//   - Computing the next major, minor or patch release from any version string.
//
// Usage Example:
//
//	import (
//	    "log"
//
//	    "github.com/bcomnes/gitsemver/pkg"
//	    "github.com/rs/zerolog"
//	)
//
//	func main() {
//	    d := gitsemver.NewDescriber(".", zerolog.Nop())
//	    current, err := d.CurrentVersion()
//	    if err != nil {
//	        log.Fatalf("deriving version failed: %v", err)
//	    }
//	    next, err := gitsemver.Next(current, gitsemver.Minor)
//	    if err != nil {
//	        log.Fatalf("bumping version failed: %v", err)
//	    }
//	    log.Println(current, "->", next)
//	}
//
// For additional details and API documentation, see https://pkg.go.dev/github.com/bcomnes/gitsemver.
package gitsemver
