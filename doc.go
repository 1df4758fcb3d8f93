// Package main implements the gitsemver CLI tool.
//
// The gitsemver tool derives a semantic version for a git work tree from
// `git describe --tags`. The nearest tag must be MAJOR.MINOR.PATCH semver,
// optionally with a leading "v" and prerelease identifiers. Tags carrying
// "+" build metadata are rejected.
//
// Command Usage:
//
//	gitsemver [flags]
//
// Flags:
//
//	--next:     Print the next release instead of the current version.
//	            One of major, minor or patch. Lower fields are reset to 0.
//	-C, --dir:  Directory to run git in. (Defaults to ".")
//	--verbose:  Log every git invocation to stderr.
//	--version:  Displays the version of the gitsemver CLI tool and exits.
//
// Output format:
//
//	<major>.<minor>.<patch>[-<prerelease>][.<commits>.g<sha>][-dirty]
//
// Examples:
//
//	# Tagged v1.0.2, nothing since
//	gitsemver                  # 1.0.2
//
//	# Three commits after v1.0.2
//	gitsemver                  # 1.0.2-3.g1a2b3c4d
//
//	# Three commits after v1.0.2-alpha.suse, with modified tracked files
//	gitsemver                  # 1.0.2-alpha.suse.3.g1a2b3c4d-dirty
//
//	# Next releases computed from the current version
//	gitsemver --next patch     # 1.0.3
//	gitsemver --next minor     # 1.1.0
//	gitsemver --next major     # 2.0.0
//
// Any failure (git missing, not a repository, no semver tag, "+" in the tag)
// prints "Error: ..." to stderr and exits with status 1.
//
// For more detailed API documentation, please see the documentation in the "pkg" package
// or visit [PkgGoDev](https://pkg.go.dev/github.com/bcomnes/gitsemver).
package main
