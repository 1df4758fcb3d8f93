package gitsemver

import "errors"

// Errors returned by the version deriver. Callers should match them with
// errors.Is, since most are wrapped with additional context.
var (
	// ErrGitNotFound means the git executable could not be located on PATH.
	ErrGitNotFound = errors.New("git executable not found")
	// ErrNotAGitRepository means the directory is not inside a git work tree.
	ErrNotAGitRepository = errors.New("not a git repository")
	// ErrNoSemverTag means no tag is reachable, or the nearest tag is not valid semver.
	ErrNoSemverTag = errors.New("no semver tag found")
	// ErrUnsupportedPlusElement means a version carries "+" build metadata.
	ErrUnsupportedPlusElement = errors.New("unsupported '+' element in version")
	// ErrInvalidVersionString means a version string could not be parsed as semver.
	ErrInvalidVersionString = errors.New("invalid version string")
)
