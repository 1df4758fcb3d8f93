package gitsemver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Part names a major.minor.patch field that can be bumped.
type Part string

const (
	Major Part = "major"
	Minor Part = "minor"
	Patch Part = "patch"
)

// ParsePart converts a bump keyword into a Part.
func ParsePart(s string) (Part, error) {
	switch p := Part(strings.ToLower(strings.TrimSpace(s))); p {
	case Major, Minor, Patch:
		return p, nil
	}
	return "", fmt.Errorf("unknown bump argument: %q (want major, minor or patch)", s)
}

// SemanticVersion is a version derived from git state.
type SemanticVersion struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease []string // dot-separated identifiers after "-"

	Dirty           bool   // tracked files had uncommitted changes
	CommitsSinceTag uint64 // commits between the tag and HEAD
	ShortSHA        string // abbreviated HEAD sha, without the "g" prefix
}

// Parse reads a "[v]MAJOR.MINOR.PATCH[-PRERELEASE]" string. Shorthand forms
// such as "1.2" are rejected, as is any "+" build metadata.
func Parse(version string) (SemanticVersion, error) {
	var v SemanticVersion

	raw := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if strings.Contains(raw, "+") {
		return v, fmt.Errorf("%w: %q", ErrUnsupportedPlusElement, version)
	}
	if !semver.IsValid("v" + raw) {
		return v, fmt.Errorf("%w: %q", ErrInvalidVersionString, version)
	}

	core, pre, _ := strings.Cut(raw, "-")
	nums := strings.Split(core, ".")
	if len(nums) != 3 {
		return v, fmt.Errorf("%w: %q is not MAJOR.MINOR.PATCH", ErrInvalidVersionString, version)
	}

	fields := []*uint64{&v.Major, &v.Minor, &v.Patch}
	for i, n := range nums {
		parsed, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return SemanticVersion{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersionString, version, err)
		}
		*fields[i] = parsed
	}
	if pre != "" {
		v.Prerelease = strings.Split(pre, ".")
	}
	return v, nil
}

// Core returns the bare "major.minor.patch" string.
func (v SemanticVersion) Core() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// String formats the version as
//
//	<major>.<minor>.<patch>[-<prerelease>][.<commits>.g<sha>][-dirty]
//
// The commit segment is only present when CommitsSinceTag > 0. Without
// prerelease identifiers it starts the prerelease itself, so "-" is used
// instead of ".".
func (v SemanticVersion) String() string {
	var b strings.Builder
	b.WriteString(v.Core())

	pre := append([]string(nil), v.Prerelease...)
	if v.CommitsSinceTag > 0 {
		pre = append(pre, strconv.FormatUint(v.CommitsSinceTag, 10), "g"+v.ShortSHA)
	}
	if len(pre) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(pre, "."))
	}
	if v.Dirty {
		b.WriteString("-dirty")
	}
	return b.String()
}

// Bump returns a release version with the given part incremented and the
// lower parts reset. Prerelease, commit and dirty state are dropped.
func (v SemanticVersion) Bump(part Part) (SemanticVersion, error) {
	next := SemanticVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
	switch part {
	case Major:
		next.Major++
		next.Minor = 0
		next.Patch = 0
	case Minor:
		next.Minor++
		next.Patch = 0
	case Patch:
		next.Patch++
	default:
		return v, fmt.Errorf("unknown bump argument: %q", part)
	}
	return next, nil
}

// Next parses version and returns the bumped "major.minor.patch" string.
// Output of CurrentVersion is accepted as input.
func Next(version string, part Part) (string, error) {
	v, err := Parse(version)
	if err != nil {
		if errors.Is(err, ErrUnsupportedPlusElement) {
			return "", fmt.Errorf("%w: %w", ErrInvalidVersionString, err)
		}
		return "", err
	}
	bumped, err := v.Bump(part)
	if err != nil {
		return "", err
	}
	return bumped.Core(), nil
}
