package gitsemver

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// describeRe splits `git describe --long --dirty` output from the right,
// since tags may themselves contain "-".
var describeRe = regexp.MustCompile(`^(.+)-(\d+)-g([0-9a-f]+)(-dirty)?$`)

// Describer derives semantic versions from the git state of a directory.
type Describer struct {
	// Dir is the directory git runs in. Empty means the current directory.
	Dir string
	// GitPath is the git executable name or path. Empty means "git".
	GitPath string
	// Logger receives debug output for every git invocation.
	Logger zerolog.Logger
}

// NewDescriber returns a Describer for dir that logs to logger.
func NewDescriber(dir string, logger zerolog.Logger) *Describer {
	return &Describer{Dir: dir, GitPath: "git", Logger: logger}
}

// CurrentVersion returns the formatted version of the work tree, e.g.
// "1.0.2", "1.0.2-3.gdeadbeef" or "1.0.2-alpha.3.gdeadbeef-dirty".
func (d *Describer) CurrentVersion() (string, error) {
	v, err := d.Describe()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Describe resolves the nearest tag, commit distance, short sha and dirty
// state of the work tree into a SemanticVersion.
func (d *Describer) Describe() (SemanticVersion, error) {
	gitPath, err := d.lookGit()
	if err != nil {
		return SemanticVersion{}, err
	}

	out, err := d.git(gitPath, "rev-parse", "--is-inside-work-tree")
	if err != nil || out != "true" {
		return SemanticVersion{}, fmt.Errorf("%w: %s", ErrNotAGitRepository, d.dirName())
	}

	out, err = d.git(gitPath, "describe", "--tags", "--long", "--dirty", "--abbrev=8")
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("%w: %v", ErrNoSemverTag, err)
	}

	v, err := parseDescribe(out)
	if err != nil {
		return SemanticVersion{}, err
	}
	d.Logger.Debug().
		Str("version", v.String()).
		Uint64("commits", v.CommitsSinceTag).
		Bool("dirty", v.Dirty).
		Msg("described work tree")
	return v, nil
}

// parseDescribe turns "<tag>-<count>-g<sha>[-dirty]" into a SemanticVersion.
func parseDescribe(out string) (SemanticVersion, error) {
	m := describeRe.FindStringSubmatch(strings.TrimSpace(out))
	if m == nil {
		return SemanticVersion{}, fmt.Errorf("%w: unexpected describe output %q", ErrNoSemverTag, out)
	}
	tag := m[1]

	v, err := Parse(tag)
	if err != nil {
		if errors.Is(err, ErrUnsupportedPlusElement) {
			return SemanticVersion{}, fmt.Errorf("tag %q: %w", tag, ErrUnsupportedPlusElement)
		}
		return SemanticVersion{}, fmt.Errorf("%w: tag %q is not valid semver", ErrNoSemverTag, tag)
	}

	count, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("%w: commit count %q: %v", ErrNoSemverTag, m[2], err)
	}
	v.CommitsSinceTag = count
	v.ShortSHA = m[3]
	v.Dirty = m[4] != ""
	return v, nil
}

func (d *Describer) lookGit() (string, error) {
	name := d.GitPath
	if name == "" {
		name = "git"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGitNotFound, err)
	}
	return path, nil
}

// git runs a git subcommand in d.Dir and returns its trimmed stdout.
func (d *Describer) git(gitPath string, args ...string) (string, error) {
	cmd := exec.Command(gitPath, args...)
	cmd.Dir = d.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	d.Logger.Debug().
		Strs("args", args).
		Str("dir", d.dirName()).
		Str("stdout", out).
		Err(err).
		Msg("git")
	if err != nil {
		return "", fmt.Errorf("git %s failed: %v, detail: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

func (d *Describer) dirName() string {
	if d.Dir == "" {
		return "."
	}
	return d.Dir
}
