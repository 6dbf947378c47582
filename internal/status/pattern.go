package status

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Pattern matches one path segment. A '*' stands for any run of characters;
// every other character goes to the regexp engine unchanged, so a '.' in a
// pattern still matches any single character.
type Pattern struct {
	raw     string
	compile func() (*regexp.Regexp, error)
}

// NewPattern returns a lazily compiled pattern.
func NewPattern(raw string) *Pattern {
	p := &Pattern{raw: raw}
	p.compile = sync.OnceValues(func() (*regexp.Regexp, error) {
		expr := "^" + strings.ReplaceAll(raw, "*", ".*") + "$"

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", raw, err)
		}

		return re, nil
	})

	return p
}

// Compile forces compilation and reports a pattern that cannot be used.
func (p *Pattern) Compile() error {
	_, err := p.compile()
	return err
}

// Match reports whether segment matches the whole pattern.
// A pattern that does not compile matches nothing.
func (p *Pattern) Match(segment string) bool {
	re, err := p.compile()
	if err != nil {
		return false
	}

	return re.MatchString(segment)
}

func (p *Pattern) String() string {
	return p.raw
}

// Path is an ordered list of patterns, one per level of a test path.
type Path []*Pattern

// SplitPath splits s on '/', trimming segments and dropping empty ones.
func SplitPath(s string) Path {
	parts := strings.Split(s, "/")

	path := make(Path, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		path = append(path, NewPattern(part))
	}

	return path
}

// Compile compiles every segment and returns the first failure.
func (p Path) Compile() error {
	for _, pattern := range p {
		if err := pattern.Compile(); err != nil {
			return err
		}
	}

	return nil
}

// Contains reports whether p is a prefix pattern of testPath.
// Extra trailing segments in testPath are always accepted.
func (p Path) Contains(testPath []string) bool {
	if len(p) > len(testPath) {
		return false
	}

	for i, pattern := range p {
		if !pattern.Match(testPath[i]) {
			return false
		}
	}

	return true
}

// Matches is Contains for command-line filters, where an empty path selects everything.
func (p Path) Matches(testPath []string) bool {
	return len(p) == 0 || p.Contains(testPath)
}

// Head splits off the first segment; the head is nil for an empty path.
func (p Path) Head() (*Pattern, Path) {
	if len(p) == 0 {
		return nil, nil
	}

	return p[0], p[1:]
}

// Prefix returns a new path made of p followed by rest.
func (p Path) Prefix(rest Path) Path {
	joined := make(Path, 0, len(p)+len(rest))
	joined = append(joined, p...)

	return append(joined, rest...)
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, pattern := range p {
		parts[i] = pattern.String()
	}

	return strings.Join(parts, "/")
}
