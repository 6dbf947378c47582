package status

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

var (
	headerLine = regexp.MustCompile(`^\[([^\]]*)\]$`)
	ruleLine   = regexp.MustCompile(`^([^: ]*)\s*:(.*)$`)
	defLine    = regexp.MustCompile(`^def\s*(\w+)\s*=(.*)$`)
	prefixLine = regexp.MustCompile(`^prefix\s+([\w_.\-/]+)$`)
)

// Loader accumulates status sources into one Configuration.
// It is not safe for concurrent use.
type Loader struct {
	sections []*Section
	defs     Defs
}

// NewLoader returns an empty loader.
func NewLoader() *Loader {
	return &Loader{defs: make(Defs)}
}

// LoadFile loads the status file at path.
func (l *Loader) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open status file: %w", err)
	}
	defer f.Close()

	return l.Load(path, f)
}

// LoadString loads status text; name is only used in diagnostics.
func (l *Loader) LoadString(name, text string) error {
	return l.Load(name, strings.NewReader(text))
}

// Load reads one source. It stops at the first malformed line; sections
// and definitions accepted before that line are kept.
func (l *Loader) Load(name string, r io.Reader) error {
	current := NewSection(Constant(true))
	l.sections = append(l.sections, current)

	var prefix Path

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		text := scanner.Text()

		line := text
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fail := func(err error) error {
			return &LoadError{Source: name, Line: lineNo, Text: text, Err: err}
		}

		if m := headerLine.FindStringSubmatch(line); m != nil {
			condition := Constant(true)

			if body := strings.TrimSpace(m[1]); body != "" {
				expr, err := Parse(body)
				if err != nil {
					return fail(err)
				}

				condition = expr
			}

			current = NewSection(condition)
			l.sections = append(l.sections, current)

			continue
		}

		if m := ruleLine.FindStringSubmatch(line); m != nil {
			raw := strings.TrimSpace(m[1])

			path := SplitPath(raw)
			if err := path.Compile(); err != nil {
				return fail(err)
			}

			value, err := Parse(strings.TrimSpace(m[2]))
			if err != nil {
				return fail(err)
			}

			current.Rules = append(current.Rules, &Rule{
				Raw:    raw,
				Path:   prefix.Prefix(path),
				Value:  value,
				Source: name,
				Line:   lineNo,
			})

			continue
		}

		if m := defLine.FindStringSubmatch(line); m != nil {
			value, err := Parse(strings.TrimSpace(m[2]))
			if err != nil {
				return fail(err)
			}

			l.defs[fold(m[1])] = value

			continue
		}

		if m := prefixLine.FindStringSubmatch(line); m != nil {
			prefix = SplitPath(m[1])
			continue
		}

		return fail(nil)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read status source %s: %w", name, err)
	}

	slog.Debug("Loaded status source", "source", name, "lines", lineNo)

	return nil
}

// Configuration snapshots everything loaded so far.
func (l *Loader) Configuration() *Configuration {
	sections := append([]*Section(nil), l.sections...)

	defs := make(Defs, len(l.defs))
	for name, expr := range l.defs {
		defs[name] = expr
	}

	return &Configuration{Sections: sections, Defs: defs}
}
