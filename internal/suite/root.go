package suite

import (
	"context"
	"slices"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

// Root is the literal suite holding every opened suite. The first segment
// of a filter selects suites by name.
type Root struct {
	suites []Suite
}

// NewRoot returns a Root over suites.
func NewRoot(suites ...Suite) *Root {
	return &Root{suites: suites}
}

// Name implements Suite.
func (r *Root) Name() string {
	return "root"
}

// Suites returns the suites in registration order.
func (r *Root) Suites() []Suite {
	return slices.Clone(r.suites)
}

// ListTests implements Suite. Each suite sees the whole filter, since test
// paths include the suite name.
func (r *Root) ListTests(ctx context.Context, current []string, filter status.Path, mode string) ([]*m.TestCase, error) {
	head, _ := filter.Head()

	var cases []*m.TestCase

	for _, s := range r.suites {
		if head != nil && !head.Match(s.Name()) {
			continue
		}

		listed, err := s.ListTests(ctx, append(slices.Clone(current), s.Name()), filter, mode)
		if err != nil {
			return nil, err
		}

		cases = append(cases, listed...)
	}

	return cases, nil
}

// BuildRequirements implements Suite.
func (r *Root) BuildRequirements(filter status.Path) []string {
	head, rest := filter.Head()

	var reqs []string

	for _, s := range r.suites {
		if head == nil || head.Match(s.Name()) {
			reqs = append(reqs, s.BuildRequirements(rest)...)
		}
	}

	return reqs
}

// LoadStatus implements Suite.
func (r *Root) LoadStatus(loader *status.Loader) error {
	for _, s := range r.suites {
		if err := s.LoadStatus(loader); err != nil {
			return err
		}
	}

	return nil
}
