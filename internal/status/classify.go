package status

import (
	"fmt"

	m "gooze.dev/pkg/verdict/internal/model"
)

// Classification is the result of one Classify call.
type Classification struct {
	Tests []m.ClassifiedTest
	// Unused holds the active rules that matched no case, in pool order.
	Unused []*Rule
}

// Classify attaches expected outcomes to every case. Only rules of sections
// whose condition holds in env take part; a case no rule names expects pass.
// Classify only reads c; calls over distinct cases may run concurrently.
func (c *Configuration) Classify(cases []*m.TestCase, env Env) (*Classification, error) {
	var pool []*Rule

	for _, section := range c.Sections {
		active, err := section.Active(env, c.Defs)
		if err != nil {
			return nil, fmt.Errorf("section [%s]: %w", section.Condition, err)
		}

		if active {
			pool = append(pool, section.Rules...)
		}
	}

	used := make([]bool, len(pool))
	result := &Classification{Tests: make([]m.ClassifiedTest, 0, len(cases))}

	for _, tc := range cases {
		var labels []string

		for i, rule := range pool {
			if !rule.Contains(tc.Path) {
				continue
			}

			outcomes, err := rule.Outcomes(env, c.Defs)
			if err != nil {
				return nil, err
			}

			labels = append(labels, outcomes...)
			used[i] = true
		}

		outcomes := m.NewOutcomes(labels...)
		if len(outcomes) == 0 {
			outcomes = m.Outcomes{m.Pass}
		}

		tc.Outcomes = outcomes
		result.Tests = append(result.Tests, m.ClassifiedTest{Case: tc, Outcomes: outcomes})
	}

	for i, rule := range pool {
		if !used[i] {
			result.Unused = append(result.Unused, rule)
		}
	}

	return result, nil
}
