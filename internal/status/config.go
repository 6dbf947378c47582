package status

// Rule assigns an outcome expression to every test under Path.
type Rule struct {
	// Raw is the path text as written in the status file.
	Raw    string
	Path   Path
	Value  *Expr
	Source string
	Line   int
}

// Contains reports whether the rule applies to testPath.
func (r *Rule) Contains(testPath []string) bool {
	return r.Path.Contains(testPath)
}

// Outcomes resolves the rule value. Anything but an enumerated set is an
// *InvariantError.
func (r *Rule) Outcomes(env Env, defs Defs) ([]string, error) {
	set, err := r.Value.Outcomes(env, defs)
	if err != nil {
		return nil, err
	}

	if set.Kind() != KindEnumerated {
		return nil, &InvariantError{Rule: r, Got: set}
	}

	return set.Elements(), nil
}

// Section groups rules that are active only when Condition holds.
type Section struct {
	Condition *Expr
	Rules     []*Rule
}

// NewSection returns an empty section guarded by condition.
func NewSection(condition *Expr) *Section {
	return &Section{Condition: condition}
}

// Active reports whether the section condition holds in env.
func (s *Section) Active(env Env, defs Defs) (bool, error) {
	return s.Condition.Evaluate(env, defs)
}

// Configuration is the merged content of every loaded status source.
// It is never mutated after Loader.Configuration returns it.
type Configuration struct {
	Sections []*Section
	Defs     Defs
}

// Rules returns every rule in section order.
func (c *Configuration) Rules() []*Rule {
	var rules []*Rule
	for _, section := range c.Sections {
		rules = append(rules, section.Rules...)
	}

	return rules
}
