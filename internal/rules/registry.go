package rules

// Registry holds all registered rules
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register adds a rule to the registry
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// All returns all registered rules in registration order.
func (r *Registry) All() []Rule {
	return r.rules
}

// Rules returns the registered rules of the given kind, in registration order.
func (r *Registry) Rules(kind Kind) []Rule {
	var result []Rule
	for _, rule := range r.rules {
		if rule.Kind() == kind {
			result = append(result, rule)
		}
	}
	return result
}

// Get returns a rule by name
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// DefaultRegistry returns a registry with the full rule set. The seven
// composition rules are registered first, then the pattern rules, so
// findings come out in checklist order.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Composition rules
	r.Register(&LengthRule{})
	r.Register(&UppercaseRule{})
	r.Register(&LowercaseRule{})
	r.Register(&DigitRule{})
	r.Register(&SpecialRule{})
	r.Register(&WhitespaceRule{})
	r.Register(&CommonPasswordRule{})

	// Pattern rules
	r.Register(&KeyboardSequenceRule{})
	r.Register(&RepetitionRule{})
	r.Register(&AmbiguousRule{})

	return r
}
