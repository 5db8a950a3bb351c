package schemax

import "fmt"

// FQNRegistry maps a claimed fqn to the source that first claimed it. The
// pipeline owns one registry per batch; only the uniqueness rule writes it.
type FQNRegistry map[string]string

// UniqueFQNRule enforces a single globally-unique fqn across every source
// processed in one run. First claim wins; claims are never released, even
// when a later rule fails the same source.
type UniqueFQNRule struct {
	reg FQNRegistry
}

// NewUniqueFQNRule wires the rule to the registry it mutates.
func NewUniqueFQNRule(reg FQNRegistry) *UniqueFQNRule {
	return &UniqueFQNRule{reg: reg}
}

func (r *UniqueFQNRule) Name() string { return RuleUniqueFQN }

func (r *UniqueFQNRule) Validate(data any, sourceID string) Outcome {
	obj, _ := data.(map[string]any)
	fqn, ok := obj["fqn"].(string)
	if !ok {
		return Fail(sourceID, ValidationError{
			Kind:    KindMissingFQN,
			ErrorAt: "$.fqn",
			Message: "Duplicate fqn check is enabled but fqn field is missing or invalid",
		})
	}
	if first, claimed := r.reg[fqn]; claimed && first != sourceID {
		return Fail(sourceID, ValidationError{
			Kind:    KindDuplicateFQN,
			ErrorAt: "$.fqn",
			Message: fmt.Sprintf("Duplicate FQN '%s', already present at '%s'", fqn, first),
		})
	}
	if _, claimed := r.reg[fqn]; !claimed {
		r.reg[fqn] = sourceID
	}
	return OK(sourceID)
}
