package schemax

import (
	"fmt"

	"github.com/schemax/schemax/internal/graph"
	"github.com/schemax/schemax/schema"
)

// Rule is one pluggable validator in the pipeline. Stateful rules accumulate
// across every Validate call within a batch.
type Rule interface {
	Name() string
	Validate(data any, sourceID string) Outcome
}

// Rule names accepted by apply/ignore configuration.
const (
	RuleSchema     = "schema"
	RuleUniqueFQN  = "unique_fqn"
	RuleDependsOn  = "depends_on"
	RuleDependents = "dependents"
)

// AllRules lists every known rule name in canonical order.
var AllRules = []string{RuleSchema, RuleUniqueFQN, RuleDependsOn, RuleDependents}

// DefaultRules is the rule set used when no apply list is configured.
var DefaultRules = []string{RuleSchema}

// SelectRules resolves the configured rule names for a run. An explicit
// ignore list always wins over the apply list; an empty apply list falls
// back to the default set. Apply order is preserved.
func SelectRules(apply, ignore []string) []string {
	if len(apply) == 0 {
		apply = DefaultRules
	}
	ignored := make(map[string]struct{}, len(ignore))
	for _, n := range ignore {
		ignored[n] = struct{}{}
	}
	out := make([]string, 0, len(apply))
	for _, n := range apply {
		if _, skip := ignored[n]; !skip {
			out = append(out, n)
		}
	}
	return out
}

// BuildRules instantiates the named rules with fresh batch state: one fqn
// registry and one graph per dependency direction, owned by the returned
// rules for the batch's lifetime.
func BuildRules(names []string, model *schema.Model) ([]Rule, error) {
	reg := FQNRegistry{}
	rules := make([]Rule, 0, len(names))
	for _, n := range names {
		switch n {
		case RuleSchema:
			rules = append(rules, NewSchemaRule(model))
		case RuleUniqueFQN:
			rules = append(rules, NewUniqueFQNRule(reg))
		case RuleDependsOn:
			rules = append(rules, NewDependencyRule(RuleDependsOn, graph.New()))
		case RuleDependents:
			rules = append(rules, NewDependencyRule(RuleDependents, graph.New()))
		default:
			return nil, fmt.Errorf("unknown rule %q", n)
		}
	}
	return rules, nil
}
