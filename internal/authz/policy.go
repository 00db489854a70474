package authz

import (
	"fmt"
	"reflect"
	"sort"

	apperrors "bizsuite/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is any entity that belongs to exactly one business.
type Resource interface {
	GetBusinessID() primitive.ObjectID
}

// Target says whether an action is checked against a resource type or an
// existing resource instance.
type Target int

const (
	TargetType Target = iota + 1
	TargetInstance
)

// Rule binds an action to its requirement.
type Rule struct {
	Target      Target
	Requirement Requirement
}

// OnType builds a rule for an action that needs no existing resource.
func OnType(req Requirement) Rule {
	return Rule{Target: TargetType, Requirement: req}
}

// OnInstance builds a rule for an action on an existing resource.
func OnInstance(req Requirement) Rule {
	return Rule{Target: TargetInstance, Requirement: req}
}

// Policy is the action table of one tenant resource type.
type Policy struct {
	name  string
	rules map[Action]Rule
}

// NewPolicy builds a Policy. The rules map is copied.
func NewPolicy(name string, rules map[Action]Rule) *Policy {
	p := &Policy{name: name, rules: make(map[Action]Rule, len(rules))}
	for action, rule := range rules {
		p.rules[action] = rule
	}
	return p
}

// Name returns the policy name.
func (p *Policy) Name() string {
	return p.name
}

// Rule returns the rule for an action.
func (p *Policy) Rule(action Action) (Rule, bool) {
	rule, ok := p.rules[action]
	return rule, ok
}

// Actions returns every action the policy knows, sorted.
func (p *Policy) Actions() []Action {
	actions := make([]Action, 0, len(p.rules))
	for a := range p.rules {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

// Allow decides whether actor may perform action, optionally on res.
//
// A resource from another business than the actor's current one is always
// denied, whatever the role. Type actions are evaluated against the current
// business. Actions missing from the table are denied. A forbidden outcome is
// (false, nil); an error is returned only for structurally invalid input.
func (p *Policy) Allow(actor *Actor, action Action, res Resource) (bool, error) {
	if err := actor.validate(); err != nil {
		return false, err
	}

	rule, ok := p.rules[action]
	if !ok {
		return false, nil
	}

	hasResource := !isNilResource(res)
	if rule.Target == TargetInstance && !hasResource {
		return false, fmt.Errorf("%w: %s.%s requires a resource", apperrors.ErrInvalidPolicyInput, p.name, action)
	}

	current, hasCurrent := actor.CurrentBusinessID()

	if hasResource {
		owner := res.GetBusinessID()
		if owner.IsZero() {
			return false, fmt.Errorf("%w: %s resource has no business", apperrors.ErrInvalidPolicyInput, p.name)
		}
		if !hasCurrent || owner != current {
			return false, nil
		}
	}

	if !hasCurrent {
		return false, nil
	}

	return rule.Requirement.satisfiedBy(actor, current), nil
}

func isNilResource(res Resource) bool {
	if res == nil {
		return true
	}
	v := reflect.ValueOf(res)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
