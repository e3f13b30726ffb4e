package policies

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/tim-tx/cello-utils/internal/types"
)

// DuplicatePolicy decides what each stage does with a repeated key.
type DuplicatePolicy struct {
	Strict    bool
	overrides map[types.DuplicateContext]types.DuplicateAction
}

// NewDuplicatePolicy returns the tolerant policy, or the strict one where
// every tolerated duplicate aborts the run.
func NewDuplicatePolicy(strict bool) DuplicatePolicy {
	return DuplicatePolicy{
		Strict:    strict,
		overrides: map[types.DuplicateContext]types.DuplicateAction{},
	}
}

func defaultAction(context types.DuplicateContext) types.DuplicateAction {
	switch context {
	case types.DuplicateResponseFunction:
		return types.DuplicateReject
	case types.DuplicateGate:
		return types.DuplicateKeep
	default:
		return types.DuplicateTolerate
	}
}

func (p DuplicatePolicy) Action(context types.DuplicateContext) types.DuplicateAction {
	if action, ok := p.overrides[context]; ok {
		return action
	}
	if p.Strict {
		return types.DuplicateReject
	}
	return defaultAction(context)
}

// Override sets the action of one context. Response functions are always
// unique and only accept reject.
func (p DuplicatePolicy) Override(context string, action string) (DuplicatePolicy, error) {
	target, err := parseContext(context)
	if err != nil {
		return p, err
	}
	parsed, err := parseAction(action)
	if err != nil {
		return p, err
	}
	if target == types.DuplicateResponseFunction && parsed != types.DuplicateReject {
		return p, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("duplicate action for %s must be %s", target, types.DuplicateReject))
	}
	if parsed == types.DuplicateKeep && target != types.DuplicateGate {
		return p, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("duplicate action %s only applies to %s", parsed, types.DuplicateGate))
	}
	overrides := make(map[types.DuplicateContext]types.DuplicateAction, len(p.overrides)+1)
	for key, value := range p.overrides {
		overrides[key] = value
	}
	overrides[target] = parsed
	p.overrides = overrides
	return p, nil
}

// WithOverrides applies a manifest's duplicates section in sorted context
// order so that the first invalid entry reported is deterministic.
func (p DuplicatePolicy) WithOverrides(entries map[string]string) (DuplicatePolicy, error) {
	for _, context := range slices.Sorted(maps.Keys(entries)) {
		var err error
		if p, err = p.Override(context, entries[context]); err != nil {
			return p, err
		}
	}
	return p, nil
}

func parseContext(value string) (types.DuplicateContext, error) {
	for _, context := range types.DuplicateContexts {
		if strings.EqualFold(strings.TrimSpace(value), string(context)) {
			return context, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unknown duplicate context: %s", value))
}

func parseAction(value string) (types.DuplicateAction, error) {
	switch types.DuplicateAction(strings.ToLower(strings.TrimSpace(value))) {
	case types.DuplicateReject:
		return types.DuplicateReject, nil
	case types.DuplicateTolerate:
		return types.DuplicateTolerate, nil
	case types.DuplicateKeep:
		return types.DuplicateKeep, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown duplicate action: %s", value))
	}
}
