package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ActionKind enumerates what a retrieval does with a single atmospheric
// parameter: infer it, marginalize over it, or fix it to a constant.
type ActionKind string

const (
	ActionInfer       ActionKind = "infer"
	ActionMarginalize ActionKind = "marginalize"
	ActionCondition   ActionKind = "condition"
)

// ParameterAction is the parsed form of the per-parameter action string
// ("infer", "marginalize", or "condition = <value>") used in prior
// configurations.
type ParameterAction struct {
	Action ActionKind

	// Value is the constant the parameter is fixed to. Only meaningful
	// when Action is ActionCondition.
	Value float64
}

// ParseParameterAction parses an action string. Whitespace around the
// tokens and the "=" is ignored.
func ParseParameterAction(s string) (ParameterAction, error) {
	trimmed := strings.TrimSpace(s)

	switch trimmed {
	case string(ActionInfer):
		return ParameterAction{Action: ActionInfer}, nil
	case string(ActionMarginalize):
		return ParameterAction{Action: ActionMarginalize}, nil
	}

	if name, rest, found := strings.Cut(trimmed, "="); found {
		if strings.TrimSpace(name) != string(ActionCondition) {
			return ParameterAction{}, fmt.Errorf("unknown action %q", s)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return ParameterAction{}, fmt.Errorf("invalid condition value in %q: %w", s, err)
		}
		return ParameterAction{Action: ActionCondition, Value: value}, nil
	}

	return ParameterAction{}, fmt.Errorf("unknown action %q", s)
}

// String returns the canonical action string, e.g. "condition = 0.5".
func (a ParameterAction) String() string {
	if a.Action == ActionCondition {
		return fmt.Sprintf("condition = %s", strconv.FormatFloat(a.Value, 'g', -1, 64))
	}
	return string(a.Action)
}

// UnmarshalYAML implements yaml.Unmarshaler for the action mini-syntax.
func (a *ParameterAction) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseParameterAction(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical string form.
func (a ParameterAction) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// ParameterMasks holds, in prior order, which parameters are inferred,
// marginalized over, or conditioned on, plus the condition values.
type ParameterMasks struct {
	Infer          []bool
	Marginalize    []bool
	Condition      []bool
	ConditionValue []float64
}

// BuildParameterMasks builds the masks for the given parameter names in
// order. Every name must have an action in the map.
func BuildParameterMasks(names []string, actions map[string]ParameterAction) (*ParameterMasks, error) {
	masks := &ParameterMasks{
		Infer:          make([]bool, len(names)),
		Marginalize:    make([]bool, len(names)),
		Condition:      make([]bool, len(names)),
		ConditionValue: make([]float64, len(names)),
	}

	for i, name := range names {
		action, ok := actions[name]
		if !ok {
			return nil, fmt.Errorf("parameter %q not found in prior configuration", name)
		}

		switch action.Action {
		case ActionInfer:
			masks.Infer[i] = true
		case ActionMarginalize:
			masks.Marginalize[i] = true
		case ActionCondition:
			masks.Condition[i] = true
			masks.ConditionValue[i] = action.Value
		default:
			return nil, fmt.Errorf("unknown action %q for parameter %q", action.Action, name)
		}
	}

	return masks, nil
}
