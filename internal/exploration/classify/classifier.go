// Package classify provides the default rule-based answer classifier.
// The session engine only depends on the classifier contract; this
// implementation covers the rule types the built-in lesson format uses.
package classify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/oppia/explord/internal/exploration"
)

// Rule types understood by the classifier.
const (
	RuleEquals             = "Equals"
	RuleEqualsIgnoringCase = "EqualsIgnoringCase"
	RuleContains           = "Contains"
	RuleNumericEquals      = "NumericEquals"
)

// numericTolerance absorbs float parsing noise in NumericEquals.
const numericTolerance = 1e-9

// ErrMalformedAnswer indicates input the interaction cannot classify,
// e.g. a non-numeric answer against a numeric rule set.
type ErrMalformedAnswer struct {
	Answer string
	Err    error
}

func (e *ErrMalformedAnswer) Error() string {
	return fmt.Sprintf("malformed answer %q: %v", e.Answer, e.Err)
}

func (e *ErrMalformedAnswer) Unwrap() error { return e.Err }

// Classifier evaluates an interaction's answer groups in order and
// returns the first matching outcome, falling back to the interaction's
// default outcome when nothing matches.
type Classifier struct{}

// New creates a rule-based classifier.
func New() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Classify(ctx context.Context, in exploration.Interaction, rawAnswer string) (exploration.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return exploration.Outcome{}, err
	}

	// Continue-style interactions accept anything and always take the
	// default outcome.
	if in.ID == exploration.InteractionContinue {
		return in.DefaultOutcome, nil
	}

	answer := strings.TrimSpace(rawAnswer)
	if answer == "" {
		return exploration.Outcome{}, &ErrMalformedAnswer{Answer: rawAnswer, Err: fmt.Errorf("empty answer")}
	}

	for _, group := range in.AnswerGroups {
		for _, rule := range group.Rules {
			matched, err := matchRule(rule, answer)
			if err != nil {
				return exploration.Outcome{}, err
			}
			if matched {
				return group.Outcome, nil
			}
		}
	}
	return in.DefaultOutcome, nil
}

// matchRule evaluates a single rule against a trimmed answer.
func matchRule(rule exploration.RuleSpec, answer string) (bool, error) {
	switch rule.Type {
	case RuleEquals:
		return answer == strings.TrimSpace(rule.Input), nil

	case RuleEqualsIgnoringCase:
		return strings.EqualFold(answer, strings.TrimSpace(rule.Input)), nil

	case RuleContains:
		return strings.Contains(strings.ToLower(answer), strings.ToLower(strings.TrimSpace(rule.Input))), nil

	case RuleNumericEquals:
		got, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return false, &ErrMalformedAnswer{Answer: answer, Err: err}
		}
		want, err := strconv.ParseFloat(strings.TrimSpace(rule.Input), 64)
		if err != nil {
			return false, fmt.Errorf("invalid rule input %q: %w", rule.Input, err)
		}
		diff := got - want
		if diff < 0 {
			diff = -diff
		}
		return diff <= numericTolerance, nil

	default:
		return false, fmt.Errorf("unknown rule type %q", rule.Type)
	}
}
