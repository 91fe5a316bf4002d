package activestep

import (
	"errors"
	"fmt"
	"regexp"
)

// Validator checks a decoded step.
type Validator interface {
	// Validate returns nil if step is valid.
	Validate(step *ActiveStep) error
}

// RegexValidator checks step identifiers against a regular expression.
type RegexValidator struct {
	Pattern     *regexp.Regexp
	Description string // Human-readable description of what the pattern expects
}

// Validate implements the Validator interface.
func (v *RegexValidator) Validate(step *ActiveStep) error {
	if !v.Pattern.MatchString(step.Identifier) {
		return fmt.Errorf("identifier does not match expected pattern: %s", v.Description)
	}
	return nil
}

// FuncValidator uses a custom function to validate steps.
type FuncValidator struct {
	ValidateFunc func(step *ActiveStep) error
}

// Validate implements the Validator interface.
func (v *FuncValidator) Validate(step *ActiveStep) error {
	return v.ValidateFunc(step)
}

// ErrTimerWithoutDuration is reported by TimerDurationValidator.
var ErrTimerWithoutDuration = errors.New("startTimerAutomatically requires a positive duration")

// TimerDurationValidator rejects steps that start a timer but have no duration.
var TimerDurationValidator Validator = &FuncValidator{ValidateFunc: func(step *ActiveStep) error {
	if step.Commands.Has(StartTimerAutomatically) && step.Duration <= 0 {
		return ErrTimerWithoutDuration
	}
	return nil
}}

// ValidatorRegistry manages validators per step type. Validators registered
// under the empty type apply to every step.
type ValidatorRegistry struct {
	validators map[string][]Validator
}

// NewValidatorRegistry creates a new validator registry.
func NewValidatorRegistry() *ValidatorRegistry {
	return &ValidatorRegistry{
		validators: make(map[string][]Validator),
	}
}

// Register adds a validator for a step type.
// Multiple validators can be registered for the same step type.
func (r *ValidatorRegistry) Register(stepType string, validator Validator) {
	if validator == nil {
		return
	}
	r.validators[stepType] = append(r.validators[stepType], validator)
}

// RegisterRegex creates and registers a RegexValidator.
func (r *ValidatorRegistry) RegisterRegex(stepType, pattern, description string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern for step type %s: %w", stepType, err)
	}

	r.Register(stepType, &RegexValidator{
		Pattern:     re,
		Description: description,
	})
	return nil
}

// RegisterFunc creates and registers a FuncValidator.
func (r *ValidatorRegistry) RegisterFunc(stepType string, validateFunc func(*ActiveStep) error) {
	r.Register(stepType, &FuncValidator{
		ValidateFunc: validateFunc,
	})
}

// ValidateStep runs the validators for every step followed by those for
// the step's type, stopping at the first failure.
func (r *ValidatorRegistry) ValidateStep(step *ActiveStep) error {
	if r == nil {
		return nil
	}
	for _, v := range r.validators[""] {
		if err := v.Validate(step); err != nil {
			return err
		}
	}
	if step.Type == "" {
		return nil
	}
	for _, v := range r.validators[step.Type] {
		if err := v.Validate(step); err != nil {
			return err
		}
	}
	return nil
}
