package evaluation

import "fmt"

// EvaluationError wraps a failure while evaluating one area.
type EvaluationError struct {
	Area  Area
	Cause error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation of %s failed: %v", e.Area, e.Cause)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

// ProfileRequiredError is returned when the profile area is evaluated
// without a stored profile.
type ProfileRequiredError struct{}

func (e *ProfileRequiredError) Error() string {
	return "profile evaluation requires a saved profile"
}
