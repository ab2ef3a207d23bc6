package scheduling

import "fmt"

// ParseError marks a single unparsable source record or input value. Parse
// failures on feed records are skipped and logged, never fatal.
type ParseError struct {
	Code  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Code, e.Value)
}

func NewMalformedTime(value string) error {
	return &ParseError{Code: "malformedTime", Value: value}
}

func NewMalformedDate(value string) error {
	return &ParseError{Code: "malformedDate", Value: value}
}

// TransitionError marks a rejected selection-machine transition. The machine
// state is unchanged when one is returned; the caller re-prompts the user.
type TransitionError struct {
	Code    string
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewDateUnavailable(date string) error {
	return &TransitionError{
		Code:    "dateUnavailable",
		Message: fmt.Sprintf("date %s is not open for booking", date),
	}
}

func NewTimeUnavailable(clock string) error {
	return &TransitionError{
		Code:    "timeUnavailable",
		Message: fmt.Sprintf("time %s is not available on the chosen date", clock),
	}
}

func NewSelectionIncomplete() error {
	return &TransitionError{
		Code:    "selectionIncomplete",
		Message: "both a date and a time must be chosen before confirming",
	}
}
