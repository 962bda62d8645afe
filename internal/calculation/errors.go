package calculation

import (
	"errors"
	"fmt"
)

// Input fields named by InvalidInputError
const (
	FieldRate   = "rate"
	FieldTimes  = "times"
	FieldGrowth = "growth"
)

// ErrInvalidInput matches every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports that the rate or period text is not a number,
// or that the growth factor they produce is not a finite real number.
type InvalidInputError struct {
	Field string
	Text  string
}

func (e *InvalidInputError) Error() string {
	if e.Field == FieldGrowth {
		return fmt.Sprintf("%s: growth factor %s is not a finite number", ErrInvalidInput, e.Text)
	}
	return fmt.Sprintf("%s: %s %q is not a number", ErrInvalidInput, e.Field, e.Text)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
