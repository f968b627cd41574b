package suggestion

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Constraints are the trip parameters a caller supplies before asking for suggestions.
type Constraints struct {
	StartingPoint   string   `json:"startingPoint" validate:"required"`
	Destinations    []string `json:"destinations" validate:"required,min=1,dive,required"`
	Duration        string   `json:"duration"`
	TravelerProfile string   `json:"travelerProfile"`
	BudgetTier      string   `json:"budgetTier"`
	Interests       string   `json:"interests"`
	Notes           string   `json:"notes,omitempty"`
}

// Validate checks the fields a request surface should insist on. Synthesize itself
// accepts any Constraints value.
func (c Constraints) Validate() error {
	return validate.Struct(c)
}
