package quota

import "errors"

// ErrExhausted is returned when an owner has no suggestion requests left this month.
var ErrExhausted = errors.New("suggestion quota exhausted")

// DefaultMonthly is the number of suggestion requests granted per month.
const DefaultMonthly = 100
