package intent

// Matcher reports whether it recognises input and what it produced.
type Matcher[T any] func(input string) (T, bool)

// FirstMatch evaluates matchers in order and returns the result of the first one that
// recognises input. There is no scoring: earlier matchers always win.
func FirstMatch[T any](input string, matchers ...Matcher[T]) (T, bool) {
	for _, m := range matchers {
		if v, ok := m(input); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
