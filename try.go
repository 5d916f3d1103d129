package tryseq

// Try is a container for a value or an error
type Try[A any] struct {
	Value A
	Error error
}

// Wrap puts a value and an error into a [Try] container.
// It's a convenience function for constructing sequence items from
// the common (value, error) pair returned by fallible functions.
func Wrap[A any](value A, err error) Try[A] {
	return Try[A]{Value: value, Error: err}
}

// WrapError puts an error into a [Try] container, leaving the value at its zero.
func WrapError[A any](err error) Try[A] {
	return Try[A]{Error: err}
}
