package tryseq

import (
	"iter"
)

// Map applies a transformation function to each item in an input sequence.
// If an error is encountered, either from the function f itself or from upstream,
// it is forwarded to the output for further handling.
func Map[A, B any](in iter.Seq[Try[A]], f func(A) (B, error)) iter.Seq[Try[B]] {
	if in == nil {
		return nil
	}

	return func(yield func(Try[B]) bool) {
		for a := range in {
			if a.Error != nil {
				if !yield(Try[B]{Error: a.Error}) {
					return
				}
				continue
			}

			b, err := f(a.Value)
			if err != nil {
				if !yield(Try[B]{Error: err}) {
					return
				}
				continue
			}

			if !yield(Try[B]{Value: b}) {
				return
			}
		}
	}
}

// Filter removes items that do not meet a specified condition.
// If an error is encountered, either from the function f itself or from upstream,
// it is forwarded to the output for further handling. Errors are never filtered out.
func Filter[A any](in iter.Seq[Try[A]], f func(A) (bool, error)) iter.Seq[Try[A]] {
	if in == nil {
		return nil
	}

	return func(yield func(Try[A]) bool) {
		for a := range in {
			if a.Error != nil {
				if !yield(a) {
					return
				}
				continue
			}

			keep, err := f(a.Value)
			if err != nil {
				if !yield(Try[A]{Error: err}) {
					return
				}
				continue
			}

			if keep && !yield(a) {
				return
			}
		}
	}
}

// FlatMap applies a function to each item in an input sequence, where the
// function returns a sequence of items. These items are then flattened into a
// single output sequence. Errors from upstream are forwarded to the output as is.
func FlatMap[A, B any](in iter.Seq[Try[A]], f func(A) iter.Seq[Try[B]]) iter.Seq[Try[B]] {
	if in == nil {
		return nil
	}

	return func(yield func(Try[B]) bool) {
		for a := range in {
			if a.Error != nil {
				if !yield(Try[B]{Error: a.Error}) {
					return
				}
				continue
			}

			for b := range f(a.Value) {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// Catch allows handling errors from the input sequence.
// When f returns nil, the error is considered handled and filtered out;
// otherwise it is replaced by the result of f. Successful items pass through untouched.
func Catch[A any](in iter.Seq[Try[A]], f func(error) error) iter.Seq[Try[A]] {
	if in == nil {
		return nil
	}

	return func(yield func(Try[A]) bool) {
		for a := range in {
			if a.Error != nil {
				err := f(a.Error)
				if err == nil {
					continue // error handled, filter out
				}
				a = Try[A]{Error: err} // error replaced by f(a.Error)
			}

			if !yield(a) {
				return
			}
		}
	}
}
