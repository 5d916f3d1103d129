package tryseq

import (
	"errors"
	"iter"
)

// ForEach applies a function f to each value in an input sequence.
// It blocks until the sequence is exhausted or an error is encountered, either
// from the function f itself or from upstream. The function returns the first
// encountered error, or nil if all items were processed successfully.
// After an error, the rest of the input is never touched.
func ForEach[A any](in iter.Seq[Try[A]], f func(A) error) error {
	for a := range in {
		err := a.Error
		if err == nil {
			err = f(a.Value)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// Err returns the first error encountered in the input sequence, or nil if
// there were no errors. Successful values are discarded.
func Err[A any](in iter.Seq[Try[A]]) error {
	for a := range in {
		if a.Error != nil {
			return a.Error
		}
	}

	return nil
}

// First returns the first item or error encountered in the input sequence,
// whichever comes first. The found return flag is set to false if the
// sequence was empty, otherwise it is set to true.
func First[A any](in iter.Seq[Try[A]]) (value A, found bool, err error) {
	for a := range in {
		return a.Value, true, a.Error
	}

	found = false
	return
}

// Any checks if there is a value in the input sequence that satisfies the
// condition f. It returns true as soon as such a value is found, stopping the
// iteration. Otherwise it returns false, or the first encountered error.
func Any[A any](in iter.Seq[Try[A]], f func(A) (bool, error)) (bool, error) {
	errFound := errors.New("found")

	err := ForEach(in, func(a A) error {
		ok, err := f(a)
		if err != nil {
			return err
		}

		if ok {
			return errFound
		}
		return nil
	})

	if err == nil {
		return false, nil
	}
	if errors.Is(err, errFound) {
		return true, nil
	}
	return false, err
}

// All checks if all values in the input sequence satisfy the condition f.
// It returns false as soon as a non-matching value is found, stopping the
// iteration. Otherwise it returns true, including the case when the sequence
// was empty, or the first encountered error.
func All[A any](in iter.Seq[Try[A]], f func(A) (bool, error)) (bool, error) {
	// Idea: x && y && z is the same as !(!x || !y || !z)
	// So we can use Any with a negated condition to implement All
	res, err := Any(in, func(a A) (bool, error) {
		ok, err := f(a)
		return !ok, err // negate
	})
	return !res, err // negate
}
