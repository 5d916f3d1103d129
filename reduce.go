package tryseq

import (
	"iter"
)

// Reduce combines all values from an input sequence into a single value using
// a binary function f. The function f must be associative.
//
// Reduce blocks until the sequence is exhausted or an error is encountered,
// either from the function f itself or from upstream. In case of an error,
// the rest of the input is never touched and the error is returned to the
// caller. The hasResult return flag is set to false if the sequence was empty.
func Reduce[A any](in iter.Seq[Try[A]], f func(A, A) (A, error)) (result A, hasResult bool, err error) {
	for a := range in {
		if a.Error != nil {
			return result, hasResult, a.Error
		}

		if !hasResult {
			result = a.Value
			hasResult = true
			continue
		}

		result, err = f(result, a.Value)
		if err != nil {
			return result, hasResult, err
		}
	}

	return result, hasResult, nil
}
