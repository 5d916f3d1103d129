package tryseq

import (
	"iter"
)

// FromSlice converts a slice into a sequence of [Try] containers.
// Additionally, this function can take an error, which goes first in the
// output. Such a signature allows concise wrapping of functions that return
// a slice and an error:
//
//	seq := tryseq.FromSlice(loadUsers())
func FromSlice[A any](slice []A, err error) iter.Seq[Try[A]] {
	if slice == nil && err == nil {
		return nil
	}

	return func(yield func(Try[A]) bool) {
		if err != nil {
			if !yield(Try[A]{Error: err}) {
				return
			}
		}

		for _, x := range slice {
			if !yield(Try[A]{Value: x}) {
				return
			}
		}
	}
}

// FromSeq converts a plain iterator into a sequence of [Try] containers.
// If err is not nil the function returns a sequence with a single error.
//
// Such a function signature allows concise wrapping of functions that return
// an iterator and an error:
//
//	seq := tryseq.FromSeq(someFunc())
func FromSeq[A any](seq iter.Seq[A], err error) iter.Seq[Try[A]] {
	if seq == nil && err == nil {
		return nil
	}

	return func(yield func(Try[A]) bool) {
		if err != nil {
			yield(Try[A]{Error: err})
			return
		}

		for x := range seq {
			if !yield(Try[A]{Value: x}) {
				return
			}
		}
	}
}

// FromSeq2 converts a value-error pairs sequence into a sequence of [Try] containers.
func FromSeq2[A any](seq iter.Seq2[A, error]) iter.Seq[Try[A]] {
	if seq == nil {
		return nil
	}

	return func(yield func(Try[A]) bool) {
		for x, err := range seq {
			if !yield(Wrap(x, err)) {
				return
			}
		}
	}
}

// ToSeq2 converts an input sequence into a sequence of value-error pairs.
//
// For error handling, ToSeq2 is different from ToSlice; it does not stop at
// the first encountered error. Instead, it iterates all value-error pairs,
// allowing the client to decide when to stop.
func ToSeq2[A any](in iter.Seq[Try[A]]) iter.Seq2[A, error] {
	return func(yield func(A, error) bool) {
		for x := range in {
			if !yield(x.Value, x.Error) {
				return
			}
		}
	}
}

// ToSlice collects values from the input sequence until it is exhausted or an
// error is encountered. In case of an error, ToSlice returns the values
// collected so far and the error; the rest of the input is never touched.
func ToSlice[A any](in iter.Seq[Try[A]]) ([]A, error) {
	var res []A

	for x := range in {
		if x.Error != nil {
			return res, x.Error
		}
		res = append(res, x.Value)
	}

	return res, nil
}

// Pull converts the input sequence into a pull-style iterator accessed by the
// two functions next and stop. After the sequence is exhausted or stop is
// called, next keeps returning a zero [Try] and false.
//
// Pull is a wrapper around [iter.Pull].
func Pull[A any](in iter.Seq[Try[A]]) (next func() (Try[A], bool), stop func()) {
	return iter.Pull(in)
}
