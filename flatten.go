package tryseq

import (
	"iter"
)

// Flatten unrolls a sequence of [Try] containers holding slices into a flat
// sequence of [Try] containers holding single elements.
// Each successful item contributes one output item per slice element, in slice
// order; each error is forwarded to the output as a single item and is never
// unrolled. Empty slices contribute nothing. The output order is a strict
// concatenation in input order.
//
// Flatten is lazy: producing the next output item advances the input and the
// current slice only as far as needed. A plain flatten that unwraps values
// first would have to panic or drop errors; Flatten routes them through
// instead.
func Flatten[S ~[]E, E any](in iter.Seq[Try[S]]) iter.Seq[Try[E]] {
	if in == nil {
		return nil
	}

	return func(yield func(Try[E]) bool) {
		for x := range in {
			if x.Error != nil {
				if !yield(Try[E]{Error: x.Error}) {
					return
				}
				continue
			}

			for _, v := range x.Value {
				if !yield(Try[E]{Value: v}) {
					return
				}
			}
		}
	}
}

// FlattenSeq is like [Flatten], but for items whose successful value is itself
// a lazy sequence rather than a slice. Inner sequences are consumed one
// element at a time, so pulling the Nth output item touches at most the
// minimal prefix of the input and of the current inner sequence.
//
// Inner sequences are assumed to have no failure mode of their own. An inner
// sequence that can fail mid-iteration should be expressed as a sequence of
// [Try] containers and spliced in with [FlatMap] instead.
func FlattenSeq[E any](in iter.Seq[Try[iter.Seq[E]]]) iter.Seq[Try[E]] {
	if in == nil {
		return nil
	}

	return func(yield func(Try[E]) bool) {
		for x := range in {
			if x.Error != nil {
				if !yield(Try[E]{Error: x.Error}) {
					return
				}
				continue
			}

			for v := range x.Value {
				if !yield(Try[E]{Value: v}) {
					return
				}
			}
		}
	}
}
