package tryseq

import (
	"iter"
)

// StopAfterError truncates a sequence at its first error.
// Every item up to and including the first error is forwarded unchanged;
// after the error has been delivered, the returned sequence is exhausted and
// the input is never touched again. A sequence with no errors passes through
// unmodified.
//
// The halt is permanent: it survives re-ranging the returned sequence and
// pull-style access via [Pull], so applying StopAfterError to its own output
// changes nothing. Like all adapters in this package, StopAfterError takes
// ownership of the input sequence.
func StopAfterError[A any](in iter.Seq[Try[A]]) iter.Seq[Try[A]] {
	if in == nil {
		return nil
	}

	halted := false

	return func(yield func(Try[A]) bool) {
		if halted {
			return
		}

		for x := range in {
			if x.Error != nil {
				// Flip the flag before delivering the error, so the sequence
				// is exhausted even if yield panics or the caller re-ranges.
				halted = true
				yield(x)
				return
			}

			if !yield(x) {
				return
			}
		}
	}
}
