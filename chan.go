package tryseq

import (
	"iter"
)

// FromChan converts a channel of [Try] containers into a sequence.
// Iteration receives from the channel until it is closed or the consumer
// stops early. Stopping early does not drain the channel; the remaining
// items stay available to other receivers.
func FromChan[A any](in <-chan Try[A]) iter.Seq[Try[A]] {
	if in == nil {
		return nil
	}

	return func(yield func(Try[A]) bool) {
		for x := range in {
			if !yield(x) {
				return
			}
		}
	}
}

// ToChan converts a sequence into a channel of [Try] containers.
// This is the only function in the package that spawns a goroutine: the
// sequence is iterated in the background and the channel is closed when it is
// exhausted. The caller must receive until the channel is closed, otherwise
// the goroutine is leaked.
func ToChan[A any](in iter.Seq[Try[A]]) <-chan Try[A] {
	if in == nil {
		return nil
	}

	out := make(chan Try[A])
	go func() {
		defer close(out)

		for x := range in {
			out <- x
		}
	}()

	return out
}
