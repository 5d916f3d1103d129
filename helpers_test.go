package tryseq

import (
	"iter"
)

func toItemSlice[A any](in iter.Seq[Try[A]]) []Try[A] {
	var items []Try[A]
	for x := range in {
		items = append(items, x)
	}
	return items
}

func toSliceAndErrors[A any](in iter.Seq[Try[A]]) ([]A, []string) {
	var values []A
	var errors []string

	for x := range in {
		if x.Error != nil {
			errors = append(errors, x.Error.Error())
			continue
		}

		values = append(values, x.Value)
	}

	return values, errors
}

func replaceWithError[A comparable](in iter.Seq[Try[A]], value A, err error) iter.Seq[Try[A]] {
	return func(yield func(Try[A]) bool) {
		for x := range in {
			if x.Error == nil && x.Value == value {
				x.Error = err
			}
			if !yield(x) {
				return
			}
		}
	}
}

// counted forwards the input sequence, incrementing *n for each item the
// consumer actually pulls. Used to verify that adapters never run ahead.
func counted[A any](in iter.Seq[Try[A]], n *int) iter.Seq[Try[A]] {
	return func(yield func(Try[A]) bool) {
		for x := range in {
			*n++
			if !yield(x) {
				return
			}
		}
	}
}

// boundedRange yields 1..to, recording in *furthest the highest value the
// consumer has seen. Used to verify that inner collections are not iterated
// past what the output required.
func boundedRange(to int, furthest *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= to; i++ {
			*furthest = i
			if !yield(i) {
				return
			}
		}
	}
}

// endlessPairs yields Try items holding [2k, 2k+1] slices forever, recording
// in *pulled how many items were produced.
func endlessPairs(pulled *int) iter.Seq[Try[[]int]] {
	return func(yield func(Try[[]int]) bool) {
		for i := 0; ; i++ {
			*pulled++
			if !yield(Try[[]int]{Value: []int{2 * i, 2*i + 1}}) {
				return
			}
		}
	}
}
