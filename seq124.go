//go:build go1.24

package tryseq

import "iter"

// Seq is a type alias for a sequence of [Try] containers.
// This alias is optional, but it can make the code more readable.
//
// Before:
//
//	func StreamUsers() iter.Seq[tryseq.Try[*User]] {
//		...
//	}
//
// After:
//
//	func StreamUsers() tryseq.Seq[*User] {
//		...
//	}
//
// Because the error side of a [Try] is Go's ordinary error interface, which is
// already opaque and safe to hand between goroutines, Seq is also the common
// shape for pipelines that mix error types across nesting levels: convert
// once with [Flatten] or [Map] and converge on Seq[T].
type Seq[T any] = iter.Seq[Try[T]]
