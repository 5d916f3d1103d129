// Package tryseq provides lazy, composable transformations for sequences of
// fallible items. It is built on the standard [iter.Seq] iterators and wraps
// each item in a [Try] container that holds either a value or an error, so
// errors travel through a pipeline as ordinary items instead of aborting it
// or being silently dropped. The library has zero external dependencies.
//
// # Sequences and Try Containers
//
// In this package, a sequence refers to an iter.Seq of [Try] containers. A Try
// container is a simple struct that holds a value and an error; a non-nil
// error marks the item as failed. When an "empty sequence" is referred to, it
// means a sequence whose iteration yields nothing.
//
// # Laziness and Ownership
//
// All transformations, such as [Map], [Flatten] or [StopAfterError], take a
// sequence as an input and return a new sequence as an output. Nothing
// happens until the output is iterated: producing the Nth output item
// advances the input exactly as far as needed and never runs ahead. No
// goroutines are spawned and no items are buffered; the consumer's range loop
// is the only driver.
//
// A transformation takes ownership of its input: the input sequence must not
// be iterated elsewhere afterwards. Stopping the output early stops the input
// at the same position, so there is nothing to drain or close. The one
// exception to the no-goroutines rule is [ToChan], which bridges a sequence
// into a channel and is documented separately.
//
// Transformations are designed to be composed into pipelines:
//
//	items := tryseq.Flatten(pages)
//	items = tryseq.Filter(items, ...)
//	items = tryseq.StopAfterError(items)
//	// consume the items with a blocking function such as ForEach or ToSlice
//
// # Error handling
//
// All transformations forward errors from the input sequence to the output
// sequence, and any errors returned by user-provided functions are sent to
// the output as well. Transformations never create, wrap or classify errors
// on their own; they only route the ones already present. This means errors
// flow down the pipeline to the final stage, where blocking functions such as
// [ForEach], [ToSlice] or [Err] stop at and return the first one.
//
// Two adapters give finer control over that flow. [StopAfterError] truncates
// a sequence immediately after its first error, for pipelines that must not
// look past a failure. [Catch] handles or replaces errors mid-pipeline, for
// pipelines that should survive some of them.
package tryseq
