package tryseq_test

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/vael/tryseq"
)

// --- Package examples ---

// This example demonstrates a pipeline over nested fallible collections:
// each outer item is a page of results, and each result inside a page can
// itself have failed. The pages are flattened, the two error levels are
// converged into one, and iteration stops at the first problem.
func Example() {
	pages := slices.Values([]tryseq.Try[[]tryseq.Try[int]]{
		{Value: []tryseq.Try[int]{{Value: 1}, {Value: 2}}},
		{Value: []tryseq.Try[int]{{Value: 3}, {Value: 4}}},
		{Value: []tryseq.Try[int]{{Error: errors.New("item rejected")}, {Value: 5}}},
		{Value: []tryseq.Try[int]{{Value: 6}, {Value: 7}}},
	})

	// Flatten the pages into a sequence of per-item results.
	items := tryseq.Flatten(pages)

	// Converge the outer and inner error levels into a single one.
	values := tryseq.Map(items, func(x tryseq.Try[int]) (int, error) {
		return x.Value, x.Error
	})

	// Stop iterating after the first error is encountered.
	values = tryseq.StopAfterError(values)

	collected, err := tryseq.ToSlice(values)

	fmt.Println("Values:", collected)
	fmt.Println("Error:", err)

	// Output:
	// Values: [1 2 3 4]
	// Error: item rejected
}

// Flattening a sequence whose successful items hold slices. A plain flatten
// would have to unwrap each item first and panic on the failed one; Flatten
// forwards it as a single output item instead.
func ExampleFlatten() {
	pages := slices.Values([]tryseq.Try[[]int]{
		{Value: []int{1, 2}},
		{Value: []int{3, 4}},
		{Error: errors.New("page 3 unavailable")},
		{Value: []int{5, 6}},
	})

	for x := range tryseq.Flatten(pages) {
		if x.Error != nil {
			fmt.Println("error:", x.Error)
			continue
		}
		fmt.Println(x.Value)
	}

	// Output:
	// 1
	// 2
	// 3
	// 4
	// error: page 3 unavailable
	// 5
	// 6
}

func ExampleStopAfterError() {
	in := slices.Values([]tryseq.Try[string]{
		{Value: "10"},
		{Value: "20"},
		{Error: errors.New("lost connection")},
		{Value: "30"},
	})

	for x := range tryseq.StopAfterError(in) {
		if x.Error != nil {
			fmt.Println("error:", x.Error)
			continue
		}
		fmt.Println(x.Value)
	}

	// Output:
	// 10
	// 20
	// error: lost connection
}

func ExampleMap() {
	in := tryseq.FromSlice([]string{"1", "2", "oops", "4"}, nil)

	out := tryseq.Map(in, func(s string) (int, error) {
		return strconv.Atoi(s)
	})

	for x := range out {
		if x.Error != nil {
			fmt.Println("error:", x.Error)
			continue
		}
		fmt.Println(x.Value)
	}

	// Output:
	// 1
	// 2
	// error: strconv.Atoi: parsing "oops": invalid syntax
	// 4
}
