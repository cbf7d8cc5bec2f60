// Package collections provides a generic Collection type that holds either an
// ordered sequence or a string-keyed mapping, together with the iteration
// primitive and the map/filter/reduce family built on it.
//
// # Overview
//
// The central type is [Collection][T]. It is a tagged variant: [New] and
// [From] build sequences, [FromMap] builds mappings. Both shapes are walked
// by the same primitive, [Collection.Each], which hands every iterator the
// item and its [Key]:
//
//	collections.FromMap(map[string]int{"b": 2, "a": 1}).
//	    Each(func(n int, k collections.Key) {
//	        fmt.Println(k, n) // a 1, then b 2
//	    })
//
// Filtering ([Collection.Filter], [Collection.Reject]) and testing
// ([Collection.Every], [Collection.Some]) are methods. Operations that change
// the element type are package-level functions: [Map], [Pluck], [PluckKey],
// [Reduce], [ReduceFirst], [Contains], [Invoke], [InvokeMethod], [GroupBy].
//
// # Reducing without a seed
//
// [Reduce] always takes an initial accumulator. [ReduceFirst] seeds the fold
// with the first item instead and returns [ErrEmptyCollection] when there is
// no first item.
//
// # Untyped input
//
// [EachValue] accepts any value and dispatches on its dynamic shape. Inputs
// that are neither a sequence nor a string-keyed map are ignored rather than
// reported as errors.
//
// # Immutability
//
// All transformation functions return a *new* Collection, leaving the
// original unchanged.
package collections
