package arr

import (
	"cmp"
	"math/rand/v2"
	"reflect"
	"slices"

	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements (all of them when n exceeds
// the length, none when n <= 0).
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	return slices.Clone(items[:n:n])
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements. items is left untouched.
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	return slices.Clone(items[len(items)-n:])
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// PluckProperty reads the property at path (see [Property]) from every
// element. Elements without the property contribute nil.
//
//	PluckProperty(people, "address.city") // → ["London", nil, "Paris"]
func PluckProperty[T any](items []T, path string) []any {
	return Pluck(items, func(item T) any {
		v, _ := Property(item, path)
		return v
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, preserving the first
// occurrence of every value.
func Uniq[T comparable](items []T) []T {
	return UniqBy(items, func(item T) T { return item })
}

// UniqBy returns elements with duplicates removed using a key function.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the elements of the first sequence that appear in
// every other sequence. Each value appears once, in first-seen order.
// With no sequences the result is empty.
func Intersection[T comparable](seqs ...[]T) []T {
	out := make([]T, 0)
	if len(seqs) == 0 {
		return out
	}
	others := make([]map[T]struct{}, len(seqs)-1)
	for i, seq := range seqs[1:] {
		others[i] = toSet(seq)
	}
	seen := make(map[T]struct{})
	for _, item := range seqs[0] {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		if inAll(item, others) {
			out = append(out, item)
		}
	}
	return out
}

// Difference returns the elements of first that appear in none of others,
// in their original order. first is never modified.
func Difference[T comparable](first []T, others ...[]T) []T {
	exclude := make(map[T]struct{})
	for _, seq := range others {
		for _, item := range seq {
			exclude[item] = struct{}{}
		}
	}
	out := make([]T, 0, len(first))
	for _, item := range first {
		if _, found := exclude[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the i-th element of every sequence into tuple i. The result is
// as long as the longest sequence; positions past the end of a shorter
// sequence hold [None].
//
//	Zip([]any{"a", "b", "c"}, []any{1, 2})
//	// → [[a 1] [b 2] [c <absent>]]
func Zip[T any](seqs ...[]T) [][]Maybe[T] {
	longest := 0
	for _, seq := range seqs {
		longest = max(longest, len(seq))
	}
	out := make([][]Maybe[T], longest)
	for i := range out {
		row := make([]Maybe[T], len(seqs))
		for j, seq := range seqs {
			if i < len(seq) {
				row[j] = Some(seq[i])
			}
		}
		out[i] = row
	}
	return out
}

// Pair holds two values of possibly different types.
// It is the element type produced by [ZipPairs].
type Pair[A, B any] struct {
	First  A
	Second B
}

// ZipPairs is the two-sequence form of [Zip] for sequences of different
// element types.
func ZipPairs[A, B any](a []A, b []B) []Pair[Maybe[A], Maybe[B]] {
	n := max(len(a), len(b))
	out := make([]Pair[Maybe[A], Maybe[B]], n)
	for i := range out {
		if i < len(a) {
			out[i].First = Some(a[i])
		}
		if i < len(b) {
			out[i].Second = Some(b[i])
		}
	}
	return out
}

// Flatten recursively flattens nested slices and arrays into a single slice,
// depth first and left to right. Values that are not slices or arrays are
// copied through unchanged; a non-slice argument yields a one-element slice.
//
//	Flatten([]any{1, []any{2, []any{3, []any{4}}, 5}}) // → [1 2 3 4 5]
func Flatten(items any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
			return
		case nil:
			out = append(out, nil)
			return
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			out = append(out, v)
			return
		}
		for i := 0; i < rv.Len(); i++ {
			flatten(rv.Index(i).Interface())
		}
	}
	flatten(items)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns a copy of items sorted ascending by the key fn extracts.
// The sort is stable and fn is called once per element. NaN keys sort first.
func SortBy[T any, K constraints.Ordered](items []T, fn func(T) K) []T {
	keys := make([]K, len(items))
	for i, item := range items {
		keys[i] = fn(item)
	}
	return sortByKeys(items, func(a, b int) int { return cmp.Compare(keys[a], keys[b]) })
}

// SortByProperty returns a copy of items sorted ascending by the property at
// path (see [Property]). Numbers compare numerically, strings lexically and
// booleans false-first; elements without the property sort first. Returns
// [ErrIncomparable] when the property holds values of different kinds.
func SortByProperty[T any](items []T, path string) ([]T, error) {
	keys := make([]sortKey, len(items))
	var class keyClass
	for i, item := range items {
		v, _ := Property(item, path)
		k, err := newSortKey(v)
		if err != nil {
			return nil, err
		}
		if k.class != classMissing {
			if class != classMissing && class != k.class {
				return nil, errIncomparable(path, v)
			}
			class = k.class
		}
		keys[i] = k
	}
	return sortByKeys(items, func(a, b int) int { return keys[a].compare(keys[b]) }), nil
}

// Shuffle returns a randomly shuffled copy of items using the Fisher–Yates
// algorithm. items is left untouched.
func Shuffle[T any](items []T) []T {
	out := slices.Clone(items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if out == nil {
		out = []T{}
	}
	return out
}

// sortByKeys stably sorts a copy of items with compare comparing the original
// positions of two elements.
func sortByKeys[T any](items []T, compare func(a, b int) int) []T {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, compare)
	out := make([]T, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func inAll[T comparable](item T, sets []map[T]struct{}) bool {
	for _, set := range sets {
		if _, ok := set[item]; !ok {
			return false
		}
	}
	return true
}

func clamp(n, length int) int {
	return min(max(n, 0), length)
}
