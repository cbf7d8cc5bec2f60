// Package arr provides standalone helper functions for Go slices and maps:
// deduplication, set operations, zipping, flattening, sorting, shuffling,
// shallow object merging and dot-notation property lookup.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values, no wrapper
// type required. None of them modifies its input:
//
//	arr.Uniq([]int{1, 2, 2, 3, 1})                   // → [1 2 3]
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}) // → [2 3]
//	arr.Difference([]int{1, 2, 3, 4}, []int{2, 4})   // → [1 3]
//	arr.SortBy(users, func(u User) int { return u.Age })
//
// # Absent values
//
// [Zip] pads shorter sequences with [None] rather than the zero value, so a
// real 0 or "" stays distinguishable from a missing position.
//
// # Objects
//
// [Extend] and [Defaults] shallow-merge maps with two overwrite policies:
//
//	arr.Extend(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})   // → a:2 b:3
//	arr.Defaults(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3}) // → a:1 b:3
//
// # Properties by name
//
// [Property] reads nested map keys, exported struct fields and slice indices
// by dot-separated path; [PluckProperty] and [SortByProperty] build on it.
package arr
