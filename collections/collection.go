package collections

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Collection is a generic, immutable-by-default container that holds either
// an ordered sequence of T or a mapping from string keys to T.
//
// The two shapes share one traversal primitive, [Collection.Each], and every
// other operation in this package is built on top of it. Iterators receive
// the element together with its [Key]: the index for sequences, the key name
// (plus its position in traversal order) for mappings.
//
// # Creating a collection
//
//	seq := collections.New(1, 2, 3)
//	seq := collections.From([]string{"a", "b", "c"})
//	obj := collections.FromMap(map[string]int{"b": 2, "a": 1})
//	nothing := collections.Empty[int]()
//
// # Traversal order
//
// Sequences are walked in index order. Mappings are walked in ascending key
// order; the order is fixed when the collection is built, so traversal is
// deterministic even though Go maps are not.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type ([Map], [Pluck], [Reduce],
// [Invoke], …) are package-level functions.
type Collection[T any] struct {
	items []T
	// keys is nil for sequences. For mappings keys[i] names items[i] and the
	// slice is sorted ascending.
	keys []string
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a sequence Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a sequence Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// FromMap creates a mapping Collection from m (the entries are copied).
// Traversal order is the ascending order of the keys.
func FromMap[T any](m map[string]T) *Collection[T] {
	keys := slices.Sorted(maps.Keys(m))
	if keys == nil {
		keys = []string{}
	}
	items := make([]T, len(keys))
	for i, k := range keys {
		items[i] = m[k]
	}
	return &Collection[T]{items: items, keys: keys}
}

// Empty creates an empty sequence Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// IsMap reports whether c is a mapping rather than a sequence.
func (c *Collection[T]) IsMap() bool { return c != nil && c.keys != nil }

// All returns a copy of the values in traversal order.
func (c *Collection[T]) All() []T {
	if c == nil {
		return []T{}
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return c.Count() == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return c.Count() > 0 }

// Keys returns the key of every item in traversal order.
func (c *Collection[T]) Keys() []Key {
	keys := make([]Key, 0, c.Count())
	c.Each(func(_ T, k Key) { keys = append(keys, k) })
	return keys
}

// Get returns the value stored under name in a mapping.
// Sequences never match.
func (c *Collection[T]) Get(name string) (T, bool) {
	var zero T
	if !c.IsMap() {
		return zero, false
	}
	i, found := slices.BinarySearch(c.keys, name)
	if !found {
		return zero, false
	}
	return c.items[i], true
}

// At returns the item at position i in traversal order.
func (c *Collection[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= c.Count() {
		return zero, false
	}
	return c.items[i], true
}

// Entries returns every (key, value) pair in traversal order.
func (c *Collection[T]) Entries() []Pair[Key, T] {
	out := make([]Pair[Key, T], 0, c.Count())
	c.Each(func(item T, k Key) {
		out = append(out, Pair[Key, T]{First: k, Second: item})
	})
	return out
}

// ToMap returns the collection as a map. Mappings return a copy of their
// entries; sequences are keyed by their decimal index.
func (c *Collection[T]) ToMap() map[string]T {
	out := make(map[string]T, c.Count())
	c.Each(func(item T, k Key) { out[k.String()] = item })
	return out
}

// ToJSON serialises a sequence as a JSON array and a mapping as a JSON object.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	if c.IsMap() {
		return json.Marshal(c.ToMap())
	}
	return json.Marshal(c.All())
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.All())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, key) once for every item in traversal order.
// It is a no-op on an empty or nil collection.
func (c *Collection[T]) Each(fn func(T, Key)) {
	if c == nil {
		return
	}
	for i, item := range c.items {
		k := Key{Index: i}
		if c.keys != nil {
			k.Name, k.named = c.keys[i], true
		}
		fn(item, k)
	}
}

// eachAny lets [EachValue] walk a *Collection without knowing T.
func (c *Collection[T]) eachAny(fn func(any, Key)) {
	c.Each(func(item T, k Key) { fn(item, k) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & testing
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new sequence holding the items for which fn returns true.
// Filtering a mapping yields its matching values in traversal order.
func (c *Collection[T]) Filter(fn func(T, Key) bool) *Collection[T] {
	out := make([]T, 0, c.Count())
	c.Each(func(item T, k Key) {
		if fn(item, k) {
			out = append(out, item)
		}
	})
	return &Collection[T]{items: out}
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, Key) bool) *Collection[T] {
	return c.Filter(func(item T, k Key) bool { return !fn(item, k) })
}

// Every reports whether fn holds for every item. It is true for an empty
// collection. A nil fn tests the truthiness of the item itself.
func (c *Collection[T]) Every(fn func(T, Key) bool) bool {
	if fn == nil {
		fn = truthy[T]
	}
	return Reduce(c, func(ok bool, item T, k Key) bool {
		return ok && fn(item, k)
	}, true)
}

// Some reports whether fn holds for at least one item. It is false for an
// empty collection. A nil fn tests the truthiness of the item itself.
func (c *Collection[T]) Some(fn func(T, Key) bool) bool {
	if fn == nil {
		fn = truthy[T]
	}
	return !c.Every(func(item T, k Key) bool { return !fn(item, k) })
}

// First returns the first item in traversal order, optionally matching fns[0].
func (c *Collection[T]) First(fns ...func(T, Key) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	c.Each(func(item T, k Key) {
		if ok || (len(fns) > 0 && !fns[0](item, k)) {
			return
		}
		found, ok = item, true
	})
	return found, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys
// ─────────────────────────────────────────────────────────────────────────────

// Key identifies an item's position: an index for sequences, a name for
// mappings. For mappings Index is the key's position in traversal order.
type Key struct {
	Index int
	Name  string
	named bool
}

// Named reports whether the key belongs to a mapping entry.
func (k Key) Named() bool { return k.named }

// String returns the key name for mapping entries and the decimal index
// otherwise.
func (k Key) String() string {
	if k.named {
		return k.Name
	}
	return strconv.Itoa(k.Index)
}
