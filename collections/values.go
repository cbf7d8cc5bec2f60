package collections

import (
	"reflect"
	"slices"
	"strings"
)

// Identity returns v unchanged. It is the iterator used when a caller does
// not supply one.
func Identity[T any](v T) T { return v }

// Truthy reports whether v counts as "set": false for nil, false, zero
// numbers, NaN, empty strings, empty or nil slices and maps, nil pointers
// and zero-valued structs; true otherwise.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == f && f != 0
	}
	return !rv.IsZero()
}

func truthy[T any](item T, _ Key) bool { return Truthy(item) }

// EachValue walks v without knowing its static type, calling fn(value, key)
// for every element:
//
//   - *Collection values are walked with [Collection.Each];
//   - slices and arrays are walked in index order;
//   - maps with string keys are walked in ascending key order;
//   - pointers and interfaces are dereferenced first.
//
// Anything else, including nil, is silently ignored.
func EachValue(v any, fn func(any, Key)) {
	if c, ok := v.(interface{ eachAny(func(any, Key)) }); ok {
		c.eachAny(fn)
		return
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			fn(rv.Index(i).Interface(), Key{Index: i})
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		for i, k := range keys {
			fn(rv.MapIndex(k).Interface(), Key{Index: i, Name: k.String(), named: true})
		}
	}
}
