package collections

import (
	"fmt"
	"reflect"
)

// This file contains package-level generic functions for operations that
// transform a Collection[T] into something of another type.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with the
// filtering methods:
//
//	names := collections.Map(
//	    users.Filter(func(u User, _ collections.Key) bool { return u.Active }),
//	    func(u User, _ collections.Key) string { return u.Name },
//	)

// Map applies fn to every item and returns a new sequence of the results.
// The result always has the same length as c.
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, Key) U) *Collection[U] {
	out := make([]U, 0, c.Count())
	c.Each(func(item T, k Key) {
		out = append(out, fn(item, k))
	})
	return &Collection[U]{items: out}
}

// Pluck extracts a single field U from every item T.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(item T, _ Key) U { return fn(item) })
}

// PluckKey reads record[key] from every record. Records without the key
// contribute the zero value of V.
//
//	ages := collections.PluckKey(people, "age")
func PluckKey[K comparable, V any](c *Collection[map[K]V], key K) *Collection[V] {
	return Map(c, func(record map[K]V, _ Key) V { return record[key] })
}

// Reduce folds c into a single value of type U, starting from initial.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int, _ collections.Key) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, Key) U, initial U) U {
	result := initial
	c.Each(func(item T, k Key) {
		result = fn(result, item, k)
	})
	return result
}

// ReduceFirst folds c using its first item as the seed; fn is first called
// with the second item. Returns [ErrEmptyCollection] when c has no items,
// since there is nothing to seed the accumulator with.
func ReduceFirst[T any](c *Collection[T], fn func(T, T, Key) T) (T, error) {
	var acc T
	if c.IsEmpty() {
		return acc, ErrEmptyCollection
	}
	seeded := false
	c.Each(func(item T, k Key) {
		if !seeded {
			acc, seeded = item, true
			return
		}
		acc = fn(acc, item, k)
	})
	return acc, nil
}

// Contains reports whether target is one of the items, compared with ==.
func Contains[T comparable](c *Collection[T], target T) bool {
	return Reduce(c, func(found bool, item T, _ Key) bool {
		return found || item == target
	}, false)
}

// Invoke calls fn(item, args...) for every item and collects the results in
// traversal order.
//
//	upper := collections.Invoke(words, func(s string, _ ...any) string {
//	    return strings.ToUpper(s)
//	})
func Invoke[T, U any](c *Collection[T], fn func(T, ...any) U, args ...any) *Collection[U] {
	return Map(c, func(item T, _ Key) U { return fn(item, args...) })
}

// InvokeMethod calls the member called name on every item with args and
// collects the first result of each call (nil for functions without
// results).
//
// The member is resolved as an exported method (pointer-receiver methods are
// found on addressable copies), then as a function-valued struct field or map
// entry. Returns [ErrNotCallable] when an item has no such callable member and
// [ErrInvalidArgument] when args do not fit its signature.
func InvokeMethod[T any](c *Collection[T], name string, args ...any) ([]any, error) {
	out := make([]any, 0, c.Count())
	var err error
	c.Each(func(item T, k Key) {
		if err != nil {
			return
		}
		var res any
		res, err = callMember(item, name, args)
		if err != nil {
			err = fmt.Errorf("%w (member %q, item %s)", err, name, k)
			return
		}
		out = append(out, res)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GroupBy groups items by the comparable key K extracted by fn.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee, _ collections.Key) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T, Key) K) map[K]*Collection[T] {
	groups := make(map[K]*Collection[T])
	c.Each(func(item T, key Key) {
		k := fn(item, key)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	})
	return groups
}

func callMember(item any, name string, args []any) (any, error) {
	fn := resolveMember(reflect.ValueOf(item), name)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, ErrNotCallable
	}
	in, err := callArgs(fn.Type(), args)
	if err != nil {
		return nil, err
	}
	res := fn.Call(in)
	if len(res) == 0 {
		return nil, nil
	}
	return res[0].Interface(), nil
}

func resolveMember(v reflect.Value, name string) reflect.Value {
	if !v.IsValid() {
		return reflect.Value{}
	}
	if m := v.MethodByName(name); m.IsValid() {
		return m
	}
	if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		if m := p.MethodByName(name); m.IsValid() {
			return m
		}
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	var member reflect.Value
	switch v.Kind() {
	case reflect.Struct:
		f, ok := v.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return reflect.Value{}
		}
		field, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}
		}
		member = field
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}
		}
		member = v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
	default:
		return reflect.Value{}
	}
	if member.IsValid() && member.Kind() == reflect.Interface && !member.IsNil() {
		member = member.Elem()
	}
	return member
}

func callArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: got %d arguments, want at least %d", ErrInvalidArgument, len(args), n-1)
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: got %d arguments, want %d", ErrInvalidArgument, len(args), n)
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			want = ft.In(n - 1).Elem()
		} else {
			want = ft.In(i)
		}
		if arg == nil {
			switch want.Kind() {
			case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
				in[i] = reflect.Zero(want)
				continue
			}
			return nil, fmt.Errorf("%w: argument %d is nil, want %s", ErrInvalidArgument, i, want)
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(want) {
			return nil, fmt.Errorf("%w: argument %d is %s, want %s", ErrInvalidArgument, i, av.Type(), want)
		}
		in[i] = av
	}
	return in, nil
}
