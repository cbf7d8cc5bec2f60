package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation property lookup
//
// Property walks maps with string keys, exported struct fields and slice
// indices using a dot-separated path:
//
//	v := map[string]any{
//	    "user": User{Name: "Alice", Tags: []string{"admin"}},
//	}
//
//	Property(v, "user.Name")   → "Alice", true
//	Property(v, "user.Tags.0") → "admin", true
//	Property(v, "user.Age")    → nil, false
// ─────────────────────────────────────────────────────────────────────────────

// Property returns the value found by following path through v.
// Pointers and interfaces are dereferenced along the way. An empty path
// returns v itself.
func Property(v any, path string) (any, bool) {
	if path == "" {
		return v, v != nil
	}
	cur := reflect.ValueOf(v)
	for _, seg := range strings.Split(path, ".") {
		cur = indirect(cur)
		if !cur.IsValid() {
			return nil, false
		}
		cur = child(cur, seg)
		if !cur.IsValid() {
			return nil, false
		}
	}
	if !cur.CanInterface() {
		return nil, false
	}
	return cur.Interface(), true
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func child(v reflect.Value, seg string) reflect.Value {
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}
		}
		return v.MapIndex(reflect.ValueOf(seg).Convert(v.Type().Key()))
	case reflect.Struct:
		f, ok := v.Type().FieldByName(seg)
		if !ok || !f.IsExported() {
			return reflect.Value{}
		}
		field, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}
		}
		return field
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= v.Len() {
			return reflect.Value{}
		}
		return v.Index(i)
	}
	return reflect.Value{}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sort keys for SortByProperty
// ─────────────────────────────────────────────────────────────────────────────

type keyClass int

const (
	classMissing keyClass = iota
	classBool
	classNumber
	classString
)

type sortKey struct {
	class keyClass
	num   float64
	str   string
}

func newSortKey(v any) (sortKey, error) {
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Invalid:
		return sortKey{class: classMissing}, nil
	case reflect.Bool:
		k := sortKey{class: classBool}
		if rv.Bool() {
			k.num = 1
		}
		return k, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sortKey{class: classNumber, num: float64(rv.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sortKey{class: classNumber, num: float64(rv.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return sortKey{class: classNumber, num: rv.Float()}, nil
	case reflect.String:
		return sortKey{class: classString, str: rv.String()}, nil
	}
	return sortKey{}, fmt.Errorf("%w: %T is not orderable", ErrIncomparable, v)
}

// compare orders missing keys first. Keys of two different present classes
// never meet: SortByProperty rejects them up front.
func (k sortKey) compare(o sortKey) int {
	if k.class != o.class {
		return cmp.Compare(k.class, o.class)
	}
	if k.class == classString {
		return strings.Compare(k.str, o.str)
	}
	return cmp.Compare(k.num, o.num)
}

func errIncomparable(path string, v any) error {
	return fmt.Errorf("%w: property %q holds mixed kinds (found %T)", ErrIncomparable, path, v)
}
