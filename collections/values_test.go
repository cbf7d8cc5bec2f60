package collections_test

import (
	"math"
	"testing"

	"github.com/hasbyte1/go-underbar/collections"
)

func TestIdentity(t *testing.T) {
	if collections.Identity(7) != 7 || collections.Identity("x") != "x" {
		t.Fatal("Identity should return its argument")
	}
}

func TestTruthy(t *testing.T) {
	var nilPtr *int
	one := 1
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero int", 0, false},
		{"int", -3, true},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"float", 0.5, true},
		{"empty string", "", false},
		{"string", "a", true},
		{"nil slice", []int(nil), false},
		{"empty slice", []int{}, false},
		{"slice", []int{0}, true},
		{"empty map", map[string]int{}, false},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
		{"zero struct", struct{ A int }{}, false},
		{"struct", struct{ A int }{1}, true},
	}
	for _, tc := range cases {
		if got := collections.Truthy(tc.in); got != tc.want {
			t.Errorf("Truthy(%s) = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestEachValueSlice(t *testing.T) {
	var got []any
	var idx []int
	collections.EachValue([]string{"a", "b"}, func(v any, k collections.Key) {
		got = append(got, v)
		idx = append(idx, k.Index)
	})
	assertSlice(t, got, []any{"a", "b"})
	assertSlice(t, idx, []int{0, 1})
}

func TestEachValueArrayAndPointer(t *testing.T) {
	arr := [3]int{4, 5, 6}
	var got []any
	collections.EachValue(&arr, func(v any, _ collections.Key) { got = append(got, v) })
	assertSlice(t, got, []any{4, 5, 6})
}

func TestEachValueMap(t *testing.T) {
	var names []string
	var got []any
	collections.EachValue(map[string]int{"z": 26, "a": 1, "m": 13}, func(v any, k collections.Key) {
		if !k.Named() {
			t.Fatalf("map key %v should be named", k)
		}
		names = append(names, k.Name)
		got = append(got, v)
	})
	assertSlice(t, names, []string{"a", "m", "z"})
	assertSlice(t, got, []any{1, 13, 26})
}

func TestEachValueCollection(t *testing.T) {
	var names []string
	collections.EachValue(scores(), func(_ any, k collections.Key) { names = append(names, k.Name) })
	assertSlice(t, names, []string{"alice", "bob", "carol"})
}

func TestEachValueIgnoresNonCollections(t *testing.T) {
	var nilSlice *[]int
	for _, v := range []any{nil, 42, "text", struct{}{}, map[int]string{1: "a"}, nilSlice, func() {}} {
		collections.EachValue(v, func(any, collections.Key) {
			t.Fatalf("EachValue(%T) should be a no-op", v)
		})
	}
}
