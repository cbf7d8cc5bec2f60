package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-underbar/arr"
)

type address struct{ City string }

type user struct {
	Name    string
	Tags    []string
	Address *address
	secret  string
}

func TestProperty(t *testing.T) {
	u := user{Name: "Alice", Tags: []string{"admin", "ops"}, Address: &address{City: "London"}, secret: "x"}
	doc := map[string]any{"user": &u, "count": 2}

	cases := []struct {
		path string
		want any
		ok   bool
	}{
		{"count", 2, true},
		{"user.Name", "Alice", true},
		{"user.Tags.1", "ops", true},
		{"user.Address.City", "London", true},
		{"user.Tags.9", nil, false},
		{"user.Tags.x", nil, false},
		{"user.secret", nil, false},
		{"user.Missing", nil, false},
		{"count.deeper", nil, false},
		{"nothing", nil, false},
	}
	for _, tc := range cases {
		got, ok := arr.Property(doc, tc.path)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("Property(%q) = %v, %v; want %v, %v", tc.path, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPropertyNilHops(t *testing.T) {
	u := user{Name: "Bob"}
	if _, ok := arr.Property(u, "Address.City"); ok {
		t.Fatal("Property through a nil pointer should report absence")
	}
	if _, ok := arr.Property(nil, "a"); ok {
		t.Fatal("Property on nil should report absence")
	}
}

func TestPropertyEmptyPath(t *testing.T) {
	v, ok := arr.Property(5, "")
	if !ok || v != 5 {
		t.Fatalf("Property(5, \"\") = %v, %v; want 5, true", v, ok)
	}
}
