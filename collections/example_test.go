package collections_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-underbar/collections"
)

func ExampleCollection_Each() {
	collections.FromMap(map[string]int{"b": 2, "a": 1}).
		Each(func(n int, k collections.Key) {
			fmt.Println(k, n)
		})
	// Output:
	// a 1
	// b 2
}

func ExampleCollection_Filter() {
	result := collections.New(1, 2, 3, 4, 5, 6).
		Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }).
		All()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleCollection_Every() {
	c := collections.New(2, 4, 6)
	fmt.Println(c.Every(func(n int, _ collections.Key) bool { return n%2 == 0 }))
	fmt.Println(collections.Empty[int]().Some(nil))
	// Output:
	// true
	// false
}

func ExampleMap() {
	result := collections.Map(
		collections.New(1, 2, 3),
		func(n int, _ collections.Key) string { return strconv.Itoa(n * n) },
	)
	fmt.Println(result.All())
	// Output: [1 4 9]
}

func ExampleReduce() {
	sum := collections.Reduce(collections.New(1, 2, 3),
		func(acc, n int, _ collections.Key) int { return acc + n }, 0)
	fmt.Println(sum)
	// Output: 6
}

func ExampleReduceFirst() {
	_, err := collections.ReduceFirst(collections.Empty[int](),
		func(acc, n int, _ collections.Key) int { return acc + n })
	fmt.Println(err)
	// Output: collections: operation on empty collection
}

func ExampleInvokeMethod() {
	got, err := collections.InvokeMethod(collections.New(counter{1}, counter{2}), "Plus", 10)
	fmt.Println(got, err)
	// Output: [11 12] <nil>
}
