package list_test

import (
	"fmt"

	"sllist/list"
)

func Example() {
	l := list.New[int]()
	l.Push(1).Push(2).Push(3)
	fmt.Println(l.ToSlice())

	for !l.IsEmpty() {
		fmt.Println(l.Pop())
	}

	// Output:
	// [3 2 1]
	// 3
	// 2
	// 1
}

func ExampleFromSlice() {
	l := list.FromSlice([]string{"a", "b", "c"})
	fmt.Println(l)

	// Output:
	// [c b a]
}

func ExampleIterator_Next() {
	it := list.FromSlice([]int{10, 20}).Iter()
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		fmt.Println(value)
	}

	// Output:
	// 20
	// 10
}

func ExampleList_All() {
	for value := range list.FromSlice([]rune("go")).All() {
		fmt.Println(string(value))
	}

	// Output:
	// o
	// g
}
