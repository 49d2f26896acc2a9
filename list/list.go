// Package list implements a generic singly linked list with front insertion,
// front removal and forward iteration.
//
// A List is not safe for concurrent use. Iterators borrow the chain and must
// not be advanced after the list they came from has been pushed to or popped.
package list

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head       *node[T]
	generation uint64
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice pushes values in order onto a new list, so the list traverses
// them in reverse.
func FromSlice[T any](values []T) *List[T] {
	list := New[T]()
	for _, value := range values {
		list.Push(value)
	}
	return list
}

// Push makes value the new head and returns the list so calls can be chained.
func (list *List[T]) Push(value T) *List[T] {
	list.head = &node[T]{
		value: value,
		next:  list.head,
	}
	list.generation++
	return list
}

// Pop removes and returns the head value. It panics with an *Error wrapping
// ErrEmptyList if the list is empty.
func (list *List[T]) Pop() T {
	value, err := list.TryPop()
	if err != nil {
		panic(err)
	}
	return value
}

// TryPop is Pop for callers that prefer an error to a panic.
func (list *List[T]) TryPop() (value T, err error) {
	head := list.head
	if head == nil {
		return value, &Error{Op: "pop", Kind: ErrEmptyList}
	}
	list.head = head.next
	head.next = nil
	list.generation++
	return head.value, nil
}

func (list *List[T]) IsEmpty() bool {
	return list.head == nil
}

// ToSlice copies the values from head to tail. The list is left untouched.
func (list *List[T]) ToSlice() []T {
	values := []T{}
	for current := list.head; current != nil; current = current.next {
		values = append(values, current.value)
	}
	return values
}

func (list *List[T]) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	for current := list.head; current != nil; current = current.next {
		if current != list.head {
			builder.WriteByte(' ')
		}
		fmt.Fprint(&builder, current.value)
	}
	builder.WriteByte(']')
	return builder.String()
}
