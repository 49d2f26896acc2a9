package list

import "iter"

// Iterator walks a list from head to tail. Once Next reports false it keeps
// doing so; call Iter again for a fresh pass.
type Iterator[T any] struct {
	list       *List[T]
	current    *node[T]
	generation uint64
}

func (list *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		list:       list,
		current:    list.head,
		generation: list.generation,
	}
}

// Next returns the current value and advances. It returns false when the
// iterator is exhausted, and panics with an *Error wrapping
// ErrConcurrentModification if the list was pushed to or popped since Iter.
func (it *Iterator[T]) Next() (value T, ok bool) {
	if it.current == nil {
		return value, false
	}
	if it.generation != it.list.generation {
		panic(&Error{Op: "next", Kind: ErrConcurrentModification})
	}
	value = it.current.value
	it.current = it.current.next
	return value, true
}

// All yields the list values from head to tail.
func (list *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := list.Iter()
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
