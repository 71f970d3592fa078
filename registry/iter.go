package registry

import "iter"

// Values returns an iterator over the implementations registered against T,
// in registration order. The iteration walks a snapshot taken when the loop
// starts, so registrations made while iterating (which ordinary programs
// never do) are not observed mid-loop.
func Values[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range All[T]() {
			if !yield(v) {
				return
			}
		}
	}
}
