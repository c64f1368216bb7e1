// pkg/collision/view.go
package collision

import (
	"slices"
)

// View is a read-only window over a collection. At hands out copies, so a
// scan holding a View cannot mutate the collection it is planning for.
type View[T any] struct {
	items []T
}

// ViewOf wraps items in a View.
func ViewOf[T any](items []T) View[T] {
	return View[T]{items: items}
}

// Len returns the number of items.
func (v View[T]) Len() int {
	return len(v.items)
}

// At returns a copy of item i.
func (v View[T]) At(i int) T {
	return v.items[i]
}

// RemoveIndices deletes the elements at indices from s and returns the
// shortened slice. Indices are de-duplicated and removed from the highest
// down so that earlier indices stay valid. Out-of-range indices are
// ignored.
func RemoveIndices[T any](s []T, indices []int) []T {
	if len(indices) == 0 {
		return s
	}
	doomed := slices.Clone(indices)
	slices.Sort(doomed)
	doomed = slices.Compact(doomed)

	for i := len(doomed) - 1; i >= 0; i-- {
		idx := doomed[i]
		if idx < 0 || idx >= len(s) {
			continue
		}
		s = slices.Delete(s, idx, idx+1)
	}
	return s
}
