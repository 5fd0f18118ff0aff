// SPDX-License-Identifier: MIT

package floodfill

// frontier is a max-heap of sparse cells under less; the greatest cell sits
// at index 0. It implements container/heap.Interface.
type frontier[T any] struct {
	cells []SparseCell[T]
	less  func(a, b SparseCell[T]) bool
}

func (f *frontier[T]) Len() int           { return len(f.cells) }
func (f *frontier[T]) Less(i, j int) bool { return f.less(f.cells[j], f.cells[i]) }
func (f *frontier[T]) Swap(i, j int)      { f.cells[i], f.cells[j] = f.cells[j], f.cells[i] }
func (f *frontier[T]) Push(x any)         { f.cells = append(f.cells, x.(SparseCell[T])) }

func (f *frontier[T]) Pop() any {
	n := len(f.cells) - 1
	c := f.cells[n]
	f.cells = f.cells[:n]
	return c
}
