// github.com/jagill/segment-rtree - a static spatial index for planar polylines
// Copyright (C) 2026  The segment-rtree authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package segrtree

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// lowHigh is a (low, high) leaf-offset pair, ordered lexicographically:
// first by low, then by high.
type lowHigh struct {
	low, high int
}

func lowHighComparator(a, b interface{}) int {
	x, y := a.(lowHigh), b.(lowHigh)
	if c := utils.IntComparator(x.low, y.low); c != 0 {
		return c
	}
	return utils.IntComparator(x.high, y.high)
}

// minHeap is a min-first priority queue of lowHigh pairs, used by the
// clipper to visit the leaf ranges straddling a rectangle's boundary
// in ascending order.
type minHeap struct {
	heap *binaryheap.Heap
}

func newMinHeap() *minHeap {
	return &minHeap{heap: binaryheap.NewWith(lowHighComparator)}
}

func (h *minHeap) push(low, high int) {
	h.heap.Push(lowHigh{low: low, high: high})
}

func (h *minHeap) pop() (lowHigh, bool) {
	v, ok := h.heap.Pop()
	if !ok {
		return lowHigh{}, false
	}
	return v.(lowHigh), true
}

func (h *minHeap) peek() (lowHigh, bool) {
	v, ok := h.heap.Peek()
	if !ok {
		return lowHigh{}, false
	}
	return v.(lowHigh), true
}

func (h *minHeap) isEmpty() bool {
	return h.heap.Empty()
}

func (h *minHeap) len() int {
	return h.heap.Size()
}
