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

import "github.com/google/btree"

// segmentUnionDegree is the btree branching factor. The sets held here
// are small (bounded by the number of leaves touched by a clip or
// intersection scan), so this is not performance-critical.
const segmentUnionDegree = 32

// indexItem adapts a plain int index to btree.Item.
type indexItem int

func (a indexItem) Less(than btree.Item) bool {
	return a < than.(indexItem)
}

// segmentUnion is an ordered multiset of integer leaf-offsets with
// toggle (XOR) insertion: adding an index already present removes it,
// adding an absent one inserts it. Draining it two-at-a-time via pop
// yields the disjoint (low, high) index ranges covered an odd number
// of times, in ascending order.
//
// It is the index-bookkeeping structure behind the clipper's runs of
// segments lying wholly inside the clip rectangle, and is always used
// as a scratch set local to a single call.
type segmentUnion struct {
	set *btree.BTree
}

// newSegmentUnion returns an empty segmentUnion.
func newSegmentUnion() *segmentUnion {
	return &segmentUnion{set: btree.New(segmentUnionDegree)}
}

// add toggles both low and high into the set.
func (u *segmentUnion) add(low, high int) {
	u.toggle(low)
	u.toggle(high)
}

func (u *segmentUnion) toggle(entry int) {
	item := indexItem(entry)
	if u.set.Has(item) {
		u.set.Delete(item)
	} else {
		u.set.ReplaceOrInsert(item)
	}
}

// peek returns the smallest remaining index without removing it.
func (u *segmentUnion) peek() (int, bool) {
	item := u.set.Min()
	if item == nil {
		return 0, false
	}
	return int(item.(indexItem)), true
}

func (u *segmentUnion) popOne() (int, bool) {
	v, ok := u.peek()
	if !ok {
		return 0, false
	}
	u.set.Delete(indexItem(v))
	return v, true
}

// pop removes and returns the two smallest remaining indices as a
// (low, high) pair, ok is false once fewer than two indices remain.
func (u *segmentUnion) pop() (low, high int, ok bool) {
	low, ok = u.popOne()
	if !ok {
		return 0, 0, false
	}
	high, ok = u.popOne()
	if !ok {
		return 0, 0, false
	}
	return low, high, true
}

// isEmpty reports whether the set holds no indices.
func (u *segmentUnion) isEmpty() bool {
	return u.set.Len() == 0
}

// len returns the number of indices held, always twice the number of
// low-high pairs still available from pop.
func (u *segmentUnion) len() int {
	return u.set.Len()
}
