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
	"errors"
	"fmt"
	"sort"
)

// DefaultDegree is the branching factor used by [NewLoadedTree] and
// [NewHilbertLoadedTree] when the caller has no reason to pick another
// one. It follows the Flatbush convention of a wide, shallow tree.
const DefaultDegree = 16

// ErrCapacityExceeded is returned by [Tree.Add] once the tree already
// holds as many leaves as it was constructed to hold.
var ErrCapacityExceeded = errors.New("segrtree: tree is at capacity")

// IndexPair is a pair of leaf indices, used to report candidate
// intersecting segments. A is always the smaller of the two within a
// single tree's self-intersection results; across two trees the two
// fields simply correspond to the two trees in call order.
type IndexPair struct {
	A, B int
}

// Tree is a packed bounding-volume hierarchy over a flat array of
// rectangles, one per input segment. Internal node i at level L
// covers the Degree leaves (or sub-nodes) in [Degree*i, Degree*(i+1)).
//
// A Tree is built once, either incrementally via [NewTree] + [Tree.Add]
// as a polyline is traced out, or in a single bulk pass via
// [NewLoadedTree] or [NewHilbertLoadedTree]. It is immutable once full;
// all query methods are safe to call concurrently from many goroutines.
type Tree struct {
	degree       int
	maxSize      int
	currentSize  int
	currentLevel int
	levelIndices []int
	tree         []Rect
	// nodeIndices maps a leaf's position in the packed array back to
	// the caller's original segment index. nil means the identity
	// permutation (leaf i is segment i), which is always true for an
	// incrementally built or unsorted-bulk-loaded tree.
	nodeIndices []int
}

// NewEmptyTree returns a zero-capacity Tree. Every query against it
// returns no results; [Tree.Add] always fails.
func NewEmptyTree() *Tree {
	return &Tree{
		degree:       2,
		levelIndices: []int{0},
		tree:         []Rect{EmptyRect()},
	}
}

// NewTree returns a Tree with room for exactly maxSize leaves, to be
// filled one at a time with [Tree.Add]. degree is clamped to at least
// 2.
func NewTree(degree, maxSize int) *Tree {
	degree = maxInt(degree, 2)
	levelIndices := calculateLevelIndices(degree, maxSize)
	treeSize := levelIndices[len(levelIndices)-1] + 1
	tree := make([]Rect, treeSize)
	for i := range tree {
		tree[i] = EmptyRect()
	}
	return &Tree{
		degree:       degree,
		maxSize:      maxSize,
		levelIndices: levelIndices,
		tree:         tree,
	}
}

// NewLoadedTree bulk-builds a full Tree from rects, in the order
// given, with no reordering. degree is clamped to at least 2.
func NewLoadedTree(degree int, rects []Rect) *Tree {
	return newLoadedTree(degree, rects, nil)
}

// NewHilbertLoadedTree bulk-builds a full Tree from rects, first
// sorting them along a Hilbert curve traced across their shared
// envelope so that spatially nearby segments end up near each other in
// the packed array. This tends to produce tighter internal node
// rectangles than the input order, at the cost of needing a
// permutation table (nodeIndices) to translate leaf offsets back to
// the caller's original segment indices.
//
// If rects is empty or every rectangle in it is empty, this falls back
// to an unsorted load: there is no meaningful curve to sort along.
func NewHilbertLoadedTree(degree int, rects []Rect) *Tree {
	envelope := UnionRects(rects)
	if envelope.IsEmpty() {
		return newLoadedTree(degree, rects, nil)
	}
	mapper := newHilbertMapper(envelope)

	type entry struct {
		hilbertIndex uint32
		origIndex    int
		rect         Rect
	}
	entries := make([]entry, len(rects))
	for i, r := range rects {
		entries[i] = entry{hilbertIndex: mapper.safeIndex(r.Center()), origIndex: i, rect: r}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].hilbertIndex < entries[j].hilbertIndex
	})

	sortedRects := make([]Rect, len(entries))
	nodeIndices := make([]int, len(entries))
	for i, e := range entries {
		sortedRects[i] = e.rect
		nodeIndices[i] = e.origIndex
	}
	return newLoadedTree(degree, sortedRects, nodeIndices)
}

func newLoadedTree(degree int, rects []Rect, nodeIndices []int) *Tree {
	degree = maxInt(degree, 2)
	maxSize := len(rects)
	if maxSize == 0 {
		return NewEmptyTree()
	}
	levelIndices := calculateLevelIndices(degree, maxSize)
	treeSize := levelIndices[len(levelIndices)-1] + 1
	tree := make([]Rect, treeSize)
	for i := range tree {
		tree[i] = EmptyRect()
	}
	copy(tree[0:maxSize], rects)

	for level := 1; level < len(levelIndices); level++ {
		levelIndex := levelIndices[level]
		previousItems := tree[levelIndices[level-1]:levelIndex]
		nextItems := make([]Rect, 0, (len(previousItems)+degree-1)/degree)
		for start := 0; start < len(previousItems); start += degree {
			end := start + degree
			if end > len(previousItems) {
				end = len(previousItems)
			}
			nextItems = append(nextItems, UnionRects(previousItems[start:end]))
		}
		copy(tree[levelIndex:levelIndex+len(nextItems)], nextItems)
	}

	return &Tree{
		degree:       degree,
		maxSize:      maxSize,
		currentSize:  maxSize,
		currentLevel: len(levelIndices) - 1,
		levelIndices: levelIndices,
		tree:         tree,
		nodeIndices:  nodeIndices,
	}
}

// Len returns the number of leaves currently stored.
func (t *Tree) Len() int { return t.currentSize }

// Height returns the level of the root: 0 for a single-leaf tree.
func (t *Tree) Height() int { return t.currentLevel }

// Degree returns the branching factor fixed at construction.
func (t *Tree) Degree() int { return t.degree }

// Envelope returns the bounding rectangle of every leaf in the tree.
func (t *Tree) Envelope() Rect {
	return t.getRectangle(t.Height(), 0)
}

// Add appends rect as the next leaf, expanding every ancestor
// rectangle on the path from that leaf to the root. It returns
// [ErrCapacityExceeded] once the tree (built via [NewTree]) already
// holds maxSize leaves.
//
// Add is the only way to populate a tree built with [NewTree]; it is
// not valid to call on a tree built with [NewLoadedTree] or
// [NewHilbertLoadedTree] (those are already full).
func (t *Tree) Add(rect Rect) error {
	if t.currentSize >= t.maxSize {
		return ErrCapacityExceeded
	}

	level := 0
	offset := t.currentSize
	for {
		index := t.levelIndices[level] + offset
		rect = rect.Expand(t.tree[index])
		t.tree[index] = rect
		if offset == 0 {
			break
		} else if offset == 1 {
			// The parent will also need to absorb the sibling that
			// was written before this one.
			rect = rect.Expand(t.tree[index-1])
		}
		offset /= t.degree
		level++
	}

	t.currentLevel = level
	t.currentSize++
	return nil
}

// QueryRect returns the indices of every leaf whose rectangle
// intersects rect. Order is unspecified.
func (t *Tree) QueryRect(rect Rect) []int {
	return t.query(func(level, offset int) bool {
		return t.getRectangle(level, offset).Intersects(rect)
	})
}

// QueryPoint returns the indices of every leaf whose rectangle
// contains point. Order is unspecified.
func (t *Tree) QueryPoint(point Coordinate) []int {
	return t.query(func(level, offset int) bool {
		return t.getRectangle(level, offset).ContainsPoint(point)
	})
}

func (t *Tree) query(predicate func(level, offset int) bool) []int {
	var results []int
	if t.currentSize == 0 {
		return results
	}

	type frame struct{ level, offset int }
	stack := []frame{{t.Height(), 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !predicate(f.level, f.offset) {
			continue
		}
		if f.level == 0 {
			results = append(results, t.leafIndex(f.offset))
			continue
		}
		childLevel := f.level - 1
		firstChild := t.degree * f.offset
		for c := firstChild; c < firstChild+t.degree; c++ {
			stack = append(stack, frame{childLevel, c})
		}
	}
	return results
}

// QuerySelfIntersections returns every pair of distinct leaves whose
// rectangles intersect, each pair reported once with A < B. It only
// checks bounding boxes; candidate pairs may not actually cross as
// segments, and the caller is expected to verify that with
// [intersectSegments] or similar.
func (t *Tree) QuerySelfIntersections() []IndexPair {
	var results []IndexPair
	if t.currentSize == 0 {
		return results
	}

	type frame struct{ levelA, offsetA, levelB, offsetB int }
	stack := []frame{{t.Height(), 0, t.Height(), 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rectA := t.getRectangle(f.levelA, f.offsetA)
		rectB := t.getRectangle(f.levelB, f.offsetB)
		if !rectA.Intersects(rectB) {
			continue
		}

		switch {
		case f.levelA == 0 && f.levelB == 0:
			indexA := t.leafIndex(f.offsetA)
			indexB := t.leafIndex(f.offsetB)
			if indexA < indexB {
				results = append(results, IndexPair{A: indexA, B: indexB})
			}
		case f.levelA == f.levelB:
			childLevel := f.levelA - 1
			firstChild := t.degree * f.offsetA
			for c := firstChild; c < firstChild+t.degree; c++ {
				stack = append(stack, frame{childLevel, c, f.levelB, f.offsetB})
			}
		default:
			childLevel := f.levelB - 1
			firstChild := t.degree * f.offsetB
			for c := firstChild; c < firstChild+t.degree; c++ {
				stack = append(stack, frame{f.levelA, f.offsetA, childLevel, c})
			}
		}
	}
	return results
}

// QueryOtherIntersections returns every pair of leaves, one from t and
// one from other, whose rectangles intersect. A is always t's leaf
// index, B is always other's. As with [Tree.QuerySelfIntersections],
// this only checks bounding boxes.
func (t *Tree) QueryOtherIntersections(other *Tree) []IndexPair {
	var results []IndexPair
	if t.currentSize == 0 || other.currentSize == 0 {
		return results
	}

	type frame struct{ levelA, offsetA, levelB, offsetB int }
	stack := []frame{{t.Height(), 0, other.Height(), 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rectA := t.getRectangle(f.levelA, f.offsetA)
		rectB := other.getRectangle(f.levelB, f.offsetB)
		if !rectA.Intersects(rectB) {
			continue
		}

		switch {
		case f.levelA == 0 && f.levelB == 0:
			results = append(results, IndexPair{A: t.leafIndex(f.offsetA), B: other.leafIndex(f.offsetB)})
		case f.levelA >= f.levelB && f.levelA > 0:
			childLevel := f.levelA - 1
			firstChild := t.degree * f.offsetA
			for c := firstChild; c < firstChild+t.degree; c++ {
				stack = append(stack, frame{childLevel, c, f.levelB, f.offsetB})
			}
		default:
			childLevel := f.levelB - 1
			firstChild := other.degree * f.offsetB
			for c := firstChild; c < firstChild+other.degree; c++ {
				stack = append(stack, frame{f.levelA, f.offsetA, childLevel, c})
			}
		}
	}
	return results
}

// CheckContainment reports whether point lies in the interior of the
// closed ring described by coords, using a winding-number ray cast
// accelerated by this tree: coords must be the same coordinates the
// tree's rectangles were built from (one rectangle per consecutive
// pair), and must describe a closed loop (coords[0] == coords[last]).
// A point exactly on the ring is not detected as such: the half-open
// crossing rule of [windingNumber] decides, so it can give either
// answer.
//
// Leaves and internal subtrees lying entirely to the right of point's
// x-coordinate are collapsed: their whole winding contribution is
// computed in one [windingNumber] call against the subtree's low and
// high coordinates, instead of descending leaf by leaf.
//
// The subtree-collapse optimization relies on every subtree spanning a
// contiguous run of the ring's original coordinate order, which only
// holds for a tree built in traversal order; a [NewHilbertLoadedTree]
// tree reorders leaves and cannot be used here.
func (t *Tree) CheckContainment(point Coordinate, coords []Coordinate) (bool, error) {
	if t.nodeIndices != nil {
		return false, errors.New("segrtree: CheckContainment requires a tree built in coordinate order, not a Hilbert-sorted tree")
	}
	if len(coords)-1 != t.currentSize {
		return false, fmt.Errorf("segrtree: supplied %d coordinates for a tree of %d segments", len(coords), t.currentSize)
	}
	if len(coords) < 4 {
		return false, fmt.Errorf("segrtree: only %d coordinates supplied; can't be a loop", len(coords))
	}
	if coords[0] != coords[len(coords)-1] {
		return false, errors.New("segrtree: coordinates are not a closed loop")
	}

	wn := 0

	type frame struct{ level, offset int }
	stack := []frame{{t.currentLevel, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rect := t.getRectangle(f.level, f.offset)

		if rect.XMin > point.X {
			low, high := t.getLowHigh(f.level, f.offset)
			wn += windingNumber(point, coords[low], coords[high])
			continue
		}
		if !rect.ContainsPoint(point) {
			continue
		}
		if f.level == 0 {
			leaf := t.leafIndex(f.offset)
			wn += windingNumber(point, coords[leaf], coords[leaf+1])
			continue
		}
		childLevel := f.level - 1
		firstChild := t.degree * f.offset
		for c := firstChild; c < firstChild+t.degree; c++ {
			stack = append(stack, frame{childLevel, c})
		}
	}

	return wn != 0, nil
}

// getRectangle returns the rectangle stored at (level, offset).
func (t *Tree) getRectangle(level, offset int) Rect {
	return t.tree[t.levelIndices[level]+offset]
}

// getLowHigh returns the half-open span of leaf offsets [low, high)
// covered by the subtree rooted at (level, offset). Note that high is
// the coordinate index one past the subtree's last segment, matching
// the (coords[low], coords[high]) pair that spans the whole subtree.
// A subtree's padded width can overrun the tree's actual leaf count
// (the last subtree at a level is padded out to a full power of
// degree), so high is clamped to currentSize.
func (t *Tree) getLowHigh(level, offset int) (low, high int) {
	width := pow(t.degree, level)
	return width * offset, minInt(t.currentSize, width*(offset+1))
}

// leafIndex translates a leaf's position in the packed array to the
// caller's original segment index, accounting for any Hilbert-sort
// permutation.
func (t *Tree) leafIndex(offset int) int {
	if t.nodeIndices == nil {
		return offset
	}
	return t.nodeIndices[offset]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func pow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
