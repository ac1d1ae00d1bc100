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

// sectionBuilder accumulates clipped output coordinates into one flat
// slice, remembering where each output piece ("section") ends so the
// whole thing can be split apart at the end without per-piece
// allocation along the way.
type sectionBuilder struct {
	coordinates []Coordinate
	indices     []int
}

func newSectionBuilder(capacity int) *sectionBuilder {
	return &sectionBuilder{
		coordinates: make([]Coordinate, 0, capacity),
		indices:     make([]int, 0, 16),
	}
}

func (b *sectionBuilder) push(c Coordinate) {
	b.coordinates = append(b.coordinates, c)
}

func (b *sectionBuilder) extend(coords []Coordinate) {
	b.coordinates = append(b.coordinates, coords...)
}

func (b *sectionBuilder) flush() {
	b.indices = append(b.indices, len(b.coordinates))
}

// maybeFlush records a boundary only if there are unflushed
// coordinates since the last one.
func (b *sectionBuilder) maybeFlush() {
	n := len(b.coordinates)
	if n == 0 {
		return
	}
	if len(b.indices) > 0 && b.indices[len(b.indices)-1] == n {
		return
	}
	b.flush()
}

// toSlices splits the accumulated coordinates at the recorded
// boundaries into one slice per output piece. Each piece is the span
// between one consecutive pair of flush points, not from the start of
// the buffer: the very first recorded index is only ever the empty
// boundary written by the first flush, not the start of real output.
func (b *sectionBuilder) toSlices() [][]Coordinate {
	b.maybeFlush()
	if len(b.indices) < 2 {
		return nil
	}
	results := make([][]Coordinate, 0, len(b.indices)-1)
	for i := 0; i < len(b.indices)-1; i++ {
		results = append(results, b.coordinates[b.indices[i]:b.indices[i+1]])
	}
	return results
}

// clipper clips a validated path's coordinates against a rectangle.
type clipper struct {
	clipRect  Rect
	coords    []Coordinate
	rtree     *Tree
	lastIndex int
	hasLast   bool
}

// ClipPath returns the portions of path that lie within clipRect, each
// as its own coordinate slice. A path entirely inside clipRect is
// returned as a single unmodified piece; a path that crosses the
// boundary is split at each crossing, with the crossing point computed
// by [Rect.IntersectSegment]. A closed path clipped into two pieces
// that happen to share an endpoint (because the clip rectangle severed
// a single loop into two arcs meeting at the start/end coordinate) is
// reassembled into one piece.
func ClipPath(clipRect Rect, coords []Coordinate, rtree *Tree) [][]Coordinate {
	c := &clipper{clipRect: clipRect, coords: coords, rtree: rtree}
	return c.clip()
}

func (c *clipper) clip() [][]Coordinate {
	contained, intersects := c.findRelevantSegments()
	output := c.buildOutput(contained, intersects).toSlices()
	c.reconnectLoop(&output)
	return output
}

// findRelevantSegments walks the tree, classifying each node as either
// entirely inside the clip rectangle (added to contained, a run of
// leaf indices), entirely outside (skipped), or crossing the boundary
// (its leaf pushed onto intersects for exact clipping). Nodes that
// only partly overlap are descended into.
func (c *clipper) findRelevantSegments() (*segmentUnion, *minHeap) {
	contained := newSegmentUnion()
	intersects := newMinHeap()
	degree := c.rtree.Degree()

	type frame struct{ level, offset int }
	stack := []frame{{c.rtree.Height(), 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rect := c.rtree.getRectangle(f.level, f.offset)
		if !c.clipRect.Intersects(rect) {
			continue
		}
		low, high := c.rtree.getLowHigh(f.level, f.offset)
		switch {
		case c.clipRect.ContainsRect(rect):
			contained.add(low, high)
		case f.level == 0:
			intersects.push(low, high)
		default:
			childLevel := f.level - 1
			firstChild := degree * f.offset
			for child := firstChild; child < firstChild+degree; child++ {
				stack = append(stack, frame{childLevel, child})
			}
		}
	}

	return contained, intersects
}

func (c *clipper) buildOutput(contained *segmentUnion, intersects *minHeap) *sectionBuilder {
	sections := newSectionBuilder(contained.len() + 2*intersects.len())

	for !contained.isEmpty() && !intersects.isEmpty() {
		containedLow, _ := contained.peek()
		nextIntersect, _ := intersects.peek()
		if containedLow < nextIntersect.low {
			c.pushContained(contained, sections)
		} else {
			c.pushIntersects(intersects, sections)
		}
	}
	for !contained.isEmpty() {
		c.pushContained(contained, sections)
	}
	for !intersects.isEmpty() {
		c.pushIntersects(intersects, sections)
	}

	sections.flush()
	return sections
}

func (c *clipper) pushContained(contained *segmentUnion, sections *sectionBuilder) {
	low, high, _ := contained.pop()
	if c.hasLast && c.lastIndex == low {
		low++
	} else {
		sections.flush()
	}
	sections.extend(c.coords[low : high+1])
	c.lastIndex, c.hasLast = high, true
}

func (c *clipper) pushIntersects(intersects *minHeap, sections *sectionBuilder) {
	lh, _ := intersects.pop()
	low, high := lh.low, lh.high
	segStart := c.coords[low]
	segEnd := c.coords[high]
	isxnStart, isxnEnd, ok := c.clipRect.IntersectSegment(segStart, segEnd)
	if !ok {
		return
	}
	if !c.hasLast || c.lastIndex != low {
		sections.flush()
		sections.push(isxnStart)
	}
	if isxnEnd != isxnStart {
		sections.push(isxnEnd)
	}
	if isxnEnd == segEnd {
		c.lastIndex, c.hasLast = high, true
	}
}

// reconnectLoop merges the first and last output pieces when they
// are in fact the two halves of a single closed loop split by the
// clip rectangle: that happens exactly when there is more than one
// piece and the first coordinate of the first piece equals the last
// coordinate of the last piece.
func (c *clipper) reconnectLoop(output *[][]Coordinate) {
	pieces := *output
	if len(pieces) <= 1 {
		return
	}
	first := pieces[0]
	last := pieces[len(pieces)-1]
	if len(first) == 0 || len(last) == 0 || first[0] != last[len(last)-1] {
		return
	}

	merged := make([]Coordinate, 0, len(last)-1+len(first))
	merged = append(merged, last[:len(last)-1]...)
	merged = append(merged, first...)

	rest := pieces[1 : len(pieces)-1]
	result := make([][]Coordinate, 0, len(rest)+1)
	result = append(result, merged)
	result = append(result, rest...)
	*output = result
}
