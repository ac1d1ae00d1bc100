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

import "testing"

func TestRectEmpty(t *testing.T) {
	r := EmptyRect()
	if !r.IsEmpty() {
		t.Error("EmptyRect should be empty")
	}
	if r.ContainsPoint(Coordinate{X: 0, Y: 0}) {
		t.Error("empty rect should contain nothing")
	}
	if r.Intersects(NewRect(Coordinate{X: -1, Y: -1}, Coordinate{X: 1, Y: 1})) {
		t.Error("empty rect should intersect nothing")
	}
}

func TestUnionRectsAbsorbsEmpty(t *testing.T) {
	r := NewRect(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1})
	union := UnionRects([]Rect{EmptyRect(), r, EmptyRect()})
	if !union.Equal(r) {
		t.Errorf("UnionRects with empties: got %v, want %v", union, r)
	}
	if !UnionRects(nil).IsEmpty() {
		t.Error("UnionRects of nothing should be empty")
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := NewRect(Coordinate{X: 0, Y: 0}, Coordinate{X: 10, Y: 10})
	inner := NewRect(Coordinate{X: 1, Y: 1}, Coordinate{X: 2, Y: 2})
	if !outer.ContainsRect(inner) {
		t.Error("outer should contain inner")
	}
	if inner.ContainsRect(outer) {
		t.Error("inner should not contain outer")
	}
	if outer.ContainsRect(EmptyRect()) {
		t.Error("nothing should contain an empty rect")
	}
}

func TestIntersectSegmentFullyContained(t *testing.T) {
	r := NewRect(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1})
	start := Coordinate{X: 0.1, Y: 0.7}
	end := Coordinate{X: 0.5, Y: 0.2}
	gotStart, gotEnd, ok := r.IntersectSegment(start, end)
	if !ok || gotStart != start || gotEnd != end {
		t.Errorf("fully contained segment: got (%v, %v, %v)", gotStart, gotEnd, ok)
	}
}

func TestIntersectSegmentClipsAndPreservesExactEndpoints(t *testing.T) {
	r := NewRect(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1})

	// outside to in: the clipped start is computed on the boundary
	// x = 0; the clipped end is the input end itself.
	start := Coordinate{X: -1.0, Y: 0.5}
	end := Coordinate{X: 0.5, Y: 0.5}
	gotStart, gotEnd, ok := r.IntersectSegment(start, end)
	if !ok {
		t.Fatal("expected intersection")
	}
	want := Coordinate{X: 0, Y: 0.5}
	if gotStart != want {
		t.Errorf("clipped start: got %v, want %v", gotStart, want)
	}
	if gotEnd != end {
		t.Errorf("clipped end should equal the original input end exactly: got %v, want %v", gotEnd, end)
	}

	// entry point lands exactly on the rectangle already.
	start2 := Coordinate{X: -1.0, Y: 0.5}
	end2 := Coordinate{X: 0.0, Y: 0.5}
	gotStart2, gotEnd2, ok2 := r.IntersectSegment(start2, end2)
	if !ok2 || gotStart2 != end2 || gotEnd2 != end2 {
		t.Errorf("degenerate clip to a point: got (%v, %v, %v)", gotStart2, gotEnd2, ok2)
	}
}

func TestIntersectSegmentMiss(t *testing.T) {
	r := NewRect(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1})
	_, _, ok := r.IntersectSegment(Coordinate{X: -1.5, Y: 0}, Coordinate{X: 1, Y: 2})
	if ok {
		t.Error("expected no intersection")
	}
}

func TestIntersectSegmentDegenerate(t *testing.T) {
	r := NewRect(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1})
	_, _, ok := r.IntersectSegment(Coordinate{X: 5, Y: 5}, Coordinate{X: 5, Y: 5})
	if ok {
		t.Error("a degenerate segment entirely outside r should not intersect")
	}
}
