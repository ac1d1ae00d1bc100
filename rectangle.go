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

import "math"

// Rect is an axis-aligned bounding rectangle. The zero value is not a
// useful empty rectangle (it is the degenerate point at the origin);
// use [EmptyRect] for the empty sentinel.
//
// A non-empty Rect maintains XMin <= XMax and YMin <= YMax.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// EmptyRect returns the empty rectangle sentinel, with every component
// NaN. Any NaN component marks a rectangle as empty (see
// [Rect.IsEmpty]); empty intersects nothing, contains nothing,
// and is the identity for [Rect.Expand]/[UnionRects].
func EmptyRect() Rect {
	nan := math.NaN()
	return Rect{XMin: nan, YMin: nan, XMax: nan, YMax: nan}
}

// NewRect returns the smallest rectangle containing both p and q.
func NewRect(p, q Coordinate) Rect {
	return Rect{
		XMin: math.Min(p.X, q.X),
		YMin: math.Min(p.Y, q.Y),
		XMax: math.Max(p.X, q.X),
		YMax: math.Max(p.Y, q.Y),
	}
}

// PointRect returns the degenerate rectangle containing exactly p.
func PointRect(p Coordinate) Rect {
	return Rect{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y}
}

// IsEmpty reports whether r is the empty sentinel.
func (r Rect) IsEmpty() bool {
	return math.IsNaN(r.XMin) || math.IsNaN(r.YMin) || math.IsNaN(r.XMax) || math.IsNaN(r.YMax)
}

// Equal reports whether r and other are the same rectangle. Two empty
// rectangles are equal regardless of which NaN bit pattern they carry.
func (r Rect) Equal(other Rect) bool {
	if r.IsEmpty() {
		return other.IsEmpty()
	}
	return r.XMin == other.XMin && r.YMin == other.YMin &&
		r.XMax == other.XMax && r.YMax == other.YMax
}

// UnionRects reduces rects to their envelope, starting from empty.
func UnionRects(rects []Rect) Rect {
	acc := EmptyRect()
	for _, r := range rects {
		acc = acc.Expand(r)
	}
	return acc
}

// Center returns the arithmetic mean of r's corners. The result is
// undefined (NaN) when r is empty.
func (r Rect) Center() Coordinate {
	return Coordinate{X: (r.XMin + r.XMax) / 2, Y: (r.YMin + r.YMax) / 2}
}

// Intersects reports whether r and other share at least one point.
// Empty intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	return r.XMin <= other.XMax && r.XMax >= other.XMin &&
		r.YMin <= other.YMax && r.YMax >= other.YMin
}

// ContainsPoint reports whether p lies within r's closed bounds.
func (r Rect) ContainsPoint(p Coordinate) bool {
	return r.XMin <= p.X && p.X <= r.XMax && r.YMin <= p.Y && p.Y <= r.YMax
}

// ContainsRect reports whether other lies entirely within r's closed
// bounds. An empty other is contained by nothing and empty r contains
// nothing.
func (r Rect) ContainsRect(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.XMin <= other.XMin && r.XMax >= other.XMax &&
		r.YMin <= other.YMin && r.YMax >= other.YMax
}

// Union returns the smallest rectangle containing both r and other.
// Empty absorbs: unioning with empty returns the other operand
// unchanged.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		XMin: math.Min(r.XMin, other.XMin),
		YMin: math.Min(r.YMin, other.YMin),
		XMax: math.Max(r.XMax, other.XMax),
		YMax: math.Max(r.YMax, other.YMax),
	}
}

// Expand returns r grown to also cover other; r itself is not
// modified. Equivalent to r.Union(other), spelled as a method so tree
// construction can write rect = rect.Expand(child) in a tight loop.
func (r Rect) Expand(other Rect) Rect {
	return r.Union(other)
}

// side names the four half-planes tested by the Liang-Barsky clip.
type side int

const (
	sideLeft side = iota
	sideRight
	sideTop
	sideBottom
)

// IntersectSegment clips the segment start->end against r using the
// Liang-Barsky algorithm
// (https://www.skytopia.com/project/articles/compsci/clipping.html)
// and reports the clipped sub-segment, if any.
//
// When an endpoint of the returned sub-segment coincides with an
// endpoint of the input segment, the returned coordinate is that exact
// input value, not a recomputed one: callers compare the result against
// coords[i] by == to detect "this segment end lies exactly on the
// rectangle", and a recomputed value is not guaranteed to round to the
// same bits.
func (r Rect) IntersectSegment(start, end Coordinate) (Coordinate, Coordinate, bool) {
	if r.ContainsPoint(start) && r.ContainsPoint(end) {
		return start, end, true
	}
	if start == end {
		return Coordinate{}, Coordinate{}, false
	}

	t0, t1 := 0.0, 1.0
	xDelta := end.X - start.X
	yDelta := end.Y - start.Y

	for _, s := range [4]side{sideLeft, sideRight, sideTop, sideBottom} {
		var p, q float64
		switch s {
		case sideLeft:
			p, q = -xDelta, -(r.XMin - start.X)
		case sideRight:
			p, q = xDelta, r.XMax-start.X
		case sideTop:
			p, q = -yDelta, -(r.YMin - start.Y)
		case sideBottom:
			p, q = yDelta, r.YMax-start.Y
		}

		if p == 0 && q < 0 {
			return Coordinate{}, Coordinate{}, false
		}
		t := q / p
		switch {
		case p < 0:
			if t > t1 {
				return Coordinate{}, Coordinate{}, false
			} else if t > t0 {
				t0 = t
			}
		case p > 0:
			if t < t0 {
				return Coordinate{}, Coordinate{}, false
			} else if t < t1 {
				t1 = t
			}
		}
	}

	clippedStart := start
	if t0 != 0 {
		clippedStart = Coordinate{X: start.X + t0*xDelta, Y: start.Y + t0*yDelta}
	}
	clippedEnd := end
	if t1 != 1 {
		clippedEnd = Coordinate{X: start.X + t1*xDelta, Y: start.Y + t1*yDelta}
	}
	return clippedStart, clippedEnd, true
}
