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

// A path moves through three states, each its own type:
//
//	RawPath -> PreparedPath -> ValidPath
//
// RawPath is just coordinates. PreparedPath additionally has a tree
// built over its segments, but that tree may still index a
// self-intersecting or degenerate path. ValidPath is a PreparedPath
// that has passed [PreparedPath.Validate]. [ValidatePolygon] takes
// [Ring] values, which can only be built from a ValidPath. [ClipPath]
// and [PointInRing] take a plain coordinate slice and a tree (for
// example [ValidPath.Coords] and [ValidPath.Tree]) and do not check
// simplicity themselves.

// RawPath is an unvalidated, untreed coordinate sequence.
type RawPath struct {
	Coords []Coordinate
}

// NewRawPath wraps coords as a RawPath.
func NewRawPath(coords []Coordinate) RawPath {
	return RawPath{Coords: coords}
}

// Prepare builds the segment tree over p's coordinates, advancing it
// to a PreparedPath. It does not check simplicity.
func (p RawPath) Prepare() *PreparedPath {
	if len(p.Coords) == 0 {
		return &PreparedPath{tree: NewEmptyTree()}
	}
	rects := rectanglesFromCoordinates(p.Coords)
	return &PreparedPath{coords: p.Coords, tree: NewLoadedTree(DefaultDegree, rects)}
}

// PreparedPath has a segment tree built over its coordinates, but has
// not yet been checked for simplicity.
type PreparedPath struct {
	coords []Coordinate
	tree   *Tree
}

// Coords returns the path's coordinates.
func (p *PreparedPath) Coords() []Coordinate { return p.coords }

// Tree returns the segment tree built over the path's segments.
func (p *PreparedPath) Tree() *Tree { return p.tree }

// Validate checks that p is simple: no degenerate (zero-length)
// segment, and every pair of segments reported as candidates by the
// tree's self-intersection query meets only at a shared endpoint
// between consecutive segments (or, if the path is closed, between
// its first and last segment). It returns a *ValidPath on success, or
// the first failure found as a *[ValidationError].
func (p *PreparedPath) Validate() (*ValidPath, error) {
	if len(p.coords) == 1 {
		return nil, &ValidationError{Kind: SingleCoordinatePath}
	}
	for index := 0; index < len(p.coords)-1; index++ {
		if p.coords[index] == p.coords[index+1] {
			return nil, &ValidationError{Kind: DegenerateSegment, Index: index, Position: p.coords[index]}
		}
	}
	for _, pair := range p.tree.QuerySelfIntersections() {
		if err := checkSegmentIntersection(pair.A, pair.B, p.coords); err != nil {
			return nil, err
		}
	}
	return &ValidPath{coords: p.coords, tree: p.tree}, nil
}

// ValidPath is a path that has been confirmed simple: no degenerate
// segments, and no crossing or overlap besides the consecutive shared
// endpoints a polyline is expected to have.
type ValidPath struct {
	coords []Coordinate
	tree   *Tree
}

// ValidatePath builds and validates a path from coords in one pass,
// checking each new segment against everything added so far as it
// goes (rather than bulk-building the tree and then re-walking it), so
// the first failure is detected without examining segments that would
// never be reached. An empty coordinate slice is trivially valid.
func ValidatePath(coords []Coordinate) (*ValidPath, error) {
	if len(coords) == 0 {
		return &ValidPath{tree: NewEmptyTree()}, nil
	}
	if len(coords) == 1 {
		return nil, &ValidationError{Kind: SingleCoordinatePath}
	}

	tree := NewTree(DefaultDegree, len(coords)-1)
	for index := 0; index < len(coords)-1; index++ {
		start, end := coords[index], coords[index+1]
		if start == end {
			return nil, &ValidationError{Kind: DegenerateSegment, Index: index, Position: start}
		}
		for _, otherIndex := range tree.QueryRect(NewRect(start, end)) {
			if err := checkSegmentIntersection(index, otherIndex, coords); err != nil {
				return nil, err
			}
		}
		if err := tree.Add(NewRect(start, end)); err != nil {
			return nil, err
		}
	}
	return &ValidPath{coords: coords, tree: tree}, nil
}

// Coords returns the path's coordinates.
func (p *ValidPath) Coords() []Coordinate { return p.coords }

// Tree returns the segment tree built over the path's segments.
func (p *ValidPath) Tree() *Tree { return p.tree }

// Contains reports whether the winding number of p, which must be a
// closed ring (see [ValidPath.IsRing]), about point is non-zero. It is
// true for interior points and false for exterior points; for a point
// exactly on the ring the half-open crossing rule decides, so such a
// point can give either answer. [Ring.Classify] reports boundary
// points as such.
func (p *ValidPath) Contains(point Coordinate) (bool, error) {
	return p.tree.CheckContainment(point, p.coords)
}

// IsRing reports whether p is closed and long enough to bound a
// region: at least 4 coordinates, with the first equal to the last.
func (p *ValidPath) IsRing() bool {
	return len(p.coords) >= 4 && p.coords[0] == p.coords[len(p.coords)-1]
}

// checkSegmentIntersection examines the exact intersection of
// segments index and otherIndex (order-independent) and classifies it
// per the path-simplicity rules: no intersection is fine; a shared
// endpoint between segments that are supposed to be adjacent (either
// consecutive, or first-and-last on a closed path) is fine; anything
// else is a validation failure.
func checkSegmentIntersection(index, otherIndex int, coords []Coordinate) error {
	firstIndex, secondIndex := index, otherIndex
	if firstIndex > secondIndex {
		firstIndex, secondIndex = secondIndex, firstIndex
	}
	firstStart, firstEnd := coords[firstIndex], coords[firstIndex+1]
	secondStart, secondEnd := coords[secondIndex], coords[secondIndex+1]

	isxnStart, isxnEnd, intersects := intersectSegments(firstStart, firstEnd, secondStart, secondEnd)
	if !intersects {
		return nil
	}
	if isxnStart != isxnEnd {
		return &ValidationError{
			Kind: OverlappingSegments, Index: firstIndex, OtherIndex: secondIndex,
			Start: isxnStart, End: isxnEnd,
		}
	}

	switch {
	case firstIndex == secondIndex-1:
		if isxnStart == secondStart {
			return nil
		}
	case firstIndex == 0 && secondIndex == len(coords)-2:
		if isxnStart == firstStart && isxnStart == secondEnd {
			return nil
		}
	}
	return &ValidationError{Kind: SelfIntersection, Index: firstIndex, OtherIndex: secondIndex, Position: isxnStart}
}
