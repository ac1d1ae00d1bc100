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

// Ring is a [ValidPath] that additionally satisfies the closed-loop
// requirement: at least 4 coordinates, first equal to last. It is the
// shape both [PointInRing]/[ClassifyPolygon] and polygon validation
// operate on.
type Ring struct {
	path *ValidPath
}

// NewRing promotes an already-validated path to a Ring, checking only
// the closure requirement (simplicity was already established by
// [PreparedPath.Validate] or [ValidatePath]).
func NewRing(path *ValidPath) (*Ring, error) {
	if !path.IsRing() {
		return nil, &ValidationError{Kind: NotARing}
	}
	return &Ring{path: path}, nil
}

// ValidateRing validates coords as a simple path and then checks
// closure, in one call.
func ValidateRing(coords []Coordinate) (*Ring, error) {
	path, err := ValidatePath(coords)
	if err != nil {
		return nil, err
	}
	return NewRing(path)
}

// Coords returns the ring's coordinates, first equal to last.
func (r *Ring) Coords() []Coordinate { return r.path.Coords() }

// Tree returns the segment tree built over the ring's segments.
func (r *Ring) Tree() *Tree { return r.path.Tree() }

// Contains reports whether point lies in the ring's interior (true)
// or exterior (false), via plain winding-number containment. A point
// exactly on the ring can give either answer (see
// [ValidPath.Contains]); use [Ring.Classify] to detect it.
func (r *Ring) Contains(point Coordinate) (bool, error) {
	return r.path.Contains(point)
}

// Classify reports point's full [Containment] relative to the ring,
// distinguishing boundary hits from interior and exterior points.
func (r *Ring) Classify(point Coordinate) (Containment, error) {
	return PointInRing(point, r.Coords(), r.Tree())
}

// Envelope returns the ring's bounding rectangle.
func (r *Ring) Envelope() Rect {
	return r.Tree().Envelope()
}
