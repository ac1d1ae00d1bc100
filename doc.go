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

// Package segrtree is a static, array-backed spatial index for the line
// segments of planar polylines and rings.
//
// A [Tree] is a packed bounding-volume hierarchy over axis-aligned
// rectangles, built either incrementally (segment by segment, as a
// polyline is traced out) or in one bulk load, optionally sorted along
// a Hilbert curve for locality. Once built it is read-only: there is
// no insertion or deletion after the fact, no persistence, and no
// concurrent mutation. A sealed Tree may be queried from multiple
// goroutines at once.
//
// On top of the tree sit the algorithms that exploit its layout:
// [Tree.QuerySelfIntersections] and [Tree.QueryOtherIntersections] for
// segment-set intersection, [PointInRing] for ray-casting containment
// by winding number, and [ClipPath] for rectangular clipping of a
// polyline into the pieces that fall inside a rectangle. [ValidatePath]
// and [ValidatePolygon] build on the intersection queries to check that
// a path is simple and that a shell/holes polygon is well-formed.
//
// The package does not parse WKT, read geometry from files, or
// generate random test data; callers that need those can feed
// coordinate slices in from whatever source they like. Coordinates are
// planar (no Z, no geographic datum) and must be finite; inputs with
// NaN or infinite coordinates are a validation failure upstream of
// this package.
package segrtree
