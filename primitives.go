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

// rectanglesFromCoordinates returns the envelope of each consecutive
// pair in coords, i.e. one rectangle per segment of the path. The
// result has len(coords)-1 entries.
func rectanglesFromCoordinates(coords []Coordinate) []Rect {
	if len(coords) < 2 {
		return nil
	}
	rects := make([]Rect, len(coords)-1)
	for i := 0; i < len(coords)-1; i++ {
		rects[i] = NewRect(coords[i], coords[i+1])
	}
	return rects
}

// calculateLevelIndices returns, for a packed tree of numItems leaves
// built with the given branching degree, the flat-array offset at
// which each level begins: level 0 is the leaves, the last entry is
// the offset of the root's single slot. levelIndices[0] is always 0;
// the tree occupies indices [0, levelIndices[len(levelIndices)-1]].
func calculateLevelIndices(degree, numItems int) []int {
	levelIndices := []int{0}

	level := 0
	levelSize := numItems

	for levelSize > 1 {
		levelBuffer := 0
		if levelSize%degree > 0 {
			levelBuffer = 1
		}
		// Least multiple of degree >= levelSize.
		levelCapacity := degree * (levelSize/degree + levelBuffer)
		levelIndices = append(levelIndices, levelIndices[level]+levelCapacity)
		level++
		levelSize = levelCapacity / degree
	}
	return levelIndices
}

// windingNumber returns the signed crossing contribution of segment
// start->end to the winding number of point, using the standard
// half-open upward/downward crossing rule: +1 for an upward crossing
// with point strictly left of the segment, -1 for a downward crossing
// with point strictly left of the segment, 0 otherwise. Summing this over every segment of a closed ring
// yields the ring's winding number about point.
func windingNumber(point, start, end Coordinate) int {
	// The two halves of the cross-product test (lx - rx determines
	// which side of the segment's line point falls on).
	lx := (end.X - start.X) * (point.Y - start.Y)
	rx := (end.Y - start.Y) * (point.X - start.X)

	if start.Y <= point.Y {
		if end.Y > point.Y && lx > rx {
			return 1
		}
	} else {
		if end.Y <= point.Y && lx < rx {
			return -1
		}
	}
	return 0
}

// intersectSegments computes the intersection of segments
// startA->endA and startB->endB, without consulting either segment's
// envelope (callers should reject disjoint envelopes before calling
// this). The result is:
//
//   - (p, p, true) for a point intersection,
//   - (p, q, true) for a collinear-overlap intersection spanning p to q,
//   - (zero, zero, false) if the segments do not intersect.
func intersectSegments(startA, endA, startB, endB Coordinate) (Coordinate, Coordinate, bool) {
	if (startA == startB && endA == endB) || (startA == endB && endA == startB) {
		return startA, endA, true
	}

	da := endA.Sub(startA)     // direction of segment A
	db := endB.Sub(startB)     // direction of segment B
	offset := startB.Sub(startA) // offset between segment starts

	daXdb := da.Cross(db)
	offsetXda := offset.Cross(da)

	if daXdb == 0 {
		// Parallel. Disjoint unless the offset is parallel too.
		if offsetXda != 0 {
			return Coordinate{}, Coordinate{}, false
		}
		da2 := da.Dot(da)
		// Offsets of B's endpoints onto A's direction, in units of da.
		t0 := offset.Dot(da) / da2
		t1 := t0 + da.Dot(db)/da2
		tMin := t0
		tMax := t1
		if tMin > tMax {
			tMin, tMax = tMax, tMin
		}
		if tMin > 1 || tMax < 0 {
			return Coordinate{}, Coordinate{}, false
		}
		lo := tMin
		if lo < 0 {
			lo = 0
		}
		hi := tMax
		if hi > 1 {
			hi = 1
		}
		start := startA.Add(da.Scale(lo))
		end := startA.Add(da.Scale(hi))
		return start, end, true
	}

	// Not parallel: the infinite lines cross at a single point; the
	// segments intersect there iff that point lies on both segments.
	ta := offset.Cross(db) / daXdb
	tb := offsetXda / daXdb
	if 0 <= ta && ta <= 1 && 0 <= tb && tb <= 1 {
		intersection := startA.Add(da.Scale(ta))
		return intersection, intersection, true
	}
	return Coordinate{}, Coordinate{}, false
}
