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

// hilbertMax is the largest coordinate on each axis of the 16-bit
// Hilbert grid, (2^16 - 1).
const hilbertMax = (1 << 16) - 1

// hilbertMapper quantizes points within a parent rectangle onto the
// 16-bit Hilbert grid and returns their 32-bit Hilbert curve index.
// It is used only to pick a leaf sort order before a bulk tree build;
// it plays no further part once the tree exists.
type hilbertMapper struct {
	env            Rect
	xMin, yMin     float64
	xScale, yScale float64
}

// newHilbertMapper builds a mapper for the given parent rectangle. A
// degenerate dimension (xMin == xMax, or yMin == yMax) maps every
// point on that axis to 0.
func newHilbertMapper(env Rect) hilbertMapper {
	if env.IsEmpty() {
		return hilbertMapper{env: env}
	}
	h := hilbertMapper{env: env}
	if env.XMin != env.XMax {
		h.xScale = hilbertMax / (env.XMax - env.XMin)
		h.xMin = env.XMin
	}
	if env.YMin != env.YMax {
		h.yScale = hilbertMax / (env.YMax - env.YMin)
		h.yMin = env.YMin
	}
	return h
}

// index returns the Hilbert curve index of p within the mapper's
// rectangle. It does not check bounds; callers who might pass points
// outside the rectangle should use safeIndex instead.
func (h hilbertMapper) index(p Coordinate) uint32 {
	x := h.xScale * (p.X - h.xMin)
	y := h.yScale * (p.Y - h.yMin)
	return hilbertNormalized(uint32(math.Floor(x)), uint32(math.Floor(y)))
}

// safeIndex returns h.index(p), or math.MaxUint32 if p falls outside
// the mapper's rectangle.
func (h hilbertMapper) safeIndex(p Coordinate) uint32 {
	if !h.env.ContainsPoint(p) {
		return math.MaxUint32
	}
	return h.index(p)
}

// hilbertNormalized computes the Hilbert curve index of (x, y) on the
// 16-bit grid using the bit-interleaving algorithm of Lam and Shapiro,
// ported from the fast public-domain implementation at
// http://threadlocalmutex.com/ (https://github.com/rawrunprotected/hilbert_curves).
func hilbertNormalized(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a, b, c, d = A, B, C, D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a, b, c, d = A, B, C, D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a, b, c, d = A, B, C, D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	i0 = (i0 | (i0 << 8)) & 0x00FF00FF
	i0 = (i0 | (i0 << 4)) & 0x0F0F0F0F
	i0 = (i0 | (i0 << 2)) & 0x33333333
	i0 = (i0 | (i0 << 1)) & 0x55555555

	i1 = (i1 | (i1 << 8)) & 0x00FF00FF
	i1 = (i1 | (i1 << 4)) & 0x0F0F0F0F
	i1 = (i1 | (i1 << 2)) & 0x33333333
	i1 = (i1 | (i1 << 1)) & 0x55555555

	return (i1 << 1) | i0
}
