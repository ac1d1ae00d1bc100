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

// Coordinate is a planar point with finite double-precision components.
// Equality is exact floating-point comparison (==); no tolerance is
// applied anywhere in this package.
type Coordinate struct {
	X, Y float64
}

// Add returns the componentwise sum self + rhs.
func (c Coordinate) Add(rhs Coordinate) Coordinate {
	return Coordinate{X: c.X + rhs.X, Y: c.Y + rhs.Y}
}

// Sub returns the componentwise difference self - rhs.
func (c Coordinate) Sub(rhs Coordinate) Coordinate {
	return Coordinate{X: c.X - rhs.X, Y: c.Y - rhs.Y}
}

// Scale returns self scaled by a real factor.
func (c Coordinate) Scale(factor float64) Coordinate {
	return Coordinate{X: c.X * factor, Y: c.Y * factor}
}

// Cross returns the z-component of the cross product self x rhs.
func (c Coordinate) Cross(rhs Coordinate) float64 {
	return c.X*rhs.Y - c.Y*rhs.X
}

// Dot returns the dot product self . rhs.
func (c Coordinate) Dot(rhs Coordinate) float64 {
	return c.X*rhs.X + c.Y*rhs.Y
}
