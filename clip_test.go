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
	"reflect"
	"testing"
)

func xy(pairs ...[2]float64) []Coordinate {
	coords := make([]Coordinate, len(pairs))
	for i, p := range pairs {
		coords[i] = Coordinate{X: p[0], Y: p[1]}
	}
	return coords
}

func assertClip(t *testing.T, rect Rect, input []Coordinate, want [][]Coordinate) {
	t.Helper()
	tree := NewLoadedTree(2, rectanglesFromCoordinates(input))
	got := ClipPath(rect, input, tree)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClipPath(%v, %v): got %v, want %v", rect, input, got, want)
	}
}

var unitRect = Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

func TestClipPathBasicSingleSegment(t *testing.T) {
	// Fully contained.
	assertClip(t, unitRect, xy([2]float64{0, 0}, [2]float64{1, 1}),
		[][]Coordinate{xy([2]float64{0, 0}, [2]float64{1, 1})})
	assertClip(t, unitRect, xy([2]float64{0.1, 0.7}, [2]float64{0.5, 0.2}),
		[][]Coordinate{xy([2]float64{0.1, 0.7}, [2]float64{0.5, 0.2})})

	// Outside to in.
	assertClip(t, unitRect, xy([2]float64{-1.0, 0.5}, [2]float64{0.5, 0.5}),
		[][]Coordinate{xy([2]float64{0, 0.5}, [2]float64{0.5, 0.5})})
	assertClip(t, unitRect, xy([2]float64{-1.0, 0.5}, [2]float64{0.0, 0.5}),
		[][]Coordinate{xy([2]float64{0.0, 0.5})})

	// Inside to out.
	assertClip(t, unitRect, xy([2]float64{0.5, 0.5}, [2]float64{1.5, 0.5}),
		[][]Coordinate{xy([2]float64{0.5, 0.5}, [2]float64{1.0, 0.5})})
	assertClip(t, unitRect, xy([2]float64{1.0, 0.5}, [2]float64{1.5, 0.5}),
		[][]Coordinate{xy([2]float64{1.0, 0.5})})

	// Start and end both outside.
	assertClip(t, unitRect, xy([2]float64{-1.5, 0}, [2]float64{1, 2}), nil)
	assertClip(t, unitRect, xy([2]float64{-1, 0}, [2]float64{1, 2}),
		[][]Coordinate{xy([2]float64{0, 1})})
	assertClip(t, unitRect, xy([2]float64{-1, -1}, [2]float64{1, 1}),
		[][]Coordinate{xy([2]float64{0, 0}, [2]float64{1, 1})})
}

func TestClipPathMultiSegment(t *testing.T) {
	assertClip(t, unitRect,
		xy([2]float64{-1, 0.25}, [2]float64{0.25, 0.25}, [2]float64{0.5, 0.75}, [2]float64{0.5, 2.0}),
		[][]Coordinate{xy([2]float64{0, 0.25}, [2]float64{0.25, 0.25}, [2]float64{0.5, 0.75}, [2]float64{0.5, 1.0})})

	assertClip(t, unitRect,
		xy([2]float64{-0.25, 0.5}, [2]float64{0.5, 1.25}, [2]float64{1.25, 0.5}),
		[][]Coordinate{
			xy([2]float64{0, 0.75}, [2]float64{0.25, 1.0}),
			xy([2]float64{0.75, 1.0}, [2]float64{1.0, 0.75}),
		})
}

func TestClipPathLoopUnaffectedWhenFullyContained(t *testing.T) {
	ring := xy(
		[2]float64{0.25, 0.25}, [2]float64{0.75, 0.25}, [2]float64{0.75, 0.75},
		[2]float64{0.25, 0.75}, [2]float64{0.25, 0.25},
	)
	assertClip(t, unitRect, ring, [][]Coordinate{ring})
}

func TestClipPathReconnectsLoopSplitAcrossSeam(t *testing.T) {
	ring := xy(
		[2]float64{0.5, 0.5}, [2]float64{1.5, 0.5}, [2]float64{1.5, 1.5},
		[2]float64{0.5, 1.5}, [2]float64{0.5, 0.5},
	)
	assertClip(t, unitRect, ring,
		[][]Coordinate{xy([2]float64{0.5, 1.0}, [2]float64{0.5, 0.5}, [2]float64{1.0, 0.5})})
}
