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
	"errors"
	"sort"
	"testing"
)

func TestEmptyTree(t *testing.T) {
	p1 := Coordinate{X: 0, Y: 0}
	r := Rect{XMin: -10, YMin: -5, XMax: 1, YMax: 5}

	tree := NewTree(2, 0)
	if tree.Len() != 0 {
		t.Errorf("Len: got %d, want 0", tree.Len())
	}
	if tree.Height() != 0 {
		t.Errorf("Height: got %d, want 0", tree.Height())
	}
	if got := tree.QueryPoint(p1); got != nil {
		t.Errorf("QueryPoint on empty tree: got %v", got)
	}
	if got := tree.QueryRect(r); got != nil {
		t.Errorf("QueryRect on empty tree: got %v", got)
	}
	if err := tree.Add(r); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Add on zero-capacity tree: got %v, want ErrCapacityExceeded", err)
	}
}

func unitSquare(i int) Rect {
	return Rect{XMin: float64(i), YMin: float64(i), XMax: float64(i), YMax: float64(i)}
}

func TestIncrementalBuild(t *testing.T) {
	tree := NewTree(2, 6)
	wantLevels := []int{0, 1, 2, 2, 3, 3}

	for i := 0; i < 6; i++ {
		if err := tree.Add(unitSquare(i)); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
		if tree.Len() != i+1 {
			t.Errorf("Len after %d adds: got %d", i+1, tree.Len())
		}
		if tree.Height() != wantLevels[i] {
			t.Errorf("Height after %d adds: got %d, want %d", i+1, tree.Height(), wantLevels[i])
		}
		for j := 0; j <= i; j++ {
			got := tree.QueryRect(unitSquare(j))
			if len(got) != 1 || got[0] != j {
				t.Errorf("QueryRect(unitSquare(%d)) after %d adds: got %v", j, i+1, got)
			}
		}
	}

	full := Rect{XMin: 0, YMin: 0, XMax: 5, YMax: 5}
	results := tree.QueryRect(full)
	sort.Ints(results)
	want := []int{0, 1, 2, 3, 4, 5}
	if !intSliceEqual(results, want) {
		t.Errorf("QueryRect(full): got %v, want %v", results, want)
	}

	partial := Rect{XMin: 1, YMin: 1, XMax: 3, YMax: 3}
	results = tree.QueryRect(partial)
	sort.Ints(results)
	want = []int{1, 2, 3}
	if !intSliceEqual(results, want) {
		t.Errorf("QueryRect(partial): got %v, want %v", results, want)
	}
}

func TestQuerySelfIntersections(t *testing.T) {
	rects := []Rect{unitSquare(0), unitSquare(1), unitSquare(2)}
	tree := NewLoadedTree(2, rects)
	got := tree.QuerySelfIntersections()
	if len(got) != 0 {
		t.Errorf("disjoint unit squares should not intersect each other: got %v", got)
	}

	overlapping := []Rect{
		NewRect(Coordinate{X: 0, Y: 0}, Coordinate{X: 2, Y: 2}),
		NewRect(Coordinate{X: 1, Y: 1}, Coordinate{X: 3, Y: 3}),
		NewRect(Coordinate{X: 10, Y: 10}, Coordinate{X: 11, Y: 11}),
	}
	tree2 := NewLoadedTree(2, overlapping)
	got2 := tree2.QuerySelfIntersections()
	if len(got2) != 1 || got2[0] != (IndexPair{A: 0, B: 1}) {
		t.Errorf("expected exactly one intersecting pair (0, 1): got %v", got2)
	}
}

func TestQueryOtherIntersections(t *testing.T) {
	treeA := NewLoadedTree(2, []Rect{
		NewRect(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1}),
		NewRect(Coordinate{X: 10, Y: 10}, Coordinate{X: 11, Y: 11}),
	})
	treeB := NewLoadedTree(2, []Rect{
		NewRect(Coordinate{X: 0.5, Y: 0.5}, Coordinate{X: 1.5, Y: 1.5}),
	})
	got := treeA.QueryOtherIntersections(treeB)
	if len(got) != 1 || got[0] != (IndexPair{A: 0, B: 0}) {
		t.Errorf("expected exactly one cross pair (0, 0): got %v", got)
	}
}

func TestNewHilbertLoadedTreePreservesQueryCorrectness(t *testing.T) {
	coords := []Coordinate{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 3}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	rects := rectanglesFromCoordinates(coords)
	tree := NewHilbertLoadedTree(2, rects)
	if tree.Len() != len(rects) {
		t.Fatalf("Len: got %d, want %d", tree.Len(), len(rects))
	}

	full := UnionRects(rects)
	got := tree.QueryRect(full)
	sort.Ints(got)
	want := make([]int, len(rects))
	for i := range want {
		want[i] = i
	}
	if !intSliceEqual(got, want) {
		t.Errorf("QueryRect(envelope) on hilbert-sorted tree: got %v, want %v", got, want)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
