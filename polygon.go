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

// ValidatePolygon checks a shell ring against its holes, on the
// assumption that shell and every entry of holes have already passed
// [ValidateRing] individually. Ring index 0 names the shell in any
// returned [ValidationError]; hole i names as index i+1.
//
// Each hole must sit strictly inside the shell's envelope, touch the
// shell and every earlier hole at no more than one point, and not
// nest inside the shell's complement or another hole. Finally, the
// graph of ring-to-ring touches is checked for a cycle: a cycle means
// two or more holes (or a hole and the shell) share enough touch
// points to pinch the polygon's interior into disconnected pieces.
func ValidatePolygon(shell *Ring, holes []*Ring) error {
	shellEnvelope := shell.Envelope()
	graph := newRingGraph(1 + len(holes))

	for i, hole := range holes {
		holeIndex := i + 1
		holeEnvelope := hole.Envelope()
		if shellEnvelope.Equal(holeEnvelope) || !shellEnvelope.ContainsRect(holeEnvelope) {
			return &ValidationError{Kind: HoleNotValid, Index: holeIndex}
		}

		intersection, touches, err := findIntersectingPoint(hole, shell, holeIndex, 0)
		if err != nil {
			return err
		}
		if touches {
			graph.addEdge(holeIndex, 0)
		}

		witness := findNonequalPoint(hole.Coords(), intersection, touches)
		inShell, err := shell.Contains(witness)
		if err != nil {
			return err
		}
		if !inShell {
			return &ValidationError{Kind: HoleNotValid, Index: holeIndex}
		}

		for j := 0; j < i; j++ {
			otherHole := holes[j]
			otherIndex := j + 1
			if !hole.Envelope().Intersects(otherHole.Envelope()) {
				continue
			}

			pairIntersection, pairTouches, err := findIntersectingPoint(hole, otherHole, holeIndex, otherIndex)
			if err != nil {
				return err
			}
			if pairTouches {
				graph.addEdge(holeIndex, otherIndex)
			}

			holeWitness := findNonequalPoint(hole.Coords(), pairIntersection, pairTouches)
			if inOther, err := otherHole.Contains(holeWitness); err != nil {
				return err
			} else if inOther {
				return &ValidationError{Kind: HoleNotValid, Index: holeIndex, OtherIndex: otherIndex}
			}

			otherWitness := findNonequalPoint(otherHole.Coords(), pairIntersection, pairTouches)
			if inHole, err := hole.Contains(otherWitness); err != nil {
				return err
			} else if inHole {
				return &ValidationError{Kind: HoleNotValid, Index: holeIndex, OtherIndex: otherIndex}
			}
		}
	}

	if graph.hasCycle() {
		return &ValidationError{Kind: InteriorDisconnected}
	}
	return nil
}

// findIntersectingPoint collects the candidate segment pairs between
// ringA and ringB via [Tree.QueryOtherIntersections] and reduces them
// to at most one touch point: zero or one transverse intersection is
// fine, a collinear overlap or a second distinct transverse point is a
// validation failure.
func findIntersectingPoint(ringA, ringB *Ring, indexA, indexB int) (Coordinate, bool, error) {
	var final Coordinate
	found := false

	for _, pair := range ringA.Tree().QueryOtherIntersections(ringB.Tree()) {
		startA, endA := ringA.Coords()[pair.A], ringA.Coords()[pair.A+1]
		startB, endB := ringB.Coords()[pair.B], ringB.Coords()[pair.B+1]

		isxnStart, isxnEnd, intersects := intersectSegments(startA, endA, startB, endB)
		if !intersects {
			continue
		}
		if isxnStart != isxnEnd {
			return Coordinate{}, false, &ValidationError{
				Kind: OverlappingSegments, Index: indexA, OtherIndex: indexB,
				Start: isxnStart, End: isxnEnd,
			}
		}
		if found {
			return Coordinate{}, false, &ValidationError{Kind: MultipleIntersections, Index: indexA, OtherIndex: indexB}
		}
		final, found = isxnStart, true
	}
	return final, found, nil
}

// findNonequalPoint returns a coordinate from coords other than
// needle (when hasNeedle is true). Every ring has at least 3 distinct
// vertices, so this always finds one.
func findNonequalPoint(coords []Coordinate, needle Coordinate, hasNeedle bool) Coordinate {
	for _, c := range coords {
		if !hasNeedle || c != needle {
			return c
		}
	}
	return coords[0]
}

// ringGraph is the small undirected touch graph over a shell (node 0)
// and its holes (nodes 1..k), used to detect an interior-disconnecting
// cycle of ring-to-ring touches.
type ringGraph struct {
	adjacency [][]int
}

func newRingGraph(n int) *ringGraph {
	return &ringGraph{adjacency: make([][]int, n)}
}

func (g *ringGraph) addEdge(a, b int) {
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
}

// hasCycle runs a DFS with parent tracking from every unvisited node:
// an edge to an already-visited node that is not the immediate parent
// is a back edge, and therefore a cycle.
func (g *ringGraph) hasCycle() bool {
	visited := make([]bool, len(g.adjacency))
	var visit func(node, parent int) bool
	visit = func(node, parent int) bool {
		visited[node] = true
		for _, next := range g.adjacency[node] {
			if next == parent {
				parent = -1 // only skip one edge back to the parent, not every copy
				continue
			}
			if visited[next] {
				return true
			}
			if visit(next, node) {
				return true
			}
		}
		return false
	}
	for node := range g.adjacency {
		if !visited[node] {
			if visit(node, -1) {
				return true
			}
		}
	}
	return false
}
