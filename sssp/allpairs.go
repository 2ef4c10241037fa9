package sssp

import "github.com/katalvlaran/graphalgo/core"

// AllPairsTable is a dense n x n matrix of shortest distances, Table[s][t],
// built by running Dijkstra (or BFS, for unit weights) from every vertex.
// Used by distance.Measures to compute eccentricity/radius/diameter/center
// (spec §4.11).
type AllPairsTable struct {
	Table [][]float64
}

// AllPairsDijkstra runs Dijkstra from every vertex of g and assembles the
// resulting distance matrix. Complexity: O(n * (m log n)).
func AllPairsDijkstra(g *core.IndexGraph, w Weight) (*AllPairsTable, error) {
	n := g.NumVertices()
	table := make([][]float64, n)
	for s := 0; s < n; s++ {
		res, err := Dijkstra(g, w, s)
		if err != nil {
			return nil, err
		}
		table[s] = res.Dist
	}

	return &AllPairsTable{Table: table}, nil
}

// AllPairsBFS runs BFS from every vertex of g, for the unweighted case.
func AllPairsBFS(g *core.IndexGraph) (*AllPairsTable, error) {
	n := g.NumVertices()
	table := make([][]float64, n)
	for s := 0; s < n; s++ {
		res, err := BFS(g, s)
		if err != nil {
			return nil, err
		}
		table[s] = res.Dist
	}

	return &AllPairsTable{Table: table}, nil
}
