package generator

import (
	"fmt"

	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/config"
)

// groups is a disjoint-set forest over cell indexes.
type groups struct {
	parent []int
}

func newGroups(n int) *groups {
	g := &groups{parent: make([]int, n)}
	for i := range g.parent {
		g.parent[i] = i
	}
	return g
}

func (g *groups) find(i int) int {
	root := i
	for g.parent[root] != root {
		root = g.parent[root]
	}
	for i != root {
		next := g.parent[i]
		g.parent[i] = root
		i = next
	}
	return root
}

// union merges the groups of a and b and reports whether they were apart.
func (g *groups) union(a, b int) bool {
	ra, rb := g.find(a), g.find(b)
	if ra == rb {
		return false
	}
	g.parent[rb] = ra
	return true
}

// Span carves a random spanning tree over grid's candidate edges, then adds
// extra edges drawn from the ones the tree left out.
//
// Each step draws an index into the remaining candidates and removes that
// edge, keeping the rest in order. Edges joining two groups are carved; the
// others become redundant and feed the extra-edge draws.
func Span(grid *world.Grid, extra int, rng random.Source) error {
	candidates := grid.CandidateEdges()
	sets := newGroups(grid.Len())
	var redundant []world.Edge

	for len(candidates) > 0 {
		idx, err := rng.NextInRange(0, len(candidates))
		if err != nil {
			return err
		}
		e := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		if !sets.union(e.A, e.B) {
			redundant = append(redundant, e)
			continue
		}
		if err := grid.ConnectEdge(e); err != nil {
			return err
		}
	}

	if extra > len(redundant) {
		return fmt.Errorf("%w: interconnectivity %d exceeds the %d spare edges",
			config.ErrInvalidConfiguration, extra, len(redundant))
	}

	for i := 0; i < extra; i++ {
		idx, err := rng.NextInRange(0, len(redundant))
		if err != nil {
			return err
		}
		if err := grid.ConnectEdge(redundant[idx]); err != nil {
			return err
		}
		redundant = append(redundant[:idx], redundant[idx+1:]...)
	}

	return nil
}
