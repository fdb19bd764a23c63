package relief

import (
	"fmt"
	"math"
	"sort"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// Edge represents a directed travel link between two regions identified by
// their index in the network.
type Edge struct {
	From int
	To   int
	Cost float64
}

// Network indexes a set of regions and the edges between them. Regions keep
// their own connections up to date so that they can be used on their own
// (e.g. by the planner) once the network is built.
type Network struct {
	Regions []*Region
	Nexts   [][]int
	Edges   []Edge
}

// NewNetwork creates a new network with the specified regions and edges. Each
// edge is recorded as a connection on its source region. An error is returned
// if an edge refers to a region outside of [0, len(regions)), if a region has
// a negative population, or if a connection cannot be added.
func NewNetwork(regions []*Region, edges []Edge) (*Network, error) {
	n := &Network{
		Regions: regions,
		Nexts:   make([][]int, len(regions)),
		Edges:   make([]Edge, len(edges)),
	}
	for _, r := range regions {
		if r.Population() < 0 {
			return nil, fmt.Errorf("region %q: %w", r.Name(), ErrNegativePopulation)
		}
	}
	for i, e := range edges {
		if e.From < 0 || len(regions) <= e.From || e.To < 0 || len(regions) <= e.To {
			return nil, fmt.Errorf("edge %d (%d -> %d): %w", i, e.From, e.To, ErrUnknownRegion)
		}
		if err := regions[e.From].AddConnection(regions[e.To], e.Cost); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		n.Edges[i] = e
		n.Nexts[e.From] = append(n.Nexts[e.From], i)
	}
	return n, nil
}

// NetworkOf returns the network made of the given regions and of the
// connections they already have. Edges are ordered by source region and then
// by destination identity. It returns an error wrapping ErrUnknownRegion if a
// region is connected to a region that is not part of regions.
func NetworkOf(regions []*Region) (*Network, error) {
	indexes := make(map[RegionID]int, len(regions))
	for i, r := range regions {
		indexes[r.ID()] = i
	}

	var edges []Edge
	for i, r := range regions {
		for _, id := range r.Neighbors() {
			j, ok := indexes[id]
			if !ok {
				return nil, fmt.Errorf("%q -> %q: %w", r.Name(), id.Name, ErrUnknownRegion)
			}
			edges = append(edges, Edge{From: i, To: j, Cost: r.costs[id]})
		}
	}
	return NewNetwork(regions, edges)
}

// Undirected returns the given edges followed by their reverse.
func Undirected(edges []Edge) []Edge {
	all := make([]Edge, 0, 2*len(edges))
	all = append(all, edges...)
	for _, e := range edges {
		all = append(all, Edge{From: e.To, To: e.From, Cost: e.Cost})
	}
	return all
}

// Reachable returns the (sorted) indexes of all the regions that can be
// reached from region src, src included.
func (n *Network) Reachable(src int) []int {
	if src < 0 || len(n.Regions) <= src {
		return nil
	}

	seen := sparsesets.New(len(n.Regions))
	seen.Insert(src)
	queue := []int{src}
	for i := 0; i < len(queue); i++ {
		for _, e := range n.Nexts[queue[i]] {
			v := n.Edges[e].To
			if seen.Contains(v) {
				continue
			}
			seen.Insert(v)
			queue = append(queue, v)
		}
	}

	reached := append([]int(nil), seen.Content()...)
	sort.Ints(reached)
	return reached
}

// TravelCosts returns the cost of the cheapest route from region src to every
// region of the network. Unreachable regions have an infinite cost.
func (n *Network) TravelCosts(src int) ([]float64, error) {
	nRegions := len(n.Regions)
	if src < 0 || nRegions <= src {
		return nil, fmt.Errorf("region %d: %w", src, ErrUnknownRegion)
	}

	costs := make([]float64, nRegions)
	for i := range costs {
		costs[i] = math.Inf(1)
	}

	h := yagh.New[float64](nRegions)
	h.Put(src, 0)
	costs[src] = 0

	for h.Size() > 0 {
		entry := h.Pop()
		u, c := entry.Elem, entry.Cost

		for _, e := range n.Nexts[u] {
			newCost := c + n.Edges[e].Cost
			v := n.Edges[e].To

			// Route src -> u -> v is not better than the best known route.
			if costs[v] <= newCost {
				continue
			}

			costs[v] = newCost
			h.Put(v, newCost)
		}
	}

	return costs, nil
}
