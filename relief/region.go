// Package relief models a disaster area as a set of regions connected by
// directed, costed travel links.
package relief

import (
	"fmt"
	"sort"
	"strings"
)

// RegionID identifies a region by value. Two regions with the same name and
// population are considered to be the same region.
type RegionID struct {
	Name       string
	Population int
}

// Region is a node of the relief network. Its connections map the identity
// of each neighbor to the cost of traveling from this region to it.
type Region struct {
	id    RegionID
	costs map[RegionID]float64
}

// NewRegion returns a region without any connection.
func NewRegion(name string, population int) *Region {
	return &Region{
		id:    RegionID{Name: name, Population: population},
		costs: map[RegionID]float64{},
	}
}

func (r *Region) ID() RegionID    { return r.id }
func (r *Region) Name() string    { return r.id.Name }
func (r *Region) Population() int { return r.id.Population }

// Equal returns true if both regions have the same identity.
func (r *Region) Equal(other *Region) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.id == other.id
}

// AddConnection records the cost of traveling from r to other. The reverse
// connection is not added. Adding a connection that already exists replaces
// its cost.
func (r *Region) AddConnection(other *Region, cost float64) error {
	if other.id == r.id {
		return fmt.Errorf("%w: %q", ErrSelfLoop, r.id.Name)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %q -> %q costs %f", ErrNegativeCost, r.id.Name, other.id.Name, cost)
	}
	r.costs[other.id] = cost
	return nil
}

// CanReach returns true if a connection from r to other has been recorded.
func (r *Region) CanReach(other *Region) bool {
	_, ok := r.costs[other.id]
	return ok
}

// CostTo returns the cost of traveling from r to other. It returns an error
// wrapping ErrInvalidEdge if the regions are not connected in that direction.
func (r *Region) CostTo(other *Region) (float64, error) {
	c, ok := r.costs[other.id]
	if !ok {
		return 0, fmt.Errorf("cannot travel from %q to %q: %w", r.id.Name, other.id.Name, ErrInvalidEdge)
	}
	return c, nil
}

// Neighbors returns the identities of the regions reachable from r, sorted by
// name and then by population.
func (r *Region) Neighbors() []RegionID {
	ids := make([]RegionID, 0, len(r.costs))
	for id := range r.costs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Name != ids[j].Name {
			return ids[i].Name < ids[j].Name
		}
		return ids[i].Population < ids[j].Population
	})
	return ids
}

// String returns a representation of the region and its connections, for
// example: "Region #1: pop. 500 - [Region #2 (2000.00), Region #4 (1500.00)]".
func (r *Region) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%s: pop. %d - [", r.id.Name, r.id.Population))
	for i, id := range r.Neighbors() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s (%.2f)", id.Name, r.costs[id]))
	}
	sb.WriteString("]")
	return sb.String()
}
