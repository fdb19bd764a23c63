package planner

import (
	"testing"

	"github.com/vCxmp/disaster-relief/relief"
	"github.com/vCxmp/disaster-relief/relief/paths"
)

// network builds the regions with the given populations and adds the
// directed edges to them.
func network(t *testing.T, pops []int, edges []relief.Edge) []*relief.Region {
	t.Helper()
	regions := make([]*relief.Region, len(pops))
	for i, p := range pops {
		regions[i] = relief.NewRegion(regionName(i), p)
	}
	if _, err := relief.NewNetwork(regions, edges); err != nil {
		t.Fatalf("NewNetwork(): unexpected error: %s", err)
	}
	return regions
}

func regionName(i int) string {
	return "R" + string(rune('1'+i))
}

func pathOf(t *testing.T, regions []*relief.Region, idx ...int) paths.Path {
	t.Helper()
	rs := make([]*relief.Region, len(idx))
	for i, j := range idx {
		rs[i] = regions[j]
	}
	p, err := paths.Of(rs...)
	if err != nil {
		t.Fatalf("paths.Of(): unexpected error: %s", err)
	}
	return p
}

func pathStrings(ps []paths.Path) []string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = p.String()
	}
	return s
}

// reliefNetwork returns a six-region network with branches that reconverge:
//
//	R1: R2 R4 R5
//	R2: R1 R3 R4 R5
//	R3: R2
//	R4: R1 R2 R5 R6
//	R5: R1 R2 R4
//	R6: R4
func reliefNetwork(t *testing.T) []*relief.Region {
	return network(t, []int{500, 700, 900, 400, 300, 800}, []relief.Edge{
		{From: 0, To: 1, Cost: 2000},
		{From: 0, To: 3, Cost: 1500},
		{From: 0, To: 4, Cost: 1800},
		{From: 1, To: 0, Cost: 2000},
		{From: 1, To: 2, Cost: 1500},
		{From: 1, To: 3, Cost: 500},
		{From: 1, To: 4, Cost: 700},
		{From: 2, To: 1, Cost: 1500},
		{From: 3, To: 0, Cost: 1500},
		{From: 3, To: 1, Cost: 500},
		{From: 3, To: 4, Cost: 1400},
		{From: 3, To: 5, Cost: 200},
		{From: 4, To: 0, Cost: 1800},
		{From: 4, To: 1, Cost: 700},
		{From: 4, To: 3, Cost: 1400},
		{From: 5, To: 3, Cost: 200},
	})
}

// districtNetwork returns a seven-region network made of two loosely coupled
// clusters: {R1, R2, R3, R5} and {R4, R6, R7}.
func districtNetwork(t *testing.T) []*relief.Region {
	return network(t, []int{1200, 9000, 4500, 4600, 1300, 7800, 2400}, relief.Undirected([]relief.Edge{
		{From: 0, To: 1, Cost: 2900},
		{From: 0, To: 3, Cost: 2400},
		{From: 1, To: 2, Cost: 1600},
		{From: 1, To: 3, Cost: 1300},
		{From: 1, To: 4, Cost: 3100},
		{From: 2, To: 4, Cost: 900},
		{From: 3, To: 5, Cost: 1700},
		{From: 3, To: 6, Cost: 1200},
		{From: 5, To: 6, Cost: 600},
	}))
}

// asymmetricNetwork returns a four-region network where some links can only
// be traveled in one direction and some cost differently in each direction.
func asymmetricNetwork(t *testing.T) []*relief.Region {
	return network(t, []int{500, 100, 300, 200}, []relief.Edge{
		{From: 0, To: 1, Cost: 300},
		{From: 0, To: 3, Cost: 500},
		{From: 1, To: 0, Cost: 300},
		{From: 1, To: 2, Cost: 600},
		{From: 2, To: 1, Cost: 200},
		{From: 2, To: 3, Cost: 400},
	})
}
