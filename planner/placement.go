package planner

// placement is a reversible structure which keeps track of the regions that
// are already part of the path being explored. Regions are placed in a stack
// so that the last placement can be undone in O(1) when backtracking.
type placement struct {
	placed []bool

	// Stack of placed regions, in placement order.
	order []int
}

func newPlacement(nRegions int) *placement {
	return &placement{
		placed: make([]bool, nRegions),
		order:  make([]int, 0, nRegions),
	}
}

// IsPlaced returns true if the region is part of the current path.
func (p *placement) IsPlaced(region int) bool {
	return p.placed[region]
}

// Place marks the region as part of the current path.
func (p *placement) Place(region int) {
	p.placed[region] = true
	p.order = append(p.order, region)
}

// Undo removes the last placed region. It is a no-op if no region is placed.
func (p *placement) Undo() {
	if len(p.order) == 0 {
		return
	}
	last := p.order[len(p.order)-1]
	p.order = p.order[:len(p.order)-1]
	p.placed[last] = false
}

// Depth returns the number of placed regions.
func (p *placement) Depth() int {
	return len(p.order)
}
