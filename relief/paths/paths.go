// Package paths provides an immutable representation of relief paths, i.e.
// sequences of distinct regions visited in order.
package paths

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vCxmp/disaster-relief/relief"
)

var (
	// ErrDuplicateRegion is returned when extending a path with a region that
	// is already part of it.
	ErrDuplicateRegion = errors.New("path already contains region")

	// ErrEmptyPath is returned when removing a region from an empty path.
	ErrEmptyPath = errors.New("cannot remove from an empty path")
)

// Path is an ordered sequence of regions. It respects the following
// invariant:
//
//   - Unique regions: a region (by identity) appears at most once.
//
// Paths are values: operations never modify the receiver and instead return
// a new Path. The zero value is an empty path.
type Path struct {
	regions []*relief.Region
}

// New returns an empty path.
func New() Path {
	return Path{}
}

// Of returns the path made of the given regions, in order.
func Of(regions ...*relief.Region) (Path, error) {
	p := New()
	for _, r := range regions {
		var err error
		if p, err = p.Extend(r); err != nil {
			return Path{}, err
		}
	}
	return p, nil
}

// Len returns the number of regions in the path.
func (p Path) Len() int {
	return len(p.regions)
}

// Region returns the region at position pos starting from 0 (the start) and
// ending at Len()-1 (the end).
func (p Path) Region(pos int) *relief.Region {
	return p.regions[pos]
}

// Regions returns a copy of the sequence of regions in the path.
func (p Path) Regions() []*relief.Region {
	return append([]*relief.Region(nil), p.regions...)
}

// Start returns the first region of the path or nil if the path is empty.
func (p Path) Start() *relief.Region {
	if len(p.regions) == 0 {
		return nil
	}
	return p.regions[0]
}

// End returns the last region of the path or nil if the path is empty.
func (p Path) End() *relief.Region {
	if len(p.regions) == 0 {
		return nil
	}
	return p.regions[len(p.regions)-1]
}

// Contains returns true if a region with the same identity as r is part of
// the path.
func (p Path) Contains(r *relief.Region) bool {
	for _, pr := range p.regions {
		if pr.Equal(r) {
			return true
		}
	}
	return false
}

// Extend returns a new path made of p followed by region r. It returns an
// error wrapping ErrDuplicateRegion if r is already part of p.
func (p Path) Extend(r *relief.Region) (Path, error) {
	if p.Contains(r) {
		return Path{}, fmt.Errorf("%w: %q", ErrDuplicateRegion, r.Name())
	}
	regions := make([]*relief.Region, len(p.regions)+1)
	copy(regions, p.regions)
	regions[len(p.regions)] = r
	return Path{regions: regions}, nil
}

// RemoveEnd returns a new path made of all the regions of p except the last
// one. It returns ErrEmptyPath if p is empty.
func (p Path) RemoveEnd() (Path, error) {
	if len(p.regions) == 0 {
		return Path{}, ErrEmptyPath
	}
	regions := make([]*relief.Region, len(p.regions)-1)
	copy(regions, p.regions)
	return Path{regions: regions}, nil
}

// TotalPeople returns the sum of the population of the regions in the path.
func (p Path) TotalPeople() int {
	total := 0
	for _, r := range p.regions {
		total += r.Population()
	}
	return total
}

// TotalCost returns the sum of the travel costs between consecutive regions,
// in the direction of travel. It returns an error wrapping
// relief.ErrInvalidEdge if two consecutive regions are not connected.
func (p Path) TotalCost() (float64, error) {
	total := 0.0
	for i := 1; i < len(p.regions); i++ {
		c, err := p.regions[i-1].CostTo(p.regions[i])
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}

// Equal returns true if both paths visit regions with the same identities in
// the same order.
func (p Path) Equal(other Path) bool {
	if len(p.regions) != len(other.regions) {
		return false
	}
	for i, r := range p.regions {
		if !r.Equal(other.regions[i]) {
			return false
		}
	}
	return true
}

// Key returns a string that uniquely identifies the sequence of regions of
// the path. Two paths have the same key if and only if they are equal.
func (p Path) Key() string {
	sb := strings.Builder{}
	for _, r := range p.regions {
		sb.WriteString(fmt.Sprintf("%q/%d;", r.Name(), r.Population()))
	}
	return sb.String()
}

// String returns a representation of the path as a sequence of region names
// separated by " -> ". For example: "Region #1 -> Region #4 -> Region #5".
func (p Path) String() string {
	names := make([]string, len(p.regions))
	for i, r := range p.regions {
		names[i] = r.Name()
	}
	return strings.Join(names, " -> ")
}
