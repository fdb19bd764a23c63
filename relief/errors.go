package relief

import "errors"

var (
	// ErrInvalidEdge is returned when a travel cost is requested between two
	// regions that are not connected in that direction.
	ErrInvalidEdge = errors.New("no connection between regions")

	// ErrSelfLoop is returned when a region is connected to itself.
	ErrSelfLoop = errors.New("region cannot be connected to itself")

	ErrNegativeCost       = errors.New("travel cost must be non-negative")
	ErrNegativePopulation = errors.New("population must be non-negative")
	ErrUnknownRegion      = errors.New("unknown region")
)
