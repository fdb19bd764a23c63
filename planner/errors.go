package planner

import "errors"

var (
	// ErrInvalidArgument is returned when the planner is given a nil set of
	// regions. An empty (non-nil) set is valid and has no best path.
	ErrInvalidArgument = errors.New("regions cannot be nil")

	// ErrTooManyCandidates is returned when the search discovers more
	// candidate paths than allowed by Config.MaxCandidates.
	ErrTooManyCandidates = errors.New("too many candidate paths")
)
