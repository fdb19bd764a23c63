// Package planner finds the relief path that serves the most people and, among
// those, the one that is the cheapest to travel.
//
// The search is exhaustive: every simple path starting at the first region is
// enumerated by depth-first backtracking. This is only practical on small
// networks; see Config for ways to bound the search.
package planner

import (
	"context"
	"fmt"

	"github.com/vCxmp/disaster-relief/relief"
	"github.com/vCxmp/disaster-relief/relief/paths"
	"go.uber.org/zap"
)

type Config struct {
	// MaxDepth is the maximum number of regions in a candidate path. The
	// search does not extend paths that already have MaxDepth regions. Zero
	// means that paths are not bounded.
	MaxDepth int

	// MaxCandidates is the maximum number of candidate paths that can be
	// discovered before the search fails with ErrTooManyCandidates. Zero means
	// that the number of candidates is not bounded.
	MaxCandidates int

	// Logger receives debug information about the search. A nil Logger
	// disables logging.
	Logger *zap.Logger
}

type Planner struct {
	Cfg Config

	logger *zap.Logger
}

// New returns a new planner configured with cfg.
func New(cfg Config) *Planner {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		Cfg:    cfg,
		logger: logger,
	}
}

// FindBestPath returns the best path starting at regions[0] using an
// unbounded planner. See [Planner.FindBestPath].
func FindBestPath(regions []*relief.Region) (*paths.Path, error) {
	return New(Config{}).FindBestPath(context.Background(), regions)
}

// Candidates returns all the candidate paths starting at regions[0] using an
// unbounded planner. See [Planner.Candidates].
func Candidates(regions []*relief.Region) ([]paths.Path, error) {
	return New(Config{}).Candidates(context.Background(), regions)
}

// FindBestPath returns the path starting at regions[0] that maximizes the
// number of people helped. Ties are broken by choosing the path with the
// lowest travel cost, and then the path discovered first.
//
// FindBestPath returns ErrInvalidArgument if regions is nil and a nil path if
// regions is empty. If the first region cannot reach any other region, the
// path made of the first region only is returned.
func (pl *Planner) FindBestPath(ctx context.Context, regions []*relief.Region) (*paths.Path, error) {
	candidates, err := pl.Candidates(ctx, regions)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	best, err := Best(candidates)
	if err != nil {
		return nil, err
	}

	pl.logger.Debug("selected best path",
		zap.Int("candidates", len(candidates)),
		zap.Stringer("path", best),
		zap.Int("people", best.TotalPeople()),
	)
	return best, nil
}

// Candidates returns the paths starting at regions[0] in the order they are
// discovered. Regions are explored depth first: from the last region of the
// current path, every region not yet in the path is considered by increasing
// index and, if it can be reached, the extended path is recorded before being
// explored further.
//
// If no other region can be reached from regions[0], the only candidate is
// the path made of regions[0]. Candidates returns ErrInvalidArgument if
// regions is nil and no candidate if regions is empty.
func (pl *Planner) Candidates(ctx context.Context, regions []*relief.Region) ([]paths.Path, error) {
	if regions == nil {
		return nil, ErrInvalidArgument
	}
	if len(regions) == 0 {
		return nil, nil
	}

	start, err := paths.New().Extend(regions[0])
	if err != nil {
		return nil, err
	}

	s := &search{
		ctx:       ctx,
		cfg:       pl.Cfg,
		regions:   regions,
		placement: newPlacement(len(regions)),
	}
	s.placement.Place(0)

	candidates, err := s.explore(start, 0)
	if err != nil {
		return nil, err
	}
	pl.logger.Debug("enumerated candidate paths",
		zap.Int("regions", len(regions)),
		zap.Int("candidates", len(candidates)),
	)

	if len(candidates) == 0 {
		return []paths.Path{start}, nil
	}
	return candidates, nil
}

// search holds the state of a single call to Candidates.
type search struct {
	ctx       context.Context
	cfg       Config
	regions   []*relief.Region
	placement *placement
	nFound    int
}

// explore returns the candidates discovered by extending soFar, whose last
// region is regions[end]. The placement is restored before returning, even
// if an error occurred.
func (s *search) explore(soFar paths.Path, end int) ([]paths.Path, error) {
	if s.cfg.MaxDepth > 0 && soFar.Len() >= s.cfg.MaxDepth {
		return nil, nil
	}

	var found []paths.Path
	from := s.regions[end]
	for i, r := range s.regions {
		if s.placement.IsPlaced(i) || !from.CanReach(r) {
			continue
		}
		if err := s.ctx.Err(); err != nil {
			return nil, fmt.Errorf("search interrupted at depth %d: %w", s.placement.Depth(), err)
		}

		next, err := soFar.Extend(r)
		if err != nil {
			return nil, err
		}
		s.nFound++
		if s.cfg.MaxCandidates > 0 && s.nFound > s.cfg.MaxCandidates {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyCandidates, s.cfg.MaxCandidates)
		}
		found = append(found, next)

		s.placement.Place(i)
		deeper, err := s.explore(next, i)
		s.placement.Undo()
		if err != nil {
			return nil, err
		}
		found = append(found, deeper...)
	}

	return found, nil
}
