package planner

import "github.com/vCxmp/disaster-relief/relief/paths"

type score struct {
	people int
	cost   float64
}

func scoreOf(p paths.Path) (score, error) {
	cost, err := p.TotalCost()
	if err != nil {
		return score{}, err
	}
	return score{people: p.TotalPeople(), cost: cost}, nil
}

// beats returns true if s is strictly better than other: it helps more
// people, or as many people for a lower cost.
func (s score) beats(other score) bool {
	if s.people != other.people {
		return s.people > other.people
	}
	return s.cost < other.cost
}

// Better returns true if path a is strictly preferred to path b.
func Better(a, b paths.Path) (bool, error) {
	sa, err := scoreOf(a)
	if err != nil {
		return false, err
	}
	sb, err := scoreOf(b)
	if err != nil {
		return false, err
	}
	return sa.beats(sb), nil
}

// Best returns the best of the given candidates. A candidate replaces the
// best path found so far only if it is strictly better, so the earliest of
// several equivalent candidates is returned. The returned pointer refers to
// the element of candidates itself. Best returns nil if there is no
// candidate.
func Best(candidates []paths.Path) (*paths.Path, error) {
	var best *paths.Path
	var bestScore score

	for i := range candidates {
		s, err := scoreOf(candidates[i])
		if err != nil {
			return nil, err
		}
		if best == nil || s.beats(bestScore) {
			best = &candidates[i]
			bestScore = s
		}
	}

	return best, nil
}
