package scoring

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/workstyle-profiler/internal/catalog"
	"github.com/ZanzyTHEbar/workstyle-profiler/internal/errors"
)

// Classify converts dimension scores into a discrete profile. Primary is the
// highest-scoring dimension, ties broken by catalog.DimensionPriority.
// Secondary dimensions meet the significance threshold, sorted descending by
// score with the same tie-break. A dimension without a configured label is a
// configuration error, not a user-facing condition.
func (e *Engine) Classify(scores DimensionScores) (Profile, error) {
	primary := catalog.DimensionPriority[0]
	for _, dim := range catalog.DimensionPriority[1:] {
		if scores[dim] > scores[primary] {
			primary = dim
		}
	}

	var secondary []string
	for _, dim := range catalog.DimensionPriority {
		if dim == primary {
			continue
		}
		if scores[dim] >= e.catalog.SignificantThreshold {
			secondary = append(secondary, dim)
		}
	}
	sort.SliceStable(secondary, func(i, j int) bool {
		if scores[secondary[i]] != scores[secondary[j]] {
			return scores[secondary[i]] > scores[secondary[j]]
		}
		return catalog.PriorityIndex(secondary[i]) < catalog.PriorityIndex(secondary[j])
	})

	primaryDim, err := labeled(primary, scores[primary])
	if err != nil {
		return Profile{}, err
	}

	secondaryDims := make([]ProfileDimension, 0, len(secondary))
	for _, dim := range secondary {
		ld, err := labeled(dim, scores[dim])
		if err != nil {
			return Profile{}, err
		}
		secondaryDims = append(secondaryDims, ld)
	}

	return Profile{
		Primary:   primaryDim,
		Secondary: secondaryDims,
		Scores:    scores,
	}, nil
}

func labeled(dim string, score float64) (ProfileDimension, error) {
	label, ok := catalog.DimensionLabels[dim]
	if !ok {
		return ProfileDimension{}, errors.NewConfigurationError(
			fmt.Sprintf("dimension %q has no configured label", dim), nil)
	}
	return ProfileDimension{
		Dimension:   dim,
		Label:       label.Label,
		Description: label.Description,
		Score:       score,
	}, nil
}
