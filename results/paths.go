package results

import "sort"

// SelectRepresentativePaths picks count paths at evenly-spaced
// percentiles of terminal value (spec.md §4.7). paths[i] must be the
// full value sequence whose terminal value is terminalValues[i].
func SelectRepresentativePaths(paths [][]float64, terminalValues []float64, count int) []PathSelection {
	if count <= 0 || len(paths) == 0 {
		return nil
	}

	nPaths := len(paths)
	if count > nPaths {
		count = nPaths
	}

	order := make([]int, nPaths)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return terminalValues[order[i]] < terminalValues[order[j]]
	})

	step := 100.0 / float64(count)
	selections := make([]PathSelection, 0, count)
	for i := 0; i < count; i++ {
		p := int(step/2 + float64(i)*step)
		if p > 99 {
			p = 99
		}

		rankIdx := int((float64(p) / 100) * float64(nPaths-1))
		pathIdx := order[rankIdx]

		selections = append(selections, PathSelection{
			Percentile:    p,
			PathIndex:     pathIdx,
			TerminalValue: terminalValues[pathIdx],
		})
	}
	return selections
}

// PathSelection names which simulated path was picked to represent a
// given terminal-value percentile, leaving the caller to pair it back
// up with the full value sequence (avoids copying every selected path
// twice when the caller already holds the slice).
type PathSelection struct {
	Percentile    int
	PathIndex     int
	TerminalValue float64
}
