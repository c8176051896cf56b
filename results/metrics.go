// Package results reduces raw per-path simulation outcomes (terminal
// values, max drawdowns, full value sequences) to the summary
// statistics and representative paths spec.md §4.6-§4.7 describe.
package results

import (
	"sort"

	"github.com/quantrisk/portfolio-stress/simtypes"
)

var summaryPercentiles = []int{5, 25, 75, 95}

// ComputeMetrics reduces terminalValues and maxDrawdowns to a
// MetricsSummary (spec.md §4.6).
func ComputeMetrics(terminalValues, maxDrawdowns []float64, initialValue float64, ruinThreshold *float64, ruinThresholdType simtypes.RuinThresholdType) simtypes.MetricsSummary {
	sortedTerminals := append([]float64(nil), terminalValues...)
	sort.Float64s(sortedTerminals)

	sortedDrawdowns := append([]float64(nil), maxDrawdowns...)
	sort.Float64s(sortedDrawdowns)

	terminalPercentiles := make(map[int]float64, len(summaryPercentiles))
	drawdownPercentiles := make(map[int]float64, len(summaryPercentiles))
	for _, p := range summaryPercentiles {
		terminalPercentiles[p] = percentile(sortedTerminals, p)
		drawdownPercentiles[p] = percentile(sortedDrawdowns, p)
	}

	cutoff := int(float64(len(sortedTerminals)) * 0.05)
	if cutoff < 1 {
		cutoff = 1
	}
	cvar95 := mean(sortedTerminals[:cutoff])

	probabilityOfRuin := 0.0
	if ruinThreshold != nil {
		ruinLevel := *ruinThreshold
		if ruinThresholdType == simtypes.RuinThresholdPercentage {
			ruinLevel = initialValue * (1 - *ruinThreshold)
		}
		below := 0
		for _, v := range terminalValues {
			if v < ruinLevel {
				below++
			}
		}
		probabilityOfRuin = float64(below) / float64(len(terminalValues))
	}

	return simtypes.MetricsSummary{
		TerminalWealthMean:        mean(terminalValues),
		TerminalWealthMedian:      percentile(sortedTerminals, 50),
		TerminalWealthPercentiles: terminalPercentiles,
		MaxDrawdownMean:           mean(maxDrawdowns),
		MaxDrawdownPercentiles:    drawdownPercentiles,
		CVaR95:                    cvar95,
		ProbabilityOfRuin:         probabilityOfRuin,
		RuinThreshold:             ruinThreshold,
		RuinThresholdType:         ruinThresholdType,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentile computes the p-th percentile of an already-sorted slice
// via linear interpolation between closest ranks, matching numpy's
// default behavior (spec.md §4.6 requires the percentiles match the
// source's values).
func percentile(sorted []float64, p int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := (float64(p) / 100) * float64(n-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
