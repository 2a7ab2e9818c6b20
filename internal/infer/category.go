package infer

import (
	"regexp"
	"sort"
)

// opaqueCode matches ID-ish tokens: one run of letters, digits,
// underscores or hyphens at least six characters long.
var opaqueCode = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)

// IsCategorical decides whether a text column is better modeled as a
// bounded label set than as free text. Two negative signals (near-unique
// values, opaque codes) reject outright; otherwise at least
// th.CatMinSignals of four positive signals must hold. No single signal
// is reliable on its own — short IDs exist, and real categories can fail
// any one test — so the decision is a majority vote.
func IsCategorical(values []string, nRows int, th Thresholds) bool {
	if nRows == 0 || len(values) == 0 {
		return false
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	distinct := len(counts)

	if float64(distinct)/float64(nRows) > th.CatMaxDistinctRatio {
		return false
	}
	codes := 0
	for _, v := range values {
		if opaqueCode.MatchString(v) {
			codes++
		}
	}
	if float64(codes)/float64(len(values)) > th.CatMaxCodeRate {
		return false
	}

	signals := 0
	if medianLength(values) <= th.CatMaxMedianLen {
		signals++
	}
	if distinct <= th.CatMaxDistinct {
		signals++
	}
	if float64(distinct)/float64(nRows) <= th.CatLowDistinctRatio {
		signals++
	}
	if topCoverage(counts, th.CatTopN, len(values)) >= th.CatTopCoverage {
		signals++
	}
	return signals >= th.CatMinSignals
}

func medianLength(values []string) float64 {
	lens := make([]int, len(values))
	for i, v := range values {
		lens[i] = len([]rune(v))
	}
	sort.Ints(lens)
	n := len(lens)
	if n%2 == 1 {
		return float64(lens[n/2])
	}
	return float64(lens[n/2-1]+lens[n/2]) / 2
}

// topCoverage returns the share of all values covered by the topN most
// frequent distinct values.
func topCoverage(counts map[string]int, topN, total int) float64 {
	freqs := make([]int, 0, len(counts))
	for _, n := range counts {
		freqs = append(freqs, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(freqs)))
	if topN > len(freqs) {
		topN = len(freqs)
	}
	covered := 0
	for _, n := range freqs[:topN] {
		covered += n
	}
	return float64(covered) / float64(total)
}
