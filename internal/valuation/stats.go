package valuation

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// populationMeanStdev computes the mean and population standard
// deviation (divide by N, not N-1) of values, as spec.md 4.3 requires.
// gonum's stat.MeanVariance returns the unbiased (N-1) sample variance
// for an unweighted sample, so the population variance is recovered by
// scaling by (n-1)/n before taking the square root.
func populationMeanStdev(values []float64) (mean, stdev float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return values[0], 0
	}
	mean, sampleVariance := stat.MeanVariance(values, nil)
	popVariance := sampleVariance * float64(n-1) / float64(n)
	if popVariance < 0 {
		popVariance = 0
	}
	return mean, math.Sqrt(popVariance)
}
