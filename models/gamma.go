package models

import (
	"math"
	"math/rand"
)

// sampleGamma draws from Gamma(shape, scale=1) using the Marsaglia-Tsang
// (2000) rejection method, consuming only rng.NormFloat64/rng.Float64 so
// it stays on the engine's single RNG stream (spec.md §5) rather than
// needing a second, independently-seeded source.
func sampleGamma(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		return sampleGamma(rng, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		x2 := x * x
		u := rng.Float64()
		if u < 1-0.0331*x2*x2 {
			return d * v
		}
		if math.Log(u) < 0.5*x2+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// sampleChiSquared draws from a chi-squared distribution with df degrees
// of freedom, via the standard Gamma(df/2, scale=2) relation.
func sampleChiSquared(rng *rand.Rand, df float64) float64 {
	return 2 * sampleGamma(rng, df/2)
}
