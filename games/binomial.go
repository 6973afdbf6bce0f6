package games

import (
	"math/big"

	"github.com/ALTree/bigfloat"

	"babykyber/utils"
)

// pValuePrec is the mantissa precision used for the p-value accumulation.
const pValuePrec = 256

// BinomialTwoSidedPValue returns the exact two-sided binomial test p-value
// for observing the given number of successes in trials fair coin flips,
// under the null hypothesis that the success probability is 0.5.
//
// The computation is carried out in big-float arithmetic: at the trial
// counts the experiments use (10^4 and beyond), the 2^-trials scale factor
// underflows float64 long before the tail sum is formed, so the binomial
// coefficients are summed exactly in a big.Int and scaled by 2^-trials
// computed with bigfloat.Pow. The returned float64 may round to 0 for
// overwhelmingly one-sided outcomes.
func BinomialTwoSidedPValue(successes, trials int) float64 {

	if trials <= 0 {
		return 1
	}

	// The null distribution is symmetric around trials/2, so the two-sided
	// p-value is twice the probability mass of the smaller tail.
	m := utils.Min(successes, trials-successes)
	if 2*m >= trials {
		return 1
	}

	tail := new(big.Int)
	coeff := new(big.Int)
	for i := 0; i <= m; i++ {
		tail.Add(tail, coeff.Binomial(int64(trials), int64(i)))
	}

	two := new(big.Float).SetPrec(pValuePrec).SetInt64(2)
	exponent := new(big.Float).SetPrec(pValuePrec).SetInt64(-int64(trials))
	scale := bigfloat.Pow(two, exponent)

	p := new(big.Float).SetPrec(pValuePrec).SetInt(tail)
	p.Mul(p, scale)
	p.Mul(p, two)

	v, _ := p.Float64()
	if v > 1 {
		v = 1
	}
	return v
}
