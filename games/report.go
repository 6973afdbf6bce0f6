// Package games implements the statistical adversary experiments probing
// the semantic security of the pke scheme: a chosen-plaintext (IND-CPA)
// game, which the scheme is expected to win, and a chosen-ciphertext
// (IND-CCA) game, which it is expected to lose by design since decryption
// accepts arbitrarily perturbed ciphertexts. The games are external
// collaborators of the pke package: they only call its public operations
// and keep all experiment bookkeeping, including the challenge-exclusion
// rule of the decryption oracle, on their side.
package games

import (
	"fmt"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
)

// Report aggregates the outcome of a repeated adversary game.
type Report struct {
	// Attack names the experiment, e.g. "IND-CPA".
	Attack string
	// Trials is the number of independent game rounds played.
	Trials int
	// Successes counts the rounds in which the adversary guessed the
	// challenge bit correctly.
	Successes int
	// BatchRates holds the success rate of each completed batch of trials.
	BatchRates []float64
}

// Rate returns the empirical success probability.
func (r *Report) Rate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Successes) / float64(r.Trials)
}

// Advantage returns the absolute advantage over random guessing.
func (r *Report) Advantage() float64 {
	return math.Abs(r.Rate() - 0.5)
}

// PValue returns the exact two-sided binomial test p-value against the null
// hypothesis that the success probability is 0.5.
func (r *Report) PValue() float64 {
	return BinomialTwoSidedPValue(r.Successes, r.Trials)
}

// WilsonInterval returns the 95% Wilson score confidence interval for the
// success probability. Unlike the normal approximation it stays inside
// [0, 1] even for the degenerate rates the IND-CCA experiment produces.
func (r *Report) WilsonInterval() (lo, hi float64) {

	if r.Trials == 0 {
		return 0, 1
	}

	const z = 1.959963984540054 // 97.5% standard normal quantile

	n := float64(r.Trials)
	p := r.Rate()

	denom := 1 + z*z/n
	center := (p + z*z/(2*n)) / denom
	margin := z / denom * math.Sqrt(p*(1-p)/n+z*z/(4*n*n))

	return center - margin, center + margin
}

// NormalInterval returns the 95% normal-approximation confidence interval
// p^ +/- 1.96*sqrt(p^(1-p^)/n) for the success probability.
func (r *Report) NormalInterval() (lo, hi float64) {

	if r.Trials == 0 {
		return 0, 1
	}

	p := r.Rate()
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(r.Trials))

	return p - margin, p + margin
}

// BatchSummary returns the mean and standard deviation of the per-batch
// success rates.
func (r *Report) BatchSummary() (mean, stdDev float64) {

	if len(r.BatchRates) == 0 {
		return r.Rate(), 0
	}

	// stats only errors on empty input, which is excluded above.
	mean, _ = stats.Mean(r.BatchRates)
	stdDev, _ = stats.StandardDeviation(r.BatchRates)
	return
}

// String renders the report in the banner format of the experiment suite.
func (r *Report) String() string {

	rule := strings.Repeat("=", 45)
	lo, hi := r.NormalInterval()

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%s experiment\n", r.Attack)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Adversary success rate: %d/%d\n", r.Successes, r.Trials)
	fmt.Fprintf(&b, "Probability of guessing correctly: %.4f\n", r.Rate())
	fmt.Fprintf(&b, "Advantage over random guessing: %.4f\n", r.Advantage())
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "p-value (binomial test): %.4f\n", r.PValue())
	fmt.Fprintf(&b, "95%% confidence interval: [%.4f, %.4f]\n", lo, hi)
	fmt.Fprint(&b, rule)

	return b.String()
}
