// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Hypergeometric is the distribution of the number of successes in
// draws draws, without replacement, from a population of size pop
// containing succ successes.
type Hypergeometric struct {
	pop, succ, draws int
	logDenom         float64 // ln C(pop, draws)
}

// NewHypergeometric returns the hypergeometric distribution for a
// population of size pop with succ successes, sampled draws times
// without replacement.
func NewHypergeometric(pop, succ, draws int) (Hypergeometric, error) {
	if pop < 0 {
		return Hypergeometric{}, OutOfRangeError{"pop", float64(pop), 0, math.Inf(1)}
	}
	if succ < 0 || succ > pop {
		return Hypergeometric{}, OutOfRangeError{"succ", float64(succ), 0, float64(pop)}
	}
	if draws < 0 || draws > pop {
		return Hypergeometric{}, OutOfRangeError{"draws", float64(draws), 0, float64(pop)}
	}
	return Hypergeometric{
		pop:      pop,
		succ:     succ,
		draws:    draws,
		logDenom: logChoose(pop, draws),
	}, nil
}

func (d Hypergeometric) Support() (lo, hi int) {
	lo = d.draws + d.succ - d.pop
	if lo < 0 {
		lo = 0
	}
	hi = d.draws
	if d.succ < hi {
		hi = d.succ
	}
	return lo, hi
}

func (d Hypergeometric) Mean() float64 {
	return float64(d.draws) * float64(d.succ) / float64(d.pop)
}

func (d Hypergeometric) Variance() float64 {
	if d.pop <= 1 {
		return 0
	}
	N := float64(d.pop)
	r := float64(d.succ) / N
	return float64(d.draws) * r * (1 - r) * (N - float64(d.draws)) / (N - 1)
}

func (d Hypergeometric) Prob(k int) float64 {
	return math.Exp(d.LogProb(k))
}

func (d Hypergeometric) LogProb(k int) float64 {
	lo, hi := d.Support()
	if k < lo || k > hi {
		return math.Inf(-1)
	}
	return logChoose(d.succ, k) + logChoose(d.pop-d.succ, d.draws-k) - d.logDenom
}

// Entropy has no implemented closed form.
func (d Hypergeometric) Entropy() (float64, error) {
	return 0, ErrUnsupported
}

// CDF sums the mass over the finite support up to k.
func (d Hypergeometric) CDF(k int) (float64, error) {
	lo, hi := d.Support()
	if k < lo {
		return 0, nil
	}
	if k >= hi {
		return 1, nil
	}
	sum := 0.0
	for i := lo; i <= k; i++ {
		sum += d.Prob(i)
	}
	return sum, nil
}

// Clone returns an independent copy.
func (d Hypergeometric) Clone() Hypergeometric { return d }

func (d Hypergeometric) String() string {
	return fmt.Sprintf("Hypergeometric(x; N = %d, K = %d, n = %d)", d.pop, d.succ, d.draws)
}

// Text renders the distribution label with the parameters formatted
// according to the printer's locale.
func (d Hypergeometric) Text(p *message.Printer) string {
	return p.Sprintf("Hypergeometric(x; N = %v, K = %v, n = %v)",
		number.Decimal(d.pop), number.Decimal(d.succ), number.Decimal(d.draws))
}

// logChoose returns ln C(n, k) computed with log-gamma, so that
// probabilities stay accurate for populations far beyond the range
// where the binomial coefficient itself overflows.
func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	a, _ := math.Lgamma(float64(n) + 1)
	b, _ := math.Lgamma(float64(k) + 1)
	c, _ := math.Lgamma(float64(n-k) + 1)
	return a - b - c
}
