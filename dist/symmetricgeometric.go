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

// SymmetricGeometric is the discrete analogue of the Laplace
// distribution: a distribution over all integers, symmetric about
// zero, with geometrically decaying tails. It is the distribution of
// the difference of two iid geometric variables with success
// probability p, and is the noise distribution used to hide access
// counts in mixnets.
type SymmetricGeometric struct {
	p    float64
	c    float64 // p / (2(1-p)), the normalizing constant
	logC float64
}

// NewSymmetricGeometric returns the symmetric geometric distribution
// with success probability p. It returns an OutOfRangeError unless
// 0 <= p <= 1.
func NewSymmetricGeometric(p float64) (SymmetricGeometric, error) {
	if p < 0 || p > 1 {
		return SymmetricGeometric{}, OutOfRangeError{"p", p, 0, 1}
	}
	return SymmetricGeometric{
		p:    p,
		c:    p / (2 * (1 - p)),
		logC: math.Log(p) - math.Log(2*(1-p)),
	}, nil
}

// NewSymmetricGeometricFromEpsilon returns the distribution calibrated
// to the differential-privacy budget eps, using p = 1 - e^(-eps).
func NewSymmetricGeometricFromEpsilon(eps float64) (SymmetricGeometric, error) {
	if eps <= 0 || math.IsNaN(eps) {
		return SymmetricGeometric{}, OutOfRangeError{"eps", eps, 0, math.Inf(1)}
	}
	return NewSymmetricGeometric(1 - math.Exp(-eps))
}

// P returns the success probability the distribution was constructed with.
func (d SymmetricGeometric) P() float64 { return d.p }

func (d SymmetricGeometric) Support() (lo, hi int) {
	return math.MinInt, math.MaxInt
}

// Mean is 0 exactly: the mass is symmetric about zero, so the first
// moment vanishes.
func (d SymmetricGeometric) Mean() float64 { return 0 }

func (d SymmetricGeometric) Variance() float64 {
	return ((2 - d.p) * (1 - d.p)) / (d.p * d.p)
}

// Prob returns the probability mass at k. The exponent is |k|, not k,
// which is what makes the distribution symmetric rather than
// one-sided.
func (d SymmetricGeometric) Prob(k int) float64 {
	return d.c * math.Pow(1-d.p, math.Abs(float64(k)))
}

func (d SymmetricGeometric) LogProb(k int) float64 {
	return d.logC + math.Abs(float64(k))*math.Log(1-d.p)
}

// Entropy has no implemented closed form.
func (d SymmetricGeometric) Entropy() (float64, error) {
	return 0, ErrUnsupported
}

// CDF has no implemented closed form.
func (d SymmetricGeometric) CDF(k int) (float64, error) {
	return 0, ErrUnsupported
}

// Clone returns an independent copy. The distribution is an immutable
// value, so the copy is behaviorally indistinguishable from the
// original.
func (d SymmetricGeometric) Clone() SymmetricGeometric { return d }

func (d SymmetricGeometric) String() string {
	return fmt.Sprintf("SymmetricGeometric(x; p = %v)", d.p)
}

// Text renders the distribution label with p formatted according to
// the printer's locale.
func (d SymmetricGeometric) Text(p *message.Printer) string {
	return p.Sprintf("SymmetricGeometric(x; p = %v)", number.Decimal(d.p))
}
