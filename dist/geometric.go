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

// Geometric is the distribution of the number of failures before the
// first success in a sequence of Bernoulli trials with success
// probability p.
type Geometric struct {
	p    float64
	logP float64
	logQ float64 // ln(1-p)
}

// NewGeometric returns the geometric distribution with success
// probability p. It returns an OutOfRangeError unless 0 < p <= 1.
func NewGeometric(p float64) (Geometric, error) {
	if p <= 0 || p > 1 {
		return Geometric{}, OutOfRangeError{"p", p, 0, 1}
	}
	return Geometric{
		p:    p,
		logP: math.Log(p),
		logQ: math.Log(1 - p),
	}, nil
}

// P returns the success probability the distribution was constructed with.
func (d Geometric) P() float64 { return d.p }

func (d Geometric) Support() (lo, hi int) {
	return 0, math.MaxInt
}

func (d Geometric) Mean() float64 {
	return (1 - d.p) / d.p
}

func (d Geometric) Variance() float64 {
	return (1 - d.p) / (d.p * d.p)
}

func (d Geometric) Prob(k int) float64 {
	if k < 0 {
		return 0
	}
	return d.p * math.Pow(1-d.p, float64(k))
}

func (d Geometric) LogProb(k int) float64 {
	if k < 0 {
		return math.Inf(-1)
	}
	// At p = 1, logQ is -Inf and 0*(-Inf) would poison k = 0 with NaN.
	if k == 0 {
		return d.logP
	}
	return d.logP + float64(k)*d.logQ
}

func (d Geometric) Entropy() (float64, error) {
	q := 1 - d.p
	if q == 0 {
		return 0, nil
	}
	return (-q*d.logQ - d.p*d.logP) / d.p, nil
}

func (d Geometric) CDF(k int) (float64, error) {
	if k < 0 {
		return 0, nil
	}
	return 1 - math.Pow(1-d.p, float64(k)+1), nil
}

// Clone returns an independent copy.
func (d Geometric) Clone() Geometric { return d }

func (d Geometric) String() string {
	return fmt.Sprintf("Geometric(x; p = %v)", d.p)
}

// Text renders the distribution label with p formatted according to
// the printer's locale.
func (d Geometric) Text(p *message.Printer) string {
	return p.Sprintf("Geometric(x; p = %v)", number.Decimal(d.p))
}
