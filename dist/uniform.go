// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"vuvuzela.io/alpenhorn/errors"
)

// Uniform is the discrete uniform distribution on the integer
// window [a, b].
type Uniform struct {
	a, b int
	n    float64 // b - a + 1
}

// NewUniform returns the uniform distribution on [a, b].
func NewUniform(a, b int) (Uniform, error) {
	if b < a {
		return Uniform{}, errors.New("upper bound %d less than lower bound %d", b, a)
	}
	return Uniform{a: a, b: b, n: float64(b-a) + 1}, nil
}

func (d Uniform) Support() (lo, hi int) {
	return d.a, d.b
}

func (d Uniform) Mean() float64 {
	return float64(d.a+d.b) / 2
}

func (d Uniform) Variance() float64 {
	return (d.n*d.n - 1) / 12
}

func (d Uniform) Prob(k int) float64 {
	if k < d.a || k > d.b {
		return 0
	}
	return 1 / d.n
}

func (d Uniform) LogProb(k int) float64 {
	if k < d.a || k > d.b {
		return math.Inf(-1)
	}
	return -math.Log(d.n)
}

func (d Uniform) Entropy() (float64, error) {
	return math.Log(d.n), nil
}

func (d Uniform) CDF(k int) (float64, error) {
	switch {
	case k < d.a:
		return 0, nil
	case k >= d.b:
		return 1, nil
	default:
		return float64(k-d.a+1) / d.n, nil
	}
}

// Clone returns an independent copy.
func (d Uniform) Clone() Uniform { return d }

func (d Uniform) String() string {
	return fmt.Sprintf("U(x; a = %d, b = %d)", d.a, d.b)
}

// Text renders the distribution label with the bounds formatted
// according to the printer's locale.
func (d Uniform) Text(p *message.Printer) string {
	return p.Sprintf("U(x; a = %v, b = %v)", number.Decimal(d.a), number.Decimal(d.b))
}
