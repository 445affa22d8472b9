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

// Constant is the degenerate distribution with all mass at a single
// integer.
type Constant struct {
	v int
}

// NewConstant returns the point mass at v.
func NewConstant(v int) Constant {
	return Constant{v: v}
}

func (d Constant) Support() (lo, hi int) { return d.v, d.v }

func (d Constant) Mean() float64 { return float64(d.v) }

func (d Constant) Variance() float64 { return 0 }

func (d Constant) Prob(k int) float64 {
	if k == d.v {
		return 1
	}
	return 0
}

func (d Constant) LogProb(k int) float64 {
	if k == d.v {
		return 0
	}
	return math.Inf(-1)
}

func (d Constant) Entropy() (float64, error) { return 0, nil }

func (d Constant) CDF(k int) (float64, error) {
	if k < d.v {
		return 0, nil
	}
	return 1, nil
}

// Clone returns an independent copy.
func (d Constant) Clone() Constant { return d }

func (d Constant) String() string {
	return fmt.Sprintf("Constant(x; k = %d)", d.v)
}

// Text renders the distribution label with the point mass location
// formatted according to the printer's locale.
func (d Constant) Text(p *message.Printer) string {
	return p.Sprintf("Constant(x; k = %v)", number.Decimal(d.v))
}
