// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

// Package dist implements discrete probability distributions with
// closed-form statistics. Every distribution is an immutable value
// type; all methods are pure functions of the constructor arguments,
// so values are safe for concurrent use without synchronization.
package dist

import (
	"fmt"

	"golang.org/x/text/message"

	"vuvuzela.io/alpenhorn/errors"
)

// Distribution is a discrete probability distribution over the integers.
type Distribution interface {
	// Support returns the smallest and largest integers with
	// potentially nonzero mass. Unbounded tails are reported as
	// the limits of the int type.
	Support() (lo, hi int)

	Mean() float64
	Variance() float64

	// Prob returns the probability mass at k.
	Prob(k int) float64

	// LogProb returns the natural log of the probability mass at k.
	// It stays finite and accurate for large |k| where Prob
	// underflows to zero.
	LogProb(k int) float64

	// Entropy and CDF return ErrUnsupported for distributions
	// without a closed form. Callers must treat that as a permanent
	// capability gap, not a transient failure.
	Entropy() (float64, error)
	CDF(k int) (float64, error)
}

// ErrUnsupported is returned by Entropy and CDF when the distribution
// has no implemented closed form. It is returned unwrapped so callers
// can compare against it directly.
var ErrUnsupported = errors.New("not supported for this distribution")

// OutOfRangeError is returned by constructors when a parameter lies
// outside its valid domain.
type OutOfRangeError struct {
	Param  string
	Value  float64
	Lo, Hi float64
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s = %v out of range [%v, %v]", e.Param, e.Value, e.Lo, e.Hi)
}

// Texter is implemented by distributions that render their label with
// parameters formatted for a caller-supplied locale.
type Texter interface {
	Text(p *message.Printer) string
}

var (
	_ Distribution = SymmetricGeometric{}
	_ Distribution = Geometric{}
	_ Distribution = Uniform{}
	_ Distribution = Hypergeometric{}
	_ Distribution = Constant{}

	_ Texter = SymmetricGeometric{}
	_ Texter = Geometric{}
	_ Texter = Uniform{}
	_ Texter = Hypergeometric{}
	_ Texter = Constant{}
)
