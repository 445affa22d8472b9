// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"

	"vuvuzela.io/concurrency"
)

// Tables larger than this cannot fit in memory anyway, and the bound
// keeps the window arithmetic below from overflowing int.
const maxTableLen = 1 << 40

// Tabulate evaluates the probability mass of d at every integer in
// the inclusive window [lo, hi] and returns the results in order.
// The window is evaluated in parallel; this is safe because
// distributions are immutable.
//
// An empty window (hi < lo) returns nil. Tabulate panics if the
// window holds more than 2^40 entries, so passing an unbounded
// Support() directly is a programming error.
func Tabulate(d Distribution, lo, hi int) []float64 {
	if hi < lo {
		return nil
	}
	// Two's complement subtraction gives the width correctly even
	// when hi-lo overflows int.
	width := uint64(hi) - uint64(lo)
	if width >= maxTableLen {
		panic(fmt.Sprintf("dist: table window [%d, %d] too large", lo, hi))
	}
	table := make([]float64, width+1)
	concurrency.ParallelFor(len(table), func(p *concurrency.P) {
		for i, ok := p.Next(); ok; i, ok = p.Next() {
			table[i] = d.Prob(lo + i)
		}
	})
	return table
}
