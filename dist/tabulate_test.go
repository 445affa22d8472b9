// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestTabulate(t *testing.T) {
	d, err := NewSymmetricGeometric(0.5)
	if err != nil {
		t.Fatal(err)
	}

	table := Tabulate(d, -3, 3)
	if len(table) != 7 {
		t.Fatalf("expecting 7 entries, got %d", len(table))
	}
	for i, got := range table {
		expected := d.Prob(-3 + i)
		if got != expected {
			t.Fatalf("entry %d: expecting %v, got %v", i, expected, got)
		}
	}

	if table := Tabulate(d, 1, 0); table != nil {
		t.Fatalf("expecting nil table for empty window, got %v", table)
	}
}

func TestTabulateHugeWindow(t *testing.T) {
	d, err := NewSymmetricGeometric(0.5)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expecting panic for oversized window")
		}
	}()
	Tabulate(d, math.MinInt, math.MaxInt)
}

// Each distribution's mass over a wide enough window must sum to 1.
func TestTabulateNormalization(t *testing.T) {
	symgeom, err := NewSymmetricGeometric(0.5)
	if err != nil {
		t.Fatal(err)
	}
	geom, err := NewGeometric(0.5)
	if err != nil {
		t.Fatal(err)
	}
	unif, err := NewUniform(-2, 9)
	if err != nil {
		t.Fatal(err)
	}
	hyper, err := NewHypergeometric(50, 5, 10)
	if err != nil {
		t.Fatal(err)
	}

	dists := []struct {
		d      Distribution
		lo, hi int
	}{
		{symgeom, -80, 80},
		{geom, 0, 80},
		{unif, -2, 9},
		{hyper, 0, 5},
		{NewConstant(3), 3, 3},
	}

	for _, c := range dists {
		sum := 0.0
		for _, pr := range Tabulate(c.d, c.lo, c.hi) {
			sum += pr
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("%v: mass sums to %v over [%d, %d], expecting 1", c.d, sum, c.lo, c.hi)
		}
	}
}

func BenchmarkTabulate(b *testing.B) {
	d, err := NewSymmetricGeometric(0.01)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tabulate(d, -10000, 10000)
	}
}
