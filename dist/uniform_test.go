// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestUniformDie(t *testing.T) {
	d, err := NewUniform(1, 6)
	if err != nil {
		t.Fatal(err)
	}

	sixth := 1.0 / 6.0
	for k := 1; k <= 6; k++ {
		if got := d.Prob(k); got != sixth {
			t.Fatalf("Prob(%d): expecting %v, got %v", k, sixth, got)
		}
	}
	if got := d.Prob(0); got != 0 {
		t.Fatalf("Prob(0): expecting 0, got %v", got)
	}
	if got := d.Prob(7); got != 0 {
		t.Fatalf("Prob(7): expecting 0, got %v", got)
	}

	if got := d.Mean(); got != 3.5 {
		t.Fatalf("expecting mean 3.5, got %v", got)
	}
	if got := d.Variance(); math.Abs(got-35.0/12.0) > 1e-15 {
		t.Fatalf("expecting variance 35/12, got %v", got)
	}

	if got, err := d.CDF(3); err != nil || got != 0.5 {
		t.Fatalf("CDF(3): expecting 0.5, got %v (err %v)", got, err)
	}
	if got, err := d.CDF(9); err != nil || got != 1 {
		t.Fatalf("CDF(9): expecting 1, got %v (err %v)", got, err)
	}

	h, err := d.Entropy()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(h-math.Log(6)) > 1e-15 {
		t.Fatalf("expecting entropy ln 6, got %v", h)
	}
}

func TestUniformBadBounds(t *testing.T) {
	if _, err := NewUniform(3, 2); err == nil {
		t.Fatal("expecting error for b < a")
	}
}

func TestUniformText(t *testing.T) {
	d, err := NewUniform(0, 1000000)
	if err != nil {
		t.Fatal(err)
	}

	de := message.NewPrinter(language.German)
	expected := "U(x; a = 0, b = 1.000.000)"
	if got := d.Text(de); got != expected {
		t.Fatalf("\nexpected: %s\nactually: %s", expected, got)
	}
}

func TestUniformSingleton(t *testing.T) {
	d, err := NewUniform(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Prob(4); got != 1 {
		t.Fatalf("Prob(4): expecting 1, got %v", got)
	}
	if got := d.Variance(); got != 0 {
		t.Fatalf("expecting variance 0, got %v", got)
	}
}
