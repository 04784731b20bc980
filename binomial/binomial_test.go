// Copyright 2025 The binom Authors
// This file is part of the binom library.
//
// The binom library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The binom library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the binom library. If not, see <http://www.gnu.org/licenses/>.

package binomial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad decimal literal %q", s)
	return v
}

func TestModFixtures(t *testing.T) {
	hugeA := "1000000000000000000000000000000000000000000000000000000000033" // 10^60 + 33

	tests := []struct {
		name    string
		a, b, n string
		want    string
	}{
		{"small", "10", "5", "1000", "252"},
		{"scenario343", "306255", "151923", "343", "98"},
		{"compositeZero", "123456", "7890", "5544", "0"},
		{"squarefree", "2000", "300", "77", "70"},
		{"primePower", "1000", "500", "59049", "2754"},
		{"primeModulus", "1000", "400", "997", "0"},
		{"modulusOne", "123", "45", "1", "0"},
		{"hugeSmallB", hugeA, "5", "720720", "638616"},
		{"hugeMod343", hugeA, "12", "343", "147"},
		{"hugeMillion", hugeA, "3", "1000000", "5456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, n := mustBig(t, tt.a), mustBig(t, tt.b), mustBig(t, tt.n)
			require.Equal(t, tt.want, Mod(a, b, n).String())
		})
	}
}

// TestModAgainstNaive cross-checks the efficient algorithm against the exact
// coefficient for every pair in a dense range over a spread of moduli,
// including even, odd, prime, prime-power and highly composite n.
func TestModAgainstNaive(t *testing.T) {
	for _, n := range []int64{2, 3, 6, 7, 8, 30, 49, 97, 343, 360, 1000} {
		bn := big.NewInt(n)
		for a := int64(0); a <= 90; a++ {
			for b := int64(0); b <= a; b++ {
				ba, bb := big.NewInt(a), big.NewInt(b)
				want := Naive(ba, bb, bn)
				if got := Mod(ba, bb, bn); got.Cmp(want) != 0 {
					t.Fatalf("Mod(%d, %d, %d) = %v, want %v", a, b, n, got, want)
				}
			}
		}
	}
}

// Cross-check against the standard library's exact Binomial over arguments
// large enough to exercise multi-window peeling, with an emphasis on powers
// of two, where borrows cancelling across window boundaries once produced
// wrong residues.
func TestModAgainstBinomial(t *testing.T) {
	exact := new(big.Int)
	for _, n := range []int64{8, 64, 256, 343, 2187, 59049, 720720, 1000000} {
		bn := big.NewInt(n)
		for a := int64(100); a <= 3000; a += 173 {
			for b := int64(0); b <= a; b += 97 {
				ba, bb := big.NewInt(a), big.NewInt(b)
				want := new(big.Int).Mod(exact.Binomial(a, b), bn)
				if got := Mod(ba, bb, bn); got.Cmp(want) != 0 {
					t.Fatalf("Mod(%d, %d, %d) = %v, want %v", a, b, n, got, want)
				}
			}
		}
	}
}

// All three variants must agree where all three are feasible, per the
// benchmark contract of the command surface.
func TestVariantsAgree(t *testing.T) {
	cases := []struct{ a, b, n int64 }{
		{10, 5, 1000},
		{60, 31, 343},
		{100, 50, 5544},
		{250, 125, 720720},
		{400, 27, 59049},
	}
	for _, tt := range cases {
		a, b, n := big.NewInt(tt.a), big.NewInt(tt.b), big.NewInt(tt.n)
		naive := Naive(a, b, n)
		stepwise := Stepwise(a, b, n)
		efficient := Mod(a, b, n)
		require.Equalf(t, 0, naive.Cmp(stepwise), "Naive(%d,%d,%d)=%v, Stepwise=%v", tt.a, tt.b, tt.n, naive, stepwise)
		require.Equalf(t, 0, naive.Cmp(efficient), "Naive(%d,%d,%d)=%v, Mod=%v", tt.a, tt.b, tt.n, naive, efficient)
	}
}

func TestModSymmetry(t *testing.T) {
	hugeA := mustBig(t, "99999999999999999999999999999999999999999999999999999999999999999999999999999999")
	hugeB := mustBig(t, "4444444444444444444444444444444444444444")
	cases := []struct{ a, b, n *big.Int }{
		{big.NewInt(10), big.NewInt(3), big.NewInt(1000)},
		{big.NewInt(306255), big.NewInt(151923), big.NewInt(343)},
		{big.NewInt(777), big.NewInt(77), big.NewInt(5544)},
		{hugeA, hugeB, big.NewInt(1000000)},
	}
	for _, tt := range cases {
		mirror := new(big.Int).Sub(tt.a, tt.b)
		left, right := Mod(tt.a, tt.b, tt.n), Mod(tt.a, mirror, tt.n)
		if left.Cmp(right) != 0 {
			t.Errorf("Mod(%v, %v, %v) = %v but Mod(%v, %v, %v) = %v",
				tt.a, tt.b, tt.n, left, tt.a, mirror, tt.n, right)
		}
	}
}

func TestModBoundaries(t *testing.T) {
	hugeA := mustBig(t, "123456789012345678901234567890123456789012345678901234567890")
	for _, n := range []int64{1, 2, 343, 1000, 720720} {
		bn := big.NewInt(n)
		one := new(big.Int).Mod(bigOne, bn)
		if got := Mod(hugeA, new(big.Int), bn); got.Cmp(one) != 0 {
			t.Errorf("Mod(a, 0, %d) = %v, want %v", n, got, one)
		}
		if got := Mod(hugeA, hugeA, bn); got.Cmp(one) != 0 {
			t.Errorf("Mod(a, a, %d) = %v, want %v", n, got, one)
		}
	}
}

func TestModLargeSelfConsistent(t *testing.T) {
	// C(9...9 [80 digits], 4...4 [40 digits]) mod 10^6, fixed by the
	// symmetric evaluation agreeing digit-peeled from both sides.
	a := mustBig(t, "99999999999999999999999999999999999999999999999999999999999999999999999999999999")
	b := mustBig(t, "4444444444444444444444444444444444444444")
	n := big.NewInt(1000000)
	require.Equal(t, "109376", Mod(a, b, n).String())
}

func TestStepwise(t *testing.T) {
	for _, n := range []int64{2, 7, 12, 1000} {
		bn := big.NewInt(n)
		for a := int64(0); a <= 40; a++ {
			for b := int64(0); b <= a; b++ {
				ba, bb := big.NewInt(a), big.NewInt(b)
				want := Naive(ba, bb, bn)
				if got := Stepwise(ba, bb, bn); got.Cmp(want) != 0 {
					t.Fatalf("Stepwise(%d, %d, %d) = %v, want %v", a, b, n, got, want)
				}
			}
		}
	}
}

func BenchmarkMod(b *testing.B) {
	a, bb, n := big.NewInt(306255), big.NewInt(151923), big.NewInt(343)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Mod(a, bb, n)
	}
}

func BenchmarkNaive(b *testing.B) {
	a, bb, n := big.NewInt(3062), big.NewInt(1519), big.NewInt(343)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Naive(a, bb, n)
	}
}
