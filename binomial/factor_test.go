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
)

func TestFactorize(t *testing.T) {
	tests := []struct {
		n    int64
		want [][2]int64 // (prime, exponent) pairs
	}{
		{1, nil},
		{2, [][2]int64{{2, 1}}},
		{12, [][2]int64{{2, 2}, {3, 1}}},
		{343, [][2]int64{{7, 3}}},
		{1000, [][2]int64{{2, 3}, {5, 3}}},
		{1024, [][2]int64{{2, 10}}},
		{997, [][2]int64{{997, 1}}},
		{5544, [][2]int64{{2, 3}, {3, 2}, {7, 1}, {11, 1}}},
		{720720, [][2]int64{{2, 4}, {3, 2}, {5, 1}, {7, 1}, {11, 1}, {13, 1}}},
		{9999991, [][2]int64{{9999991, 1}}}, // prime cofactor past the √n cutoff
	}
	for _, tt := range tests {
		got := Factorize(big.NewInt(tt.n))
		if len(got) != len(tt.want) {
			t.Errorf("Factorize(%d) = %v, want %v pairs", tt.n, got, len(tt.want))
			continue
		}
		for i, pp := range got {
			if pp.Prime.Int64() != tt.want[i][0] || int64(pp.Exp) != tt.want[i][1] {
				t.Errorf("Factorize(%d)[%d] = (%v, %d), want (%d, %d)",
					tt.n, i, pp.Prime, pp.Exp, tt.want[i][0], tt.want[i][1])
			}
		}
	}
}

// TestFactorizeInvariants checks the structural invariants for a spread of
// moduli: the product of all prime powers reassembles n, the primes are
// actually prime and strictly increasing, and every exponent is positive.
func TestFactorizeInvariants(t *testing.T) {
	for _, n := range []int64{2, 3, 4, 30, 97, 128, 343, 360360, 104729, 1048576, 999966000289} {
		bn := big.NewInt(n)
		factors := Factorize(bn)
		if product := factors.Product(); product.Cmp(bn) != 0 {
			t.Errorf("Factorize(%d): product = %v", n, product)
		}
		var prev *big.Int
		for _, pp := range factors {
			if pp.Exp < 1 {
				t.Errorf("Factorize(%d): exponent %d for prime %v", n, pp.Exp, pp.Prime)
			}
			if !pp.Prime.ProbablyPrime(20) {
				t.Errorf("Factorize(%d): %v is not prime", n, pp.Prime)
			}
			if prev != nil && prev.Cmp(pp.Prime) >= 0 {
				t.Errorf("Factorize(%d): primes not strictly increasing: %v then %v", n, prev, pp.Prime)
			}
			prev = pp.Prime
		}
	}
}

func TestPrimePowerModulus(t *testing.T) {
	pp := PrimePower{Prime: big.NewInt(7), Exp: 3}
	if m := pp.Modulus(); m.Int64() != 343 {
		t.Fatalf("Modulus() = %v, want 343", m)
	}
}
