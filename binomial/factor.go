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

import "math/big"

// PrimePower is one prime together with its exponent in a factorization. It
// defines the arithmetic universe (mod Prime^Exp) for one branch of the
// computation.
type PrimePower struct {
	Prime *big.Int
	Exp   int
}

// Modulus returns Prime^Exp.
func (pp PrimePower) Modulus() *big.Int {
	return new(big.Int).Exp(pp.Prime, big.NewInt(int64(pp.Exp)), nil)
}

// Factorization is the prime-power decomposition of an integer, ordered by
// strictly increasing prime.
type Factorization []PrimePower

// Product multiplies all prime powers back together.
func (f Factorization) Product() *big.Int {
	n := big.NewInt(1)
	for _, pp := range f {
		n.Mul(n, pp.Modulus())
	}
	return n
}

// Factorize decomposes n >= 1 into its prime-power factorization by trial
// division: candidates start at 2 and increase by one, each divided out as
// often as possible. Once the square of the candidate exceeds the remaining
// cofactor, that cofactor is itself prime.
//
// This is intentionally the naive O(√n) method. It is fine for the moduli
// this package targets (small, or composed of small primes) and hopeless for
// n with large prime factors; factorization dominates the cost of Mod for
// such n.
func Factorize(n *big.Int) Factorization {
	var (
		factors   Factorization
		remaining = new(big.Int).Set(n)
		candidate = big.NewInt(2)
		square    = new(big.Int)
		quo       = new(big.Int)
		rem       = new(big.Int)
	)
	for remaining.CmpAbs(bigOne) > 0 {
		if square.Mul(candidate, candidate).Cmp(remaining) > 0 {
			// The cofactor has no divisor below its square root left,
			// so it is prime.
			factors = append(factors, PrimePower{Prime: new(big.Int).Set(remaining), Exp: 1})
			break
		}
		exp := 0
		for {
			quo.QuoRem(remaining, candidate, rem)
			if rem.Sign() != 0 {
				break
			}
			remaining.Set(quo)
			exp++
		}
		if exp > 0 {
			factors = append(factors, PrimePower{Prime: new(big.Int).Set(candidate), Exp: exp})
		}
		candidate.Add(candidate, bigOne)
	}
	return factors
}
