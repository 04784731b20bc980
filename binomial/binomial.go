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

// Package binomial computes binomial coefficients modulo arbitrary positive
// integers, for arguments that may be hundreds of digits long.
//
// The efficient path (Mod) factors the modulus into prime powers by trial
// division, evaluates C(a, b) mod each prime power with a generalization of
// Lucas' theorem driven by base-p digit peeling, and reassembles the answer
// with the Chinese Remainder Theorem. Two baselines (Naive, Stepwise) exist
// for cross-checking and benchmarking at small scales.
//
// All functions are pure and synchronous: no shared state, no locking, no
// I/O. Precondition violations (b > a, non-coprime inverse arguments)
// produce combinatorially conventional or undefined results rather than
// errors; callers validate their inputs.
package binomial

import "math/big"

var bigOne = big.NewInt(1)

// Mod computes C(a, b) mod n for n > 0 and 0 <= b <= a, where a and b may be
// arbitrarily large. This is the core entry point: Factorize splits n into
// prime powers, ModPrimePower produces one congruence per prime power, and
// CRT folds the congruences back into a single residue mod n.
//
// Trial-division factorization dominates the cost when n has large prime
// factors and may be impractically slow for such n; see Factorize.
func Mod(a, b, n *big.Int) *big.Int {
	if n.Cmp(bigOne) == 0 {
		return new(big.Int)
	}
	if b.Sign() < 0 || b.Cmp(a) > 0 {
		return new(big.Int)
	}
	factors := Factorize(n)
	congruences := make([]Congruence, 0, len(factors))
	for _, pp := range factors {
		congruences = append(congruences, Congruence{
			Residue: ModPrimePower(a, b, pp),
			Modulus: pp.Modulus(),
		})
	}
	return CRT(congruences)
}

// Naive computes the exact coefficient and reduces it mod n afterwards. Only
// feasible when C(a, b) itself is small enough to materialize.
func Naive(a, b, n *big.Int) *big.Int {
	return new(big.Int).Mod(Coefficient(a, b), n)
}

// Stepwise computes C(a, b) mod n through the additive Pascal recurrence,
// reducing mod n after every addition so no intermediate value exceeds 2n.
// Addition commutes with reduction, which is what makes this baseline sound
// for arbitrary n. It fills one triangle row per step, so a must fit in an
// int and the run time is O(a * min(b, a-b)).
func Stepwise(a, b, n *big.Int) *big.Int {
	if b.Sign() < 0 || b.Cmp(a) > 0 {
		return new(big.Int)
	}
	if n.Cmp(bigOne) == 0 {
		return new(big.Int)
	}
	var (
		rows = int(a.Int64())
		cols = int(b.Int64())
	)
	if m := rows - cols; m < cols {
		cols = m
	}
	row := make([]*big.Int, cols+1)
	row[0] = big.NewInt(1)
	for j := 1; j <= cols; j++ {
		row[j] = new(big.Int)
	}
	for i := 1; i <= rows; i++ {
		top := cols
		if i < top {
			top = i
		}
		for j := top; j > 0; j-- {
			row[j].Add(row[j], row[j-1])
			row[j].Mod(row[j], n)
		}
	}
	return row[cols]
}
