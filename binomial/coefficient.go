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

// Coefficient returns the exact binomial coefficient C(a, b) with no modular
// reduction. It runs min(b, a-b) multiply-then-divide steps, each of which
// leaves the running product an exact integer: after i steps the product is
// C(a, i). Values of b outside [0, a] yield zero.
//
// The intermediate magnitude is bounded by the result itself, but the result
// grows combinatorially; this is only meant for arguments that are already
// small, such as digit windows bounded by a prime power.
func Coefficient(a, b *big.Int) *big.Int {
	if b.Sign() < 0 || b.Cmp(a) > 0 {
		return new(big.Int)
	}
	m := new(big.Int).Sub(a, b)
	if m.Cmp(b) > 0 {
		m.Set(b)
	}
	var (
		result = big.NewInt(1)
		factor = new(big.Int)
		i      = big.NewInt(1)
	)
	for i.Cmp(m) <= 0 {
		factor.Sub(a, i)
		factor.Add(factor, bigOne)
		result.Mul(result, factor)
		result.Quo(result, i)
		i.Add(i, bigOne)
	}
	return result
}
