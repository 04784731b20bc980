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

// Congruence asserts x ≡ Residue (mod Modulus).
type Congruence struct {
	Residue *big.Int
	Modulus *big.Int
}

// CRT reconstructs the unique residue modulo the product of all moduli from
// the given congruences. The moduli must be pairwise coprime; this holds by
// construction when they are distinct prime powers of one factorization.
//
// For each congruence the cofactor of its modulus in the overall product is
// multiplied by its own inverse mod that modulus, scaled by the residue and
// accumulated, reducing after every addition to bound magnitude growth.
func CRT(congruences []Congruence) *big.Int {
	product := big.NewInt(1)
	for _, c := range congruences {
		product.Mul(product, c.Modulus)
	}
	var (
		x        = new(big.Int)
		cofactor = new(big.Int)
		term     = new(big.Int)
	)
	for _, c := range congruences {
		cofactor.Quo(product, c.Modulus)
		term.Mul(c.Residue, cofactor)
		term.Mul(term, ModInverse(cofactor, c.Modulus))
		x.Add(x, term)
		x.Mod(x, product)
	}
	return x
}
