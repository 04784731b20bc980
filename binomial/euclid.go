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

// ExtendedGCD runs the iterative extended Euclidean algorithm on a and b,
// returning g = gcd(a, b) together with the Bézout coefficients s and t
// satisfying a*s + b*t = g. The quotient at every step uses truncated
// division, i.e. big.Int.Quo semantics. The returned g is never negative;
// when the final remainder comes out negative all three values are negated
// so the Bézout identity is preserved.
//
// ExtendedGCD(0, 0) degenerates to (0, 1, 0), which is only meaningful if
// the caller guarantees non-degenerate input.
func ExtendedGCD(a, b *big.Int) (g, s, t *big.Int) {
	var (
		r0, r1 = new(big.Int).Set(a), new(big.Int).Set(b)
		s0, s1 = big.NewInt(1), big.NewInt(0)
		t0, t1 = big.NewInt(0), big.NewInt(1)
	)
	for r1.Sign() != 0 {
		q := new(big.Int).Quo(r0, r1)
		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		s0, s1 = s1, new(big.Int).Sub(s0, new(big.Int).Mul(q, s1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}
	if r0.Sign() < 0 {
		r0.Neg(r0)
		s0.Neg(s0)
		t0.Neg(t0)
	}
	return r0, s0, t0
}

// ModInverse returns the multiplicative inverse of a modulo n, normalized
// into [0, n). The caller must ensure gcd(a, n) = 1 and n > 1; the result is
// undefined otherwise, matching the convention that precondition violations
// are contract violations rather than recoverable errors.
func ModInverse(a, n *big.Int) *big.Int {
	_, s, _ := ExtendedGCD(a, n)
	return s.Mod(s, n)
}
