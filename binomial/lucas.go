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

// window is the result of evaluating one base-p digit window of a binomial
// coefficient: the residue of C(a, b) mod p^s with every factor of p divided
// out, and the number of factors that were removed. Keeping the unit part and
// the p-power exponent separate is what makes the telescoping product in
// ModPrimePower well defined, since only the unit part is invertible mod p^s.
type window struct {
	unit  *big.Int
	count int
}

// windowCoefficient evaluates C(a, b) for a digit window under the prime
// power pp. It first shrinks its working modulus to the largest power of p
// not exceeding max(a, b). While a < b — the signature of a digit borrow in
// the base-p subtraction a-b at this scale, per Kummer's theorem — it counts
// one removed factor of p, reduces both arguments mod the working modulus
// and shrinks the modulus by another factor of p. The reduced coefficient is
// then computed exactly and stripped of its remaining factors of p, which
// also count as removed.
func windowCoefficient(a, b *big.Int, pp PrimePower) window {
	var (
		ps = pp.Modulus()
		m  = new(big.Int).Set(ps)
		aw = new(big.Int).Set(a)
		bw = new(big.Int).Set(b)
	)
	for m.Cmp(aw) > 0 && m.Cmp(bw) > 0 {
		m.Quo(m, pp.Prime)
	}
	count := 0
	for aw.Cmp(bw) < 0 {
		count++
		aw.Mod(aw, m)
		bw.Mod(bw, m)
		m.Quo(m, pp.Prime)
	}
	c := Coefficient(aw, bw)
	if c.Sign() != 0 {
		rem := new(big.Int)
		for {
			quo, _ := new(big.Int).QuoRem(c, pp.Prime, rem)
			if rem.Sign() != 0 {
				break
			}
			c.Set(quo)
			count++
		}
	}
	return window{unit: c.Mod(c, ps), count: count}
}

// digitSum returns the sum of the base-p digits of x.
func digitSum(x, p *big.Int) *big.Int {
	var (
		sum = new(big.Int)
		v   = new(big.Int).Set(x)
		d   = new(big.Int)
	)
	for v.Sign() > 0 {
		v.QuoRem(v, p, d)
		sum.Add(sum, d)
	}
	return sum
}

// carryCount returns the exponent of p in C(a, b), i.e. the number of borrows
// when subtracting b from a in base p. By Kummer's theorem this equals
// (S(b) + S(a-b) - S(a)) / (p-1) where S is the base-p digit sum.
func carryCount(a, b, p *big.Int) *big.Int {
	count := digitSum(b, p)
	count.Add(count, digitSum(new(big.Int).Sub(a, b), p))
	count.Sub(count, digitSum(a, p))
	return count.Quo(count, new(big.Int).Sub(p, bigOne))
}

// ModPrimePower computes C(a, b) mod pp.Modulus() for arbitrarily large a
// and b with 0 <= b <= a, using O(base-p digit count) window evaluations
// instead of factorials.
//
// The driver peels one base-p digit per iteration: the current windows of a
// and b contribute a numerator window, the windows shifted down one digit
// position contribute the denominator window that telescopes against the
// next iteration, and the running product collects numerator units times
// denominator unit inverses mod p^s. The power of p carried by C(a, b)
// itself is obtained exactly from carryCount and reinserted at the end;
// deriving it from the per-window counts instead undercounts borrows that
// cancel across window boundaries (observable for p = 2), so the window
// counts are not summed here.
func ModPrimePower(a, b *big.Int, pp PrimePower) *big.Int {
	m := pp.Modulus()
	exp := carryCount(a, b, pp.Prime)
	if exp.Cmp(big.NewInt(int64(pp.Exp))) >= 0 {
		// p^s divides C(a, b).
		return new(big.Int)
	}
	var (
		result = big.NewInt(1)
		ar     = new(big.Int).Set(a)
		br     = new(big.Int).Set(b)
		aw     = new(big.Int)
		bw     = new(big.Int)
	)
	for ar.Cmp(m) >= 0 {
		aw.Mod(ar, m)
		bw.Mod(br, m)
		num := windowCoefficient(aw, bw, pp)
		den := windowCoefficient(new(big.Int).Quo(aw, pp.Prime), new(big.Int).Quo(bw, pp.Prime), pp)
		result.Mul(result, num.unit)
		result.Mul(result, ModInverse(den.unit, m))
		result.Mod(result, m)
		ar.Quo(ar, pp.Prime)
		br.Quo(br, pp.Prime)
	}
	final := windowCoefficient(ar, br, pp)
	result.Mul(result, final.unit)
	result.Mod(result, m)
	if exp.Sign() > 0 {
		result.Mul(result, new(big.Int).Exp(pp.Prime, exp, m))
		result.Mod(result, m)
	}
	return result
}
