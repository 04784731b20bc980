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

// Package pascal renders Pascal's triangle modulo a prime power as a
// fixed-width text grid. Filling the triangle is a plain dynamic-programming
// pass over the additive recurrence; the interest is in the output, where
// reducing mod p^s (or keeping only the leading base-p digit) exposes the
// Sierpinski-like self-similarity of binomial coefficients.
package pascal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Grid describes one triangle rendering: Rows rows of C(i, j) mod Prime^Exp.
// With LeadingDigit set, every cell is right-shifted to its most significant
// base-Prime digit before printing.
type Grid struct {
	Prime        int64
	Exp          int
	Rows         int
	LeadingDigit bool
}

// Modulus returns Prime^Exp.
func (g Grid) Modulus() int64 {
	m := int64(1)
	for i := 0; i < g.Exp; i++ {
		m *= g.Prime
	}
	return m
}

// Filename names the output file after the modulus and the digit-selection
// flag: triangle_<modulus>.txt, or triangle_<modulus>_leading.txt.
func (g Grid) Filename() string {
	if g.LeadingDigit {
		return fmt.Sprintf("triangle_%d_leading.txt", g.Modulus())
	}
	return fmt.Sprintf("triangle_%d.txt", g.Modulus())
}

func (g Grid) validate() error {
	if g.Prime < 2 {
		return fmt.Errorf("prime must be at least 2, got %d", g.Prime)
	}
	if g.Exp < 1 {
		return fmt.Errorf("exponent must be at least 1, got %d", g.Exp)
	}
	if g.Rows < 1 {
		return fmt.Errorf("row count must be at least 1, got %d", g.Rows)
	}
	return nil
}

// Render produces the triangle as text: one line per row, every cell padded
// to the width of the largest printable value and separated by a single
// space. In leading-digit mode the printable values are the base-Prime
// digits 0..Prime-1, obtained by dividing each residue by Prime^(Exp-1).
func (g Grid) Render() (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}
	var (
		m     = g.Modulus()
		shift = m / g.Prime // Prime^(Exp-1)
		width = len(fmt.Sprintf("%d", m-1))
	)
	if g.LeadingDigit {
		width = len(fmt.Sprintf("%d", g.Prime-1))
	}

	row := make([]int64, g.Rows)
	var sb strings.Builder
	for i := 0; i < g.Rows; i++ {
		// Extend the previous row in place, high index first.
		row[i] = 1 % m
		for j := i - 1; j > 0; j-- {
			row[j] = (row[j] + row[j-1]) % m
		}
		for j := 0; j <= i; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			cell := row[j]
			if g.LeadingDigit {
				cell /= shift
			}
			fmt.Fprintf(&sb, "%*d", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// WriteFile renders the grid into its canonical file name under dir and
// returns the written path.
func (g Grid) WriteFile(dir string) (string, error) {
	text, err := g.Render()
	if err != nil {
		return "", fmt.Errorf("invalid grid: %w", err)
	}
	path := filepath.Join(dir, g.Filename())
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("writing triangle: %w", err)
	}
	return path, nil
}
