// Copyright 2025 The binom Authors
// This file is part of binom.
//
// binom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// binom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with binom. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"math/big"

	"github.com/urfave/cli/v2"

	"github.com/modarith/binom/log"
	"github.com/modarith/binom/pascal"
)

var (
	primeFlag = &cli.Int64Flag{
		Name:  "prime",
		Usage: "Prime base p of the triangle modulus",
		Value: 2,
	}
	expFlag = &cli.IntFlag{
		Name:  "exp",
		Usage: "Exponent s; the triangle is reduced mod p^s",
		Value: 1,
	}
	rowsFlag = &cli.IntFlag{
		Name:  "rows",
		Usage: "Number of triangle rows to render",
		Value: 32,
	}
	leadingFlag = &cli.BoolFlag{
		Name:  "leading",
		Usage: "Print only the leading base-p digit of each residue",
	}
	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "Directory the grid file is written into",
		Value: ".",
	}
)

var pascalCommand = &cli.Command{
	Name:      "pascal",
	Usage:     "Write Pascal's triangle mod p^s as a fixed-width grid file",
	ArgsUsage: " ",
	Description: `Fills the first rows of Pascal's triangle reduced modulo p^s and writes
them as a space-padded fixed-width grid to triangle_<p^s>.txt (suffixed with
_leading when only the top base-p digit of each residue is kept).`,
	Flags: []cli.Flag{
		primeFlag,
		expFlag,
		rowsFlag,
		leadingFlag,
		dirFlag,
	},
	Action: writePascal,
}

func writePascal(ctx *cli.Context) error {
	p := ctx.Int64(primeFlag.Name)
	if !big.NewInt(p).ProbablyPrime(20) {
		Fatalf("--prime must be prime, got %d", p)
	}
	grid := pascal.Grid{
		Prime:        p,
		Exp:          ctx.Int(expFlag.Name),
		Rows:         ctx.Int(rowsFlag.Name),
		LeadingDigit: ctx.Bool(leadingFlag.Name),
	}
	path, err := grid.WriteFile(ctx.String(dirFlag.Name))
	if err != nil {
		return err
	}
	log.Info("Wrote triangle grid", "file", path, "modulus", grid.Modulus(), "rows", grid.Rows, "leading", grid.LeadingDigit)
	return nil
}
