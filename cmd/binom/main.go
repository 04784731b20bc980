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

// binom computes binomial coefficients modulo arbitrary positive integers
// and renders Pascal's triangle modulo prime powers.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/modarith/binom/internal/flags"
	"github.com/modarith/binom/log"
)

var verbosityFlag = &cli.StringFlag{
	Name:  "verbosity",
	Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace, or a level name",
	Value: "info",
}

// parseVerbosity accepts either the numeric verbosity or a level name such
// as "debug".
func parseVerbosity(s string) (log.Lvl, error) {
	if lvl, err := log.LvlFromString(s); err == nil {
		return lvl, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > int(log.LvlTrace) {
		return 0, fmt.Errorf("invalid verbosity %q", s)
	}
	return log.Lvl(n), nil
}

var app = flags.NewApp("binomial coefficients modulo n")

func init() {
	app.Flags = []cli.Flag{verbosityFlag}
	app.Commands = []*cli.Command{
		computeCommand,
		pascalCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		lvl, err := parseVerbosity(ctx.String(verbosityFlag.Name))
		if err != nil {
			return err
		}
		usecolor := isatty.IsTerminal(os.Stderr.Fd())
		handler := log.StreamHandler(os.Stderr, log.TerminalFormat(usecolor))
		log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Fatalf formats a message to standard error and exits the program. The
// message is also printed to standard output if standard error is redirected
// to a different file.
func Fatalf(format string, args ...interface{}) {
	w := io.MultiWriter(os.Stdout, os.Stderr)
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}
