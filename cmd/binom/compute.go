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
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/modarith/binom/binomial"
	"github.com/modarith/binom/internal/flags"
	"github.com/modarith/binom/log"
)

var (
	aFlag = &flags.BigFlag{
		Name:  "a",
		Usage: "Upper argument of C(a, b), decimal (may be hundreds of digits)",
	}
	bFlag = &flags.BigFlag{
		Name:  "b",
		Usage: "Lower argument of C(a, b), decimal, 0 <= b <= a",
	}
	nFlag = &flags.BigFlag{
		Name:  "n",
		Usage: "Modulus, decimal, n > 0",
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML file providing a, b and n",
	}
	baselineLimitFlag = &cli.Int64Flag{
		Name:  "baseline-limit",
		Usage: "Skip the two baseline algorithms when a exceeds this bound",
		Value: 20000,
	}
	sequentialFlag = &cli.BoolFlag{
		Name:  "sequential",
		Usage: "Run the algorithms one after another instead of concurrently",
	}
)

var computeCommand = &cli.Command{
	Name:      "compute",
	Usage:     "Compute C(a, b) mod n with all three algorithms and report timings",
	ArgsUsage: " ",
	Description: `Computes the binomial coefficient C(a, b) modulo n three ways: the naive
exact expansion, the stepwise Pascal recurrence with intermediate reduction,
and the prime-power Lucas/CRT decomposition. Arguments not given by flag or
config file are prompted for interactively. The two baselines are skipped
for inputs beyond --baseline-limit, where only the efficient algorithm is
practical.`,
	Flags: []cli.Flag{
		aFlag,
		bFlag,
		nFlag,
		configFlag,
		baselineLimitFlag,
		sequentialFlag,
	},
	Action: compute,
}

// computeConfig mirrors the TOML config file accepted by --config.
type computeConfig struct {
	A string `toml:"a"`
	B string `toml:"b"`
	N string `toml:"n"`
}

// result is the outcome of one algorithm run.
type result struct {
	name    string
	residue *big.Int
	elapsed time.Duration
	skipped bool
}

func compute(ctx *cli.Context) error {
	a, b, n, err := computeInputs(ctx)
	if err != nil {
		Fatalf("%v", err)
	}
	if n.Sign() <= 0 {
		Fatalf("modulus must be positive, got %v", n)
	}
	if b.Sign() < 0 || b.Cmp(a) > 0 {
		Fatalf("b must satisfy 0 <= b <= a, got a=%v b=%v", a, b)
	}

	baselinesOK := a.IsInt64() && a.Int64() <= ctx.Int64(baselineLimitFlag.Name)
	if !baselinesOK {
		log.Warn("Skipping baseline algorithms", "reason", "a exceeds baseline limit", "limit", ctx.Int64(baselineLimitFlag.Name))
	}
	results := []result{
		{name: "naive", skipped: !baselinesOK},
		{name: "stepwise", skipped: !baselinesOK},
		{name: "lucas-crt"},
	}
	// lucas-crt always runs and anchors the cross-check below.
	reference := &results[len(results)-1]
	runners := []func(a, b, n *big.Int) *big.Int{
		binomial.Naive,
		binomial.Stepwise,
		binomial.Mod,
	}

	// The variants share no state, so they can safely race each other.
	var group errgroup.Group
	if ctx.Bool(sequentialFlag.Name) {
		group.SetLimit(1)
	}
	for i := range results {
		if results[i].skipped {
			continue
		}
		i := i
		group.Go(func() error {
			start := time.Now()
			results[i].residue = runners[i](a, b, n)
			results[i].elapsed = time.Since(start)
			log.Debug("Algorithm finished", "algorithm", results[i].name, "elapsed", results[i].elapsed)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, r := range disagreements(results, reference) {
		log.Error("Algorithms disagree", "algorithm", r.name, "residue", r.residue, reference.name, reference.residue)
	}
	reportResults(os.Stdout, results, isatty.IsTerminal(os.Stdout.Fd()))
	return nil
}

// computeInputs resolves a, b and n from flags, the optional TOML config and
// finally an interactive prompt, in that order of precedence.
func computeInputs(ctx *cli.Context) (a, b, n *big.Int, err error) {
	var cfg computeConfig
	if path := ctx.String(configFlag.Name); path != "" {
		if cfg, err = loadComputeConfig(path); err != nil {
			return nil, nil, nil, err
		}
	}
	values := make(map[string]*big.Int, 3)
	var prompt *liner.State
	defer func() {
		if prompt != nil {
			prompt.Close()
		}
	}()
	for _, in := range []struct {
		name     string
		fallback string
	}{
		{"a", cfg.A},
		{"b", cfg.B},
		{"n", cfg.N},
	} {
		if ctx.IsSet(in.name) {
			values[in.name] = flags.BigValue(ctx, in.name)
			continue
		}
		text := in.fallback
		if text == "" {
			if prompt == nil {
				prompt = liner.NewLiner()
				prompt.SetCtrlCAborts(true)
			}
			if text, err = prompt.Prompt(in.name + " = "); err != nil {
				return nil, nil, nil, fmt.Errorf("reading %s: %w", in.name, err)
			}
		}
		v, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
		if !ok {
			return nil, nil, nil, fmt.Errorf("invalid decimal integer %q for %s", text, in.name)
		}
		values[in.name] = v
	}
	return values["a"], values["b"], values["n"], nil
}

// loadComputeConfig reads a TOML config file, rejecting unknown keys so
// typos fail loudly instead of silently prompting for the mistyped value.
func loadComputeConfig(path string) (computeConfig, error) {
	var cfg computeConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// disagreements returns the results whose residue differs from the
// reference, skipped entries excluded.
func disagreements(results []result, reference *result) []result {
	var out []result
	for _, r := range results {
		if !r.skipped && r.residue.Cmp(reference.residue) != 0 {
			out = append(out, r)
		}
	}
	return out
}

// reportResults prints the per-algorithm residues and wall-clock timings as
// a table, highlighting the fastest algorithm when writing to a terminal.
func reportResults(w io.Writer, results []result, usecolor bool) {
	fastest := -1
	for i, r := range results {
		if r.skipped {
			continue
		}
		if fastest < 0 || r.elapsed < results[fastest].elapsed {
			fastest = i
		}
	}
	highlight := color.New(color.FgGreen).SprintFunc()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Residue", "Elapsed (ms)"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, r := range results {
		if r.skipped {
			table.Append([]string{r.name, "skipped", "-"})
			continue
		}
		name := r.name
		if usecolor && i == fastest {
			name = highlight(name)
		}
		table.Append([]string{
			name,
			r.residue.String(),
			fmt.Sprintf("%.3f", float64(r.elapsed.Nanoseconds())/1e6),
		})
	}
	table.Render()
}
