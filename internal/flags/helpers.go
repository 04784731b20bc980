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

// Package flags holds command line flag plumbing shared by the binom
// commands.
package flags

import (
	"github.com/urfave/cli/v2"

	"github.com/modarith/binom/internal/version"
)

// NewApp creates an app with sane defaults.
func NewApp(usage string) *cli.App {
	app := cli.NewApp()
	app.EnableBashCompletion = true
	app.Version = version.Version
	app.Usage = usage
	app.Copyright = "Copyright 2025 The binom Authors"
	return app
}
