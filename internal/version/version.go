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

// Package version holds the release version of the binom tool.
package version

import "fmt"

const (
	Major = 0 // Major version component of the current release
	Minor = 1 // Minor version component of the current release
	Patch = 0 // Patch version component of the current release
)

// Version holds the textual version string.
var Version = fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
