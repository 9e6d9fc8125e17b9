/*
Copyright © 2026 the sfconv authors.
This file is part of sfconv.

sfconv is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

sfconv is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with sfconv.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command sfconv is a command-line interface for converting geometries
// between the sf and native encodings.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/sfconv/sfconvutil"
)

func main() {
	if err := sfconvutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
