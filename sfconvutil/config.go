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

package sfconvutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spatialmodel/sfconv"
	"github.com/spatialmodel/sfconv/rval"
	"github.com/spf13/cobra"
)

// inputFile returns the input file path from the command arguments, or
// "" when input should be read from standard in.
func inputFile(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// readValue reads a JSON-encoded foreign value from the given file, or
// from standard in when the path is "" or "-". Environment variables in
// the path are expanded.
func readValue(path string) (*rval.Value, error) {
	var b []byte
	var err error
	if path == "" || path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(os.ExpandEnv(path))
	}
	if err != nil {
		return nil, fmt.Errorf("sfconv: problem reading input: %v", err)
	}
	v := new(rval.Value)
	if err := json.Unmarshal(b, v); err != nil {
		return nil, fmt.Errorf("sfconv: problem decoding input: %v", err)
	}
	return v, nil
}

// looksLikeSfc reports whether a foreign value should be treated as a
// geometry column rather than a single geometry. Lists classed sfg are
// single geometries (polygons, collections, and the like); lists classed
// sfc, or carrying no class at all, are columns.
func looksLikeSfc(v *rval.Value) bool {
	if v == nil || v.Kind() != rval.List {
		return false
	}
	for _, c := range v.Class() {
		if strings.EqualFold(c, "sfg") {
			return false
		}
		if strings.EqualFold(c, "sfc") || strings.HasPrefix(strings.ToLower(c), "sfc_") {
			return true
		}
	}
	return len(v.Class()) == 0
}

// decodeGeometries decodes a foreign value as either a single geometry
// or a geometry column, reporting which form was found.
func decodeGeometries(v *rval.Value, strict bool) ([]*sfconv.Geom, bool, error) {
	if looksLikeSfc(v) {
		var gs []*sfconv.Geom
		var err error
		if strict {
			gs, err = sfconv.FromSfcStrict(v)
		} else {
			gs, err = sfconv.FromSfc(v)
		}
		return gs, true, err
	}
	var g *sfconv.Geom
	var err error
	if strict {
		g, err = sfconv.FromSfgStrict(v)
	} else {
		g, err = sfconv.FromSfg(v)
	}
	if err != nil {
		return nil, false, err
	}
	return []*sfconv.Geom{g}, false, nil
}

// checkOutputFile expands any environment variables in the output file
// path and makes sure its directory exists. An empty path means standard
// output.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", nil
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("sfconv: the output directory doesn't exist: %v", err)
	}
	return f, nil
}

// writeOutput writes the result to the configured output file, or to the
// command's output when no file is configured.
func writeOutput(cmd *cobra.Command, path string, b []byte) error {
	path, err := checkOutputFile(path)
	if err != nil {
		return err
	}
	if path == "" {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}
	logger.WithField("file", path).Debug("writing output")
	return os.WriteFile(path, b, 0644)
}
