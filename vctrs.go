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

package sfconv

import (
	"strings"

	"github.com/spatialmodel/sfconv/rval"
)

// The R companion package represents a geometry column as a list of
// geometry pointers classed as a vctrs record. Pointers themselves are
// not vectors; the class on the containing list is what makes R treat
// them as one. Missing geometries are stored as NULL.

// vctrPrefix begins the first class of every geometry vctr.
const vctrPrefix = "rg_"

// VctrClass returns the vctrs class vector for a column of the given
// geometry kind.
func VctrClass(kind string) []string {
	return []string{vctrPrefix + strings.ToUpper(kind), "rgeom", "vctrs_vctr", "list"}
}

// DetermineVctrClass returns the vctrs class vector for a column of
// geometries: the shared kind when all non-nil members agree,
// geometrycollection when they mix, and the generic geometry class when
// the column is empty or holds only missing geometries.
func DetermineVctrClass(gs []*Geom) []string {
	kind := SfcClass(gs)
	if kind == "" {
		kind = "geometry"
	}
	return VctrClass(kind)
}

// AsVctr classes a list of geometry pointers as a vctr of the given kind
// and returns it.
func AsVctr(v *rval.Value, kind string) *rval.Value {
	if v == nil {
		return nil
	}
	return v.SetClass(VctrClass(kind)...)
}

// IsVctr reports whether a value carries a geometry vctr class.
func IsVctr(v *rval.Value) bool {
	if v == nil || v.IsNull() {
		return false
	}
	cls := v.Class()
	return len(cls) > 0 && strings.HasPrefix(cls[0], vctrPrefix)
}

// VctrKind returns the lowercase geometry kind of a vctr, or "" if the
// value is not one.
func VctrKind(v *rval.Value) string {
	if !IsVctr(v) {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(v.Class()[0], vctrPrefix))
}
