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

/*
Package sfconv converts geometries between the encoding used by R's sf
package and the native geometry types in github.com/ctessum/geom.

sf geometries (sfg values) arrive as numeric payloads classed
["XY", KIND, "sfg"]: a length-2 doubles vector for a point, an n-by-2
matrix for a multipoint or linestring, a list of matrices for a polygon
or multilinestring, a list of lists of matrices for a multipolygon, and a
list of member sfg values for a geometry collection. Geometry columns
(sfc values) are lists of sfg values. This package decodes those payloads
into geom types, encodes geom types back as sf payloads, and wraps
geometries behind external pointers so an embedding R session can hold
them between calls.

The conversions hold no global state and never mutate or alias their
inputs; coordinates are copied in both directions. Attributes that belong
to the R side, such as the bounding box and class of an assembled sfc,
are left for the caller to compute there.
*/
package sfconv

import (
	"strings"

	"github.com/ctessum/geom"
)

const Version = "0.1.0" // versioning scheme at: http://semver.org/

// The geometry class tags used on wrapped geometry pointers and reported
// by ClassOf and SfcClass. sf class attributes carry the same tags in
// upper case.
const (
	ClassPoint              = "point"
	ClassMultiPoint         = "multipoint"
	ClassLineString         = "linestring"
	ClassMultiLineString    = "multilinestring"
	ClassPolygon            = "polygon"
	ClassMultiPolygon       = "multipolygon"
	ClassGeometryCollection = "geometrycollection"
)

var classes = []string{
	ClassPoint,
	ClassMultiPoint,
	ClassLineString,
	ClassMultiLineString,
	ClassPolygon,
	ClassMultiPolygon,
	ClassGeometryCollection,
}

// Classes returns the geometry class tags in canonical order.
func Classes() []string {
	out := make([]string, len(classes))
	copy(out, classes)
	return out
}

var kindForClass = func() map[string]string {
	m := make(map[string]string, len(classes))
	for _, c := range classes {
		m[c] = c
	}
	return m
}()

// classKind scans a class attribute for the first recognized geometry
// tag, matching case-insensitively so both the tags above and sf's
// upper-case forms are found. It returns "" when the attribute names no
// geometry.
func classKind(class []string) string {
	for _, c := range class {
		if k, ok := kindForClass[strings.ToLower(c)]; ok {
			return k
		}
	}
	return ""
}

// ClassOf returns the class tag for a native geometry, or "" if g is nil
// or not one of the seven geometry variants. Wrapped geometries are
// unwrapped first.
func ClassOf(g geom.Geom) string {
	switch t := g.(type) {
	case *Geom:
		if t == nil {
			return ""
		}
		return ClassOf(t.Geom)
	case geom.Point:
		return ClassPoint
	case geom.MultiPoint:
		return ClassMultiPoint
	case geom.LineString:
		return ClassLineString
	case geom.MultiLineString:
		return ClassMultiLineString
	case geom.Polygon:
		return ClassPolygon
	case geom.MultiPolygon:
		return ClassMultiPolygon
	case geom.GeometryCollection:
		return ClassGeometryCollection
	}
	return ""
}

// SfcClass returns the class tag shared by every geometry in a column,
// ClassGeometryCollection when the column mixes classes, and "" when the
// column is empty or holds only missing geometries. Nil members are
// skipped, matching how sf treats empty slots when classing a column.
func SfcClass(gs []*Geom) string {
	var cls string
	for _, g := range gs {
		if g == nil || g.Geom == nil {
			continue
		}
		c := g.Class()
		if c == "" {
			continue
		}
		if cls == "" {
			cls = c
		} else if cls != c {
			return ClassGeometryCollection
		}
	}
	return cls
}
