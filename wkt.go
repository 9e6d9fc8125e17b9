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
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

const (
	tPoint              = "POINT "
	tMultiPoint         = "MULTIPOINT "
	tLineString         = "LINESTRING "
	tMultiLineString    = "MULTILINESTRING "
	tPolygon            = "POLYGON "
	tMultiPolygon       = "MULTIPOLYGON "
	tGeometryCollection = "GEOMETRYCOLLECTION "
	tEmpty              = "EMPTY"
)

// String renders the wrapped geometry as well-known text at full
// precision, the form the R side prints.
func (g *Geom) String() string {
	if g == nil || g.Geom == nil {
		return ""
	}
	return WKT(g.Geom, -1)
}

// WKT renders a geometry as well-known text. maxDecimalDigits bounds the
// number of fractional digits in each coordinate; a negative value means
// full precision. Geometries that are not one of the seven variants
// render as "".
func WKT(g geom.Geom, maxDecimalDigits int) string {
	var b strings.Builder
	writeWKT(&b, g, maxDecimalDigits)
	return b.String()
}

func writeWKT(b *strings.Builder, g geom.Geom, digits int) {
	switch t := g.(type) {
	case *Geom:
		if t != nil && t.Geom != nil {
			writeWKT(b, t.Geom, digits)
		}
	case geom.Point:
		b.WriteString(tPoint)
		if math.IsNaN(t.X) && math.IsNaN(t.Y) {
			b.WriteString(tEmpty)
			return
		}
		b.WriteByte('(')
		writeCoord(b, t, digits)
		b.WriteByte(')')
	case geom.MultiPoint:
		b.WriteString(tMultiPoint)
		if len(t) == 0 {
			b.WriteString(tEmpty)
			return
		}
		b.WriteByte('(')
		for i, p := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			writeCoord(b, p, digits)
			b.WriteByte(')')
		}
		b.WriteByte(')')
	case geom.LineString:
		b.WriteString(tLineString)
		writeRing(b, t, digits)
	case geom.MultiLineString:
		b.WriteString(tMultiLineString)
		if len(t) == 0 {
			b.WriteString(tEmpty)
			return
		}
		b.WriteByte('(')
		for i, l := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRing(b, l, digits)
		}
		b.WriteByte(')')
	case geom.Polygon:
		b.WriteString(tPolygon)
		writeRings(b, t, digits)
	case geom.MultiPolygon:
		b.WriteString(tMultiPolygon)
		if len(t) == 0 {
			b.WriteString(tEmpty)
			return
		}
		b.WriteByte('(')
		for i, p := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRings(b, p, digits)
		}
		b.WriteByte(')')
	case geom.GeometryCollection:
		b.WriteString(tGeometryCollection)
		if len(t) == 0 {
			b.WriteString(tEmpty)
			return
		}
		b.WriteByte('(')
		for i, m := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeWKT(b, m, digits)
		}
		b.WriteByte(')')
	}
}

func writeRing(b *strings.Builder, pts []geom.Point, digits int) {
	if len(pts) == 0 {
		b.WriteString(tEmpty)
		return
	}
	b.WriteByte('(')
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		writeCoord(b, p, digits)
	}
	b.WriteByte(')')
}

func writeRings(b *strings.Builder, rings []geom.Path, digits int) {
	if len(rings) == 0 {
		b.WriteString(tEmpty)
		return
	}
	b.WriteByte('(')
	for i, r := range rings {
		if i > 0 {
			b.WriteString(", ")
		}
		writeRing(b, r, digits)
	}
	b.WriteByte(')')
}

func writeCoord(b *strings.Builder, p geom.Point, digits int) {
	b.WriteString(formatFloat(p.X, digits))
	b.WriteByte(' ')
	b.WriteString(formatFloat(p.Y, digits))
}

func formatFloat(x float64, digits int) string {
	if digits < 0 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', digits, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
