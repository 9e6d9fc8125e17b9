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
	"fmt"
	"strings"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/sfconv/rval"
)

// UnsupportedGeometryError reports an attempt to encode a geometry that
// is not one of the seven variants, or no geometry at all.
type UnsupportedGeometryError struct {
	G geom.Geom
}

func (e *UnsupportedGeometryError) Error() string {
	if e.G == nil {
		return "sfconv: cannot encode nil geometry"
	}
	return fmt.Sprintf("sfconv: cannot encode geometry type %T", e.G)
}

// ToSfg encodes a native geometry as an sfg value classed
// ["XY", KIND, "sfg"]. Vertex, ring, and member order are preserved, and
// empty geometries encode to their empty payloads: a 0-row matrix for a
// multipoint or linestring and an empty list for the list-shaped kinds.
// Wrapped geometries are unwrapped first.
func ToSfg(g geom.Geom) (*rval.Value, error) {
	switch t := g.(type) {
	case *Geom:
		if t == nil || t.Geom == nil {
			return nil, &UnsupportedGeometryError{}
		}
		return ToSfg(t.Geom)
	case geom.Point:
		return rval.NewDoubles(t.X, t.Y).SetClass(sfgClass(ClassPoint)...), nil
	case geom.MultiPoint:
		return pointsMatrix(t).SetClass(sfgClass(ClassMultiPoint)...), nil
	case geom.LineString:
		return pointsMatrix(t).SetClass(sfgClass(ClassLineString)...), nil
	case geom.Polygon:
		return ringList(t).SetClass(sfgClass(ClassPolygon)...), nil
	case geom.MultiLineString:
		lines := make([]*rval.Value, len(t))
		for i, l := range t {
			lines[i] = pointsMatrix(l)
		}
		return rval.NewList(lines...).SetClass(sfgClass(ClassMultiLineString)...), nil
	case geom.MultiPolygon:
		polys := make([]*rval.Value, len(t))
		for i, p := range t {
			polys[i] = ringList(p)
		}
		return rval.NewList(polys...).SetClass(sfgClass(ClassMultiPolygon)...), nil
	case geom.GeometryCollection:
		members := make([]*rval.Value, len(t))
		for i, m := range t {
			v, err := ToSfg(m)
			if err != nil {
				return nil, fmt.Errorf("sfconv: geometrycollection member %d: %w", i, err)
			}
			members[i] = v
		}
		return rval.NewList(members...).SetClass(sfgClass(ClassGeometryCollection)...), nil
	}
	return nil, &UnsupportedGeometryError{G: g}
}

// ToSfc assembles a column of geometries into an sfc payload: a plain
// list of sfg values in order, with nil members encoded as NULL. The
// bounding box and class attributes of a finished sfc belong to the R
// side and are not attached here.
func ToSfc(gs []*Geom) (*rval.Value, error) {
	members := make([]*rval.Value, len(gs))
	for i, g := range gs {
		if g == nil || g.Geom == nil {
			members[i] = rval.NewNull()
			continue
		}
		v, err := ToSfg(g.Geom)
		if err != nil {
			return nil, fmt.Errorf("sfconv: sfc element %d: %w", i, err)
		}
		members[i] = v
	}
	return rval.NewList(members...), nil
}

func sfgClass(kind string) []string {
	return []string{"XY", strings.ToUpper(kind), "sfg"}
}

// pointsMatrix lays points out as an n-by-2 column-major matrix, the
// way R stores coordinates.
func pointsMatrix(pts []geom.Point) *rval.Value {
	n := len(pts)
	data := make([]float64, 2*n)
	for i, p := range pts {
		data[i] = p.X
		data[n+i] = p.Y
	}
	return rval.NewMatrix(data, n, 2)
}

func ringList(rings []geom.Path) *rval.Value {
	members := make([]*rval.Value, len(rings))
	for i, r := range rings {
		members[i] = pointsMatrix(r)
	}
	return rval.NewList(members...)
}
