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

import "github.com/ctessum/geom"

// The constructors below build wrapped geometries directly from bare
// coordinates, mirroring the payload structure of the corresponding sfg
// kinds, so callers can assemble geometry columns without encoding
// through sf. Coordinates are copied, and rings are taken as given
// without checking closure.

// GeomPoint returns a wrapped point.
func GeomPoint(x, y float64) *Geom {
	return NewGeom(geom.Point{X: x, Y: y})
}

// GeomMultiPoint returns a wrapped multipoint from (x, y) pairs.
func GeomMultiPoint(coords [][2]float64) *Geom {
	return NewGeom(geom.MultiPoint(coordPoints(coords)))
}

// GeomLineString returns a wrapped linestring from (x, y) pairs.
func GeomLineString(coords [][2]float64) *Geom {
	return NewGeom(geom.LineString(coordPoints(coords)))
}

// GeomPolygon returns a wrapped polygon from rings of (x, y) pairs, the
// outer ring first.
func GeomPolygon(rings [][][2]float64) *Geom {
	p := make(geom.Polygon, len(rings))
	for i, r := range rings {
		p[i] = coordPoints(r)
	}
	return NewGeom(p)
}

// GeomMultiLineString returns a wrapped multilinestring from lines of
// (x, y) pairs.
func GeomMultiLineString(lines [][][2]float64) *Geom {
	ml := make(geom.MultiLineString, len(lines))
	for i, l := range lines {
		ml[i] = geom.LineString(coordPoints(l))
	}
	return NewGeom(ml)
}

// GeomMultiPolygon returns a wrapped multipolygon from polygons of rings
// of (x, y) pairs.
func GeomMultiPolygon(polys [][][][2]float64) *Geom {
	mp := make(geom.MultiPolygon, len(polys))
	for i, p := range polys {
		rings := make(geom.Polygon, len(p))
		for j, r := range p {
			rings[j] = coordPoints(r)
		}
		mp[i] = rings
	}
	return NewGeom(mp)
}

// GeomCollection returns a wrapped geometry collection holding the given
// geometries in order. Nil members are skipped.
func GeomCollection(gs []*Geom) *Geom {
	gc := make(geom.GeometryCollection, 0, len(gs))
	for _, g := range gs {
		if g == nil || g.Geom == nil {
			continue
		}
		gc = append(gc, g.Geom)
	}
	return NewGeom(gc)
}

func coordPoints(coords [][2]float64) []geom.Point {
	pts := make([]geom.Point, len(coords))
	for i, c := range coords {
		pts[i] = geom.Point{X: c[0], Y: c[1]}
	}
	return pts
}
