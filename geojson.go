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
	"encoding/json"
	"reflect"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
)

// GeoJSON renders the wrapped geometry as a GeoJSON geometry object.
// All seven variants are supported; geometry collections render with a
// "geometries" member holding the encoded members in order.
func (g *Geom) GeoJSON() ([]byte, error) {
	if g == nil || g.Geom == nil {
		return nil, geojson.InvalidGeometryError{}
	}
	o, err := geoJSONObject(g.Geom)
	if err != nil {
		return nil, err
	}
	return json.Marshal(o)
}

// MarshalJSON implements the json.Marshaler interface as GeoJSON.
func (g *Geom) MarshalJSON() ([]byte, error) {
	return g.GeoJSON()
}

// geometryCollection is the GeoJSON form of a geometry collection, which
// carries member objects instead of coordinates.
type geometryCollection struct {
	Type       string        `json:"type"`
	Geometries []interface{} `json:"geometries"`
}

// geoJSONObject builds the object to marshal for a geometry. The kinds
// the geojson package handles are delegated to it; the remaining kinds
// follow the same coordinate layout.
func geoJSONObject(g geom.Geom) (interface{}, error) {
	switch t := g.(type) {
	case nil:
		return nil, geojson.InvalidGeometryError{}
	case *Geom:
		if t == nil || t.Geom == nil {
			return nil, geojson.InvalidGeometryError{}
		}
		return geoJSONObject(t.Geom)
	case geom.Point, geom.LineString, geom.Polygon:
		return geojson.ToGeoJSON(g)
	case geom.MultiPoint:
		return &geojson.Geometry{
			Type:        "MultiPoint",
			Coordinates: pointsCoordinates(t),
		}, nil
	case geom.MultiLineString:
		coords := make([][][]float64, len(t))
		for i, l := range t {
			coords[i] = pointsCoordinates(l)
		}
		return &geojson.Geometry{
			Type:        "MultiLineString",
			Coordinates: coords,
		}, nil
	case geom.MultiPolygon:
		coords := make([][][][]float64, len(t))
		for i, p := range t {
			coords[i] = pointssCoordinates(p)
		}
		return &geojson.Geometry{
			Type:        "MultiPolygon",
			Coordinates: coords,
		}, nil
	case geom.GeometryCollection:
		members := make([]interface{}, len(t))
		for i, m := range t {
			o, err := geoJSONObject(m)
			if err != nil {
				return nil, err
			}
			members[i] = o
		}
		return &geometryCollection{
			Type:       "GeometryCollection",
			Geometries: members,
		}, nil
	}
	return nil, &geojson.UnsupportedGeometryError{Type: reflect.TypeOf(g).String()}
}

func pointCoordinates(p geom.Point) []float64 {
	return []float64{p.X, p.Y}
}

func pointsCoordinates(pts []geom.Point) [][]float64 {
	coords := make([][]float64, len(pts))
	for i, p := range pts {
		coords[i] = pointCoordinates(p)
	}
	return coords
}

func pointssCoordinates(ptss []geom.Path) [][][]float64 {
	coords := make([][][]float64, len(ptss))
	for i, pts := range ptss {
		coords[i] = pointsCoordinates(pts)
	}
	return coords
}
