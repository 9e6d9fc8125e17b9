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
	"testing"

	"github.com/ctessum/geom"
)

func TestString(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		g    *Geom
		want string
	}{
		{"point", GeomPoint(3.5, -2.1), "POINT (3.5 -2.1)"},
		{"empty point", GeomPoint(nan, nan), "POINT EMPTY"},
		{
			"multipoint",
			GeomMultiPoint([][2]float64{{1, 2}, {3, 4}}),
			"MULTIPOINT ((1 2), (3 4))",
		},
		{"empty multipoint", GeomMultiPoint(nil), "MULTIPOINT EMPTY"},
		{
			"linestring",
			GeomLineString([][2]float64{{0, 0}, {1, 1}, {2, 0}}),
			"LINESTRING (0 0, 1 1, 2 0)",
		},
		{"empty linestring", GeomLineString(nil), "LINESTRING EMPTY"},
		{
			"polygon",
			GeomPolygon([][][2]float64{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}}),
			"POLYGON ((0 0, 0 1, 1 1, 1 0, 0 0))",
		},
		{
			"polygon with hole",
			GeomPolygon([][][2]float64{
				{{0, 0}, {0, 3}, {3, 3}, {3, 0}, {0, 0}},
				{{1, 1}, {1, 2}, {2, 2}, {1, 1}},
			}),
			"POLYGON ((0 0, 0 3, 3 3, 3 0, 0 0), (1 1, 1 2, 2 2, 1 1))",
		},
		{"empty polygon", GeomPolygon(nil), "POLYGON EMPTY"},
		{
			"multilinestring",
			GeomMultiLineString([][][2]float64{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}),
			"MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))",
		},
		{"empty multilinestring", GeomMultiLineString(nil), "MULTILINESTRING EMPTY"},
		{
			"multipolygon",
			GeomMultiPolygon([][][][2]float64{
				{{{0, 0}, {0, 1}, {1, 1}, {0, 0}}},
				{{{5, 5}, {5, 6}, {6, 6}, {5, 5}}},
			}),
			"MULTIPOLYGON (((0 0, 0 1, 1 1, 0 0)), ((5 5, 5 6, 6 6, 5 5)))",
		},
		{"empty multipolygon", GeomMultiPolygon(nil), "MULTIPOLYGON EMPTY"},
		{
			"geometrycollection",
			GeomCollection([]*Geom{
				GeomPoint(1, 2),
				GeomLineString([][2]float64{{0, 0}, {1, 1}}),
			}),
			"GEOMETRYCOLLECTION (POINT (1 2), LINESTRING (0 0, 1 1))",
		},
		{
			"nested geometrycollection",
			GeomCollection([]*Geom{GeomCollection([]*Geom{GeomPoint(1, 2)})}),
			"GEOMETRYCOLLECTION (GEOMETRYCOLLECTION (POINT (1 2)))",
		},
		{"empty geometrycollection", GeomCollection(nil), "GEOMETRYCOLLECTION EMPTY"},
		{"empty wrapper", &Geom{}, ""},
		{"nil wrapper", nil, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := test.g.String(); have != test.want {
				t.Errorf("have %q, want %q", have, test.want)
			}
		})
	}
}

func TestWKTPrecision(t *testing.T) {
	g := geom.Point{X: 3.14159265, Y: -2.5}
	tests := []struct {
		digits int
		want   string
	}{
		{-1, "POINT (3.14159265 -2.5)"},
		{2, "POINT (3.14 -2.5)"},
		{0, "POINT (3 -2)"},
		{4, "POINT (3.1416 -2.5)"},
	}
	for _, test := range tests {
		if have := WKT(g, test.digits); have != test.want {
			t.Errorf("digits %d: have %q, want %q", test.digits, have, test.want)
		}
	}
}

func TestWKTUnsupported(t *testing.T) {
	if have := WKT(&geom.Bounds{}, -1); have != "" {
		t.Errorf("have %q, want \"\"", have)
	}
}
