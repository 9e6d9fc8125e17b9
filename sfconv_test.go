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
	"reflect"
	"testing"
)

func TestClasses(t *testing.T) {
	want := []string{
		"point",
		"multipoint",
		"linestring",
		"multilinestring",
		"polygon",
		"multipolygon",
		"geometrycollection",
	}
	if have := Classes(); !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}

	// Callers get a copy, not the vocabulary itself.
	Classes()[0] = "circle"
	if have := Classes()[0]; have != "point" {
		t.Errorf("have %q, want %q", have, "point")
	}
}

func TestSfcClass(t *testing.T) {
	tests := []struct {
		name string
		gs   []*Geom
		want string
	}{
		{
			"uniform",
			[]*Geom{GeomPoint(1, 2), GeomPoint(3, 4)},
			"point",
		},
		{
			"mixed",
			[]*Geom{GeomPoint(1, 2), GeomLineString([][2]float64{{0, 0}, {1, 1}})},
			"geometrycollection",
		},
		{
			"collections are their own class",
			[]*Geom{GeomCollection(nil), GeomCollection(nil)},
			"geometrycollection",
		},
		{
			"missing members skipped",
			[]*Geom{nil, &Geom{}, GeomPoint(1, 2)},
			"point",
		},
		{"empty", nil, ""},
		{"all missing", []*Geom{nil, nil}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := SfcClass(test.gs); have != test.want {
				t.Errorf("have %q, want %q", have, test.want)
			}
		})
	}
}
