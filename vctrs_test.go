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

	"github.com/spatialmodel/sfconv/rval"
)

func TestVctrClass(t *testing.T) {
	want := []string{"rg_POINT", "rgeom", "vctrs_vctr", "list"}
	if have := VctrClass("point"); !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestDetermineVctrClass(t *testing.T) {
	tests := []struct {
		name string
		gs   []*Geom
		want string
	}{
		{
			"uniform",
			[]*Geom{GeomPoint(1, 2), GeomPoint(3, 4)},
			"rg_POINT",
		},
		{
			"uniform with missing",
			[]*Geom{nil, GeomLineString([][2]float64{{0, 0}, {1, 1}})},
			"rg_LINESTRING",
		},
		{
			"mixed",
			[]*Geom{GeomPoint(1, 2), GeomMultiPoint([][2]float64{{1, 2}})},
			"rg_GEOMETRYCOLLECTION",
		},
		{
			"empty",
			nil,
			"rg_GEOMETRY",
		},
		{
			"all missing",
			[]*Geom{nil, nil},
			"rg_GEOMETRY",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cls := DetermineVctrClass(test.gs)
			wantFull := append([]string{test.want}, "rgeom", "vctrs_vctr", "list")
			if !reflect.DeepEqual(cls, wantFull) {
				t.Errorf("have %v, want %v", cls, wantFull)
			}
		})
	}
}

func TestAsVctr(t *testing.T) {
	gs := []*Geom{GeomPoint(1, 2), nil, GeomPoint(3, 4)}
	v := AsVctr(Pointers(gs), SfcClass(gs))
	if v == nil {
		t.Fatal("nil vctr")
	}
	if !IsVctr(v) {
		t.Error("IsVctr = false, want true")
	}
	if have, want := VctrKind(v), "point"; have != want {
		t.Errorf("kind: have %q, want %q", have, want)
	}
	if have, want := v.Len(), 3; have != want {
		t.Errorf("length: have %d, want %d", have, want)
	}
	if !v.List()[1].IsNull() {
		t.Error("missing geometry should be NULL")
	}
	back, err := FromList(v)
	if err != nil {
		t.Fatal(err)
	}
	if back[0] != gs[0] || back[1] != nil || back[2] != gs[2] {
		t.Error("round trip through vctr did not preserve members")
	}
}

func TestAsVctrNil(t *testing.T) {
	if AsVctr(nil, "point") != nil {
		t.Error("AsVctr(nil) should be nil")
	}
}

func TestIsVctr(t *testing.T) {
	tests := []struct {
		name string
		v    *rval.Value
		want bool
	}{
		{"nil", nil, false},
		{"null", rval.NewNull(), false},
		{"unclassed list", rval.NewList(), false},
		{"vctr", rval.NewList().SetClass(VctrClass("point")...), true},
		{"other class", rval.NewList().SetClass("data.frame"), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := IsVctr(test.v); have != test.want {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}
}

func TestVctrKind(t *testing.T) {
	v := rval.NewList().SetClass(VctrClass("multipolygon")...)
	if have, want := VctrKind(v), "multipolygon"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
	if have := VctrKind(rval.NewList()); have != "" {
		t.Errorf("have %q, want \"\"", have)
	}
}
