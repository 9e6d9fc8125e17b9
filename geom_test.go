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

	"github.com/ctessum/geom"
	"github.com/spatialmodel/sfconv/rval"
)

func TestNewGeom(t *testing.T) {
	p := geom.Point{X: 1, Y: 2}
	g := NewGeom(p)
	if g.Geom != p {
		t.Errorf("have %#v, want %#v", g.Geom, p)
	}
	// Wrapping a wrapper returns it unchanged.
	if g2 := NewGeom(g); g2 != g {
		t.Errorf("have %p, want %p", g2, g)
	}
}

func TestGeomPromotesBounds(t *testing.T) {
	g := NewGeom(geom.LineString{{X: 0, Y: 0}, {X: 2, Y: 3}})
	b := g.Bounds()
	if b.Min.X != 0 || b.Min.Y != 0 || b.Max.X != 2 || b.Max.Y != 3 {
		t.Errorf("have %#v, want bounds (0, 0) to (2, 3)", b)
	}
}

func TestGeomClass(t *testing.T) {
	tests := []struct {
		name string
		g    *Geom
		want string
	}{
		{"point", NewGeom(geom.Point{}), ClassPoint},
		{"multipoint", NewGeom(geom.MultiPoint{}), ClassMultiPoint},
		{"linestring", NewGeom(geom.LineString{}), ClassLineString},
		{"multilinestring", NewGeom(geom.MultiLineString{}), ClassMultiLineString},
		{"polygon", NewGeom(geom.Polygon{}), ClassPolygon},
		{"multipolygon", NewGeom(geom.MultiPolygon{}), ClassMultiPolygon},
		{"collection", NewGeom(geom.GeometryCollection{}), ClassGeometryCollection},
		{"empty wrapper", &Geom{}, ""},
		{"nil wrapper", nil, ""},
		{"bounds", NewGeom(&geom.Bounds{}), ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := test.g.Class(); have != test.want {
				t.Errorf("have %q, want %q", have, test.want)
			}
		})
	}
}

func TestClassOfUnwraps(t *testing.T) {
	if have := ClassOf(NewGeom(geom.MultiPolygon{})); have != ClassMultiPolygon {
		t.Errorf("have %q, want %q", have, ClassMultiPolygon)
	}
	if have := ClassOf(nil); have != "" {
		t.Errorf("have %q, want \"\"", have)
	}
}

func TestPointerRoundTrip(t *testing.T) {
	g := GeomPoint(3.5, -2.1)
	ptr := g.Pointer()
	if ptr.Kind() != rval.Ptr {
		t.Fatalf("kind: have %v, want %v", ptr.Kind(), rval.Ptr)
	}
	if want := []string{"point", "Geom"}; !reflect.DeepEqual(ptr.Class(), want) {
		t.Errorf("class: have %#v, want %#v", ptr.Class(), want)
	}
	back, err := FromPointer(ptr)
	if err != nil {
		t.Fatal(err)
	}
	if back != g {
		t.Errorf("have %p, want the identical wrapper %p", back, g)
	}
}

func TestPointerNil(t *testing.T) {
	var g *Geom
	if v := g.Pointer(); !v.IsNull() {
		t.Errorf("have %#v, want NULL", v)
	}
}

func TestFromPointerErrors(t *testing.T) {
	tests := []struct {
		name string
		in   *rval.Value
	}{
		{"nil", nil},
		{"null", rval.NewNull()},
		{"doubles", rval.NewDoubles(1, 2)},
		{"foreign pointer", rval.NewPtr("not a geometry")},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := FromPointer(test.in); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFromList(t *testing.T) {
	g1 := GeomPoint(1, 2)
	g2 := GeomLineString([][2]float64{{0, 0}, {1, 1}})
	in := rval.NewList(g1.Pointer(), rval.NewNull(), g2.Pointer())
	gs, err := FromList(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(gs) != 3 {
		t.Fatalf("have %d members, want 3", len(gs))
	}
	if gs[0] != g1 || gs[2] != g2 {
		t.Error("list members are not the identical wrappers")
	}
	if gs[1] != nil {
		t.Errorf("element 1: have %#v, want nil", gs[1])
	}
}

func TestFromListErrors(t *testing.T) {
	if _, err := FromList(rval.NewDoubles(1)); err == nil {
		t.Error("expected an error for a non-list")
	}
	_, err := FromList(rval.NewList(rval.NewDoubles(1)))
	if err == nil {
		t.Error("expected an error for a non-pointer member")
	}
}

func TestSfgOnWrapper(t *testing.T) {
	g := GeomPoint(3.5, -2.1)
	v, err := g.Sfg()
	if err != nil {
		t.Fatal(err)
	}
	if !rval.Equal(v, sfgPoint(3.5, -2.1)) {
		t.Errorf("have %#v, want %#v", v, sfgPoint(3.5, -2.1))
	}

	if _, err := (&Geom{}).Sfg(); err == nil {
		t.Error("expected an error for an empty wrapper")
	}
	var nilg *Geom
	if _, err := nilg.Sfg(); err == nil {
		t.Error("expected an error for a nil wrapper")
	}
}
