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
	"errors"
	"fmt"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/sfconv/rval"
)

// Geom wraps a native geometry behind a single concrete type so that an
// embedding R session can hold any geometry variant through one external
// pointer. It carries the geometry unchanged; the methods of the wrapped
// value are promoted.
type Geom struct {
	geom.Geom
}

// NewGeom wraps a native geometry. Wrapping an already wrapped geometry
// returns it unchanged.
func NewGeom(g geom.Geom) *Geom {
	if w, ok := g.(*Geom); ok {
		return w
	}
	return &Geom{Geom: g}
}

// Class returns the class tag of the wrapped geometry, or "" if g is nil
// or holds no geometry.
func (g *Geom) Class() string {
	if g == nil {
		return ""
	}
	return ClassOf(g.Geom)
}

// Sfg encodes the wrapped geometry as an sfg value.
func (g *Geom) Sfg() (*rval.Value, error) {
	if g == nil || g.Geom == nil {
		return nil, &UnsupportedGeometryError{}
	}
	return ToSfg(g.Geom)
}

// Pointer returns an external pointer to g classed with its geometry tag,
// the handle handed to the R side. A nil wrapper becomes NULL.
func (g *Geom) Pointer() *rval.Value {
	if g == nil {
		return rval.NewNull()
	}
	return rval.NewPtr(g).SetClass(g.Class(), "Geom")
}

// FromPointer recovers the wrapper behind an external pointer created by
// Pointer. The same wrapper that was handed out comes back.
func FromPointer(v *rval.Value) (*Geom, error) {
	if v == nil || v.Kind() != rval.Ptr {
		return nil, errors.New("sfconv: value is not a geometry pointer")
	}
	g, ok := v.Ptr().(*Geom)
	if !ok {
		return nil, fmt.Errorf("sfconv: pointer does not hold a geometry (have %T)", v.Ptr())
	}
	return g, nil
}

// Pointers returns a list of external pointers to the given wrappers,
// the unclassed body of a geometry column. Nil members become NULL
// slots.
func Pointers(gs []*Geom) *rval.Value {
	members := make([]*rval.Value, len(gs))
	for i, g := range gs {
		members[i] = g.Pointer()
	}
	return rval.NewList(members...)
}

// FromList recovers the wrappers behind a list of geometry pointers.
// NULL slots become nil members, preserving the positions of missing
// geometries.
func FromList(v *rval.Value) ([]*Geom, error) {
	if v == nil || v.Kind() != rval.List {
		return nil, errors.New("sfconv: value is not a geometry list")
	}
	members := v.List()
	out := make([]*Geom, len(members))
	for i, m := range members {
		if m == nil || m.IsNull() {
			continue
		}
		g, err := FromPointer(m)
		if err != nil {
			return nil, fmt.Errorf("sfconv: list element %d: %w", i, err)
		}
		out[i] = g
	}
	return out, nil
}
