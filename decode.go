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

// InvalidPayloadError reports an sfg value whose class names a geometry
// but whose payload does not have the shape that geometry requires.
type InvalidPayloadError struct {
	Class  string
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("sfconv: invalid %s payload: %s", e.Class, e.Reason)
}

// UnsupportedClassError reports a value whose class attribute names no
// recognized geometry. It is returned only by the strict decoders;
// FromSfg and FromSfc decode such values to the fallback point instead.
type UnsupportedClassError struct {
	Class []string
}

func (e *UnsupportedClassError) Error() string {
	if len(e.Class) == 0 {
		return "sfconv: value has no geometry class"
	}
	return fmt.Sprintf("sfconv: unsupported geometry class %v", e.Class)
}

// FromSfg decodes a single sfg value. The geometry kind is taken from the
// first recognized tag in the class attribute, matched case-insensitively.
// A value with no recognized tag decodes to the point (0, 0), the behavior
// callers that feed arbitrary R objects through the conversion rely on;
// use FromSfgStrict to diagnose those values instead. A recognized tag
// over a malformed payload returns an *InvalidPayloadError.
func FromSfg(v *rval.Value) (*Geom, error) {
	return fromSfg(v, false)
}

// FromSfgStrict is FromSfg, except that a value with no recognized
// geometry tag returns an *UnsupportedClassError instead of the fallback
// point.
func FromSfgStrict(v *rval.Value) (*Geom, error) {
	return fromSfg(v, true)
}

func fromSfg(v *rval.Value, strict bool) (*Geom, error) {
	var class []string
	if v != nil {
		class = v.Class()
	}
	kind := classKind(class)
	if kind == "" {
		if strict {
			return nil, &UnsupportedClassError{Class: class}
		}
		return NewGeom(geom.Point{}), nil
	}
	g, err := decodePayload(kind, v, strict)
	if err != nil {
		return nil, err
	}
	return NewGeom(g), nil
}

// FromSfc decodes an sfc value, a list of sfg values, preserving element
// order. NULL slots become nil members so missing geometries keep their
// positions.
func FromSfc(v *rval.Value) ([]*Geom, error) {
	return fromSfc(v, false)
}

// FromSfcStrict is FromSfc with FromSfgStrict semantics for each element.
func FromSfcStrict(v *rval.Value) ([]*Geom, error) {
	return fromSfc(v, true)
}

func fromSfc(v *rval.Value, strict bool) ([]*Geom, error) {
	if v == nil || v.Kind() != rval.List {
		return nil, &InvalidPayloadError{Class: "sfc", Reason: "value is not a list"}
	}
	members := v.List()
	out := make([]*Geom, len(members))
	for i, m := range members {
		if m == nil || m.IsNull() {
			continue
		}
		g, err := fromSfg(m, strict)
		if err != nil {
			return nil, fmt.Errorf("sfconv: sfc element %d: %w", i, err)
		}
		out[i] = g
	}
	return out, nil
}

func decodePayload(kind string, v *rval.Value, strict bool) (geom.Geom, error) {
	switch kind {
	case ClassPoint:
		if v.Kind() != rval.Doubles || v.Len() != 2 {
			return nil, &InvalidPayloadError{Class: kind, Reason: "payload must be a length-2 doubles vector"}
		}
		d := v.Doubles()
		return geom.Point{X: d[0], Y: d[1]}, nil
	case ClassMultiPoint:
		pts, err := decodeMatrix(v)
		if err != nil {
			return nil, &InvalidPayloadError{Class: kind, Reason: err.Error()}
		}
		return geom.MultiPoint(pts), nil
	case ClassLineString:
		pts, err := decodeMatrix(v)
		if err != nil {
			return nil, &InvalidPayloadError{Class: kind, Reason: err.Error()}
		}
		return geom.LineString(pts), nil
	case ClassPolygon:
		rings, err := decodeMatrixList(v)
		if err != nil {
			return nil, &InvalidPayloadError{Class: kind, Reason: err.Error()}
		}
		return geom.Polygon(rings), nil
	case ClassMultiLineString:
		rings, err := decodeMatrixList(v)
		if err != nil {
			return nil, &InvalidPayloadError{Class: kind, Reason: err.Error()}
		}
		ml := make(geom.MultiLineString, len(rings))
		for i, r := range rings {
			ml[i] = geom.LineString(r)
		}
		return ml, nil
	case ClassMultiPolygon:
		if v.Kind() != rval.List {
			return nil, &InvalidPayloadError{Class: kind, Reason: "payload is not a list of polygons"}
		}
		members := v.List()
		mp := make(geom.MultiPolygon, len(members))
		for i, m := range members {
			rings, err := decodeMatrixList(m)
			if err != nil {
				return nil, &InvalidPayloadError{Class: kind, Reason: fmt.Sprintf("polygon %d: %v", i, err)}
			}
			mp[i] = geom.Polygon(rings)
		}
		return mp, nil
	case ClassGeometryCollection:
		if v.Kind() != rval.List {
			return nil, &InvalidPayloadError{Class: kind, Reason: "payload is not a list of geometries"}
		}
		members := v.List()
		gc := make(geom.GeometryCollection, len(members))
		for i, m := range members {
			mg, err := fromSfg(m, strict)
			if err != nil {
				return nil, fmt.Errorf("sfconv: geometrycollection member %d: %w", i, err)
			}
			gc[i] = mg.Geom
		}
		return gc, nil
	}
	return nil, &UnsupportedClassError{Class: []string{kind}}
}

// decodeMatrix converts an n-by-2 coordinate matrix to points, one per
// row.
func decodeMatrix(v *rval.Value) ([]geom.Point, error) {
	if v == nil || !v.IsMatrix() {
		return nil, errors.New("payload is not a coordinate matrix")
	}
	nrow, ncol := v.Dim()
	if ncol != 2 {
		return nil, fmt.Errorf("coordinate matrix must have 2 columns, have %d", ncol)
	}
	pts := make([]geom.Point, nrow)
	for i := range pts {
		pts[i] = geom.Point{X: v.MatrixAt(i, 0), Y: v.MatrixAt(i, 1)}
	}
	return pts, nil
}

// decodeMatrixList converts a list of n-by-2 coordinate matrices, the
// payload shape shared by polygons and multilinestrings.
func decodeMatrixList(v *rval.Value) ([]geom.Path, error) {
	if v == nil || v.Kind() != rval.List {
		return nil, errors.New("payload is not a list of coordinate matrices")
	}
	members := v.List()
	out := make([]geom.Path, len(members))
	for i, m := range members {
		pts, err := decodeMatrix(m)
		if err != nil {
			return nil, fmt.Errorf("element %d: %v", i, err)
		}
		out[i] = pts
	}
	return out, nil
}
