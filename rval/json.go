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

package rval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// The JSON form of a Value is self-describing so fixtures and command-line
// input can carry R values through files:
//
//	null
//	{"type":"double","data":[3.5,-2.1],"class":["XY","POINT","sfg"]}
//	{"type":"matrix","data":[[0,0],[0,1]],"dim":[2,2]}
//	{"type":"list","data":[...]}
//
// Matrix data is written in row order; the dim attribute is authoritative
// so empty matrices keep their column count. NA is written as null, and
// infinities are written as the strings "Inf" and "-Inf" because bare JSON
// cannot represent them.
type jsonValue struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data"`
	Dim   []int       `json:"dim,omitempty"`
	Class []string    `json:"class,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface. External pointers
// have no serialized form and return an error.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Null:
		return []byte("null"), nil
	case Doubles:
		if v.IsMatrix() {
			nrow, ncol := v.Dim()
			rows := make([]interface{}, nrow)
			for i := 0; i < nrow; i++ {
				row := make([]interface{}, ncol)
				for j := 0; j < ncol; j++ {
					row[j] = encodeFloat(v.MatrixAt(i, j))
				}
				rows[i] = row
			}
			return json.Marshal(&jsonValue{Type: "matrix", Data: rows, Dim: v.dim, Class: v.class})
		}
		data := make([]interface{}, len(v.num))
		for i, x := range v.num {
			data[i] = encodeFloat(x)
		}
		return json.Marshal(&jsonValue{Type: "double", Data: data, Class: v.class})
	case List:
		return json.Marshal(&jsonValue{Type: "list", Data: v.list, Class: v.class})
	}
	return nil, fmt.Errorf("rval: external pointers cannot be marshaled as JSON")
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Value{kind: Null}
		return nil
	}
	var raw struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Dim   []int           `json:"dim"`
		Class []string        `json:"class"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("rval: %v", err)
	}
	switch raw.Type {
	case "double":
		num, err := decodeFloats(raw.Data)
		if err != nil {
			return err
		}
		*v = Value{kind: Doubles, num: num, class: raw.Class}
		return nil
	case "matrix":
		var rows []json.RawMessage
		if len(raw.Data) > 0 {
			if err := json.Unmarshal(raw.Data, &rows); err != nil {
				return fmt.Errorf("rval: matrix data: %v", err)
			}
		}
		nrow, ncol, err := matrixDim(raw.Dim, rows)
		if err != nil {
			return err
		}
		num := make([]float64, nrow*ncol)
		for i, r := range rows {
			row, err := decodeFloats(r)
			if err != nil {
				return fmt.Errorf("rval: matrix row %d: %v", i, err)
			}
			if len(row) != ncol {
				return fmt.Errorf("rval: matrix row %d has %d elements, want %d", i, len(row), ncol)
			}
			for j, x := range row {
				num[j*nrow+i] = x
			}
		}
		*v = Value{kind: Doubles, num: num, dim: []int{nrow, ncol}, class: raw.Class}
		return nil
	case "list":
		var members []json.RawMessage
		if len(raw.Data) > 0 {
			if err := json.Unmarshal(raw.Data, &members); err != nil {
				return fmt.Errorf("rval: list data: %v", err)
			}
		}
		list := make([]*Value, len(members))
		for i, m := range members {
			child := new(Value)
			if err := child.UnmarshalJSON(m); err != nil {
				return fmt.Errorf("rval: list element %d: %v", i, err)
			}
			list[i] = child
		}
		*v = Value{kind: List, list: list, class: raw.Class}
		return nil
	}
	return fmt.Errorf("rval: unknown value type %q", raw.Type)
}

// encodeFloat returns the JSON representation of a single number: nil for
// NA, strings for the infinities, and the number itself otherwise.
func encodeFloat(x float64) interface{} {
	switch {
	case math.IsNaN(x):
		return nil
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	return x
}

func decodeFloats(data json.RawMessage) ([]float64, error) {
	var elems []interface{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil, fmt.Errorf("rval: %v", err)
		}
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		if e == nil { // NA
			out[i] = math.NaN()
			continue
		}
		x, err := cast.ToFloat64E(e)
		if err != nil {
			return nil, fmt.Errorf("rval: element %d: %v", i, err)
		}
		out[i] = x
	}
	return out, nil
}

// matrixDim reconciles an explicit dim attribute with the row data,
// inferring the dimensions from the rows when dim is absent.
func matrixDim(dim []int, rows []json.RawMessage) (nrow, ncol int, err error) {
	if len(dim) == 2 {
		if dim[0] < 0 || dim[1] < 0 {
			return 0, 0, fmt.Errorf("rval: negative matrix dimension %v", dim)
		}
		if len(rows) != dim[0] {
			return 0, 0, fmt.Errorf("rval: matrix has %d rows but dim says %d", len(rows), dim[0])
		}
		return dim[0], dim[1], nil
	}
	if len(dim) != 0 {
		return 0, 0, fmt.Errorf("rval: matrix dim must have 2 elements, have %d", len(dim))
	}
	if len(rows) == 0 {
		return 0, 0, fmt.Errorf("rval: cannot infer dimensions of an empty matrix without dim")
	}
	var first []interface{}
	if err := json.Unmarshal(rows[0], &first); err != nil {
		return 0, 0, fmt.Errorf("rval: matrix row 0: %v", err)
	}
	return len(rows), len(first), nil
}
