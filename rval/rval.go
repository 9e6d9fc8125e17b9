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

/*
Package rval models the R values exchanged with an embedding R session:
numeric vectors and matrices, generic lists, external pointers, and NULL,
together with their class attributes. Matrices are stored column-major with
an explicit dimension attribute, the way R stores them, so coordinate
payloads survive the trip through this package bit-for-bit. NA_real_ is
carried as NaN.
*/
package rval

import "gonum.org/v1/gonum/floats"

// Kind identifies the underlying storage of a Value.
type Kind int

const (
	// Null is R's NULL.
	Null Kind = iota
	// Doubles is a numeric vector, possibly with matrix dimensions.
	Doubles
	// List is a generic vector of child values.
	List
	// Ptr is an external pointer wrapping an arbitrary Go value.
	Ptr
)

// Value is a single R value. The zero Value is NULL.
type Value struct {
	kind  Kind
	class []string
	num   []float64
	dim   []int // {nrow, ncol} when the value is a matrix.
	list  []*Value
	ptr   interface{}
}

// NewNull returns a new NULL value.
func NewNull() *Value {
	return &Value{kind: Null}
}

// NewDoubles returns a numeric vector holding a copy of xs.
func NewDoubles(xs ...float64) *Value {
	v := &Value{kind: Doubles, num: make([]float64, len(xs))}
	copy(v.num, xs)
	return v
}

// NewMatrix returns a numeric matrix with nrow rows and ncol columns.
// data holds a copy of the column-major matrix contents and must have
// length nrow*ncol.
func NewMatrix(data []float64, nrow, ncol int) *Value {
	if len(data) != nrow*ncol {
		panic("rval: matrix data length does not match dimensions")
	}
	v := &Value{kind: Doubles, num: make([]float64, len(data)), dim: []int{nrow, ncol}}
	copy(v.num, data)
	return v
}

// NewList returns a list holding the given children.
func NewList(children ...*Value) *Value {
	v := &Value{kind: List, list: make([]*Value, len(children))}
	copy(v.list, children)
	return v
}

// NewPtr returns an external pointer wrapping x.
func NewPtr(x interface{}) *Value {
	return &Value{kind: Ptr, ptr: x}
}

// Kind returns the storage kind of the value.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is NULL.
func (v *Value) IsNull() bool { return v.kind == Null }

// Class returns the class attribute, which may be empty.
func (v *Value) Class() []string { return v.class }

// HasClass reports whether name appears in the class attribute.
func (v *Value) HasClass(name string) bool {
	for _, c := range v.class {
		if c == name {
			return true
		}
	}
	return false
}

// SetClass sets the class attribute and returns v to allow chaining.
func (v *Value) SetClass(classes ...string) *Value {
	v.class = make([]string, len(classes))
	copy(v.class, classes)
	return v
}

// Doubles returns the numeric payload, or nil if the value is not numeric.
func (v *Value) Doubles() []float64 { return v.num }

// List returns the child values, or nil if the value is not a list.
func (v *Value) List() []*Value { return v.list }

// Ptr returns the wrapped Go value, or nil if the value is not an
// external pointer.
func (v *Value) Ptr() interface{} { return v.ptr }

// IsMatrix reports whether the value is a numeric vector with matrix
// dimensions.
func (v *Value) IsMatrix() bool {
	return v.kind == Doubles && len(v.dim) == 2
}

// Dim returns the matrix dimensions, or (0, 0) if the value is not a
// matrix.
func (v *Value) Dim() (nrow, ncol int) {
	if !v.IsMatrix() {
		return 0, 0
	}
	return v.dim[0], v.dim[1]
}

// MatrixAt returns the matrix element in row i and column j.
func (v *Value) MatrixAt(i, j int) float64 {
	nrow, ncol := v.Dim()
	if i < 0 || i >= nrow || j < 0 || j >= ncol {
		panic("rval: matrix index out of range")
	}
	return v.num[j*nrow+i]
}

// Len returns the R length of the value: the number of elements for
// numeric vectors and lists, 1 for external pointers, and 0 for NULL.
func (v *Value) Len() int {
	switch v.kind {
	case Doubles:
		return len(v.num)
	case List:
		return len(v.list)
	case Ptr:
		return 1
	}
	return 0
}

// Equal reports whether a and b hold the same value: same kind, class,
// dimensions, and payload. NaNs in numeric payloads compare equal, so NA
// survives the comparison. External pointers compare by identity.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || !stringsEqual(a.class, b.class) || !intsEqual(a.dim, b.dim) {
		return false
	}
	switch a.kind {
	case Doubles:
		return floats.Same(a.num, b.num)
	case List:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
	case Ptr:
		return a.ptr == b.ptr
	}
	return true
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
