// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package ir

// ProjectionKind classifies a single structural-decomposition step.
//
// The first six kinds are data-level: they stay within a single
// reference-counted value and may be looked through when walking toward a
// definition. The remaining kinds cross from an object into addressable
// storage and are opaque.
type ProjectionKind uint8

//go:generate go tool stringer -type ProjectionKind -linecomment
const (
	// ProjUpcast is a conversion to a superclass type.
	ProjUpcast ProjectionKind = iota // upcast

	// ProjRefCast is a bitwise reference cast.
	ProjRefCast // refcast

	// ProjBitwiseCast is a bitwise value reinterpretation.
	ProjBitwiseCast // bitwise_cast

	// ProjStruct is a struct field extraction.
	ProjStruct // struct_field

	// ProjTuple is a tuple element extraction.
	ProjTuple // tuple_element

	// ProjEnum is an enum payload extraction.
	ProjEnum // enum_case

	// ProjClass is a stored class property address. The only opaque kind
	// eligible for a single explicit look-through.
	ProjClass // class_field

	// ProjBox is the address of a boxed value.
	ProjBox // boxed_value

	// ProjIndex is an address offset by an element index.
	ProjIndex // indexed_element

	// ProjTailElems is the address of a tail-allocated array.
	ProjTailElems // tail_elements
)

// NumProjectionKinds is the number of projection kinds.
const NumProjectionKinds = int(ProjTailElems) + 1

// Keep in sync with [AccessPath.Render]: both this classifier and the
// renderer switch over every projection kind, and each carries one of these
// assertions so that adding a kind fails the build until both are updated.
var _ [NumProjectionKinds]struct{} = [10]struct{}{}

// Transparent reports whether the kind is a data-level step that the decl
// inferrer may look through freely.
func (k ProjectionKind) Transparent() bool {
	switch k {
	case ProjUpcast, ProjRefCast, ProjBitwiseCast, ProjStruct, ProjTuple, ProjEnum:
		return true

	case ProjClass, ProjBox, ProjIndex, ProjTailElems:
		return false
	}

	panic("ir: unhandled projection kind " + k.String())
}

// Projection is one structural-decomposition step extracted from a
// projection instruction.
type Projection struct {
	Kind ProjectionKind

	// Field is set for ProjStruct and ProjClass.
	Field *Field

	// Index is set for ProjTuple and ProjIndex.
	Index int

	// Case is set for ProjEnum.
	Case string

	// CastType is the target type for the cast kinds.
	CastType *Type
}

// ProjectionOf classifies the defining instruction of v as a projection.
// It returns false when v is not the result of a projection instruction.
func ProjectionOf(v *Value) (Projection, bool) {
	def := v.Def()
	if def == nil {
		return Projection{}, false
	}

	switch def.Op() {
	case OpUpcast:
		return Projection{Kind: ProjUpcast, CastType: v.Type()}, true

	case OpRefCast:
		return Projection{Kind: ProjRefCast, CastType: v.Type()}, true

	case OpBitwiseCast:
		return Projection{Kind: ProjBitwiseCast, CastType: v.Type()}, true

	case OpStructExtract:
		return Projection{Kind: ProjStruct, Field: def.Field()}, true

	case OpTupleExtract:
		return Projection{Kind: ProjTuple, Index: def.ElemIndex()}, true

	case OpEnumData:
		return Projection{Kind: ProjEnum, Case: def.CaseName()}, true

	case OpRefElementAddr:
		return Projection{Kind: ProjClass, Field: def.Field()}, true

	case OpProjectBox:
		return Projection{Kind: ProjBox}, true

	case OpIndexAddr:
		return Projection{Kind: ProjIndex, Index: def.ElemIndex()}, true

	case OpRefTailAddr:
		return Projection{Kind: ProjTailElems}, true
	}

	return Projection{}, false
}

// Base returns the value the projection decomposes: the first operand of
// the defining projection instruction of v.
func (p Projection) Base(v *Value) *Value {
	return v.Def().Operand(0).Get()
}
