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

import (
	"strconv"
	"strings"
)

// PathSegment is one step of an [AccessPath]: the projection together with
// the type it decomposed.
type PathSegment struct {
	Base *Type
	Proj Projection
}

// AccessPath accumulates the decomposition trail walked while tracing a
// value back to a named binding. Segments are pushed leaf-first, in the
// order the walk encounters them; rendering reverses them so the result
// reads from the binding down to the traced value.
type AccessPath struct {
	segments []PathSegment
}

// Push records one decomposition step.
func (p *AccessPath) Push(base *Type, proj Projection) {
	p.segments = append(p.segments, PathSegment{Base: base, Proj: proj})
}

// Reset empties the path for reuse.
func (p *AccessPath) Reset() { p.segments = p.segments[:0] }

// Empty reports whether no segments have been pushed.
func (p *AccessPath) Empty() bool { return len(p.segments) == 0 }

// Len returns the number of segments.
func (p *AccessPath) Len() int { return len(p.segments) }

// Render returns the dotted access-path suffix, e.g. ".lhs.ivar" or
// ".upcast<Base>". It does not modify the path.
func (p *AccessPath) Render() string {
	var sb strings.Builder
	p.appendTo(&sb)

	return sb.String()
}

// Keep in sync with [ProjectionKind.Transparent]; see the assertion there.
var _ [NumProjectionKinds]struct{} = [10]struct{}{}

func (p *AccessPath) appendTo(sb *strings.Builder) {
	for i := len(p.segments) - 1; i >= 0; i-- {
		proj := p.segments[i].Proj
		sb.WriteByte('.')

		switch proj.Kind {
		case ProjUpcast, ProjRefCast, ProjBitwiseCast:
			sb.WriteString(proj.Kind.String())
			sb.WriteByte('<')
			sb.WriteString(proj.CastType.String())
			sb.WriteByte('>')

		case ProjStruct, ProjClass:
			sb.WriteString(proj.Field.Name)

		case ProjTuple:
			sb.WriteString(strconv.Itoa(proj.Index))

		case ProjEnum:
			sb.WriteString(proj.Case)

		case ProjBox, ProjIndex, ProjTailElems:
			// Object -> Address projections are never looked through, except
			// for the single explicit class_field peek handled above.
			panic("ir: rendered unsupported projection " + proj.Kind.String())
		}
	}
}
