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

import "fmt"

// Decl is an opaque handle to a source-level named entity: a parameter, a
// local variable, a stored field or a global.
type Decl struct {
	// Name is the user-facing base name of the entity.
	Name string

	// Loc is the location of the declaration in the source.
	Loc Location
}

func (d *Decl) String() string {
	if d == nil {
		return "<no decl>"
	}

	return d.Name
}

// Location is a source position. The zero Location is "no location".
type Location struct {
	File string
	Line int
	Col  int

	// AutoGenerated marks compiler-synthesized locations that should not be
	// presented to the user.
	AutoGenerated bool
}

// Valid reports whether the location points into a source file.
func (l Location) Valid() bool {
	return l.File != "" && l.Line > 0
}

func (l Location) String() string {
	if !l.Valid() {
		return "<unknown>"
	}

	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// DebugScope is the lexical debug scope an instruction belongs to.
type DebugScope struct {
	// Loc is the location of the scope itself, typically the enclosing
	// function declaration.
	Loc Location

	// InlinedCallSite is non-nil when the scope was inlined from another
	// call site. Instructions under such a scope did not originate in the
	// current function.
	InlinedCallSite *DebugScope
}

// Inlined reports whether the scope was inlined from another call site.
func (s *DebugScope) Inlined() bool {
	return s != nil && s.InlinedCallSite != nil
}
