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

// Type is an IR-level type. Types are compared by pointer identity, so a
// type should be created once and shared between all values carrying it.
type Type struct {
	// Name is the user-facing spelling used in remark messages.
	Name string

	// Nominal is set when the type is a nominal (named, attribute-carrying)
	// type. It stays nil for structural types like tuples and pointers.
	Nominal *NominalType
}

func (t *Type) String() string {
	if t == nil {
		return "<unknown>"
	}

	return t.Name
}

// NominalType carries the declaration-level facts of a named type that the
// enablement gate consults.
type NominalType struct {
	Name string

	// EmitRemarksOnMethods is the per-type opt-in attribute: when set,
	// remarks are generated for every method of the type.
	EmitRemarksOnMethods bool
}

// Field identifies a stored property of a struct or class type.
type Field struct {
	Name string
}

// Global is a module-level storage location.
type Global struct {
	Name string
	Type *Type

	// Decl is the source declaration backing the global, when one exists.
	Decl *Decl
}
