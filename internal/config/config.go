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

// Package config holds the flag sets gating the remark generator.
package config

// Emit selects which remark severities are produced.
type Emit uint8

const (
	// EmitMissed enables missed-optimization remarks.
	EmitMissed Emit = 1 << iota

	// EmitPassed enables achieved-optimization remarks.
	EmitPassed
)

// Behavior holds behavioral toggles of the generator.
type Behavior uint8

const (
	// AlwaysEmit enables remark generation for every function, regardless
	// of per-function or per-type opt-ins.
	AlwaysEmit Behavior = 1 << iota

	// ForceVisitImplicit emits remarks even on implicit and autogenerated
	// functions.
	ForceVisitImplicit

	// DecllessBindings infers named values from debug bindings that carry
	// only a plain variable name and no declaration. This exists to make
	// IR-level test cases easier to write.
	DecllessBindings
)

// DefaultEmit returns the default severity selection.
func DefaultEmit() BitMask[Emit] {
	return NewBitMask(EmitMissed | EmitPassed)
}

// DefaultBehavior returns the default behavioral toggles.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask[Behavior]()
}
