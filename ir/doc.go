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

// Package ir models the mid-level SSA intermediate representation the
// optremark pass analyzes.
//
// # Overview
//
// A [Module] holds functions and globals. A [Function] is a list of basic
// blocks; a [Block] is a list of instructions in layout order. Every
// [Instruction] has a closed [Opcode], operand edges to the values it
// consumes, and at most one result [Value]. Values are either function
// arguments or instruction results; each value keeps the list of its uses,
// so the def-use graph can be walked in both directions.
//
// Functions are constructed through a [Builder]:
//
//	b := ir.NewFunctionBuilder("process")
//	arg := b.Param("x", klassTy, decl)
//	b.StrongRetain(arg)
//	fn := b.Function()
//
// The package also classifies structural decompositions ([Projection]) and
// accumulates decomposition trails ([AccessPath]) for diagnostics.
//
// The representation is deliberately minimal: it carries exactly the
// structure the remark generation pass needs (types, declarations, debug
// bindings, memory and reference-counting operations) and nothing else.
package ir
