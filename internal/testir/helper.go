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

// Package testir provides fixture helpers for building IR functions in
// tests.
//
// It removes the boilerplate of creating shared types, source locations and
// declarations so that test cases read as compact instruction sequences.
package testir

import (
	"log/slog"
	"testing"

	"fillmore-labs.com/optremark/ir"
)

// File is the fixture source file name used by [Loc] and [Decl].
const File = "test.code"

// Loc returns a valid location in the fixture file.
func Loc(line int) ir.Location {
	return ir.Location{File: File, Line: line, Col: 1}
}

// AutoLoc returns a compiler-generated location in the fixture file.
func AutoLoc(line int) ir.Location {
	return ir.Location{File: File, Line: line, Col: 1, AutoGenerated: true}
}

// Decl returns a variable declaration at the given line of the fixture
// file.
func Decl(name string, line int) *ir.Decl {
	return &ir.Decl{Name: name, Loc: Loc(line)}
}

// Ty returns a fresh structural type. Share the returned pointer between
// all values of the type.
func Ty(name string) *ir.Type {
	return &ir.Type{Name: name}
}

// NominalTy returns a fresh nominal type. emitOnMethods sets the per-type
// remark opt-in attribute.
func NominalTy(name string, emitOnMethods bool) *ir.Type {
	return &ir.Type{
		Name:    name,
		Nominal: &ir.NominalType{Name: name, EmitRemarksOnMethods: emitOnMethods},
	}
}

// NewBuilder creates a function builder with its location set to line 1 of
// the fixture file.
func NewBuilder(tb testing.TB, name string) *ir.Builder {
	tb.Helper()

	b := ir.NewFunctionBuilder(name)
	b.SetLoc(Loc(1))

	return b
}

// InlinedScope returns a debug scope modeling code inlined from elsewhere
// into a call site at the given line.
func InlinedScope(line int) *ir.DebugScope {
	return &ir.DebugScope{
		Loc:             Loc(line),
		InlinedCallSite: &ir.DebugScope{Loc: Loc(line)},
	}
}

// DiscardLogger returns a logger for components that require one but whose
// output is irrelevant to the test.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
