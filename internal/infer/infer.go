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

// Package infer maps IR values back to the source declarations they
// plausibly correspond to.
//
// The mapping is a best-effort heuristic, not a sound data-flow analysis:
// it walks the def-use graph backward through loads and data-level
// projections, searches uses for debug bindings along the way, and records
// the decomposition trail as an access path. Absence of a result is a
// normal outcome.
package infer

import (
	"log/slog"
	"strings"

	"fillmore-labs.com/optremark/ir"
	"fillmore-labs.com/optremark/remark"
)

// RCIdentity enumerates uses that consume a value under the same
// reference-counted object identity. It is consumed as an oracle.
type RCIdentity interface {
	// VisitRCUses calls visit for every use of a value rc-identical to v,
	// including v's own uses.
	VisitRCUses(v *ir.Value, visit func(*ir.Operand))
}

// Inferrer heuristically infers the declarations an IR value refers to.
//
// An Inferrer is stateful only within a single [Inferrer.Infer] call: the
// access path and the visited-binding set never survive a call. It is not
// safe for concurrent use.
type Inferrer struct {
	rc  RCIdentity
	log *slog.Logger

	// decllessBindings enables inferring named values from bindings that
	// carry only a plain name.
	decllessBindings bool

	path ir.AccessPath
}

// New creates an [Inferrer] using the given rc-identity oracle. log may be
// nil.
func New(rc RCIdentity, log *slog.Logger, decllessBindings bool) *Inferrer {
	if log == nil {
		log = slog.Default()
	}

	return &Inferrer{rc: rc, log: log, decllessBindings: decllessBindings}
}

// Infer attempts to infer a conservative list of declarations the value
// could refer to. With allowOneClassPeek set, a single class-field
// projection may be looked through; begin_access and end_access use this.
//
// It returns the inferred records in discovery order and whether any were
// found. An empty result is a normal outcome.
func (inf *Inferrer) Infer(keyKind remark.KeyKind, root *ir.Value, allowOneClassPeek bool) (results []remark.Argument, found bool) {
	defer inf.path.Reset()

	search := &useSearch{
		inf:     inf,
		keyKind: keyKind,
		visited: make(map[*ir.Instruction]struct{}),
	}

	value := root
	usedClassPeek := false
	foundFromUse := false

	// Linear walk toward a definition. Every advance moves to a structural
	// predecessor, so the loop terminates.
	for {
		inf.log.Debug("inferring decl", "value", value.String())

		// Identified values end the walk with a single record.
		if decl, ok := identifiedDecl(value); ok {
			return append(results, inf.declRecord(keyKind, decl)), true
		}

		// An undeclared stack slot with a unique initializer may be named
		// by the bindings of the value stored into it.
		if src, ok := singleInitSource(value); ok {
			inf.log.Debug("searching single-init store source", "source", src.String())
			foundFromUse = search.searchValue(&results, src, value) || foundFromUse
		}

		// Debug bindings are sometimes attached to a reconstruction of the
		// value rather than the value itself, so search rc-identical uses
		// too.
		foundFromUse = search.searchValue(&results, value, value) || foundFromUse

		if def := value.Def(); def != nil && def.Op() == ir.OpLoad {
			value = stripAccessMarkers(def.Operand(0).Get())

			continue
		}

		if proj, ok := ir.ProjectionOf(value); ok {
			if proj.Kind.Transparent() {
				base := proj.Base(value)
				inf.path.Push(base.Type(), proj)
				value = base

				continue
			}

			// A class-field address may be looked through once when the
			// caller opted in.
			if allowOneClassPeek && proj.Kind == ir.ProjClass && !usedClassPeek {
				base := proj.Base(value)
				inf.path.Push(base.Type(), proj)
				value = base
				usedClassPeek = true

				continue
			}
		}

		// TODO: emit a record for plain temporary allocations.

		return results, foundFromUse
	}
}

// identifiedDecl recognizes values directly carrying a declaration:
// declared arguments, globals, declared allocations, and the raw-pointer
// reinterpretation of a global's address.
func identifiedDecl(v *ir.Value) (*ir.Decl, bool) {
	if v.IsArgument() {
		if decl := v.Decl(); decl != nil {
			return decl, true
		}

		return nil, false
	}

	def := v.Def()

	switch def.Op() {
	case ir.OpGlobalAddr:
		if g := def.Global(); g != nil && g.Decl != nil {
			return g.Decl, true
		}

	case ir.OpAllocRef, ir.OpAllocRefDynamic, ir.OpAllocBox, ir.OpAllocStack:
		if decl := def.Decl(); decl != nil {
			return decl, true
		}

	case ir.OpPointerToRef:
		// The pattern around empty collection storage:
		//
		//   %0 = global_addr @storage
		//   %1 = address_to_pointer %0
		//   %2 = pointer_to_ref %1
		if g, ok := globalBehindRawPointer(def); ok && g.Decl != nil {
			return g.Decl, true
		}
	}

	return nil, false
}

func globalBehindRawPointer(ptrToRef *ir.Instruction) (*ir.Global, bool) {
	atp := ptrToRef.Operand(0).Get().Def()
	if atp == nil || atp.Op() != ir.OpAddressToPointer {
		return nil, false
	}

	ga := atp.Operand(0).Get().Def()
	if ga == nil || ga.Op() != ir.OpGlobalAddr {
		return nil, false
	}

	return ga.Global(), ga.Global() != nil
}

// singleInitSource finds the value stored by the unique initializing write
// of an undeclared stack slot.
func singleInitSource(v *ir.Value) (*ir.Value, bool) {
	def := v.Def()
	if def == nil || def.Op() != ir.OpAllocStack {
		return nil, false
	}

	var init *ir.Operand

	for _, use := range v.Uses() {
		switch use.User().Op() {
		case ir.OpStore, ir.OpCopyAddr:
			// Operand 1 is the destination; a second write disqualifies the
			// slot.
			if use.Index() != 1 {
				continue
			}

			if init != nil {
				return nil, false
			}

			init = use
		}
	}

	if init == nil {
		return nil, false
	}

	return init.User().Operand(0).Get(), true
}

// stripAccessMarkers walks through begin_access wrappers to the accessed
// address.
func stripAccessMarkers(v *ir.Value) *ir.Value {
	for {
		def := v.Def()
		if def == nil || def.Op() != ir.OpBeginAccess {
			return v
		}

		v = def.Operand(0).Get()
	}
}

func (inf *Inferrer) declRecord(keyKind remark.KeyKind, decl *ir.Decl) remark.Argument {
	return remark.Argument{
		Key: remark.ArgumentKey{Kind: keyKind, Name: "InferredValue"},
		Val: inf.note(decl.Name, true),
		Loc: decl.Loc,
	}
}

// note renders "of '<name><path>'", with the access-path suffix only when
// requested.
func (inf *Inferrer) note(name string, withPath bool) string {
	var sb strings.Builder
	sb.WriteString("of '")
	sb.WriteString(name)

	if withPath {
		sb.WriteString(inf.path.Render())
	}

	sb.WriteByte('\'')

	return sb.String()
}
