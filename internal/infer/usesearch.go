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

package infer

import (
	"fillmore-labs.com/optremark/ir"
	"fillmore-labs.com/optremark/remark"
)

// useSearch looks for debug bindings among the uses of a value. It lives
// for one [Inferrer.Infer] call; the visited set deduplicates bindings
// across all searches of that call.
type useSearch struct {
	inf     *Inferrer
	keyKind remark.KeyKind
	visited map[*ir.Instruction]struct{}
}

// searchValue visits, in order, the direct uses of v, the uses reachable
// through the rc-identity oracle, and the rc uses of any
// end_init_let_ref wrapper of v. root decides whether a matched binding
// renders the accumulated access path: only a binding whose bound operand
// is root itself names the end of the decomposition trail.
//
// It reports whether any record was appended.
func (s *useSearch) searchValue(results *[]remark.Argument, v, root *ir.Value) bool {
	found := false

	for _, use := range v.Uses() {
		found = s.visitUse(results, use, root) || found
	}

	s.inf.rc.VisitRCUses(v, func(use *ir.Operand) {
		found = s.visitUse(results, use, root) || found
	})

	for _, use := range v.Uses() {
		if user := use.User(); user.Op() == ir.OpEndInitLetRef {
			s.inf.rc.VisitRCUses(user.Result(), func(use *ir.Operand) {
				found = s.visitUse(results, use, root) || found
			})
		}
	}

	return found
}

// visitUse appends a record when use is a fresh, non-inlined debug binding.
func (s *useSearch) visitUse(results *[]remark.Argument, use *ir.Operand, root *ir.Value) bool {
	if use.TypeDependent() {
		return false
	}

	binding, ok := use.User().AsDebugBinding()
	if !ok {
		return false
	}

	// A binding under an inlined scope describes another function's
	// variable.
	scope := binding.Scope()
	if scope == nil || scope.Inlined() {
		return false
	}

	if _, seen := s.visited[use.User()]; seen {
		return false
	}
	s.visited[use.User()] = struct{}{}

	s.inf.log.Debug("found debug binding", "op", use.User().Op().String())

	// A binding reached through an rc-identical value names the whole
	// object, not the projection we have been tracking, so the access path
	// is dropped in that case.
	withPath := use.Get() == root

	if decl := binding.Decl(); decl != nil {
		*results = append(*results, remark.Argument{
			Key: remark.ArgumentKey{Kind: s.keyKind, Name: "InferredValue"},
			Val: s.inf.note(decl.Name, withPath),
			Loc: decl.Loc,
		})

		return true
	}

	// Without a declaration, fall back to plain variable info when the
	// test-only mode asks for it.
	if !s.inf.decllessBindings {
		return false
	}

	name := binding.VarName()
	if name == "" {
		return false
	}

	*results = append(*results, remark.Argument{
		Key: remark.ArgumentKey{Kind: s.keyKind, Name: "InferredValue"},
		Val: s.inf.note(name, withPath),
		Loc: binding.Loc(),
	})

	return true
}
