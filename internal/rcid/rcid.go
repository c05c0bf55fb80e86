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

// Package rcid provides a conservative rc-identity oracle: it enumerates
// uses of values that denote the same reference-counted object identity.
package rcid

import "fillmore-labs.com/optremark/ir"

// Info answers rc-identity use queries over the def-use graph. The zero
// value is ready to use; the analysis is stateless and read-only.
type Info struct{}

// New returns an rc-identity oracle.
func New() *Info { return &Info{} }

// VisitRCUses calls visit for every use of a value that is rc-identical to
// v, following identity-forwarding instructions forward. v's own uses are
// visited first.
func (*Info) VisitRCUses(v *ir.Value, visit func(*ir.Operand)) {
	seen := make(map[*ir.Value]struct{})
	visitForward(v, seen, visit)
}

func visitForward(v *ir.Value, seen map[*ir.Value]struct{}, visit func(*ir.Operand)) {
	if _, ok := seen[v]; ok {
		return
	}
	seen[v] = struct{}{}

	for _, use := range v.Uses() {
		visit(use)

		user := use.User()
		if use.TypeDependent() || !forwardsIdentity(user.Op()) {
			continue
		}

		if result := user.Result(); result != nil {
			visitForward(result, seen, visit)
		}
	}
}

// forwardsIdentity reports whether an instruction's result denotes the
// same reference-counted object as its operands. Aggregate formation
// forwards identity: retaining a struct retains its reference parts.
func forwardsIdentity(op ir.Opcode) bool {
	switch op {
	case ir.OpUpcast, ir.OpRefCast, ir.OpBitwiseCast,
		ir.OpStruct, ir.OpTuple, ir.OpEndInitLetRef:
		return true
	}

	return false
}
