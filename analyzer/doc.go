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

// Package analyzer implements the optremark remark generation pass.
//
// # Overview
//
// Optremark walks every instruction of a function and emits a structured
// remark for each memory-relevant operation: reference-count traffic,
// heap, stack and box allocations, exclusivity-enforced accesses, and
// runtime casts. Each remark names the operation and the type involved,
// e.g.
//
//	remark: retain of type 'Klass'
//
// On top of that, the pass heuristically infers which source declaration
// the operated-on value corresponds to and appends it as a note clause,
// including the access path when the value is a projection of a larger
// aggregate:
//
//	note: of 'x.lhs.ivar'
//
// The inference is a best-effort heuristic: a remark without a note is a
// normal outcome, never an error.
//
// # Enablement
//
// Remarks are generated for a function when any of the following holds:
//
//   - the generator was created with [WithAlwaysEmit],
//   - the function carries a semantics attribute starting with "optremark",
//   - the function is a method of a nominal type opting in through its
//     EmitRemarksOnMethods attribute.
//
// Implicit and autogenerated functions are skipped unless
// [WithForceVisitImplicit] is set.
package analyzer
