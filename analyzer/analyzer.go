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

package analyzer

import (
	"fillmore-labs.com/optremark/ir"
)

// Public API constants for the optremark pass.
const (
	name = "optremark"
	url  = "https://pkg.go.dev/fillmore-labs.com/optremark"

	// forceEmitSemanticsPrefix tags functions that force remark emission
	// through a semantics attribute.
	forceEmitSemanticsPrefix = "optremark"
)

// RCIdentity enumerates uses that consume a value under the same
// reference-counted object identity. The default oracle follows
// identity-forwarding instructions; [WithRCIdentity] injects a more
// precise analysis.
type RCIdentity interface {
	// VisitRCUses calls visit for every use of a value rc-identical to v,
	// including v's own uses.
	VisitRCUses(v *ir.Value, visit func(*ir.Operand))
}

// Generator is a configured instance of the optremark pass.
//
// A Generator is safe for concurrent use across functions: all per-call
// state lives in the per-function run.
type Generator struct {
	opts *runOptions
}

// New creates a remark [Generator]. It allows for programmatic
// configuration using [Option]; at minimum [WithSink] must be provided
// for remarks to go anywhere.
func New(opts ...Option) *Generator {
	r := makeRunOptions(Options(opts))

	return &Generator{opts: r}
}
