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

package remark

import (
	"fillmore-labs.com/optremark/ir"
)

// Emitter forwards remarks generated for one function to a sink, applying
// severity filtering and source-location inference.
//
// Building a remark can be expensive, so [Emitter.Emit] takes a builder
// function that only runs when the remark's severity is enabled.
type Emitter struct {
	pass string
	fn   *ir.Function
	sink Sink

	missed bool
	passed bool

	err error
}

// NewEmitter creates an emitter for fn writing to sink. missed and passed
// enable the two severities.
func NewEmitter(pass string, fn *ir.Function, sink Sink, missed, passed bool) *Emitter {
	return &Emitter{pass: pass, fn: fn, sink: sink, missed: missed, passed: passed}
}

// Enabled reports whether remarks of the given severity are emitted.
func (e *Emitter) Enabled(sev Severity) bool {
	if e.sink == nil {
		return false
	}

	switch sev {
	case SeverityMissed:
		return e.missed

	case SeverityPassed:
		return e.passed
	}

	return false
}

// Emit builds and forwards one remark. The build function runs only when
// sev is enabled.
func (e *Emitter) Emit(sev Severity, build func() Remark) {
	if !e.Enabled(sev) {
		return
	}

	r := build()
	r.Severity = sev
	r.Pass = e.pass
	r.Function = e.fn.Name
	r.Loc = resolveLoc(r.Origin, r.LocPolicy)

	if err := e.sink.Write(r); err != nil && e.err == nil {
		e.err = err
	}
}

// Err returns the first sink error encountered, if any.
func (e *Emitter) Err() error { return e.err }

// resolveLoc derives the presented source location for inst under the
// given inference policy. A location is usable when it is valid and not
// compiler-generated.
func resolveLoc(inst *ir.Instruction, policy SourceLocInference) ir.Location {
	if inst == nil {
		return ir.Location{}
	}

	own := inst.Loc()

	switch policy {
	case LocExact:
		return own

	case LocForwardScan:
		if usableLoc(own) {
			return own
		}

		if loc, ok := scanForward(inst); ok {
			return loc
		}

	case LocForwardScanAlwaysInfer:
		if loc, ok := scanForward(inst); ok {
			return loc
		}

	case LocBackwardThenForwardAlwaysInfer:
		if loc, ok := scanBackward(inst); ok {
			return loc
		}

		if loc, ok := scanForward(inst); ok {
			return loc
		}
	}

	return own
}

func usableLoc(loc ir.Location) bool {
	return loc.Valid() && !loc.AutoGenerated
}

// scanForward looks for the next usable location in the instruction's
// block, starting at the instruction itself. Debug bindings are skipped:
// their locations describe bindings, not operations.
func scanForward(from *ir.Instruction) (ir.Location, bool) {
	instrs := from.Block().Instrs
	for i := from.Index(); i < len(instrs); i++ {
		if loc, ok := candidateLoc(instrs[i]); ok {
			return loc, true
		}
	}

	return ir.Location{}, false
}

// scanBackward looks for the previous usable location, starting at the
// instruction itself.
func scanBackward(from *ir.Instruction) (ir.Location, bool) {
	instrs := from.Block().Instrs
	for i := from.Index(); i >= 0; i-- {
		if loc, ok := candidateLoc(instrs[i]); ok {
			return loc, true
		}
	}

	return ir.Location{}, false
}

func candidateLoc(inst *ir.Instruction) (ir.Location, bool) {
	if inst.Op() == ir.OpDebugValue {
		return ir.Location{}, false
	}

	if loc := inst.Loc(); usableLoc(loc) {
		return loc, true
	}

	return ir.Location{}, false
}
