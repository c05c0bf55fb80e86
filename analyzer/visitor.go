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
	"fillmore-labs.com/optremark/internal/infer"
	"fillmore-labs.com/optremark/ir"
	"fillmore-labs.com/optremark/remark"
)

// visitor dispatches instructions to their remark handlers.
type visitor struct {
	em  *remark.Emitter
	inf *infer.Inferrer
}

// Adding an opcode without extending visit fails to compile here.
var _ [ir.NumOpcodes]struct{} = [34]struct{}{}

func (v visitor) visit(inst *ir.Instruction) {
	switch inst.Op() {
	case ir.OpStrongRetain, ir.OpRetainValue:
		v.retain(inst)

	case ir.OpStrongRelease, ir.OpReleaseValue:
		v.release(inst)

	case ir.OpAllocRef, ir.OpAllocRefDynamic:
		v.allocRef(inst)

	case ir.OpAllocBox:
		v.allocBox(inst)

	case ir.OpBeginAccess:
		v.beginAccess(inst)

	case ir.OpEndAccess:
		v.endAccess(inst)

	case ir.OpUnconditionalCheckedCastAddr:
		v.runtimeCast(inst, "unconditional runtime cast of value with type '")

	case ir.OpCheckedCastAddrBranch:
		v.runtimeCast(inst, "conditional runtime cast of value with type '")

	case ir.OpApply, ir.OpAllocStack, ir.OpGlobalAddr,
		ir.OpAddressToPointer, ir.OpPointerToRef,
		ir.OpLoad, ir.OpStore, ir.OpCopyAddr,
		ir.OpDebugValue,
		ir.OpStruct, ir.OpTuple,
		ir.OpStructExtract, ir.OpTupleExtract, ir.OpEnumData,
		ir.OpUpcast, ir.OpRefCast, ir.OpBitwiseCast,
		ir.OpRefElementAddr, ir.OpProjectBox, ir.OpIndexAddr, ir.OpRefTailAddr,
		ir.OpEndInitLetRef,
		ir.OpReturn:
		// No remark for these.
	}
}

func (v visitor) retain(inst *ir.Instruction) {
	val := inst.Operand(0).Get()

	v.em.Emit(remark.SeverityMissed, func() remark.Remark {
		r := remark.Remark{
			Category:  "memory",
			Origin:    inst,
			LocPolicy: remark.LocForwardScanAlwaysInfer,
			Args: []remark.Argument{
				remark.Text("retain of type '"),
				remark.NV("ValueType", val.Type().Name),
				remark.Text("'"),
			},
		}
		if notes, ok := v.inf.Infer(remark.KeyNote, val, false); ok {
			r.Args = append(r.Args, notes...)
		}

		return r
	})
}

func (v visitor) release(inst *ir.Instruction) {
	val := inst.Operand(0).Get()

	v.em.Emit(remark.SeverityMissed, func() remark.Remark {
		r := remark.Remark{
			Category:     "memory",
			Origin:       inst,
			LocPolicy:    remark.LocBackwardThenForwardAlwaysInfer,
			Presentation: remark.PresentEndRange,
			Args: []remark.Argument{
				remark.Text("release of type '"),
				remark.NV("ValueType", val.Type().Name),
				remark.Text("'"),
			},
		}
		if notes, ok := v.inf.Infer(remark.KeyNote, val, false); ok {
			r.Args = append(r.Args, notes...)
		}

		return r
	})
}

func (v visitor) allocRef(inst *ir.Instruction) {
	val := inst.Result()

	sev, what := remark.SeverityMissed, "heap allocated ref of type '"
	if inst.CanAllocOnStack() {
		sev, what = remark.SeverityPassed, "stack allocated ref of type '"
	}

	v.em.Emit(sev, func() remark.Remark {
		r := remark.Remark{
			Category:  "memory",
			Origin:    inst,
			LocPolicy: remark.LocForwardScan,
			Args: []remark.Argument{
				remark.Text(what),
				remark.NV("ValueType", val.Type().Name),
				remark.Text("'"),
			},
		}
		if notes, ok := v.inf.Infer(remark.KeyNote, val, false); ok {
			r.Args = append(r.Args, notes...)
		}

		return r
	})
}

func (v visitor) allocBox(inst *ir.Instruction) {
	val := inst.Result()

	v.em.Emit(remark.SeverityMissed, func() remark.Remark {
		r := remark.Remark{
			Category:  "memory",
			Origin:    inst,
			LocPolicy: remark.LocForwardScan,
			Args: []remark.Argument{
				remark.Text("heap allocated box of type '"),
				remark.NV("ValueType", val.Type().Name),
				remark.Text("'"),
			},
		}
		if notes, ok := v.inf.Infer(remark.KeyNote, val, false); ok {
			r.Args = append(r.Args, notes...)
		}

		return r
	})
}

func (v visitor) beginAccess(inst *ir.Instruction) {
	val := inst.Operand(0).Get()

	v.em.Emit(remark.SeverityMissed, func() remark.Remark {
		r := remark.Remark{
			Category:  "memory",
			Origin:    inst,
			LocPolicy: remark.LocForwardScan,
			Args: []remark.Argument{
				remark.Text("begin exclusive access to value of type '"),
				remark.NV("ValueType", val.Type().Name),
				remark.Text("'"),
			},
		}
		if notes, ok := v.inf.Infer(remark.KeyNote, val, true); ok {
			r.Args = append(r.Args, notes...)
		}

		return r
	})
}

func (v visitor) endAccess(inst *ir.Instruction) {
	val := inst.Operand(0).Get()

	// The accessed value is recovered from the paired begin_access. A
	// malformed pairing still yields the remark, just without notes.
	var accessed *ir.Value
	if begin := val.Def(); begin != nil && begin.Op() == ir.OpBeginAccess {
		accessed = begin.Operand(0).Get()
	}

	v.em.Emit(remark.SeverityMissed, func() remark.Remark {
		r := remark.Remark{
			Category:     "memory",
			Origin:       inst,
			LocPolicy:    remark.LocBackwardThenForwardAlwaysInfer,
			Presentation: remark.PresentEndRange,
			Args: []remark.Argument{
				remark.Text("end exclusive access to value of type '"),
				remark.NV("ValueType", val.Type().Name),
				remark.Text("'"),
			},
		}
		if accessed != nil {
			if notes, ok := v.inf.Infer(remark.KeyNote, accessed, true); ok {
				r.Args = append(r.Args, notes...)
			}
		}

		return r
	})
}

func (v visitor) runtimeCast(inst *ir.Instruction, what string) {
	src := inst.Operand(0).Get()
	dst := inst.Operand(1).Get()

	v.em.Emit(remark.SeverityMissed, func() remark.Remark {
		r := remark.Remark{
			Category:  "memory",
			Origin:    inst,
			LocPolicy: remark.LocExact,
			Args: []remark.Argument{
				remark.Text(what),
				remark.NV("ValueType", src.Type().Name),
				remark.Text("' to '"),
				remark.NV("CastType", dst.Type().Name),
				remark.Text("'"),
			},
		}
		if notes, ok := v.inf.Infer(remark.KeyNote, src, true); ok {
			r.Args = append(r.Args, notes...)
		}

		return r
	})
}
