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

package ir

// Builder constructs a [Function] instruction by instruction. Instructions
// are appended to the current block and stamped with the builder's current
// location and debug scope.
type Builder struct {
	fn    *Function
	blk   *Block
	loc   Location
	scope *DebugScope
}

// NewFunctionBuilder creates a builder for a new function with a single
// entry block.
func NewFunctionBuilder(name string) *Builder {
	fn := &Function{Name: name, Scope: &DebugScope{}}
	blk := &Block{fn: fn}
	fn.Blocks = []*Block{blk}

	b := &Builder{fn: fn, blk: blk}
	b.scope = fn.Scope

	return b
}

// Function returns the function under construction.
func (b *Builder) Function() *Function { return b.fn }

// Param appends a declared function argument. decl may be nil for
// undeclared arguments.
func (b *Builder) Param(name string, t *Type, decl *Decl) *Value {
	v := &Value{num: b.fn.nvalues, typ: t, fn: b.fn, decl: decl, name: name}
	b.fn.nvalues++
	b.fn.Params = append(b.fn.Params, v)

	return v
}

// NewBlock appends a new block and makes it current.
func (b *Builder) NewBlock() *Block {
	blk := &Block{fn: b.fn, index: len(b.fn.Blocks)}
	b.fn.Blocks = append(b.fn.Blocks, blk)
	b.blk = blk

	return blk
}

// SetBlock makes blk the current block.
func (b *Builder) SetBlock(blk *Block) { b.blk = blk }

// SetLoc sets the location stamped on subsequently built instructions.
func (b *Builder) SetLoc(loc Location) { b.loc = loc }

// SetScope sets the debug scope stamped on subsequently built instructions.
// Passing the scope of an inlined call site models inlined code.
func (b *Builder) SetScope(scope *DebugScope) { b.scope = scope }

func (b *Builder) emit(op Opcode, resultType *Type, values ...*Value) *Instruction {
	inst := &Instruction{
		op:    op,
		block: b.blk,
		index: len(b.blk.Instrs),
		loc:   b.loc,
		scope: b.scope,
	}

	for i, v := range values {
		use := &Operand{user: inst, index: i, value: v}
		inst.operands = append(inst.operands, use)
		v.uses = append(v.uses, use)
	}

	if resultType != nil {
		inst.result = &Value{num: b.fn.nvalues, typ: resultType, def: inst, fn: b.fn}
		b.fn.nvalues++
	}

	b.blk.Instrs = append(b.blk.Instrs, inst)

	return inst
}

// AppendTypeDependentOperand adds a type-only operand edge to inst.
func (b *Builder) AppendTypeDependentOperand(inst *Instruction, v *Value) {
	use := &Operand{user: inst, index: len(inst.operands), value: v, typeDependent: true}
	inst.operands = append(inst.operands, use)
	v.uses = append(v.uses, use)
}

// Apply emits a call producing a result of type t.
func (b *Builder) Apply(t *Type, args ...*Value) *Value {
	return b.emit(OpApply, t, args...).result
}

// AllocRef emits a class allocation. onStack marks stack promotion, decl an
// attached variable declaration.
func (b *Builder) AllocRef(t *Type, onStack bool, decl *Decl) *Value {
	inst := b.emit(OpAllocRef, t)
	inst.canAllocOnStack = onStack
	inst.decl = decl

	return inst.result
}

// AllocRefDynamic emits a dynamically-typed class allocation.
func (b *Builder) AllocRefDynamic(t *Type, onStack bool, decl *Decl) *Value {
	inst := b.emit(OpAllocRefDynamic, t)
	inst.canAllocOnStack = onStack
	inst.decl = decl

	return inst.result
}

// AllocBox emits a box allocation.
func (b *Builder) AllocBox(t *Type, decl *Decl) *Value {
	inst := b.emit(OpAllocBox, t)
	inst.decl = decl

	return inst.result
}

// AllocStack emits a stack slot allocation producing the slot's address.
func (b *Builder) AllocStack(t *Type, decl *Decl) *Value {
	inst := b.emit(OpAllocStack, t)
	inst.decl = decl

	return inst.result
}

// GlobalAddr emits the address of g.
func (b *Builder) GlobalAddr(g *Global) *Value {
	inst := b.emit(OpGlobalAddr, g.Type)
	inst.global = g

	return inst.result
}

// AddressToPointer reinterprets an address as a raw pointer of type t.
func (b *Builder) AddressToPointer(addr *Value, t *Type) *Value {
	return b.emit(OpAddressToPointer, t, addr).result
}

// PointerToRef reinterprets a raw pointer as a reference of type t.
func (b *Builder) PointerToRef(ptr *Value, t *Type) *Value {
	return b.emit(OpPointerToRef, t, ptr).result
}

// Load emits a load of type t from addr.
func (b *Builder) Load(addr *Value, t *Type) *Value {
	return b.emit(OpLoad, t, addr).result
}

// Store emits a store of src to dst.
func (b *Builder) Store(src, dst *Value) *Instruction {
	return b.emit(OpStore, nil, src, dst)
}

// CopyAddr emits a copy from the address src to the address dst.
func (b *Builder) CopyAddr(src, dst *Value) *Instruction {
	return b.emit(OpCopyAddr, nil, src, dst)
}

// BeginAccess begins an exclusive access to addr and returns the marked
// address.
func (b *Builder) BeginAccess(addr *Value) *Value {
	return b.emit(OpBeginAccess, addr.Type(), addr).result
}

// EndAccess ends the access begun by token's defining begin_access.
func (b *Builder) EndAccess(token *Value) *Instruction {
	return b.emit(OpEndAccess, nil, token)
}

// StrongRetain emits a strong retain of v.
func (b *Builder) StrongRetain(v *Value) *Instruction {
	return b.emit(OpStrongRetain, nil, v)
}

// StrongRelease emits a strong release of v.
func (b *Builder) StrongRelease(v *Value) *Instruction {
	return b.emit(OpStrongRelease, nil, v)
}

// RetainValue emits a value retain of v.
func (b *Builder) RetainValue(v *Value) *Instruction {
	return b.emit(OpRetainValue, nil, v)
}

// ReleaseValue emits a value release of v.
func (b *Builder) ReleaseValue(v *Value) *Instruction {
	return b.emit(OpReleaseValue, nil, v)
}

// DebugValue binds v to decl.
func (b *Builder) DebugValue(v *Value, decl *Decl) *Instruction {
	inst := b.emit(OpDebugValue, nil, v)
	inst.decl = decl

	return inst
}

// DebugValueName binds v to a plain variable name without a declaration.
func (b *Builder) DebugValueName(v *Value, name string) *Instruction {
	inst := b.emit(OpDebugValue, nil, v)
	inst.varName = name

	return inst
}

// Struct constructs a struct of type t from elems.
func (b *Builder) Struct(t *Type, elems ...*Value) *Value {
	return b.emit(OpStruct, t, elems...).result
}

// Tuple constructs a tuple of type t from elems.
func (b *Builder) Tuple(t *Type, elems ...*Value) *Value {
	return b.emit(OpTuple, t, elems...).result
}

// StructExtract projects field out of v, producing a value of type t.
func (b *Builder) StructExtract(v *Value, field *Field, t *Type) *Value {
	inst := b.emit(OpStructExtract, t, v)
	inst.field = field

	return inst.result
}

// TupleExtract projects element index out of v, producing a value of type
// t.
func (b *Builder) TupleExtract(v *Value, index int, t *Type) *Value {
	inst := b.emit(OpTupleExtract, t, v)
	inst.elemIndex = index

	return inst.result
}

// EnumData projects the payload of caseName out of v.
func (b *Builder) EnumData(v *Value, caseName string, t *Type) *Value {
	inst := b.emit(OpEnumData, t, v)
	inst.caseName = caseName

	return inst.result
}

// Upcast converts v to the superclass type t.
func (b *Builder) Upcast(v *Value, t *Type) *Value {
	return b.emit(OpUpcast, t, v).result
}

// RefCast bitwise-converts the reference v to type t.
func (b *Builder) RefCast(v *Value, t *Type) *Value {
	return b.emit(OpRefCast, t, v).result
}

// BitwiseCast reinterprets v as type t.
func (b *Builder) BitwiseCast(v *Value, t *Type) *Value {
	return b.emit(OpBitwiseCast, t, v).result
}

// RefElementAddr produces the address of field inside the class instance v.
func (b *Builder) RefElementAddr(v *Value, field *Field, t *Type) *Value {
	inst := b.emit(OpRefElementAddr, t, v)
	inst.field = field

	return inst.result
}

// ProjectBox produces the address of the value held by the box v.
func (b *Builder) ProjectBox(v *Value, t *Type) *Value {
	return b.emit(OpProjectBox, t, v).result
}

// IndexAddr offsets the address v by index.
func (b *Builder) IndexAddr(v *Value, index int) *Value {
	inst := b.emit(OpIndexAddr, v.Type(), v)
	inst.elemIndex = index

	return inst.result
}

// RefTailAddr produces the address of the tail-allocated array of v.
func (b *Builder) RefTailAddr(v *Value, t *Type) *Value {
	return b.emit(OpRefTailAddr, t, v).result
}

// EndInitLetRef marks the end of initialization of v and forwards it.
func (b *Builder) EndInitLetRef(v *Value) *Value {
	return b.emit(OpEndInitLetRef, v.Type(), v).result
}

// UnconditionalCheckedCastAddr casts the value at src into dst, trapping on
// failure.
func (b *Builder) UnconditionalCheckedCastAddr(src, dst *Value) *Instruction {
	return b.emit(OpUnconditionalCheckedCastAddr, nil, src, dst)
}

// CheckedCastAddrBranch conditionally casts the value at src into dst.
func (b *Builder) CheckedCastAddrBranch(src, dst *Value) *Instruction {
	return b.emit(OpCheckedCastAddrBranch, nil, src, dst)
}

// Return emits a return. results may be empty.
func (b *Builder) Return(results ...*Value) *Instruction {
	return b.emit(OpReturn, nil, results...)
}
