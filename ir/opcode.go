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

// Opcode identifies the operation an [Instruction] performs. The set is
// closed: every dispatch over opcodes must handle all of them.
type Opcode uint8

//go:generate go tool stringer -type Opcode -linecomment
const (
	// OpApply calls a function and produces its result.
	OpApply Opcode = iota // apply

	// OpAllocRef allocates a class instance.
	OpAllocRef // alloc_ref

	// OpAllocRefDynamic allocates a class instance of a dynamic type.
	OpAllocRefDynamic // alloc_ref_dynamic

	// OpAllocBox allocates a heap box capturing a mutable variable.
	OpAllocBox // alloc_box

	// OpAllocStack allocates a stack slot and produces its address.
	OpAllocStack // alloc_stack

	// OpGlobalAddr produces the address of a global.
	OpGlobalAddr // global_addr

	// OpAddressToPointer reinterprets an address as a raw pointer.
	OpAddressToPointer // address_to_pointer

	// OpPointerToRef reinterprets a raw pointer as a class reference.
	OpPointerToRef // pointer_to_ref

	// OpLoad loads a value from an address.
	OpLoad // load

	// OpStore stores operand 0 to the address in operand 1.
	OpStore // store

	// OpCopyAddr copies from the address in operand 0 to the address in
	// operand 1.
	OpCopyAddr // copy_addr

	// OpBeginAccess begins an exclusivity-enforced access to an address and
	// produces the marked address.
	OpBeginAccess // begin_access

	// OpEndAccess ends the access begun by its operand.
	OpEndAccess // end_access

	// OpStrongRetain increments the strong reference count of operand 0.
	OpStrongRetain // strong_retain

	// OpStrongRelease decrements the strong reference count of operand 0.
	OpStrongRelease // strong_release

	// OpRetainValue retains all reference-counted parts of operand 0.
	OpRetainValue // retain_value

	// OpReleaseValue releases all reference-counted parts of operand 0.
	OpReleaseValue // release_value

	// OpDebugValue binds operand 0 to a source declaration or name for
	// diagnostics. It has no runtime effect.
	OpDebugValue // debug_value

	// OpStruct constructs a struct from its fields.
	OpStruct // struct

	// OpTuple constructs a tuple from its elements.
	OpTuple // tuple

	// OpStructExtract projects a field out of a struct value.
	OpStructExtract // struct_extract

	// OpTupleExtract projects an element out of a tuple value.
	OpTupleExtract // tuple_extract

	// OpEnumData projects the payload out of an enum case.
	OpEnumData // unchecked_enum_data

	// OpUpcast converts a class reference to a superclass reference.
	OpUpcast // upcast

	// OpRefCast converts between unrelated reference types bitwise.
	OpRefCast // unchecked_ref_cast

	// OpBitwiseCast reinterprets a value as another type of the same size.
	OpBitwiseCast // unchecked_bitwise_cast

	// OpRefElementAddr produces the address of a stored class property.
	OpRefElementAddr // ref_element_addr

	// OpProjectBox produces the address of the value held by a box.
	OpProjectBox // project_box

	// OpIndexAddr offsets an address by an element index.
	OpIndexAddr // index_addr

	// OpRefTailAddr produces the address of a class's tail-allocated array.
	OpRefTailAddr // ref_tail_addr

	// OpEndInitLetRef marks the end of initialization of an immutable
	// reference and forwards it.
	OpEndInitLetRef // end_init_let_ref

	// OpUnconditionalCheckedCastAddr performs a runtime cast between the
	// addresses in operands 0 and 1, trapping on failure.
	OpUnconditionalCheckedCastAddr // unconditional_checked_cast_addr

	// OpCheckedCastAddrBranch performs a conditional runtime cast between
	// the addresses in operands 0 and 1.
	OpCheckedCastAddrBranch // checked_cast_addr_br

	// OpReturn returns from the function.
	OpReturn // return
)

// NumOpcodes is the number of opcodes. Exhaustive opcode dispatches assert
// against it so that adding an opcode breaks their build until they are
// updated.
const NumOpcodes = int(OpReturn) + 1

// Breaks the build when an opcode is added without revisiting every
// NumOpcodes assertion in the module.
var _ [NumOpcodes]struct{} = [34]struct{}{}
