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

// Package remark defines the structured optimizer-remark model and the
// sinks remarks are streamed to.
//
// A [Remark] is a categorized, severity-tagged diagnostic built from an
// ordered list of [Argument] values: plain text fragments, typed named
// values, and supplementary note clauses appended by the inference engine.
// An [Emitter] resolves the remark's presented source location according to
// its [SourceLocInference] policy and forwards it to a [Sink].
package remark

import (
	"strings"

	"fillmore-labs.com/optremark/ir"
)

// KeyKind classifies how an [Argument] participates in a remark.
type KeyKind uint8

//go:generate go tool stringer -type KeyKind -linecomment
const (
	// KeyDefault arguments form the remark's primary message.
	KeyDefault KeyKind = iota // default

	// KeyNote arguments are supplementary clauses presented as notes at
	// their own source locations.
	KeyNote // note
)

// ArgumentKey names an argument and states how it is presented.
type ArgumentKey struct {
	Kind KeyKind
	Name string
}

// Argument is one piece of a remark: a text fragment, a typed named value,
// or a supplementary clause.
type Argument struct {
	Key ArgumentKey
	Val string

	// Loc optionally anchors the argument to a source position, e.g. the
	// declaration an inferred value refers to.
	Loc ir.Location
}

// Text returns a plain message fragment.
func Text(s string) Argument {
	return Argument{Key: ArgumentKey{Kind: KeyDefault, Name: "String"}, Val: s}
}

// NV returns a typed named value rendered inline in the message.
func NV(name, val string) Argument {
	return Argument{Key: ArgumentKey{Kind: KeyDefault, Name: name}, Val: val}
}

// Remark is a single structured optimizer remark.
type Remark struct {
	// Category groups related remarks, e.g. "memory".
	Category string

	// Severity states whether the remark reports a missed or an achieved
	// optimization.
	Severity Severity

	// Origin is the instruction the remark was generated for.
	Origin *ir.Instruction

	// LocPolicy states how the presented source location is derived from
	// Origin.
	LocPolicy SourceLocInference

	// Presentation states how the resolved location is presented.
	Presentation SourceLocPresentation

	// Args is the ordered argument list. KeyDefault arguments form the
	// message; KeyNote arguments are the supplementary clauses.
	Args []Argument

	// Pass, Function and Loc are filled in by the [Emitter].
	Pass     string
	Function string
	Loc      ir.Location
}

// Message renders the remark's primary message by concatenating the
// KeyDefault arguments.
func (r *Remark) Message() string {
	var sb strings.Builder
	for _, arg := range r.Args {
		if arg.Key.Kind != KeyDefault {
			continue
		}

		sb.WriteString(arg.Val)
	}

	return sb.String()
}

// Notes returns the supplementary clauses in order.
func (r *Remark) Notes() []Argument {
	var notes []Argument
	for _, arg := range r.Args {
		if arg.Key.Kind == KeyNote {
			notes = append(notes, arg)
		}
	}

	return notes
}
