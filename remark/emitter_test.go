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

package remark_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/optremark/internal/testir"
	"fillmore-labs.com/optremark/ir"
	. "fillmore-labs.com/optremark/remark"
)

// fixture builds a single block exercising every location policy:
//
//	%0 = alloc_ref       (no location)
//	debug_value %0       (line 2)
//	strong_retain %0     (line 3, compiler-generated)
//	strong_release %0    (line 4)
func fixture(tb testing.TB) (fn *ir.Function, instrs []*ir.Instruction) {
	tb.Helper()

	klass := testir.Ty("Klass")

	b := ir.NewFunctionBuilder("test")
	b.SetLoc(ir.Location{})
	obj := b.AllocRef(klass, false, nil)

	b.SetLoc(testir.Loc(2))
	b.DebugValue(obj, testir.Decl("o", 2))

	b.SetLoc(testir.AutoLoc(3))
	b.StrongRetain(obj)

	b.SetLoc(testir.Loc(4))
	b.StrongRelease(obj)

	fn = b.Function()

	return fn, fn.Blocks[0].Instrs
}

func TestEmitterLocationPolicies(t *testing.T) {
	t.Parallel()

	fn, instrs := fixture(t)

	tests := [...]struct {
		name    string
		origin  *ir.Instruction
		policy  SourceLocInference
		wantLoc ir.Location
	}{
		{
			// The exact policy keeps compiler-generated locations.
			name:    "exact",
			origin:  instrs[2],
			policy:  LocExact,
			wantLoc: testir.AutoLoc(3),
		},
		{
			// Skips the unusable own location, the debug binding and the
			// compiler-generated retain.
			name:    "forward scan from locationless",
			origin:  instrs[0],
			policy:  LocForwardScan,
			wantLoc: testir.Loc(4),
		},
		{
			name:    "forward scan keeps usable own location",
			origin:  instrs[3],
			policy:  LocForwardScan,
			wantLoc: testir.Loc(4),
		},
		{
			name:    "forward always infer",
			origin:  instrs[2],
			policy:  LocForwardScanAlwaysInfer,
			wantLoc: testir.Loc(4),
		},
		{
			name:    "backward finds own location",
			origin:  instrs[3],
			policy:  LocBackwardThenForwardAlwaysInfer,
			wantLoc: testir.Loc(4),
		},
		{
			// Nothing usable behind the first instruction, so the scan turns
			// around.
			name:    "backward falls forward",
			origin:  instrs[0],
			policy:  LocBackwardThenForwardAlwaysInfer,
			wantLoc: testir.Loc(4),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var sink Collector
			em := NewEmitter("optremark", fn, &sink, true, true)

			em.Emit(SeverityMissed, func() Remark {
				return Remark{Origin: tc.origin, LocPolicy: tc.policy}
			})

			if err := em.Err(); err != nil {
				t.Fatalf("Emit failed: %v", err)
			}

			if len(sink.Remarks) != 1 {
				t.Fatalf("Got %d remarks, want 1", len(sink.Remarks))
			}

			if got := sink.Remarks[0].Loc; got != tc.wantLoc {
				t.Errorf("Got location %v, want %v", got, tc.wantLoc)
			}
		})
	}
}

func TestEmitterSeverityGating(t *testing.T) {
	t.Parallel()

	fn, _ := fixture(t)

	tests := [...]struct {
		name           string
		missed, passed bool
		sev            Severity
		wantEmitted    bool
	}{
		{"missed enabled", true, false, SeverityMissed, true},
		{"missed disabled", false, true, SeverityMissed, false},
		{"passed enabled", false, true, SeverityPassed, true},
		{"passed disabled", true, false, SeverityPassed, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var sink Collector
			em := NewEmitter("optremark", fn, &sink, tc.missed, tc.passed)

			built := false
			em.Emit(tc.sev, func() Remark {
				built = true

				return Remark{}
			})

			if built != tc.wantEmitted {
				t.Errorf("Got build %t, want %t", built, tc.wantEmitted)
			}

			if got := len(sink.Remarks) == 1; got != tc.wantEmitted {
				t.Errorf("Got emitted %t, want %t", got, tc.wantEmitted)
			}
		})
	}
}

func TestEmitterNilSink(t *testing.T) {
	t.Parallel()

	fn, _ := fixture(t)
	em := NewEmitter("optremark", fn, nil, true, true)

	if em.Enabled(SeverityMissed) || em.Enabled(SeverityPassed) {
		t.Error("Emitter without sink claims to be enabled")
	}

	em.Emit(SeverityMissed, func() Remark {
		t.Fatal("Remark built without a sink")

		return Remark{}
	})
}

func TestEmitterFillsMetadata(t *testing.T) {
	t.Parallel()

	fn, instrs := fixture(t)

	var sink Collector
	em := NewEmitter("optremark", fn, &sink, true, true)

	em.Emit(SeverityMissed, func() Remark {
		return Remark{
			Category:  "memory",
			Origin:    instrs[3],
			LocPolicy: LocExact,
			Args:      []Argument{Text("release of type '"), NV("ValueType", "Klass"), Text("'")},
		}
	})

	if len(sink.Remarks) != 1 {
		t.Fatalf("Got %d remarks, want 1", len(sink.Remarks))
	}

	r := sink.Remarks[0]

	if got, want := r.Severity, SeverityMissed; got != want {
		t.Errorf("Got severity %v, want %v", got, want)
	}

	if got, want := r.Pass, "optremark"; got != want {
		t.Errorf("Got pass %q, want %q", got, want)
	}

	if got, want := r.Function, "test"; got != want {
		t.Errorf("Got function %q, want %q", got, want)
	}

	if got, want := r.Message(), "release of type 'Klass'"; got != want {
		t.Errorf("Got message %q, want %q", got, want)
	}
}

type failingSink struct{ err error }

func (s failingSink) Write(Remark) error { return s.err }

func TestEmitterKeepsFirstError(t *testing.T) {
	t.Parallel()

	fn, _ := fixture(t)

	errWrite := errors.New("stream closed")
	em := NewEmitter("optremark", fn, failingSink{err: errWrite}, true, true)

	em.Emit(SeverityMissed, func() Remark { return Remark{} })
	em.Emit(SeverityMissed, func() Remark { return Remark{} })

	if got := em.Err(); !errors.Is(got, errWrite) {
		t.Errorf("Got error %v, want %v", got, errWrite)
	}
}

func TestRemarkNotes(t *testing.T) {
	t.Parallel()

	r := Remark{Args: []Argument{
		Text("retain of type '"),
		NV("ValueType", "Klass"),
		Text("'"),
		{Key: ArgumentKey{Kind: KeyNote, Name: "InferredValue"}, Val: "of 'x'"},
	}}

	if got, want := r.Message(), "retain of type 'Klass'"; got != want {
		t.Errorf("Got message %q, want %q", got, want)
	}

	notes := r.Notes()
	if len(notes) != 1 {
		t.Fatalf("Got %d notes, want 1", len(notes))
	}

	if got, want := notes[0].Val, "of 'x'"; got != want {
		t.Errorf("Got note %q, want %q", got, want)
	}
}
