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

package analyzer_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/optremark/analyzer"
	"fillmore-labs.com/optremark/internal/testir"
	"fillmore-labs.com/optremark/ir"
	"fillmore-labs.com/optremark/remark"
)

// optIn marks the function for remark generation.
func optIn(b *ir.Builder) *ir.Builder {
	b.Function().Semantics = []string{"optremark"}

	return b
}

func run(tb testing.TB, fn *ir.Function, opts ...Option) []remark.Remark {
	tb.Helper()

	var sink remark.Collector
	g := New(Options(opts), WithSink(&sink), WithLogger(testir.DiscardLogger()))

	if err := g.RunFunction(tb.Context(), fn); err != nil {
		tb.Fatalf("Generator failed: %v", err)
	}

	return sink.Remarks
}

type expected struct {
	severity     remark.Severity
	message      string
	notes        []string
	loc          ir.Location
	presentation remark.SourceLocPresentation
}

func expectRemarks(tb testing.TB, remarks []remark.Remark, want []expected) {
	tb.Helper()

	if len(remarks) != len(want) {
		var got []string
		for _, r := range remarks {
			got = append(got, r.Message())
		}

		tb.Fatalf("Got %d remarks %v, want %d", len(remarks), got, len(want))
	}

	for i, w := range want {
		r := remarks[i]

		if r.Severity != w.severity {
			tb.Errorf("Remark %d: got severity %v, want %v", i, r.Severity, w.severity)
		}

		if got := r.Message(); got != w.message {
			tb.Errorf("Remark %d: got message %q, want %q", i, got, w.message)
		}

		notes := r.Notes()
		if len(notes) != len(w.notes) {
			tb.Fatalf("Remark %d: got %d notes, want %d", i, len(notes), len(w.notes))
		}

		for j, note := range w.notes {
			if notes[j].Val != note {
				tb.Errorf("Remark %d note %d: got %q, want %q", i, j, notes[j].Val, note)
			}
		}

		if w.loc.Valid() && r.Loc != w.loc {
			tb.Errorf("Remark %d: got location %v, want %v", i, r.Loc, w.loc)
		}

		if r.Presentation != w.presentation {
			tb.Errorf("Remark %d: got presentation %v, want %v", i, r.Presentation, w.presentation)
		}
	}
}

func TestRetainRelease(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	b := optIn(testir.NewBuilder(t, "test"))
	b.SetLoc(testir.Loc(2))
	obj := b.Apply(klass)
	b.DebugValue(obj, testir.Decl("x", 1))

	b.SetLoc(testir.Loc(3))
	b.StrongRetain(obj)

	b.SetLoc(testir.Loc(4))
	b.StrongRelease(obj)

	b.SetLoc(testir.Loc(5))
	b.Return(obj)

	expectRemarks(t, run(t, b.Function()), []expected{
		{
			severity: remark.SeverityMissed,
			message:  "retain of type 'Klass'",
			notes:    []string{"of 'x'"},
			loc:      testir.Loc(3),
		},
		{
			severity:     remark.SeverityMissed,
			message:      "release of type 'Klass'",
			notes:        []string{"of 'x'"},
			loc:          testir.Loc(4),
			presentation: remark.PresentEndRange,
		},
	})
}

func TestValueRetainRelease(t *testing.T) {
	t.Parallel()

	pair := testir.Ty("Pair")

	b := optIn(testir.NewBuilder(t, "test"))
	val := b.Apply(pair)
	b.RetainValue(val)
	b.ReleaseValue(val)

	remarks := run(t, b.Function())

	expectRemarks(t, remarks, []expected{
		{severity: remark.SeverityMissed, message: "retain of type 'Pair'"},
		{
			severity:     remark.SeverityMissed,
			message:      "release of type 'Pair'",
			presentation: remark.PresentEndRange,
		},
	})
}

func TestAllocations(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")
	box := testir.Ty("Int")

	b := optIn(testir.NewBuilder(t, "test"))
	b.AllocRef(klass, true, testir.Decl("s", 1))
	b.AllocRef(klass, false, testir.Decl("h", 2))
	b.AllocRefDynamic(klass, false, nil)
	b.AllocBox(box, testir.Decl("counter", 3))

	expectRemarks(t, run(t, b.Function()), []expected{
		{
			severity: remark.SeverityPassed,
			message:  "stack allocated ref of type 'Klass'",
			notes:    []string{"of 's'"},
		},
		{
			severity: remark.SeverityMissed,
			message:  "heap allocated ref of type 'Klass'",
			notes:    []string{"of 'h'"},
		},
		{
			severity: remark.SeverityMissed,
			message:  "heap allocated ref of type 'Klass'",
		},
		{
			severity: remark.SeverityMissed,
			message:  "heap allocated box of type 'Int'",
			notes:    []string{"of 'counter'"},
		},
	})
}

func TestExclusiveAccess(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	b := optIn(testir.NewBuilder(t, "test"))
	slot := b.AllocStack(klass, testir.Decl("x", 1))

	b.SetLoc(testir.Loc(2))
	access := b.BeginAccess(slot)

	b.SetLoc(testir.Loc(3))
	b.EndAccess(access)

	remarks := run(t, b.Function())

	expectRemarks(t, remarks, []expected{
		{
			severity: remark.SeverityMissed,
			message:  "begin exclusive access to value of type 'Klass'",
			notes:    []string{"of 'x'"},
			loc:      testir.Loc(2),
		},
		{
			severity:     remark.SeverityMissed,
			message:      "end exclusive access to value of type 'Klass'",
			notes:        []string{"of 'x'"},
			loc:          testir.Loc(3),
			presentation: remark.PresentEndRange,
		},
	})
}

func TestExclusiveAccessToClassField(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")
	addr := testir.Ty("Int")

	b := optIn(testir.NewBuilder(t, "test"))
	obj := b.AllocRef(klass, true, testir.Decl("k", 1))
	field := b.RefElementAddr(obj, &ir.Field{Name: "ivar"}, addr)
	access := b.BeginAccess(field)
	b.EndAccess(access)

	remarks := run(t, b.Function())

	// The allocation remark comes first; begin and end both look through
	// the class-field projection once.
	expectRemarks(t, remarks[1:], []expected{
		{
			severity: remark.SeverityMissed,
			message:  "begin exclusive access to value of type 'Int'",
			notes:    []string{"of 'k.ivar'"},
		},
		{
			severity:     remark.SeverityMissed,
			message:      "end exclusive access to value of type 'Int'",
			notes:        []string{"of 'k.ivar'"},
			presentation: remark.PresentEndRange,
		},
	})
}

func TestUnpairedEndAccess(t *testing.T) {
	t.Parallel()

	token := testir.Ty("Token")

	b := optIn(testir.NewBuilder(t, "test"))
	stray := b.Apply(token)
	b.EndAccess(stray)

	// Without a paired begin_access there is no accessed value to infer
	// notes from, but the operand's type is still named.
	expectRemarks(t, run(t, b.Function()), []expected{
		{
			severity:     remark.SeverityMissed,
			message:      "end exclusive access to value of type 'Token'",
			presentation: remark.PresentEndRange,
		},
	})
}

func TestRuntimeCasts(t *testing.T) {
	t.Parallel()

	src := testir.Ty("Source")
	dst := testir.Ty("Target")

	b := optIn(testir.NewBuilder(t, "test"))
	from := b.AllocStack(src, testir.Decl("s", 1))
	to := b.AllocStack(dst, nil)

	b.SetLoc(testir.Loc(2))
	b.UnconditionalCheckedCastAddr(from, to)

	b.SetLoc(testir.Loc(3))
	b.CheckedCastAddrBranch(from, to)

	remarks := run(t, b.Function())

	expectRemarks(t, remarks, []expected{
		{
			severity: remark.SeverityMissed,
			message:  "unconditional runtime cast of value with type 'Source' to 'Target'",
			notes:    []string{"of 's'"},
			loc:      testir.Loc(2),
		},
		{
			severity: remark.SeverityMissed,
			message:  "conditional runtime cast of value with type 'Source' to 'Target'",
			notes:    []string{"of 's'"},
			loc:      testir.Loc(3),
		},
	})
}

func TestEnablement(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	makeFn := func(semantics []string, self *ir.NominalType) *ir.Function {
		b := testir.NewBuilder(t, "test")
		obj := b.Apply(klass)
		b.StrongRetain(obj)

		fn := b.Function()
		fn.Semantics = semantics
		fn.SelfType = self

		return fn
	}

	tests := [...]struct {
		name string
		fn   *ir.Function
		opts Options
		want int
	}{
		{"no opt-in", makeFn(nil, nil), nil, 0},
		{"semantics attribute", makeFn([]string{"optremark"}, nil), nil, 1},
		{"prefixed semantics attribute", makeFn([]string{"optremark.fast"}, nil), nil, 1},
		{"unrelated semantics attribute", makeFn([]string{"array.init"}, nil), nil, 0},
		{
			"method of annotated type",
			makeFn(nil, &ir.NominalType{Name: "Klass", EmitRemarksOnMethods: true}),
			nil, 1,
		},
		{
			"method of plain type",
			makeFn(nil, &ir.NominalType{Name: "Klass"}),
			nil, 0,
		},
		{"always emit", makeFn(nil, nil), Options{WithAlwaysEmit(true)}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remarks := run(t, tc.fn, tc.opts)
			if got := len(remarks); got != tc.want {
				t.Errorf("Got %d remarks, want %d", got, tc.want)
			}
		})
	}
}

func TestImplicitFunctions(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	makeFn := func(implicit, autoGenerated bool) *ir.Function {
		b := optIn(testir.NewBuilder(t, "test"))
		obj := b.Apply(klass)
		b.StrongRetain(obj)

		fn := b.Function()
		fn.Implicit = implicit
		fn.AutoGenerated = autoGenerated

		return fn
	}

	tests := [...]struct {
		name string
		fn   *ir.Function
		opts Options
		want int
	}{
		{"implicit", makeFn(true, false), nil, 0},
		{"autogenerated", makeFn(false, true), nil, 0},
		{"implicit forced", makeFn(true, false), Options{WithForceVisitImplicit(true)}, 1},
		{"autogenerated forced", makeFn(false, true), Options{WithForceVisitImplicit(true)}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remarks := run(t, tc.fn, tc.opts)
			if got := len(remarks); got != tc.want {
				t.Errorf("Got %d remarks, want %d", got, tc.want)
			}
		})
	}
}

func TestSeverityFiltering(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	b := optIn(testir.NewBuilder(t, "test"))
	b.AllocRef(klass, true, nil)
	b.AllocRef(klass, false, nil)

	tests := [...]struct {
		name string
		opts Options
		want []remark.Severity
	}{
		{"both", nil, []remark.Severity{remark.SeverityPassed, remark.SeverityMissed}},
		{"missed only", Options{WithEmitPassed(false)}, []remark.Severity{remark.SeverityMissed}},
		{"passed only", Options{WithEmitMissed(false)}, []remark.Severity{remark.SeverityPassed}},
		{"neither", Options{WithEmitMissed(false), WithEmitPassed(false)}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remarks := run(t, b.Function(), tc.opts)
			if len(remarks) != len(tc.want) {
				t.Fatalf("Got %d remarks, want %d", len(remarks), len(tc.want))
			}

			for i, sev := range tc.want {
				if remarks[i].Severity != sev {
					t.Errorf("Remark %d: got severity %v, want %v", i, remarks[i].Severity, sev)
				}
			}
		})
	}
}

func TestDecllessBindings(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	b := optIn(testir.NewBuilder(t, "test"))
	obj := b.Apply(klass)
	b.DebugValueName(obj, "x")
	b.StrongRetain(obj)

	remarks := run(t, b.Function(), WithDecllessBindings(true))

	expectRemarks(t, remarks, []expected{
		{
			severity: remark.SeverityMissed,
			message:  "retain of type 'Klass'",
			notes:    []string{"of 'x'"},
		},
	})
}

func TestRunModule(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	var fns []*ir.Function
	for _, name := range []string{"first", "second"} {
		b := optIn(testir.NewBuilder(t, name))
		obj := b.Apply(klass)
		b.StrongRetain(obj)
		fns = append(fns, b.Function())
	}

	m := &ir.Module{Name: "test", Functions: fns}

	var sink remark.Collector
	g := New(WithSink(&sink), WithLogger(testir.DiscardLogger()))

	if err := g.Run(t.Context(), m); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got, want := len(sink.Remarks), 2; got != want {
		t.Fatalf("Got %d remarks, want %d", got, want)
	}

	for i, fn := range []string{"first", "second"} {
		if got := sink.Remarks[i].Function; got != fn {
			t.Errorf("Remark %d: got function %q, want %q", i, got, fn)
		}
	}
}

type failingSink struct{ err error }

func (s failingSink) Write(remark.Remark) error { return s.err }

func TestSinkErrorPropagates(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	b := optIn(testir.NewBuilder(t, "test"))
	obj := b.Apply(klass)
	b.StrongRetain(obj)

	errWrite := errors.New("stream closed")
	g := New(WithSink(failingSink{err: errWrite}), WithLogger(testir.DiscardLogger()))

	m := &ir.Module{Name: "test", Functions: []*ir.Function{b.Function()}}
	if err := g.Run(t.Context(), m); !errors.Is(err, errWrite) {
		t.Errorf("Got error %v, want %v", err, errWrite)
	}
}

func TestWithoutSink(t *testing.T) {
	t.Parallel()

	klass := testir.Ty("Klass")

	b := optIn(testir.NewBuilder(t, "test"))
	obj := b.Apply(klass)
	b.StrongRetain(obj)

	g := New(WithLogger(testir.DiscardLogger()))

	if err := g.RunFunction(t.Context(), b.Function()); err != nil {
		t.Errorf("Got error %v without a sink", err)
	}
}
