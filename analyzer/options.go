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
	"log/slog"

	"fillmore-labs.com/optremark/internal/config"
	"fillmore-labs.com/optremark/remark"
)

// Option configures specific behavior of a [New] remark generator.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSink is an [Option] to set the sink remarks are streamed to.
func WithSink(sink remark.Sink) Option { return sinkOption{sink: sink} }

type sinkOption struct{ sink remark.Sink }

func (o sinkOption) apply(r *runOptions) {
	r.sink = o.sink
}

func (o sinkOption) LogAttr() slog.Attr {
	return slog.Bool("sink", o.sink != nil)
}

// WithEmitMissed is an [Option] to configure emission of
// missed-optimization remarks.
func WithEmitMissed(missed bool) Option { return missedOption{missed: missed} }

type missedOption struct{ missed bool }

func (o missedOption) apply(r *runOptions) {
	r.emit.Set(config.EmitMissed, o.missed)
}

func (o missedOption) LogAttr() slog.Attr {
	return slog.Bool("emit-missed", o.missed)
}

// WithEmitPassed is an [Option] to configure emission of
// achieved-optimization remarks.
func WithEmitPassed(passed bool) Option { return passedOption{passed: passed} }

type passedOption struct{ passed bool }

func (o passedOption) apply(r *runOptions) {
	r.emit.Set(config.EmitPassed, o.passed)
}

func (o passedOption) LogAttr() slog.Attr {
	return slog.Bool("emit-passed", o.passed)
}

// WithAlwaysEmit is an [Option] to generate remarks for every function
// instead of only opted-in ones.
func WithAlwaysEmit(always bool) Option { return alwaysOption{always: always} }

type alwaysOption struct{ always bool }

func (o alwaysOption) apply(r *runOptions) {
	r.behavior.Set(config.AlwaysEmit, o.always)
}

func (o alwaysOption) LogAttr() slog.Attr {
	return slog.Bool("always-emit", o.always)
}

// WithForceVisitImplicit is an [Option] to emit remarks even on implicit
// and autogenerated functions.
func WithForceVisitImplicit(force bool) Option { return forceImplicitOption{force: force} }

type forceImplicitOption struct{ force bool }

func (o forceImplicitOption) apply(r *runOptions) {
	r.behavior.Set(config.ForceVisitImplicit, o.force)
}

func (o forceImplicitOption) LogAttr() slog.Attr {
	return slog.Bool("force-visit-implicit", o.force)
}

// WithDecllessBindings is an [Option] to infer named values from debug
// bindings that carry only a plain name and no declaration. This makes
// IR-level test cases easier to write.
func WithDecllessBindings(declless bool) Option { return decllessOption{declless: declless} }

type decllessOption struct{ declless bool }

func (o decllessOption) apply(r *runOptions) {
	r.behavior.Set(config.DecllessBindings, o.declless)
}

func (o decllessOption) LogAttr() slog.Attr {
	return slog.Bool("declless-bindings", o.declless)
}

// WithRCIdentity is an [Option] to inject an rc-identity oracle replacing
// the built-in conservative one.
func WithRCIdentity(rc RCIdentity) Option { return rcOption{rc: rc} }

type rcOption struct{ rc RCIdentity }

func (o rcOption) apply(r *runOptions) {
	r.rc = o.rc
}

func (o rcOption) LogAttr() slog.Attr {
	return slog.Bool("rc-identity", o.rc != nil)
}

// WithLogger is an [Option] to set the logger used for debug output.
func WithLogger(log *slog.Logger) Option { return loggerOption{log: log} }

type loggerOption struct{ log *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.log = o.log
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.log != nil)
}
