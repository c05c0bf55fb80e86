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
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/optremark/internal/config"
	"fillmore-labs.com/optremark/internal/infer"
	"fillmore-labs.com/optremark/ir"
	"fillmore-labs.com/optremark/remark"
)

// Run generates remarks for every eligible function in m. It returns the
// first error reported by the configured sink, if any.
func (g *Generator) Run(ctx context.Context, m *ir.Module) error {
	ctx, task := trace.NewTask(ctx, "OptRemark")
	defer task.End()

	for _, fn := range m.Functions {
		if err := g.RunFunction(ctx, fn); err != nil {
			return err
		}
	}

	return nil
}

// RunFunction generates remarks for a single function.
func (g *Generator) RunFunction(ctx context.Context, fn *ir.Function) error {
	r := g.opts

	if !r.remarksEnabled(fn) {
		r.log.LogAttrs(ctx, slog.LevelDebug, "skipping function without remark opt-in",
			slog.String("function", fn.Name))

		return nil
	}

	if (fn.Implicit || fn.AutoGenerated) && !r.behavior.Enabled(config.ForceVisitImplicit) {
		r.log.LogAttrs(ctx, slog.LevelDebug, "skipping implicit function",
			slog.String("function", fn.Name),
			slog.Bool("implicit", fn.Implicit),
			slog.Bool("autogenerated", fn.AutoGenerated))

		return nil
	}

	defer trace.StartRegion(ctx, "visitFunction").End()

	missed := r.emit.Enabled(config.EmitMissed)
	passed := r.emit.Enabled(config.EmitPassed)

	em := remark.NewEmitter(name, fn, r.sink, missed, passed)
	inf := infer.New(r.rc, r.log, r.behavior.Enabled(config.DecllessBindings))

	v := visitor{em: em, inf: inf}
	for inst := range fn.Instructions() {
		v.visit(inst)
	}

	return em.Err()
}

// remarksEnabled reports whether fn opted into remark generation, either
// through a semantics attribute, a per-type attribute on its self type, or
// the always-emit behavior flag.
func (r *runOptions) remarksEnabled(fn *ir.Function) bool {
	if r.behavior.Enabled(config.AlwaysEmit) {
		return true
	}

	if fn.HasSemanticsAttrPrefix(forceEmitSemanticsPrefix) {
		return true
	}

	return fn.SelfType != nil && fn.SelfType.EmitRemarksOnMethods
}
