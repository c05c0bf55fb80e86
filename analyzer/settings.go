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
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Settings configures the remark generator declaratively, for callers that
// load configuration from a file instead of passing [Option] values.
type Settings struct {
	// EmitMissed enables remarks for missed optimizations.
	EmitMissed *bool `yaml:"emit-missed,omitempty"`

	// EmitPassed enables remarks for achieved optimizations.
	EmitPassed *bool `yaml:"emit-passed,omitempty"`

	// AlwaysEmit generates remarks for every function instead of only
	// opted-in ones.
	AlwaysEmit *bool `yaml:"always-emit,omitempty"`

	// ForceVisitImplicit emits remarks even on implicit and autogenerated
	// functions.
	ForceVisitImplicit *bool `yaml:"force-visit-implicit,omitempty"`

	// DecllessBindings infers named values from debug bindings without a
	// declaration.
	DecllessBindings *bool `yaml:"declless-bindings,omitempty"`
}

// Options converts the settings into a list of [Option] values, ignoring
// unset fields.
func (s Settings) Options() Options {
	var opts Options

	opts = appendOption(opts, s.EmitMissed, WithEmitMissed)
	opts = appendOption(opts, s.EmitPassed, WithEmitPassed)
	opts = appendOption(opts, s.AlwaysEmit, WithAlwaysEmit)
	opts = appendOption(opts, s.ForceVisitImplicit, WithForceVisitImplicit)
	opts = appendOption(opts, s.DecllessBindings, WithDecllessBindings)

	return opts
}

func appendOption[T any](opts Options, value *T, option func(T) Option) Options {
	if value == nil {
		return opts
	}

	return append(opts, option(*value))
}

// LoadSettings reads YAML settings from r. Unknown fields are an error.
func LoadSettings(r io.Reader) (Settings, error) {
	var s Settings

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("optremark: parsing settings: %w", err)
	}

	return s, nil
}
