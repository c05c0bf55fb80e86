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
	"reflect"
	"strings"
	"testing"

	. "fillmore-labs.com/optremark/analyzer"
)

const allSettings = `
emit-missed: true
emit-passed: false
always-emit: true
force-visit-implicit: true
declless-bindings: true
`

func TestSettings(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"partial", "always-emit: true\n", 1},
		{"none", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := LoadSettings(strings.NewReader(tc.settings))
			if err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := LoadSettings(strings.NewReader("no-such-setting: true\n")); err == nil {
		t.Error("Decoded settings with an unknown field")
	}
}

func TestSettingsApply(t *testing.T) {
	t.Parallel()

	s, err := LoadSettings(strings.NewReader("emit-passed: false\nalways-emit: true\n"))
	if err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	opts := s.Options()
	if len(opts) != 2 {
		t.Fatalf("Got %d options, want 2", len(opts))
	}

	attrs := Options(opts).LogValue().String()
	for _, want := range []string{"emit-passed=false", "always-emit=true"} {
		if !strings.Contains(attrs, want) {
			t.Errorf("Got options %s, want %s", attrs, want)
		}
	}
}
