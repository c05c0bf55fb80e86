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

package remark

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Printer is a [Sink] rendering remarks as human-readable diagnostics,
// one line per remark plus one line per note clause.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer writing to w. Color is enabled when w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Printer{w: w, color: color}
}

const (
	ansiRemark = "\x1b[1;35m" // bold magenta, like compiler remarks
	ansiNote   = "\x1b[1;30m" // bold grey
	ansiReset  = "\x1b[0m"
)

// Write implements [Sink].
func (p *Printer) Write(r Remark) error {
	label := "remark"
	if r.Presentation == PresentEndRange {
		label = "remark(end)"
	}

	if _, err := fmt.Fprintf(p.w, "%s: %s: %s\n",
		r.Loc, p.paint(ansiRemark, label), r.Message()); err != nil {
		return fmt.Errorf("remark: printing remark: %w", err)
	}

	for _, note := range r.Notes() {
		loc := note.Loc
		if !loc.Valid() {
			loc = r.Loc
		}

		if _, err := fmt.Fprintf(p.w, "%s: %s: %s\n",
			loc, p.paint(ansiNote, "note"), note.Val); err != nil {
			return fmt.Errorf("remark: printing note: %w", err)
		}
	}

	return nil
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}

	return code + s + ansiReset
}
