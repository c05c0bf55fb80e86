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
	"strconv"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/optremark/ir"
)

// YAMLStreamer is a [Sink] serializing remarks as a stream of YAML
// documents in the optimization-record format: one document per remark,
// tagged with the severity.
type YAMLStreamer struct {
	enc *yaml.Encoder
}

// NewYAMLStreamer creates a streamer writing to w.
func NewYAMLStreamer(w io.Writer) *YAMLStreamer {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	return &YAMLStreamer{enc: enc}
}

// Write implements [Sink].
func (s *YAMLStreamer) Write(r Remark) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!" + r.Severity.String()}

	appendPair(doc, "Pass", scalar(r.Pass))
	appendPair(doc, "Name", scalar(r.Category))

	if r.Loc.Valid() {
		appendPair(doc, "DebugLoc", locNode(r.Loc))
	}

	appendPair(doc, "Function", scalar(r.Function))

	args := &yaml.Node{Kind: yaml.SequenceNode}
	for _, arg := range r.Args {
		entry := &yaml.Node{Kind: yaml.MappingNode}
		appendPair(entry, arg.Key.Name, scalar(arg.Val))

		if arg.Loc.Valid() {
			appendPair(entry, "DebugLoc", locNode(arg.Loc))
		}

		args.Content = append(args.Content, entry)
	}

	appendPair(doc, "Args", args)

	if err := s.enc.Encode(doc); err != nil {
		return fmt.Errorf("remark: encoding remark stream: %w", err)
	}

	return nil
}

// Close flushes the underlying encoder. Call it after the last remark.
func (s *YAMLStreamer) Close() error {
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("remark: closing remark stream: %w", err)
	}

	return nil
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intScalar(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}

func locNode(loc ir.Location) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	appendPair(n, "File", scalar(loc.File))
	appendPair(n, "Line", intScalar(loc.Line))
	appendPair(n, "Column", intScalar(loc.Col))

	return n
}
