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

// Sink receives finished remarks.
type Sink interface {
	Write(r Remark) error
}

// Collector is a [Sink] that stores every remark it receives. It is meant
// for tests and in-process consumers.
type Collector struct {
	Remarks []Remark
}

// Write implements [Sink].
func (c *Collector) Write(r Remark) error {
	c.Remarks = append(c.Remarks, r)

	return nil
}

// Reset discards the collected remarks.
func (c *Collector) Reset() { c.Remarks = c.Remarks[:0] }
