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

// Severity states whether a remark reports a missed or an achieved
// optimization.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// SeverityMissed reports an optimization the compiler could not
	// perform.
	SeverityMissed Severity = iota // Missed

	// SeverityPassed reports an optimization the compiler achieved.
	SeverityPassed // Passed
)

// SourceLocInference states how a remark's presented location is derived
// when the originating instruction lacks a usable one.
type SourceLocInference uint8

//go:generate go tool stringer -type SourceLocInference -linecomment
const (
	// LocExact uses the instruction's own location only.
	LocExact SourceLocInference = iota // exact

	// LocForwardScan uses the instruction's own location and otherwise
	// scans forward in its block.
	LocForwardScan // forward-scan

	// LocForwardScanAlwaysInfer prefers a location scanned forward from the
	// instruction, falling back to its own.
	LocForwardScanAlwaysInfer // forward-scan-always-infer

	// LocBackwardThenForwardAlwaysInfer prefers a location scanned
	// backward, then forward, falling back to the instruction's own.
	LocBackwardThenForwardAlwaysInfer // backward-then-forward-always-infer
)

// SourceLocPresentation states how the resolved location is presented.
type SourceLocPresentation uint8

//go:generate go tool stringer -type SourceLocPresentation -linecomment
const (
	// PresentPoint presents the location as the point of the operation.
	PresentPoint SourceLocPresentation = iota // point

	// PresentEndRange presents the location as the end of a range, e.g. the
	// end of a lifetime or access scope.
	PresentEndRange // end-range
)
