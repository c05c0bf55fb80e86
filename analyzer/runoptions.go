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
	"fillmore-labs.com/optremark/internal/rcid"
	"fillmore-labs.com/optremark/remark"
)

type runOptions struct {
	emit     config.BitMask[config.Emit]
	behavior config.BitMask[config.Behavior]
	sink     remark.Sink
	rc       RCIdentity
	log      *slog.Logger
}

func defaultRunOptions() *runOptions {
	return &runOptions{
		emit:     config.DefaultEmit(),
		behavior: config.DefaultBehavior(),
		sink:     nil,
		rc:       rcid.New(),
		log:      slog.Default(),
	}
}

func makeRunOptions(opts Option) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	if r.rc == nil {
		r.rc = rcid.New()
	}

	if r.log == nil {
		r.log = slog.Default()
	}

	return r
}
