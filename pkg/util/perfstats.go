// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats captures a snapshot of elapsed time and allocation, so that the cost
// of a unit of work can be reported afterwards.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
}

// NewPerfStats creates a new snapshot of the current time and amount of memory
// allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)

	return &PerfStats{time.Now(), m.TotalAlloc}
}

// Elapsed returns the time passed since this snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log logs (at debug level) the time and memory spent producing n items since
// the snapshot was taken.
func (p *PerfStats) Log(prefix string, n uint) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	exectime := p.Elapsed().Seconds()
	rate := 0.0

	if exectime > 0 {
		rate = float64(n) / exectime
	}

	log.Debugf("%s took %0.3fs for %d items (%0.0f/s) using %v Kb", prefix, exectime, n, rate, alloc)
}
