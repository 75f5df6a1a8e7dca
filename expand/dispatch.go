// Copyright 2026 go-bitexpand Authors
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

package expand

import (
	"os"
	"strconv"
)

// DispatchLevel identifies the kernel used by the batch operations.
type DispatchLevel int

const (
	// DispatchScalar calls Spread once per byte.
	DispatchScalar DispatchLevel = iota

	// DispatchTable reads one precomputed table entry per byte.
	DispatchTable

	// DispatchSWAR runs two bytes through one 64-bit multiply-and-mask chain.
	DispatchSWAR
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchTable:
		return "table"
	case DispatchSWAR:
		return "swar"
	default:
		return "unknown"
	}
}

// currentLevel is the kernel selected for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of currentLevel.
var currentName string

// expandKernel expands src into dst. Both slices have the same length.
var expandKernel func(dst []uint32, src []byte)

// CurrentLevel returns the kernel used by ExpandBytes and friends.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current kernel.
// For example: "swar", "table", "scalar".
func CurrentName() string {
	return currentName
}

// ScalarEnv checks if the BITEXPAND_SCALAR environment variable is set.
// When set, batch operations use the scalar kernel regardless of CPU.
func ScalarEnv() bool {
	val := os.Getenv("BITEXPAND_SCALAR")
	if val == "" {
		return false
	}
	// "0" and "false" switch it off; unparsable values such as "yes" count as set.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setLevel(level DispatchLevel) {
	currentLevel = level
	currentName = level.String()
	switch level {
	case DispatchSWAR:
		expandKernel = expandSWAR
	case DispatchTable:
		expandKernel = expandTable
	default:
		currentLevel = DispatchScalar
		currentName = DispatchScalar.String()
		expandKernel = expandScalar
	}
}
