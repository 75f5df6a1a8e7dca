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

//go:build amd64

package expand

import "golang.org/x/sys/cpu"

func init() {
	if ScalarEnv() {
		setLevel(DispatchScalar)
		return
	}

	// BMI2 serves as a proxy for a core (Haswell and later) with a
	// single-cycle-throughput 64-bit multiplier.
	if cpu.X86.HasBMI2 {
		setLevel(DispatchSWAR)
	} else {
		setLevel(DispatchTable)
	}
}
