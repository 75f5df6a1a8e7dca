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

// Package expand spreads the bits of a byte into 3-bit runs of a 24-bit word.
//
// # Bit Expansion Overview
//
// Expansion with a factor of 3 replaces every input bit with three copies of
// itself. Input bit i occupies bits 3i, 3i+1 and 3i+2 of the result:
//
//	0b1000_0001 -> 0b111_000_000_000_000_000_000_111 (0xE00007)
//
// The mapping is computed without loops or branches by a chain of
// multiply-and-mask steps (see [Spread]). The 24-bit result splits into three
// 8-bit lanes with [Decompose], least significant lane first.
//
// # Core Functions
//
//   - Spread(v uint8) uint32 - expand one byte
//   - Decompose(w uint32) Lanes - split an expanded word into lanes
//   - Expand(value int) (Lanes, error) - range-checked entry point for untyped callers
//   - Lookup(v uint8) uint32 - table-driven equivalent of Spread
//   - Compact(w uint32) (uint8, error) - exact inverse of Spread
//   - Majority(w uint32) (uint8, int) - inverse that majority-votes each run
//
// # Streams
//
// [AppendExpanded] expands a byte stream into a stream three times as long,
// writing lanes most significant first, so the output read MSB-first is the
// input with every bit tripled. [ContractBytes] decodes such a stream, fixing
// up to one flipped bit per run.
//
// # Dispatch
//
// Batch operations pick a kernel at init time based on the CPU:
//   - swar: two bytes per 64-bit multiply chain (amd64 with BMI2, arm64)
//   - table: one table load per byte (other architectures)
//   - scalar: one Spread call per byte (forced with BITEXPAND_SCALAR=1)
//
// All kernels produce identical results.
package expand
