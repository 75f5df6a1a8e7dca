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

// Lane masks of Spread replicated at bit 32 for the two-lane kernel.
const (
	nibbleMask2 = nibbleMask | nibbleMask<<32
	pairMask2   = pairMask | pairMask<<32
	singleMask2 = singleMask | singleMask<<32
)

func expandScalar(dst []uint32, src []byte) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = Spread(v)
	}
}

func expandTable(dst []uint32, src []byte) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = expansionTable[v]
	}
}

// expandSWAR places two input bytes 32 bits apart in one uint64 and runs the
// Spread chain once for both. Every intermediate of a lane stays below 2^24,
// so the upper lane never receives a carry from the lower one.
func expandSWAR(dst []uint32, src []byte) {
	dst = dst[:len(src)]
	i := 0
	for ; i+2 <= len(src); i += 2 {
		x := uint64(src[i]) | uint64(src[i+1])<<32
		x = (x * 0x101) & nibbleMask2
		x = (x * 0x11) & pairMask2
		x = (x * 5) & singleMask2
		x *= 7
		dst[i] = uint32(x)
		dst[i+1] = uint32(x >> 32)
	}
	if i < len(src) {
		dst[i] = Spread(src[i])
	}
}
