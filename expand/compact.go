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

import "math/bits"

// gather collects bits 0, 3, ..., 21 of w into a byte. It undoes the
// multiply-and-mask steps of Spread in reverse order.
func gather(w uint32) uint8 {
	x := w & singleMask
	x = (x | x>>2) & pairMask
	x = (x | x>>4) & nibbleMask
	x = (x | x>>8) & 0xFF
	return uint8(x)
}

// Compact returns the byte v with Spread(v) == w. It returns ErrNotExpanded if
// w has bits set above bit 23 or if any 3-bit run mixes ones and zeros.
func Compact(w uint32) (uint8, error) {
	if w&^WordMask != 0 {
		return 0, ErrNotExpanded
	}
	v := gather(w)
	if Spread(v) != w {
		return 0, ErrNotExpanded
	}
	return v, nil
}

// Majority decodes each 3-bit run of w as a repetition code: a run decodes to
// 1 when at least two of its bits are set. Bits above bit 23 are ignored.
// corrected counts the bits of w that disagree with the decoded value, so a
// single flipped bit per run is fixed and reported.
func Majority(w uint32) (v uint8, corrected int) {
	w &= WordMask
	a, b := w>>1, w>>2
	v = gather(w&a | w&b | a&b)
	return v, bits.OnesCount32(Spread(v) ^ w)
}
