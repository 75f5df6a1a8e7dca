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

// Factor is the number of output bits produced for every input bit.
const Factor = 3

// WordMask covers the 24 significant bits of an expanded word.
const WordMask = 0xFFFFFF

// Masks applied after each multiply in Spread. Mask bits mark where the copies
// made by the multiply are kept.
const (
	nibbleMask = 0x0F00F  // bits 0-3 and 12-15
	pairMask   = 0x0C30C3 // bits 0-1, 6-7, 12-13 and 18-19
	singleMask = 0x249249 // bits 0, 3, 6, ..., 21
)

// Lanes holds the three 8-bit slices of an expanded word.
// Lanes[0] is bits 0-7, Lanes[1] bits 8-15 and Lanes[2] bits 16-23.
type Lanes [3]uint8

// Word reassembles the 24-bit word the lanes were taken from.
func (l Lanes) Word() uint32 {
	return uint32(l[0]) | uint32(l[1])<<8 | uint32(l[2])<<16
}

// Spread expands v so that bit i of v fills bits 3i, 3i+1 and 3i+2 of the
// result. The result always fits in 24 bits.
func Spread(v uint8) uint32 {
	x := uint32(v)
	x = (x * 0x101) & nibbleMask
	x = (x * 0x11) & pairMask
	x = (x * 5) & singleMask
	// The isolated bits are 3 apart, so multiplying by 0b111 cannot carry.
	return x * 7
}

// Decompose splits the low 24 bits of w into three lanes.
func Decompose(w uint32) Lanes {
	return Lanes{
		uint8(w & 0xFF),
		uint8((w >> 8) & 0xFF),
		uint8((w >> 16) & 0xFF),
	}
}

// Expand is the checked entry point for callers holding an untyped integer.
// It returns an error matching ErrInvalidInputRange for values outside
// [0, 255], in which case Spread is never evaluated.
func Expand(value int) (Lanes, error) {
	if value < 0 || value > 0xFF {
		return Lanes{}, &RangeError{Value: value}
	}
	return Decompose(Spread(uint8(value))), nil
}
