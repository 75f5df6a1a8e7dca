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

import "slices"

// ExpandBytes writes Spread(src[i]) to dst[i] for every index present in both
// slices and returns the number of words written.
func ExpandBytes(dst []uint32, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	expandKernel(dst[:n], src[:n])
	return n
}

// AppendExpanded appends the expansion of every byte of src to dst, three
// bytes per input byte with the most significant lane first, and returns the
// extended slice.
func AppendExpanded(dst, src []byte) []byte {
	var words [64]uint32

	dst = slices.Grow(dst, Factor*len(src))
	for len(src) > 0 {
		n := ExpandBytes(words[:], src)
		for _, w := range words[:n] {
			dst = append(dst, byte(w>>16), byte(w>>8), byte(w))
		}
		src = src[n:]
	}
	return dst
}

// ContractBytes decodes a stream produced by AppendExpanded, majority-voting
// each 3-bit run. It writes at most len(dst) bytes and returns the number
// written together with the number of bits that had to be corrected.
// ErrShortInput is returned if len(src) is not a multiple of 3.
func ContractBytes(dst, src []byte) (n, corrected int, err error) {
	if len(src)%Factor != 0 {
		return 0, 0, ErrShortInput
	}

	n = min(len(dst), len(src)/Factor)
	for i := range n {
		s := src[Factor*i : Factor*i+Factor]
		v, c := Majority(uint32(s[0])<<16 | uint32(s[1])<<8 | uint32(s[2]))
		dst[i] = v
		corrected += c
	}
	return n, corrected, nil
}
