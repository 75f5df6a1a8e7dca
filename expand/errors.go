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
	"errors"
	"strconv"
)

var (
	// ErrInvalidInputRange is returned when a value outside [0, 255] is
	// offered for expansion.
	ErrInvalidInputRange = errors.New("expand: input out of range [0, 255]")

	// ErrNotExpanded is returned by Compact for words that Spread cannot
	// produce.
	ErrNotExpanded = errors.New("expand: word is not a valid expansion")

	// ErrShortInput is returned when an expanded stream is not a whole number
	// of 3-byte words.
	ErrShortInput = errors.New("expand: expanded stream length is not a multiple of 3")
)

// RangeError records a value rejected at the input boundary.
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return "expand: input " + strconv.Itoa(e.Value) + " out of range [0, 255]"
}

// Is reports whether target is ErrInvalidInputRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidInputRange
}
