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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var allLevels = []DispatchLevel{DispatchScalar, DispatchTable, DispatchSWAR}

// withLevel switches the batch kernel for the duration of the test.
func withLevel(t *testing.T, level DispatchLevel) {
	t.Helper()
	saved := currentLevel
	setLevel(level)
	t.Cleanup(func() { setLevel(saved) })
}

func spreadAll(src []byte) []uint32 {
	out := make([]uint32, len(src))
	for i, v := range src {
		out[i] = Spread(v)
	}
	return out
}

func randomBytes(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(r.Uint32())
	}
	return buf
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchTable, "table"},
		{DispatchSWAR, "swar"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if expandKernel == nil {
		t.Fatal("no kernel selected at init")
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %v", CurrentName(), CurrentLevel())
	}
	if ScalarEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("BITEXPAND_SCALAR is set but level is %v", CurrentLevel())
	}
	t.Logf("dispatch level: %s", CurrentName())
}

func TestSetLevelUnknownFallsBackToScalar(t *testing.T) {
	withLevel(t, DispatchLevel(42))
	if CurrentLevel() != DispatchScalar || CurrentName() != "scalar" {
		t.Errorf("got level %v (%q), want scalar", CurrentLevel(), CurrentName())
	}
}

func TestScalarEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("BITEXPAND_SCALAR", tt.val)
		if got := ScalarEnv(); got != tt.want {
			t.Errorf("ScalarEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestKernels(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	inputs := map[string][]byte{
		"empty":  {},
		"one":    {0x80},
		"two":    {0x01, 0xFE},
		"odd":    {0x12, 0x34, 0x56},
		"all":    all,
		"random": randomBytes(1001, 1),
	}

	for _, level := range allLevels {
		t.Run(level.String(), func(t *testing.T) {
			withLevel(t, level)
			for name, src := range inputs {
				t.Run(name, func(t *testing.T) {
					dst := make([]uint32, len(src))
					if n := ExpandBytes(dst, src); n != len(src) {
						t.Fatalf("ExpandBytes wrote %d words, want %d", n, len(src))
					}
					if diff := cmp.Diff(spreadAll(src), dst); diff != "" {
						t.Errorf("ExpandBytes mismatch (-want +got):\n%s", diff)
					}
				})
			}
		})
	}
}

func TestExpandBytesShortDst(t *testing.T) {
	for _, level := range allLevels {
		t.Run(level.String(), func(t *testing.T) {
			withLevel(t, level)
			src := []byte{1, 2, 3, 4, 5}
			dst := make([]uint32, 3, 8)
			if n := ExpandBytes(dst, src); n != 3 {
				t.Fatalf("ExpandBytes wrote %d words, want 3", n)
			}
			if diff := cmp.Diff(spreadAll(src[:3]), dst); diff != "" {
				t.Errorf("ExpandBytes mismatch (-want +got):\n%s", diff)
			}
			if extra := dst[:4][3]; extra != 0 {
				t.Errorf("ExpandBytes wrote past len(dst): %#x", extra)
			}
		})
	}
}

func BenchmarkExpandBytes(b *testing.B) {
	src := randomBytes(1<<16, 7)
	dst := make([]uint32, len(src))
	for _, level := range allLevels {
		b.Run(level.String(), func(b *testing.B) {
			saved := currentLevel
			setLevel(level)
			defer setLevel(saved)

			b.SetBytes(int64(len(src)))
			for b.Loop() {
				ExpandBytes(dst, src)
			}
		})
	}
}
