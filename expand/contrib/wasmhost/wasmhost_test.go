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

package wasmhost

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-bitexpand/expand"
)

// guestWasm is a module that re-exports the host function through a wasm
// function of its own:
//
//	(module
//	  (type (func (param i32) (result i32 i32 i32)))
//	  (import "bitexpand" "expand_decimal" (func (type 0)))
//	  (func (type 0) local.get 0 call 0)
//	  (export "expand" (func 1)))
var guestWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version
	// type section
	0x01, 0x08, 0x01, 0x60, 0x01, 0x7f, 0x03, 0x7f, 0x7f, 0x7f,
	// import section
	0x02, 0x1c, 0x01,
	0x09, 'b', 'i', 't', 'e', 'x', 'p', 'a', 'n', 'd',
	0x0e, 'e', 'x', 'p', 'a', 'n', 'd', '_', 'd', 'e', 'c', 'i', 'm', 'a', 'l',
	0x00, 0x00,
	// function section
	0x03, 0x02, 0x01, 0x00,
	// export section
	0x07, 0x0a, 0x01, 0x06, 'e', 'x', 'p', 'a', 'n', 'd', 0x00, 0x01,
	// code section
	0x0a, 0x08, 0x01, 0x06, 0x00, 0x20, 0x00, 0x10, 0x00, 0x0b,
}

// instantiate returns the host module and the guest's re-export of the host
// function. Host module functions are only callable through an importing guest.
func instantiate(t *testing.T) (api.Module, api.Function) {
	t.Helper()
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	host, err := Instantiate(ctx, r)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	guest, err := r.Instantiate(ctx, guestWasm)
	if err != nil {
		t.Fatalf("instantiate guest: %v", err)
	}
	fn := guest.ExportedFunction("expand")
	if fn == nil {
		t.Fatal("guest does not export expand")
	}
	return host, fn
}

func instantiateGuest(t *testing.T) api.Function {
	t.Helper()
	_, fn := instantiate(t)
	return fn
}

func TestExpandDecimalSignature(t *testing.T) {
	host, _ := instantiate(t)

	def, ok := host.ExportedFunctionDefinitions()[ExpandFunc]
	if !ok {
		t.Fatalf("%s not exported", ExpandFunc)
	}
	if diff := cmp.Diff([]api.ValueType{api.ValueTypeI32}, def.ParamTypes()); diff != "" {
		t.Errorf("param types (-want +got):\n%s", diff)
	}
	want := []api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32}
	if diff := cmp.Diff(want, def.ResultTypes()); diff != "" {
		t.Errorf("result types (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"value"}, def.ParamNames()); diff != "" {
		t.Errorf("param names (-want +got):\n%s", diff)
	}
}

func TestExpandDecimal(t *testing.T) {
	_, fn := instantiate(t)

	tests := []struct {
		in   uint64
		want []uint64
	}{
		{0x00, []uint64{0, 0, 0}},
		{0x01, []uint64{0x07, 0, 0}},
		{0x80, []uint64{0, 0, 0xE0}},
		{0xAA, []uint64{0x38, 0x8E, 0xE3}},
		{0xFF, []uint64{255, 255, 255}},
	}
	for _, tt := range tests {
		got, err := fn.Call(context.Background(), tt.in)
		if err != nil {
			t.Fatalf("Call(%#x): %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Call(%#x) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestExpandDecimalAllValues(t *testing.T) {
	_, fn := instantiate(t)
	for v := range 256 {
		got, err := fn.Call(context.Background(), uint64(v))
		if err != nil {
			t.Fatalf("Call(%d): %v", v, err)
		}
		lanes := expand.Decompose(expand.Spread(uint8(v)))
		want := []uint64{uint64(lanes[0]), uint64(lanes[1]), uint64(lanes[2])}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Call(%d) (-want +got):\n%s", v, diff)
		}
	}
}

func TestExpandDecimalRejectsOutOfRange(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	expand.SetLogger(zap.New(core))
	t.Cleanup(func() { expand.SetLogger(nil) })

	for _, v := range []int32{256, -1, 1 << 30} {
		_, fn := instantiate(t)
		_, err := fn.Call(context.Background(), api.EncodeI32(v))
		if err == nil {
			t.Errorf("Call(%d) succeeded, want a trap", v)
			continue
		}
		if !strings.Contains(err.Error(), "out of range") {
			t.Errorf("Call(%d): error %q does not mention the range", v, err)
		}
	}

	rejected := logs.FilterMessage("rejected expansion call").All()
	if len(rejected) != 3 {
		t.Fatalf("got %d warnings, want 3", len(rejected))
	}
	for i, v := range []int64{256, -1, 1 << 30} {
		if got := rejected[i].ContextMap()["value"]; got != v {
			t.Errorf("warning %d: value = %v, want %d", i, got, v)
		}
		if rejected[i].Level != zapcore.WarnLevel {
			t.Errorf("warning %d logged at %v", i, rejected[i].Level)
		}
	}
}

func TestGuestImport(t *testing.T) {
	fn := instantiateGuest(t)

	got, err := fn.Call(context.Background(), 0xA5)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	// 0xA5 expands to 0xE381C7.
	if diff := cmp.Diff([]uint64{0xC7, 0x81, 0xE3}, got); diff != "" {
		t.Errorf("guest results (-want +got):\n%s", diff)
	}
}

func TestGuestImportTraps(t *testing.T) {
	fn := instantiateGuest(t)

	if _, err := fn.Call(context.Background(), api.EncodeI32(-1)); err == nil {
		t.Fatal("guest call with -1 succeeded, want a trap")
	} else if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error %q does not mention the range", err)
	}
}
