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

// Package wasmhost exposes byte expansion to WebAssembly guests as a wazero
// host module.
//
// Guests import it as:
//
//	(import "bitexpand" "expand_decimal" (func (param i32) (result i32 i32 i32)))
//
// The three results are the lanes of the expanded word, least significant
// first. A parameter outside [0, 255] traps the call.
package wasmhost

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/ajroetker/go-bitexpand/expand"
)

const (
	// ModuleName is the import module name guests use.
	ModuleName = "bitexpand"

	// ExpandFunc is the exported name of the expansion function.
	ExpandFunc = "expand_decimal"
)

// NewModuleBuilder returns a builder for the bitexpand host module, so that
// callers can add their own functions before instantiating it.
func NewModuleBuilder(r wazero.Runtime) wazero.HostModuleBuilder {
	return r.NewHostModuleBuilder(ModuleName).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(expandDecimal),
			[]api.ValueType{api.ValueTypeI32},
			[]api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32}).
		WithParameterNames("value").
		WithResultNames("lane0", "lane1", "lane2").
		Export(ExpandFunc)
}

// Instantiate instantiates the bitexpand host module into r.
func Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	mod, err := NewModuleBuilder(r).Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("instantiate %s host module: %w", ModuleName, err)
	}
	return mod, nil
}

func expandDecimal(_ context.Context, _ api.Module, stack []uint64) {
	// i32 is signed on the guest side; -1 must be rejected, not read as 2^32-1.
	value := int(api.DecodeI32(stack[0]))

	lanes, err := expand.Expand(value)
	if err != nil {
		expand.Logger().Warn("rejected expansion call",
			zap.String("module", ModuleName),
			zap.Int("value", value),
			zap.Error(err))
		panic(err)
	}

	stack[0] = api.EncodeU32(uint32(lanes[0]))
	stack[1] = api.EncodeU32(uint32(lanes[1]))
	stack[2] = api.EncodeU32(uint32(lanes[2]))
}
